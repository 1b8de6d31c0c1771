package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/models/memrepo"
	"github.com/joshua-takyi/carrental/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func decode(t *testing.T, w *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var res models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, helpers.RequestIDFrom(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(discard))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("db exploded"))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	res := decode(t, w)
	assert.Equal(t, "Internal server error", res.Message)
	assert.Equal(t, "req-1", res.RequestID)
	assert.NotContains(t, w.Body.String(), "db exploded")
}

type authFixture struct {
	repo   *memrepo.Repo
	tokens *helpers.TokenManager
	router *gin.Engine
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	repo := memrepo.New()
	tokens := helpers.NewTokenManager("test-secret", 0)
	auth := services.NewAuthService(repo, tokens, 4)

	r := gin.New()
	r.Use(ErrorHandler(discard))
	r.GET("/me", AuthMiddleware(auth), func(c *gin.Context) {
		id, _ := helpers.UserIDFrom(c)
		c.String(http.StatusOK, id.String())
	})
	r.GET("/admin", AuthMiddleware(auth), RequireAdmin(auth), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return &authFixture{repo: repo, tokens: tokens, router: r}
}

func (f *authFixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *authFixture) token(t *testing.T, id uuid.UUID) string {
	t.Helper()
	issued, err := f.tokens.Issue(id)
	require.NoError(t, err)
	return issued.Token
}

func TestAuthMiddleware(t *testing.T) {
	f := newAuthFixture(t)
	id := uuid.New()

	t.Run("missing", func(t *testing.T) {
		w := f.do(httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication required", decode(t, w).Message)
	})

	t.Run("bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+f.token(t, id))
		w := f.do(req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id.String(), w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: f.token(t, id)})
		w := f.do(req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+f.token(t, id))
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: "stale"})
		w := f.do(req)
		assert.Equal(t, id.String(), w.Body.String())
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		w := f.do(req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", decode(t, w).Message)
	})

	t.Run("expired", func(t *testing.T) {
		old := helpers.NewTokenManager("test-secret", time.Nanosecond)
		issued, err := old.Issue(id)
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+issued.Token)
		w := f.do(req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token has expired", decode(t, w).Message)
	})
}

func TestRequireAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := &models.User{Email: "john@example.com", Name: "John", Password: "x"}
	admin := &models.User{Email: "admin@carrental.com", Name: "Admin", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, f.repo.CreateUser(ctx, user))
	require.NoError(t, f.repo.CreateUser(ctx, admin))

	cases := []struct {
		name   string
		id     uuid.UUID
		status int
		msg    string
	}{
		{"admin", admin.ID, http.StatusNoContent, ""},
		{"regular user", user.ID, http.StatusForbidden, "Admin access required"},
		{"vanished user", uuid.New(), http.StatusNotFound, "User not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+f.token(t, tc.id))
			w := f.do(req)
			assert.Equal(t, tc.status, w.Code)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, decode(t, w).Message)
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	require.NoError(t, helpers.RegisterValidators())

	r := gin.New()
	r.POST("/register", ValidateJSON[models.RegisterRequest](), func(c *gin.Context) {
		body, ok := helpers.BodyFrom[models.RegisterRequest](c)
		require.True(t, ok)
		c.String(http.StatusOK, body.Email)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"email":"john@example.com","name":"John","password":"password123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "john@example.com", w.Body.String())

	w = post(`{"email":"not-an-email","name":"J","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	res := decode(t, w)
	assert.Equal(t, "Validation failed", res.Message)
	fields := map[string]string{}
	for _, fe := range res.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "Invalid email address", fields["email"])
	assert.Equal(t, "must be at least 2 characters", fields["name"])
	assert.Equal(t, "must be at least 8 characters", fields["password"])

	w = post(`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/car/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/car/123", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
