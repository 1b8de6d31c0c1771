package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.auth.Register(ctx, models.RegisterRequest{
		Email:    "  John@Example.com ",
		Name:     " John ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", reg.Email)
	assert.Equal(t, "John", reg.Name)
	assert.NotEqual(t, uuid.Nil, reg.ID)

	stored, err := f.repo.GetUserByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.True(t, helpers.CheckPassword(stored.Password, "password123"))

	_, err = f.auth.Register(ctx, models.RegisterRequest{
		Email:    "john@example.com",
		Name:     "Other",
		Password: "password123",
	})
	assertKind(t, err, KindConflict, "User already exists")
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "jane@example.com", models.RoleUser)

	issued, err := f.auth.Login(ctx, models.LoginRequest{Email: "JANE@example.com", Password: "password123"})
	require.NoError(t, err)
	id, err := f.auth.Authenticate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, err = f.auth.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "wrong-password"})
	assertKind(t, err, KindUnauthorized, "Invalid credentials")

	_, err = f.auth.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assertKind(t, err, KindUnauthorized, "Invalid credentials")

	_, err = f.auth.Authenticate("garbage")
	assertKind(t, err, KindUnauthorized, "Invalid token")
}

func TestMeAndRequireAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "john@example.com", models.RoleUser)
	admin := f.user(t, "admin@carrental.com", models.RoleAdmin)

	me, err := f.auth.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", me.Email)

	_, err = f.auth.Me(ctx, uuid.New())
	assertKind(t, err, KindNotFound, "User not found")

	assert.NoError(t, f.auth.RequireAdmin(ctx, admin.ID))
	assertKind(t, f.auth.RequireAdmin(ctx, u.ID), KindForbidden, "Admin access required")
	assertKind(t, f.auth.RequireAdmin(ctx, uuid.New()), KindNotFound, "User not found")
}
