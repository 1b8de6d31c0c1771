package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/services"
)

func Register(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := helpers.BodyFrom[models.RegisterRequest](c)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		reg, err := a.Register(c.Request.Context(), *req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(reg, "User registered successfully"))
	}
}

// Login sets the session cookie and also returns the token for clients that
// send it as a bearer header.
func Login(a *services.AuthService, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := helpers.BodyFrom[models.LoginRequest](c)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		issued, err := a.Login(c.Request.Context(), *req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(
			helpers.TokenCookieName,
			issued.Token,
			int(helpers.TokenTTL.Seconds()),
			"/",
			"",
			secureCookie,
			true,
		)
		c.JSON(http.StatusOK, models.SuccessResponse(issued, "Login successful"))
	}
}

func Logout(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(helpers.TokenCookieName, "", -1, "/", "", secureCookie, true)
		c.JSON(http.StatusOK, models.ApiResponse{Message: "Logged out successfully"})
	}
}

func Me(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		account, err := a.Me(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(account, "User retrieved successfully"))
	}
}
