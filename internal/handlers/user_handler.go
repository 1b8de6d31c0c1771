package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/services"
)

func GetProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		user, err := u.GetProfile(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "Profile retrieved successfully"))
	}
}

func UpdateProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		req, ok := helpers.BodyFrom[models.UpdateProfileRequest](c)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		user, err := u.UpdateProfile(c.Request.Context(), userID, *req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "Profile updated successfully"))
	}
}

func UploadLicense(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		fh, err := c.FormFile("license")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("License file is required"))
			return
		}
		up, err := helpers.ReadUpload(fh, helpers.LicenseTypes)
		if err != nil {
			respondError(c, services.UploadError(err))
			return
		}

		url, err := u.UploadLicense(c.Request.Context(), userID, up)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Message: "License uploaded successfully",
			URL:     url,
		})
	}
}
