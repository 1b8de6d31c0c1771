package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/services"
)

func ListCars(cs *services.CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.CarQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid query parameters"))
			return
		}
		cars, err := cs.ListCars(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(cars, len(cars), "Cars retrieved successfully"))
	}
}

func GetCar(cs *services.CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Invalid car ID")
		if !ok {
			return
		}
		car, err := cs.GetCar(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(car, "Car retrieved successfully"))
	}
}

// UpdateCar accepts a multipart form with an optional image file. A missing
// car is reported before the form or the image is looked at.
func UpdateCar(cs *services.CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Invalid car ID")
		if !ok {
			return
		}
		if _, err := cs.GetCar(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		var form models.UpdateCarForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationResponse(helpers.ValidationErrors(err)))
			return
		}

		var image *helpers.Upload
		fh, err := c.FormFile("image")
		switch {
		case err == nil:
			image, err = helpers.ReadUpload(fh, helpers.ImageTypes)
			if err != nil {
				respondError(c, services.UploadError(err))
				return
			}
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid image upload"))
			return
		}

		car, err := cs.UpdateCar(c.Request.Context(), id, form, image)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(car, "Car updated successfully"))
	}
}

func DeleteCar(cs *services.CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Invalid car ID")
		if !ok {
			return
		}
		if err := cs.DeleteCar(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{Message: "Car deleted successfully"})
	}
}
