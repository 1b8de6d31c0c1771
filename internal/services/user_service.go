package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
)

type UserService struct {
	userRepo   models.UserRepo
	images     helpers.ImageStore
	bcryptCost int
}

func NewUserService(userRepo models.UserRepo, images helpers.ImageStore, bcryptCost int) *UserService {
	return &UserService{
		userRepo:   userRepo,
		images:     images,
		bcryptCost: bcryptCost,
	}
}

func (us *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := us.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, notFound("User not found")
	}
	return user, nil
}

// UpdateProfile changes only the supplied fields. A new password is hashed
// before it is stored.
func (us *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = helpers.StringTrim(*req.Name)
	}
	if req.Phone != nil {
		fields["phone"] = helpers.StringTrim(*req.Phone)
	}
	if req.Password != nil {
		hash, err := helpers.HashPassword(*req.Password, us.bcryptCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	user, err := us.userRepo.UpdateUser(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if user == nil {
		return nil, notFound("User not found")
	}
	return user, nil
}

// UploadLicense stores the licence document and records its URL.
func (us *UserService) UploadLicense(ctx context.Context, userID uuid.UUID, up *helpers.Upload) (string, error) {
	user, err := us.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return "", notFound("User not found")
	}

	url, err := us.images.Save(ctx, helpers.LicensesFolder, up)
	if err != nil {
		return "", fmt.Errorf("failed to store license: %w", err)
	}
	if _, err := us.userRepo.UpdateUser(ctx, userID, map[string]interface{}{"license_url": url}); err != nil {
		return "", fmt.Errorf("failed to save license url: %w", err)
	}
	return url, nil
}

// UploadError converts upload validation failures into client errors.
func UploadError(err error) error {
	switch {
	case errors.Is(err, helpers.ErrFileTooLarge):
		return badRequest("File size must not exceed 5MB")
	case errors.Is(err, helpers.ErrUnsupportedType):
		return badRequest("Invalid file type")
	}
	return err
}
