package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
)

type AuthService struct {
	userRepo   models.UserRepo
	tokens     *helpers.TokenManager
	bcryptCost int
}

func NewAuthService(userRepo models.UserRepo, tokens *helpers.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Registration is the body returned after sign up.
type Registration struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (as *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*Registration, error) {
	email := helpers.NormalizeEmail(req.Email)
	existing, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, conflict("User already exists", nil)
	}

	hash, err := helpers.HashPassword(req.Password, as.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:    email,
		Name:     helpers.StringTrim(req.Name),
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := as.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			return nil, conflict("User already exists", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &Registration{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (as *AuthService) Login(ctx context.Context, req models.LoginRequest) (*helpers.IssuedToken, error) {
	user, err := as.userRepo.GetUserByEmail(ctx, helpers.NormalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil || !helpers.CheckPassword(user.Password, req.Password) {
		return nil, unauthorized("Invalid credentials")
	}
	return as.tokens.Issue(user.ID)
}

// Authenticate resolves a raw session token to a user id.
func (as *AuthService) Authenticate(token string) (uuid.UUID, error) {
	id, err := as.tokens.Parse(token)
	switch {
	case errors.Is(err, helpers.ErrExpiredToken):
		return uuid.Nil, unauthorized("Token has expired")
	case err != nil:
		return uuid.Nil, unauthorized("Invalid token")
	}
	return id, nil
}

func (as *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	user, err := as.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, notFound("User not found")
	}
	account := user.Account()
	return &account, nil
}

// RequireAdmin loads the caller's current role from the store.
func (as *AuthService) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	user, err := as.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return notFound("User not found")
	}
	if !user.IsAdmin() {
		return forbidden("Admin access required")
	}
	return nil
}
