package user

import (
	userRepo "apexcare/database/repository/user"
	"apexcare/models"

	"github.com/go-redis/redis/v8"
)

// UserService manages accounts and the authenticated session lifecycle.
type UserService interface {
	Register(data models.UserRegistrationData) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	Logout(userID string) error
	DeleteAccount(userID string) error
	GetByID(id string) (*models.User, error)
	UpdateFCMToken(userID, token string) error
	IsAuthenticated(userID, token string) bool
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
