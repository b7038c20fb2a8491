package userRepo

import "apexcare/models"

// UserRepository defines data access for accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateFCMToken(id, token string) error
	Delete(id string) error
}
