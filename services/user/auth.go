package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"apexcare/models"
	"apexcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Register validates the payload, checks for duplicates, stores the
// account with a bcrypt password hash and signs the caller in.
func (s *DefaultUserService) Register(data models.UserRegistrationData) (*models.AuthResponse, error) {
	if data.Email == "" || data.Password == "" || data.Name == "" || data.Phone == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	role := data.Role
	if role == "" {
		role = models.RolePatient
	}
	if role != models.RolePatient && role != models.RoleDoctor {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if role == models.RoleDoctor && data.DoctorID == 0 {
		return nil, fmt.Errorf("doctor accounts must reference a roster entry")
	}

	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: string(hash),
		Role:         role,
		DoctorID:     data.DoctorID,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(usr); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.openSession(usr)
}

// Authenticate verifies credentials and opens an authenticated session.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.openSession(usr)
}

// openSession issues the JWT and fills the credential slots in the auth
// cache: token hash, cached profile, session metadata. Logout clears the
// same three slots plus the cookie.
func (s *DefaultUserService) openSession(usr *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	ctx := context.Background()
	if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+usr.ID, utils.HashToken(token), tokenDuration).Err(); err != nil {
		return nil, fmt.Errorf("failed to store auth session: %w", err)
	}

	if blob, err := json.Marshal(usr); err == nil {
		_ = s.AuthCache.Set(ctx, utils.AuthUserPrefix+usr.ID, blob, tokenDuration).Err()
	}
	meta := map[string]string{
		"role":     usr.Role,
		"signedIn": time.Now().Format(time.RFC3339),
	}
	if blob, err := json.Marshal(meta); err == nil {
		_ = s.AuthCache.Set(ctx, utils.AuthSessionPrefix+usr.ID, blob, tokenDuration).Err()
	}

	return &models.AuthResponse{Token: token, User: usr}, nil
}

// Logout clears every credential slot for the user. The old token fails
// verification afterwards because its hash is gone from the auth cache.
func (s *DefaultUserService) Logout(userID string) error {
	ctx := context.Background()
	keys := []string{
		utils.AuthCachePrefix + userID,
		utils.AuthUserPrefix + userID,
		utils.AuthSessionPrefix + userID,
	}
	if err := s.AuthCache.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear auth session: %w", err)
	}
	return nil
}

// DeleteAccount removes the account record and tears down the live
// session, so the credentials stop working immediately.
func (s *DefaultUserService) DeleteAccount(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if err := s.Logout(userID); err != nil {
		utils.GetLogger().Warn("DeleteAccount: failed to clear auth session", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

// IsAuthenticated reports whether the token is the user's live session
// token: it must parse, and its hash must still occupy the auth slot.
func (s *DefaultUserService) IsAuthenticated(userID, token string) bool {
	sub, _, err := utils.ExtractClaimsFromToken(token)
	if err != nil || sub != userID {
		return false
	}
	ctx := context.Background()
	cached, err := s.AuthCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
	if err != nil {
		return false
	}
	return cached == utils.HashToken(token)
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return usr, nil
}

func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	return s.Repo.UpdateFCMToken(userID, token)
}
