package user

import (
	"context"
	"testing"

	"apexcare/models"
	"apexcare/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	u := *user
	f.byEmail[u.Email] = &u
	f.byID[u.ID] = &u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) UpdateFCMToken(id, token string) error {
	if u, ok := f.byID[id]; ok {
		u.FCMToken = token
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	if u, ok := f.byID[id]; ok {
		delete(f.byEmail, u.Email)
		delete(f.byID, id)
	}
	return nil
}

func newTestService(t *testing.T) (*DefaultUserService, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultUserService{Repo: newFakeUserRepo(), AuthCache: client}, client
}

var registration = models.UserRegistrationData{
	Name:     "Jane Doe",
	Email:    "jane@example.com",
	Phone:    "+1-555-0100",
	Password: "correct horse battery",
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Register(registration)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RolePatient, resp.User.Role, "role defaults to patient")
	assert.NotEqual(t, registration.Password, resp.User.PasswordHash)

	assert.True(t, svc.IsAuthenticated(resp.User.ID, resp.Token))

	// Fresh sign-in with the same credentials.
	again, err := svc.Authenticate(registration.Email, registration.Password)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)
	assert.True(t, svc.IsAuthenticated(again.User.ID, again.Token))
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)

	missing := registration
	missing.Email = ""
	_, err := svc.Register(missing)
	assert.Error(t, err)

	badRole := registration
	badRole.Role = "admin"
	_, err = svc.Register(badRole)
	assert.Error(t, err)

	doctorNoRoster := registration
	doctorNoRoster.Role = models.RoleDoctor
	_, err = svc.Register(doctorNoRoster)
	assert.Error(t, err, "doctor accounts must reference a roster entry")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(registration)
	require.NoError(t, err)

	_, err = svc.Register(registration)
	assert.Error(t, err)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(registration)
	require.NoError(t, err)

	_, err = svc.Authenticate(registration.Email, "wrong password")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody@example.com", registration.Password)
	assert.Error(t, err)
}

func TestLogoutClearsEverySlot(t *testing.T) {
	svc, client := newTestService(t)

	resp, err := svc.Register(registration)
	require.NoError(t, err)
	userID := resp.User.ID

	ctx := context.Background()
	for _, key := range []string{
		utils.AuthCachePrefix + userID,
		utils.AuthUserPrefix + userID,
		utils.AuthSessionPrefix + userID,
	} {
		exists, err := client.Exists(ctx, key).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists, "slot %s filled on sign-in", key)
	}

	require.NoError(t, svc.Logout(userID))

	for _, key := range []string{
		utils.AuthCachePrefix + userID,
		utils.AuthUserPrefix + userID,
		utils.AuthSessionPrefix + userID,
	} {
		exists, err := client.Exists(ctx, key).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), exists, "slot %s cleared on sign-out", key)
	}

	// The issued token no longer verifies.
	assert.False(t, svc.IsAuthenticated(userID, resp.Token))
}

func TestDeleteAccount(t *testing.T) {
	svc, client := newTestService(t)

	resp, err := svc.Register(registration)
	require.NoError(t, err)
	userID := resp.User.ID

	require.NoError(t, svc.DeleteAccount(userID))

	_, err = svc.GetByID(userID)
	assert.Error(t, err, "account record is gone")
	assert.False(t, svc.IsAuthenticated(userID, resp.Token), "session is torn down")

	ctx := context.Background()
	for _, key := range []string{
		utils.AuthCachePrefix + userID,
		utils.AuthUserPrefix + userID,
		utils.AuthSessionPrefix + userID,
	} {
		exists, err := client.Exists(ctx, key).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), exists, "slot %s cleared on deletion", key)
	}

	// The freed email can register again.
	_, err = svc.Register(registration)
	assert.NoError(t, err)
}

func TestIsAuthenticated(t *testing.T) {
	svc, _ := newTestService(t)
	resp, err := svc.Register(registration)
	require.NoError(t, err)

	assert.True(t, svc.IsAuthenticated(resp.User.ID, resp.Token))
	assert.False(t, svc.IsAuthenticated(resp.User.ID, "not a token"))
	assert.False(t, svc.IsAuthenticated("someone-else", resp.Token), "token subject must match")
}

func TestUpdateFCMToken(t *testing.T) {
	svc, _ := newTestService(t)
	resp, err := svc.Register(registration)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateFCMToken(resp.User.ID, "fcm-token-1"))
	usr, err := svc.GetByID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "fcm-token-1", usr.FCMToken)
}
