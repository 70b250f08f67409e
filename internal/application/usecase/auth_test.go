package usecase

import (
	"context"
	"errors"
	"testing"

	"makon/internal/domain"
	"makon/internal/infrastructure/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	byEmail map[string]*domain.User
	byID    map[uuid.UUID]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: map[string]*domain.User{},
		byID:    map[uuid.UUID]*domain.User{},
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return errors.New("duplicate email")
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

type fakeTokenStore struct {
	refresh map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{refresh: map[string]string{}}
}

func (f *fakeTokenStore) SaveRefresh(_ context.Context, userID, token string) error {
	f.refresh[token] = userID
	return nil
}

func (f *fakeTokenStore) CheckRefresh(_ context.Context, token string) (string, error) {
	id, ok := f.refresh[token]
	if !ok {
		return "", errors.New("not found")
	}
	return id, nil
}

func (f *fakeTokenStore) DeleteRefresh(_ context.Context, token string) error {
	delete(f.refresh, token)
	return nil
}

func newAuthFixture() (*AuthUseCase, *fakeUserStore, *fakeTokenStore) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	uc := NewAuthUseCase(users, tokens, security.NewPasswordHasher(), security.NewTokenManager("a-secret", "r-secret"))
	return uc, users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	userID, err := uc.Register(ctx, "aziz", "aziz@example.com", "str0ngPassw0rd", "")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	// Пароль хранится только хешем
	assert.NotEqual(t, "str0ngPassw0rd", users.byEmail["aziz@example.com"].Password)

	access, refresh, err := uc.Login(ctx, "aziz@example.com", "str0ngPassw0rd")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	validated, err := uc.ValidateAccess(access)
	require.NoError(t, err)
	assert.Equal(t, userID, validated)
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "aziz", "aziz@example.com", "str0ngPassw0rd", "")
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, "aziz@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = uc.Login(ctx, "nobody@example.com", "str0ngPassw0rd")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshIssuesValidTokens(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	userID, err := uc.Register(ctx, "aziz", "aziz@example.com", "str0ngPassw0rd", "")
	require.NoError(t, err)

	_, refresh, err := uc.Login(ctx, "aziz@example.com", "str0ngPassw0rd")
	require.NoError(t, err)

	access, _, err := uc.Refresh(ctx, refresh)
	require.NoError(t, err)

	validated, err := uc.ValidateAccess(access)
	require.NoError(t, err)
	assert.Equal(t, userID, validated)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	uc, _, tokens := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "aziz", "aziz@example.com", "str0ngPassw0rd", "")
	require.NoError(t, err)

	_, refresh, err := uc.Login(ctx, "aziz@example.com", "str0ngPassw0rd")
	require.NoError(t, err)

	// Токен валиден криптографически, но отозван в кеше
	delete(tokens.refresh, refresh)
	_, _, err = uc.Refresh(ctx, refresh)
	assert.Error(t, err)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "aziz", "aziz@example.com", "str0ngPassw0rd", "")
	require.NoError(t, err)

	_, refresh, err := uc.Login(ctx, "aziz@example.com", "str0ngPassw0rd")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, refresh))

	_, _, err = uc.Refresh(ctx, refresh)
	assert.Error(t, err)
}
