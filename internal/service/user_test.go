package service

import (
	"context"
	"database/sql"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"licadmin/internal/auth"
	"licadmin/internal/config"
	"licadmin/internal/model"
	repoMocks "licadmin/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	m, err := auth.NewTokenManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLMin: 5})
	require.NoError(t, err)
	return m
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokenManager(t)

	t.Run("hashes password and defaults role", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			if u.Username != "alice" || u.Role != model.RoleUser {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pw")) == nil
		})).Return(&model.User{ID: 2, Username: "alice", Role: model.RoleUser}, nil)

		svc := NewUserService(mUsers, tokens)
		got, err := svc.Create(ctx, UserData{Username: "alice", Password: "secret-pw", Email: "alice@example.com"})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
		mUsers.AssertExpectations(t)
	})

	t.Run("password required", func(t *testing.T) {
		svc := NewUserService(new(repoMocks.MockUserRepository), tokens)
		_, err := svc.Create(ctx, UserData{Username: "alice", Email: "alice@example.com"})
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewUserService(new(repoMocks.MockUserRepository), tokens)
		_, err := svc.Create(ctx, UserData{Username: "alice", Password: "pw", Email: "not-an-email"})
		assert.Error(t, err)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc := NewUserService(new(repoMocks.MockUserRepository), tokens)
		_, err := svc.Create(ctx, UserData{Username: "alice", Password: "pw", Email: "alice@example.com", Role: "superuser"})
		assert.Error(t, err)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokenManager(t)

	stored := func() *model.User {
		return &model.User{ID: 2, Username: "alice", PasswordHash: "$2a$10$keepme", Email: "alice@example.com", Role: model.RoleUser}
	}

	t.Run("keeps password hash when no password supplied", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByID", ctx, int64(2)).Return(stored(), nil)
		mUsers.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.PasswordHash == "$2a$10$keepme" && u.Email == "new@example.com"
		})).Return(&model.User{ID: 2, Email: "new@example.com"}, nil)

		svc := NewUserService(mUsers, tokens)
		got, err := svc.Update(ctx, UserData{ID: 2, Username: "alice", Email: "new@example.com"})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", got.Email)
	})

	t.Run("rehashes when password supplied", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByID", ctx, int64(2)).Return(stored(), nil)
		mUsers.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-pw")) == nil
		})).Return(stored(), nil)

		svc := NewUserService(mUsers, tokens)
		_, err := svc.Update(ctx, UserData{ID: 2, Username: "alice", Email: "alice@example.com", Password: "new-pw"})

		assert.NoError(t, err)
	})

	t.Run("unknown id maps to ErrNotFound", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)

		svc := NewUserService(mUsers, tokens)
		_, err := svc.Update(ctx, UserData{ID: 9, Username: "ghost", Email: "ghost@example.com"})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokenManager(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := &model.User{ID: 1, Username: "admin", PasswordHash: string(hash), Role: model.RoleAdmin}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByUsername", ctx, "admin").Return(admin, nil)

		svc := NewUserService(mUsers, tokens)
		res, err := svc.Authenticate(ctx, "admin", "right-pw")

		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, admin, res.User)

		claims, err := tokens.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByUsername", ctx, "admin").Return(admin, nil)

		svc := NewUserService(mUsers, tokens)
		_, err := svc.Authenticate(ctx, "admin", "wrong-pw")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByUsername", ctx, "nobody").Return(nil, sql.ErrNoRows)

		svc := NewUserService(mUsers, tokens)
		_, err := svc.Authenticate(ctx, "nobody", "pw")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc := NewUserService(new(repoMocks.MockUserRepository), tokens)
		_, err := svc.Authenticate(ctx, "", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokenManager(t)

	t.Run("happy path", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Delete", ctx, int64(2)).Return(nil)

		svc := NewUserService(mUsers, tokens)
		assert.NoError(t, svc.Delete(ctx, 2))
	})

	t.Run("unknown id maps to ErrNotFound", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Delete", ctx, int64(9)).Return(sql.ErrNoRows)

		svc := NewUserService(mUsers, tokens)
		assert.ErrorIs(t, svc.Delete(ctx, 9), ErrNotFound)
	})
}
