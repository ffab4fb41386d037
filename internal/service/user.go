package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"licadmin/internal/auth"
	"licadmin/internal/model"
	"licadmin/internal/repository"
)

// UserData is the request DTO for creating or updating a user account.
// Password is required on Create; on Update an empty password keeps the
// stored hash. ID is ignored on Create.
type UserData struct {
	ID       int64
	Username string `validate:"required"`
	Password string
	Email    string `validate:"required,email"`
	Role     string `validate:"omitempty,oneof=admin user"`
}

// LoginResult is returned by Authenticate: a signed bearer token plus the
// account it identifies.
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// UserService defines the use cases for user accounts.
type UserService interface {
	// Create adds a new account with a bcrypt-hashed password.
	Create(ctx context.Context, data UserData) (*model.User, error)

	// GetAll returns every account in persistence order.
	GetAll(ctx context.Context) ([]model.User, error)

	// Update rewrites the account identified by data.ID, rehashing the
	// password only when a new one is supplied.
	Update(ctx context.Context, data UserData) (*model.User, error)

	// Delete removes an account by ID.
	Delete(ctx context.Context, id int64) error

	// Authenticate checks credentials and issues a bearer token.
	Authenticate(ctx context.Context, username, password string) (*LoginResult, error)
}

type userService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewUserService constructs a new UserService.
func NewUserService(users repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{users: users, tokens: tokens}
}

func (s *userService) Create(ctx context.Context, data UserData) (*model.User, error) {
	if err := validate.Struct(data); err != nil {
		return nil, err
	}
	if data.Password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := data.Role
	if role == "" {
		role = model.RoleUser
	}

	return s.users.Create(ctx, &model.User{
		Username:     data.Username,
		PasswordHash: string(hash),
		Email:        data.Email,
		Role:         role,
	})
}

func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.users.ListAll(ctx)
}

func (s *userService) Update(ctx context.Context, data UserData) (*model.User, error) {
	if data.ID == 0 {
		return nil, ErrIDRequired
	}
	if err := validate.Struct(data); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByID(ctx, data.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.Username = data.Username
	existing.Email = data.Email
	if data.Role != "" {
		existing.Role = data.Role
	}
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hash)
	}

	out, err := s.users.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrIDRequired
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}
