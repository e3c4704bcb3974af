package service

import (
	"context"

	"taskboard/internal/core/auth"
	"taskboard/internal/domain"
	"taskboard/internal/domain/apperr"
	"taskboard/internal/repo"
	"taskboard/pkg/utils"
	"taskboard/pkg/validate"
)

// invalidCredentials is deliberately the same for an unknown email and a
// wrong password, so the response does not leak which accounts exist.
const invalidCredentials = "Invalid email or password"

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// Register creates an account and issues a token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	name = trim(name)
	email = trim(email)

	if name == "" || email == "" || password == "" {
		return nil, "", apperr.Validation("Please provide all required fields")
	}
	if !validate.Email(email) {
		return nil, "", apperr.Validation("Please provide a valid email address")
	}
	if !validate.Password(password) {
		return nil, "", apperr.Validation("Password must be at least 6 characters")
	}
	if len(name) > validate.NameMaxLen {
		return nil, "", apperr.Validation("Name is too long")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Internal("lookup user", err)
	}
	if existing != nil {
		return nil, "", apperr.Conflict("User already exists with this email")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", apperr.Internal("hash password", err)
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// two registrations raced past the FindByEmail check
		if repo.IsDupKey(err) {
			return nil, "", apperr.Conflict("User already exists with this email")
		}
		return nil, "", apperr.Internal("create user", err)
	}

	token, err := s.jwter.Issue(u.ID)
	if err != nil {
		return nil, "", apperr.Internal("issue token", err)
	}
	return u, token, nil
}

// Login verifies credentials and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = trim(email)
	if email == "" || password == "" {
		return nil, "", apperr.Validation("Please provide email and password")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Internal("lookup user", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, "", apperr.Auth(invalidCredentials)
	}

	token, err := s.jwter.Issue(u.ID)
	if err != nil {
		return nil, "", apperr.Internal("issue token", err)
	}
	return u, token, nil
}
