package service

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/domain/apperr"
	"taskboard/pkg/validate"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// UpdateProfile changes the display name. Email is immutable here no matter
// what the request body carried; an empty name leaves the current one.
func (s *UserService) UpdateProfile(ctx context.Context, id, name string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}

	if name = trim(name); name != "" {
		if len(name) > validate.NameMaxLen {
			return nil, apperr.Validation("Name is too long")
		}
		u.Name = name
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, apperr.Internal("update user", err)
	}
	return u, nil
}
