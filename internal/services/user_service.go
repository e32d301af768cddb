package services

import (
	"context"

	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/repositories"
)

type UserService interface {
	List(ctx context.Context, limit int) ([]*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	SetPhoto(ctx context.Context, id int64, url string) (*models.User, error)
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context, limit int) ([]*models.User, error) {
	if limit <= 0 {
		limit = 100
	}
	users, err := s.users.List(ctx, limit)
	if err != nil {
		return nil, internalErr("Could not list users", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not fetch user", err)
	}
	if user == nil {
		return nil, notFoundErr("User not found")
	}
	return user, nil
}

func (s *userService) SetPhoto(ctx context.Context, id int64, url string) (*models.User, error) {
	if err := s.users.UpdatePhotoURL(ctx, id, url); err != nil {
		return nil, internalErr("Could not update photo", err)
	}
	return s.Get(ctx, id)
}
