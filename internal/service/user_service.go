package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UpdateUserInput struct {
	Name         *string
	Phone        *string
	Position     *domain.Position
	Observations *string
	Type         *domain.UserType
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Position != nil {
		if !input.Position.Valid() {
			return nil, ErrInvalidPosition
		}
		user.Position = input.Position
	}
	if input.Observations != nil {
		user.Observations = *input.Observations
	}
	if input.Type != nil {
		user.Type = *input.Type
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes the user; the row stays in place with a deleted
// timestamp and drops out of normal queries.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) Restore(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := s.userRepo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// PermanentDelete removes the row for good and returns the pre-delete
// snapshot to the caller.
func (s *UserService) PermanentDelete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.HardDelete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
