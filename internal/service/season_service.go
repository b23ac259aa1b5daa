package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SeasonService struct {
	seasonRepo repository.SeasonRepository
}

func NewSeasonService(seasonRepo repository.SeasonRepository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

type CreateSeasonInput struct {
	StartDate   datatypes.Date
	EndDate     datatypes.Date
	Description string
}

type UpdateSeasonInput struct {
	StartDate   *datatypes.Date
	EndDate     *datatypes.Date
	Description *string
}

func (s *SeasonService) Create(ctx context.Context, input CreateSeasonInput) (*domain.Season, error) {
	season := &domain.Season{
		ID:          uuid.New(),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
	}
	if err := s.seasonRepo.Create(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

func (s *SeasonService) Get(ctx context.Context, id uuid.UUID) (*domain.Season, error) {
	season, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSeasonNotFound
		}
		return nil, err
	}
	return season, nil
}

func (s *SeasonService) List(ctx context.Context) ([]*domain.Season, error) {
	return s.seasonRepo.List(ctx)
}

func (s *SeasonService) Update(ctx context.Context, id uuid.UUID, input UpdateSeasonInput) (*domain.Season, error) {
	season, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.StartDate != nil {
		season.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		season.EndDate = *input.EndDate
	}
	if input.Description != nil {
		season.Description = *input.Description
	}

	if err := s.seasonRepo.Update(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

func (s *SeasonService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.seasonRepo.Delete(ctx, id)
}
