package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campuskit/campus-backend/internal/apperr"
	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/repository"
)

// CollegeService handles college business logic.
type CollegeService struct {
	collegeRepo *repository.CollegeRepository
	log         zerolog.Logger
}

// NewCollegeService creates a new CollegeService.
func NewCollegeService(collegeRepo *repository.CollegeRepository, log zerolog.Logger) *CollegeService {
	return &CollegeService{
		collegeRepo: collegeRepo,
		log:         log.With().Str("component", "college_service").Logger(),
	}
}

// Create mints an id and persists a new college.
func (s *CollegeService) Create(ctx context.Context, req model.CreateCollegeRequest) (*model.College, error) {
	college := &model.College{
		ID:   uuid.New().String(),
		Name: req.Name,
	}
	if err := s.collegeRepo.Create(ctx, college); err != nil {
		s.log.Error().Err(err).Msg("create college failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to create college")
	}
	return college, nil
}

// List retrieves colleges with pagination.
func (s *CollegeService) List(ctx context.Context, limit, skip int) ([]model.College, error) {
	colleges, err := s.collegeRepo.List(ctx, limit, skip)
	if err != nil {
		s.log.Error().Err(err).Msg("list colleges failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to list colleges")
	}
	if colleges == nil {
		colleges = []model.College{}
	}
	return colleges, nil
}

// GetByID retrieves one college.
func (s *CollegeService) GetByID(ctx context.Context, id string) (*model.College, error) {
	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("College")
		}
		s.log.Error().Err(err).Str("college_id", id).Msg("get college failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch college")
	}
	return college, nil
}

// Update applies a partial update to a college.
func (s *CollegeService) Update(ctx context.Context, id string, req model.UpdateCollegeRequest) (*model.College, error) {
	college, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		college.Name = *req.Name
	}

	ok, err := s.collegeRepo.Update(ctx, college)
	if err != nil {
		s.log.Error().Err(err).Str("college_id", id).Msg("update college failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to update college")
	}
	if !ok {
		return nil, apperr.NotFound("College")
	}
	return college, nil
}

// Delete removes a college along with its students and courses.
func (s *CollegeService) Delete(ctx context.Context, id string) error {
	ok, err := s.collegeRepo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("college_id", id).Msg("delete college failed")
		return apperr.Wrap(err, apperr.KindStoreFailure, "failed to delete college")
	}
	if !ok {
		return apperr.NotFound("College")
	}
	return nil
}
