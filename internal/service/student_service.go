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

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, log zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

// Create mints an id and persists a new student.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CollegeID: req.CollegeID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrInvalidCollegeRef) {
			return nil, apperr.Newf(apperr.KindInvalidReference, "Invalid college id: %s", req.CollegeID)
		}
		s.log.Error().Err(err).Msg("create student failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to create student")
	}
	return student, nil
}

// List retrieves students with pagination and an optional college filter.
func (s *StudentService) List(ctx context.Context, limit, skip int, collegeID string) ([]model.Student, error) {
	students, err := s.studentRepo.List(ctx, limit, skip, collegeID)
	if err != nil {
		s.log.Error().Err(err).Msg("list students failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to list students")
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// GetByID retrieves one student.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Student")
		}
		s.log.Error().Err(err).Str("student_id", id).Msg("get student failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch student")
	}
	return student, nil
}

// Update applies a partial update to a student.
func (s *StudentService) Update(ctx context.Context, id string, req model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.CollegeID != nil {
		student.CollegeID = *req.CollegeID
	}

	ok, err := s.studentRepo.Update(ctx, student)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCollegeRef) {
			return nil, apperr.Newf(apperr.KindInvalidReference, "Invalid college id: %s", student.CollegeID)
		}
		s.log.Error().Err(err).Str("student_id", id).Msg("update student failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to update student")
	}
	if !ok {
		return nil, apperr.NotFound("Student")
	}
	return student, nil
}

// Delete removes a student along with their enrollments.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	ok, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("student_id", id).Msg("delete student failed")
		return apperr.Wrap(err, apperr.KindStoreFailure, "failed to delete student")
	}
	if !ok {
		return apperr.NotFound("Student")
	}
	return nil
}
