package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campuskit/campus-backend/internal/apperr"
	"github.com/campuskit/campus-backend/internal/config"
	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/repository"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo *repository.CourseRepository
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository, rdb *redis.Client, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		rdb:        rdb,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

// Create mints an id and persists a new course.
func (s *CourseService) Create(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		ID:         uuid.New().String(),
		Name:       req.Name,
		CourseCode: req.CourseCode,
		CollegeID:  req.CollegeID,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCourseName):
			return nil, apperr.New(apperr.KindValidation, "Course with this name already exists in the college")
		case errors.Is(err, repository.ErrInvalidCollegeRef):
			return nil, apperr.Newf(apperr.KindInvalidReference, "Invalid college id: %s", req.CollegeID)
		}
		s.log.Error().Err(err).Msg("create course failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to create course")
	}
	return course, nil
}

// List retrieves courses with pagination and optional college/id filters.
func (s *CourseService) List(ctx context.Context, limit, skip int, collegeID string, courseIDs []string) ([]model.Course, error) {
	courses, err := s.courseRepo.List(ctx, limit, skip, collegeID, courseIDs)
	if err != nil {
		s.log.Error().Err(err).Msg("list courses failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to list courses")
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// GetByID retrieves one course.
func (s *CourseService) GetByID(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Course")
		}
		s.log.Error().Err(err).Str("course_id", id).Msg("get course failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch course")
	}
	return course, nil
}

// Update applies a partial update to a course.
func (s *CourseService) Update(ctx context.Context, id string, req model.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.CourseCode != nil {
		course.CourseCode = *req.CourseCode
	}
	if req.CollegeID != nil {
		course.CollegeID = *req.CollegeID
	}

	ok, err := s.courseRepo.Update(ctx, course)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCourseName):
			return nil, apperr.New(apperr.KindValidation, "Course with this name already exists in the college")
		case errors.Is(err, repository.ErrInvalidCollegeRef):
			return nil, apperr.Newf(apperr.KindInvalidReference, "Invalid college id: %s", course.CollegeID)
		}
		s.log.Error().Err(err).Str("course_id", id).Msg("update course failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to update course")
	}
	if !ok {
		return nil, apperr.NotFound("Course")
	}
	return course, nil
}

// Delete removes a course along with its timetables and enrollments, and
// drops the course's cached timetable view.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	ok, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("course_id", id).Msg("delete course failed")
		return apperr.Wrap(err, apperr.KindStoreFailure, "failed to delete course")
	}
	if !ok {
		return apperr.NotFound("Course")
	}

	if err := s.rdb.Del(ctx, config.CacheKey.CourseTimetablesKey(id)).Err(); err != nil {
		s.log.Warn().Err(err).Str("course_id", id).Msg("timetable cache invalidation failed")
	}
	return nil
}
