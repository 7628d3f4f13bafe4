package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campuskit/campus-backend/internal/apperr"
	"github.com/campuskit/campus-backend/internal/database"
	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/repository"
	"github.com/campuskit/campus-backend/internal/schedule"
)

// EnrollmentService orchestrates student enrollment. Every check and the
// final insert run inside one transaction with the student row locked, so
// concurrent requests for the same student serialize and either see each
// other's committed rows or wait. All checks pass before any row is written;
// there is no partial enrollment.
type EnrollmentService struct {
	studentRepo    *repository.StudentRepository
	courseRepo     *repository.CourseRepository
	timetableRepo  *repository.TimetableRepository
	enrollmentRepo *repository.EnrollmentRepository
	pool           *pgxpool.Pool
	log            zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	timetableRepo *repository.TimetableRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	pool *pgxpool.Pool,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		timetableRepo:  timetableRepo,
		enrollmentRepo: enrollmentRepo,
		pool:           pool,
		log:            log.With().Str("component", "enrollment_service").Logger(),
	}
}

// Enroll validates the requested course set against the student's existing
// enrollments and commits one mapping row per course, atomically.
func (s *EnrollmentService) Enroll(ctx context.Context, req model.EnrollStudentRequest) ([]model.StudentCourseMapping, error) {
	var created []model.StudentCourseMapping

	err := database.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		// Locking the student serializes concurrent enrollments for them.
		student, err := s.studentRepo.GetByIDForUpdate(ctx, tx, req.StudentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.NotFound("Student")
			}
			return err
		}

		existing, err := s.enrollmentRepo.ListByStudent(ctx, tx, req.StudentID)
		if err != nil {
			return err
		}

		// Stage 1: duplicate check.
		if dupes := duplicateCourseIDs(req.CourseIDs, existing); len(dupes) > 0 {
			return apperr.New(apperr.KindDuplicateEnrollment,
				"You are enrolled for some of the courseIds, please refer to your enrolled courses. Retry with different courses").
				WithDetails(map[string]any{"course_ids": dupes})
		}

		// Validation from here on covers the union of requested and
		// already-enrolled courses.
		unionIDs := append([]string{}, req.CourseIDs...)
		for _, m := range existing {
			unionIDs = append(unionIDs, m.CourseID)
		}

		courses, err := s.courseRepo.GetByIDs(ctx, tx, unionIDs)
		if err != nil {
			return err
		}

		// Stage 2: every requested id must resolve to a real course.
		if invalid := missingCourseIDs(req.CourseIDs, courses); len(invalid) > 0 {
			return apperr.New(apperr.KindInvalidReference, "One or more course IDs are invalid").
				WithDetails(map[string]any{"course_ids": invalid})
		}

		timetables, err := s.timetableRepo.ListRawByCourses(ctx, tx, unionIDs)
		if err != nil {
			return err
		}

		// Stage 3: every requested course needs at least one timetable entry.
		if missing := requestedCoursesWithoutTimetable(req.CourseIDs, courses, timetables); len(missing) > 0 {
			return apperr.Newf(apperr.KindIncompletePrerequisite,
				"These courses don't have timetables. Deselect and try again: %s",
				strings.Join(missing, ", ")).
				WithDetails(map[string]any{"courses": missing})
		}

		// Stage 4: every requested course must belong to the student's college.
		if foreign := collegeMismatches(student.CollegeID, req.CourseIDs, courses); len(foreign) > 0 {
			return apperr.New(apperr.KindIncompletePrerequisite,
				"All courses must belong to the student's college").
				WithDetails(map[string]any{"courses": foreign})
		}

		// Stage 5: cross-course overlap over the union.
		if err := validateCrossCourseOverlap(req.CourseIDs, courses, timetables); err != nil {
			return err
		}

		// Stage 6: commit, idempotent per (student_id, course_id) pair.
		mappings := make([]model.StudentCourseMapping, 0, len(req.CourseIDs))
		for _, courseID := range req.CourseIDs {
			mappings = append(mappings, model.StudentCourseMapping{
				ID:        uuid.New().String(),
				StudentID: req.StudentID,
				CourseID:  courseID,
			})
		}
		if err := s.enrollmentRepo.InsertIgnoreDuplicates(ctx, tx, mappings); err != nil {
			if errors.Is(err, repository.ErrInvalidEnrollmentRef) {
				return apperr.New(apperr.KindInvalidReference, "One or more course IDs are invalid")
			}
			return err
		}
		created = mappings
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		s.log.Error().Err(err).Str("student_id", req.StudentID).Msg("enrollment failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "Something went wrong while enrolling the student")
	}

	s.log.Info().
		Str("student_id", req.StudentID).
		Int("courses", len(req.CourseIDs)).
		Msg("student enrolled")
	return created, nil
}

// GetStudentEnrollments returns the student with their enrolled courses.
func (s *EnrollmentService) GetStudentEnrollments(ctx context.Context, studentID string) (*model.StudentEnrollments, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Student")
		}
		s.log.Error().Err(err).Str("student_id", studentID).Msg("get student failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch student")
	}

	mappings, err := s.enrollmentRepo.ListByStudent(ctx, s.pool, studentID)
	if err != nil {
		s.log.Error().Err(err).Str("student_id", studentID).Msg("list enrollments failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch enrollments")
	}

	courseIDs := make([]string, 0, len(mappings))
	for _, m := range mappings {
		courseIDs = append(courseIDs, m.CourseID)
	}

	courses, err := s.courseRepo.GetByIDs(ctx, s.pool, courseIDs)
	if err != nil {
		s.log.Error().Err(err).Str("student_id", studentID).Msg("fetch enrolled courses failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch enrolled courses")
	}
	if courses == nil {
		courses = []model.Course{}
	}

	return &model.StudentEnrollments{Student: student, Courses: courses}, nil
}

// duplicateCourseIDs returns the requested ids already present in the
// student's enrollments.
func duplicateCourseIDs(requested []string, existing []model.StudentCourseMapping) []string {
	enrolled := make(map[string]bool, len(existing))
	for _, m := range existing {
		enrolled[m.CourseID] = true
	}

	var dupes []string
	for _, id := range requested {
		if enrolled[id] {
			dupes = append(dupes, id)
		}
	}
	return dupes
}

// missingCourseIDs returns the requested ids absent from the fetched courses.
func missingCourseIDs(requested []string, courses []model.Course) []string {
	found := make(map[string]bool, len(courses))
	for _, c := range courses {
		found[c.ID] = true
	}

	var missing []string
	for _, id := range requested {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// requestedCoursesWithoutTimetable returns the names of requested courses
// that have no timetable rows at all.
func requestedCoursesWithoutTimetable(requested []string, courses []model.Course, timetables []model.CourseTimetable) []string {
	scheduled := make(map[string]bool, len(timetables))
	for _, t := range timetables {
		scheduled[t.CourseID] = true
	}

	nameByID := make(map[string]string, len(courses))
	for _, c := range courses {
		nameByID[c.ID] = c.Name
	}

	var missing []string
	for _, id := range requested {
		if !scheduled[id] {
			missing = append(missing, nameByID[id])
		}
	}
	return missing
}

// collegeMismatches returns the names of requested courses belonging to a
// different college than the student.
func collegeMismatches(studentCollegeID string, requested []string, courses []model.Course) []string {
	requestedSet := make(map[string]bool, len(requested))
	for _, id := range requested {
		requestedSet[id] = true
	}

	var mismatched []string
	for _, c := range courses {
		if requestedSet[c.ID] && c.CollegeID != studentCollegeID {
			mismatched = append(mismatched, c.Name)
		}
	}
	return mismatched
}

// validateCrossCourseOverlap rejects the request when any timetable row of a
// requested course intersects a row of any other course in the union. Rows
// are single-day intervals (split entries arrive as parent and child), so the
// canonical predicate applies directly.
func validateCrossCourseOverlap(requested []string, courses []model.Course, timetables []model.CourseTimetable) error {
	intervals, err := schedule.RowIntervals(timetables)
	if err != nil {
		return err
	}

	requestedSet := make(map[string]bool, len(requested))
	for _, id := range requested {
		requestedSet[id] = true
	}

	nameByID := make(map[string]string, len(courses))
	for _, c := range courses {
		nameByID[c.ID] = c.Name
	}

	for i, a := range intervals {
		if !requestedSet[a.CourseID] {
			continue
		}
		for j, b := range intervals {
			if i == j || a.CourseID == b.CourseID {
				continue
			}
			if a.Overlaps(b) {
				return apperr.New(apperr.KindSchedulingConflict,
					"Course timetable conflicts with existing enrolled courses").
					WithDetails(map[string]any{
						"day":     a.Day.String(),
						"courses": []string{nameByID[a.CourseID], nameByID[b.CourseID]},
					})
			}
		}
	}
	return nil
}
