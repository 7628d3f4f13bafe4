package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campus-backend/internal/model"
)

// ErrInvalidEnrollmentRef indicates a student or course id that no longer
// resolves at insert time (deleted concurrently).
var ErrInvalidEnrollmentRef = errors.New("referenced student or course does not exist")

// EnrollmentRepository handles student-course mapping data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// ListByStudent retrieves a student's enrollments.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, q Querier, studentID string) ([]model.StudentCourseMapping, error) {
	rows, err := q.Query(ctx,
		`SELECT id, student_id, course_id FROM student_course_mapping WHERE student_id = $1`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []model.StudentCourseMapping
	for rows.Next() {
		var m model.StudentCourseMapping
		if err := rows.Scan(&m.ID, &m.StudentID, &m.CourseID); err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// InsertIgnoreDuplicates inserts one mapping row per entry, skipping rows
// whose (student_id, course_id) pair already exists. This makes duplicate
// submissions of an identical pair idempotent at the store level.
func (r *EnrollmentRepository) InsertIgnoreDuplicates(ctx context.Context, q Querier, mappings []model.StudentCourseMapping) error {
	for _, m := range mappings {
		_, err := q.Exec(ctx,
			`INSERT INTO student_course_mapping (id, student_id, course_id)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (student_id, course_id) DO NOTHING`,
			m.ID, m.StudentID, m.CourseID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrInvalidEnrollmentRef
			}
			return err
		}
	}
	return nil
}
