package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campus-backend/internal/model"
)

// ErrDuplicateCourseName indicates a (name, college_id) uniqueness violation.
var ErrDuplicateCourseName = errors.New("course with this name already exists in the college")

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course. The id is minted by the caller.
func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO courses (id, name, course_code, college_id) VALUES ($1, $2, $3, $4)`,
		course.ID, course.Name, course.CourseCode, course.CollegeID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCourseName
		}
		if isForeignKeyViolation(err) {
			return ErrInvalidCollegeRef
		}
		return err
	}
	return nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	course := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, course_code, college_id FROM courses WHERE id = $1`, id,
	).Scan(&course.ID, &course.Name, &course.CourseCode, &course.CollegeID)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetByIDs retrieves all courses matching the given ids. Missing ids are
// simply absent from the result; callers compare lengths to detect them.
func (r *CourseRepository) GetByIDs(ctx context.Context, q Querier, ids []string) ([]model.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := q.Query(ctx,
		`SELECT id, name, course_code, college_id FROM courses WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// List retrieves courses with pagination and optional college/id filters.
func (r *CourseRepository) List(ctx context.Context, limit, skip int, collegeID string, courseIDs []string) ([]model.Course, error) {
	query := `SELECT id, name, course_code, college_id FROM courses`
	var args []any
	var conds []string
	argIdx := 1

	if collegeID != "" {
		conds = append(conds, `college_id = $`+strconv.Itoa(argIdx))
		args = append(args, collegeID)
		argIdx++
	}
	if len(courseIDs) > 0 {
		conds = append(conds, `id = ANY($`+strconv.Itoa(argIdx)+`)`)
		args = append(args, courseIDs)
		argIdx++
	}

	for i, cond := range conds {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}

	query += ` ORDER BY name LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Update modifies a course. Returns false when the id does not exist.
func (r *CourseRepository) Update(ctx context.Context, course *model.Course) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET name = $1, course_code = $2, college_id = $3 WHERE id = $4`,
		course.Name, course.CourseCode, course.CollegeID, course.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateCourseName
		}
		if isForeignKeyViolation(err) {
			return false, ErrInvalidCollegeRef
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a course. Timetables and enrollments cascade at the store
// level. Returns false when the id does not exist.
func (r *CourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanCourses(rows pgx.Rows) ([]model.Course, error) {
	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.CourseCode, &c.CollegeID); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
