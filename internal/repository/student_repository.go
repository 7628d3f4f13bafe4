package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campus-backend/internal/model"
)

// ErrInvalidCollegeRef indicates a college_id that does not resolve.
var ErrInvalidCollegeRef = errors.New("referenced college does not exist")

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create inserts a new student. The id is minted by the caller.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO students (id, name, college_id) VALUES ($1, $2, $3)`,
		s.ID, s.Name, s.CollegeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidCollegeRef
		}
		return err
	}
	return nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return r.getByID(ctx, r.pool, id, false)
}

// GetByIDForUpdate retrieves a student inside tx and locks the row, which
// serializes concurrent enrollment requests for the same student.
func (r *StudentRepository) GetByIDForUpdate(ctx context.Context, q Querier, id string) (*model.Student, error) {
	return r.getByID(ctx, q, id, true)
}

func (r *StudentRepository) getByID(ctx context.Context, q Querier, id string, forUpdate bool) (*model.Student, error) {
	query := `SELECT id, name, college_id FROM students WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	s := &model.Student{}
	if err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.CollegeID); err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves students with pagination and optional college filter.
func (r *StudentRepository) List(ctx context.Context, limit, skip int, collegeID string) ([]model.Student, error) {
	query := `SELECT id, name, college_id FROM students`
	var args []any
	argIdx := 1

	if collegeID != "" {
		query += ` WHERE college_id = $1`
		args = append(args, collegeID)
		argIdx++
	}

	query += ` ORDER BY name LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.CollegeID); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Update modifies a student. Returns false when the id does not exist.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET name = $1, college_id = $2 WHERE id = $3`,
		s.Name, s.CollegeID, s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrInvalidCollegeRef
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a student. Enrollments cascade at the store level.
// Returns false when the id does not exist.
func (r *StudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
