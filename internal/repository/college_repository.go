package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campus-backend/internal/model"
)

// CollegeRepository handles college data access.
type CollegeRepository struct {
	pool *pgxpool.Pool
}

// NewCollegeRepository creates a new CollegeRepository.
func NewCollegeRepository(pool *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{pool: pool}
}

// Create inserts a new college. The id is minted by the caller.
func (r *CollegeRepository) Create(ctx context.Context, college *model.College) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO colleges (id, name) VALUES ($1, $2)`,
		college.ID, college.Name)
	return err
}

// GetByID retrieves a college by ID.
func (r *CollegeRepository) GetByID(ctx context.Context, id string) (*model.College, error) {
	college := &model.College{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM colleges WHERE id = $1`, id,
	).Scan(&college.ID, &college.Name)
	if err != nil {
		return nil, err
	}
	return college, nil
}

// List retrieves colleges ordered by name with limit/skip pagination.
func (r *CollegeRepository) List(ctx context.Context, limit, skip int) ([]model.College, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM colleges ORDER BY name LIMIT $1 OFFSET $2`,
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []model.College
	for rows.Next() {
		var c model.College
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

// Update modifies a college. Returns false when the id does not exist.
func (r *CollegeRepository) Update(ctx context.Context, college *model.College) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE colleges SET name = $1 WHERE id = $2`,
		college.Name, college.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a college. Students and courses cascade at the store level.
// Returns false when the id does not exist.
func (r *CollegeRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
