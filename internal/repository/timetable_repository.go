package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campus-backend/internal/model"
)

// TimetableRepository handles course timetable data access.
//
// Storage keeps midnight-crossing entries as two linked rows (parent +
// next-day child). Logical read methods return only parent rows with the
// child's end_time folded back, so callers see one entry per created
// timetable. Raw methods return every row and exist for overlap validation,
// where each stored row is a single-day interval.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

// InsertRows persists normalizer output (one row, or a parent/child pair).
func (r *TimetableRepository) InsertRows(ctx context.Context, q Querier, rows []model.CourseTimetable) error {
	for _, row := range rows {
		_, err := q.Exec(ctx,
			`INSERT INTO course_timetables (id, day, start_time, end_time, course_id, parent_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			row.ID, row.Day, row.StartTime, row.EndTime, row.CourseID, row.ParentID)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListLogical retrieves reassembled timetable entries ordered by day and
// start time, with limit/skip pagination over parent rows and an optional
// course filter.
func (r *TimetableRepository) ListLogical(ctx context.Context, limit, skip int, courseIDs []string) ([]model.CourseTimetable, error) {
	query := `SELECT id, day, start_time::text, end_time::text, course_id, parent_id
	          FROM course_timetables WHERE parent_id IS NULL`
	var args []any
	argIdx := 1

	if len(courseIDs) > 0 {
		query += ` AND course_id = ANY($1)`
		args = append(args, courseIDs)
		argIdx++
	}

	query += ` ORDER BY day, start_time LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parents, err := scanTimetables(rows)
	if err != nil {
		return nil, err
	}
	if len(parents) == 0 {
		return parents, nil
	}

	parentIDs := make([]string, len(parents))
	for i, p := range parents {
		parentIDs[i] = p.ID
	}

	childRows, err := r.pool.Query(ctx,
		`SELECT id, day, start_time::text, end_time::text, course_id, parent_id
		 FROM course_timetables WHERE parent_id = ANY($1)`, parentIDs)
	if err != nil {
		return nil, err
	}
	defer childRows.Close()

	children, err := scanTimetables(childRows)
	if err != nil {
		return nil, err
	}

	return FoldChildren(parents, children), nil
}

// GetLogicalByID retrieves one reassembled entry. Child rows are not
// addressable: asking for a child's id returns pgx.ErrNoRows.
func (r *TimetableRepository) GetLogicalByID(ctx context.Context, q Querier, id string) (*model.CourseTimetable, error) {
	entry := &model.CourseTimetable{}
	err := q.QueryRow(ctx,
		`SELECT id, day, start_time::text, end_time::text, course_id, parent_id
		 FROM course_timetables WHERE id = $1 AND parent_id IS NULL`, id,
	).Scan(&entry.ID, &entry.Day, &entry.StartTime, &entry.EndTime, &entry.CourseID, &entry.ParentID)
	if err != nil {
		return nil, err
	}

	var childEnd string
	err = q.QueryRow(ctx,
		`SELECT end_time::text FROM course_timetables WHERE parent_id = $1`, id,
	).Scan(&childEnd)
	switch err {
	case nil:
		entry.EndTime = childEnd
	case pgx.ErrNoRows:
		// Simple entry, nothing to fold.
	default:
		return nil, err
	}
	return entry, nil
}

// ListRawByCourses retrieves every stored row (parents and children) for the
// given courses. Used by overlap validation, which reasons about actual
// single-day rows rather than the logical view.
func (r *TimetableRepository) ListRawByCourses(ctx context.Context, q Querier, courseIDs []string) ([]model.CourseTimetable, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}

	rows, err := q.Query(ctx,
		`SELECT id, day, start_time::text, end_time::text, course_id, parent_id
		 FROM course_timetables WHERE course_id = ANY($1)`, courseIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTimetables(rows)
}

// DeleteEntry removes a logical entry: the parent row and its child, if any.
// Returns false when no parent row matches the id.
func (r *TimetableRepository) DeleteEntry(ctx context.Context, q Querier, id string) (bool, error) {
	if _, err := q.Exec(ctx,
		`DELETE FROM course_timetables WHERE parent_id = $1`, id); err != nil {
		return false, err
	}

	tag, err := q.Exec(ctx,
		`DELETE FROM course_timetables WHERE id = $1 AND parent_id IS NULL`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FoldChildren rewrites each parent's end_time with its child's, yielding the
// logical view of split entries. Parents without children pass through.
func FoldChildren(parents, children []model.CourseTimetable) []model.CourseTimetable {
	if len(children) == 0 {
		return parents
	}

	endByParent := make(map[string]string, len(children))
	for _, child := range children {
		if child.ParentID != nil {
			endByParent[*child.ParentID] = child.EndTime
		}
	}

	for i := range parents {
		if end, ok := endByParent[parents[i].ID]; ok {
			parents[i].EndTime = end
		}
	}
	return parents
}

func scanTimetables(rows pgx.Rows) ([]model.CourseTimetable, error) {
	var entries []model.CourseTimetable
	for rows.Next() {
		var t model.CourseTimetable
		if err := rows.Scan(&t.ID, &t.Day, &t.StartTime, &t.EndTime, &t.CourseID, &t.ParentID); err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}
