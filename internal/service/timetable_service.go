package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campuskit/campus-backend/internal/apperr"
	"github.com/campuskit/campus-backend/internal/config"
	"github.com/campuskit/campus-backend/internal/database"
	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/repository"
	"github.com/campuskit/campus-backend/internal/schedule"
)

// TimetableService handles timetable business logic: midnight-split
// normalization, within-course overlap validation and the per-course Redis
// cache of reassembled entries.
//
// The cache is a read-path convenience only. Every validation reads stored
// rows inside the same transaction as its write, so a stale cache can never
// let a conflicting entry through.
type TimetableService struct {
	timetableRepo *repository.TimetableRepository
	courseRepo    *repository.CourseRepository
	pool          *pgxpool.Pool
	rdb           *redis.Client
	cfg           *config.Config
	log           zerolog.Logger
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(
	timetableRepo *repository.TimetableRepository,
	courseRepo *repository.CourseRepository,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *TimetableService {
	return &TimetableService{
		timetableRepo: timetableRepo,
		courseRepo:    courseRepo,
		pool:          pool,
		rdb:           rdb,
		cfg:           cfg,
		log:           log.With().Str("component", "timetable_service").Logger(),
	}
}

// Create normalizes and persists a new weekly timetable entry for a course.
// A midnight-crossing interval is stored as a linked parent/child pair; the
// returned entry is the logical view with the true end time.
func (s *TimetableService) Create(ctx context.Context, req model.CreateCourseTimetableRequest) (*model.CourseTimetable, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindInvalidReference, "Invalid course id: %s", req.CourseID)
		}
		s.log.Error().Err(err).Str("course_id", req.CourseID).Msg("course lookup failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch course")
	}

	rows, err := s.normalize(req.Day, req.StartTime, req.EndTime, req.CourseID)
	if err != nil {
		return nil, err
	}

	err = database.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.validateCourseOverlap(ctx, tx, rows, ""); err != nil {
			return err
		}
		return s.timetableRepo.InsertRows(ctx, tx, rows)
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		s.log.Error().Err(err).Str("course_id", req.CourseID).Msg("create timetable failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to create course timetable")
	}

	s.invalidateCache(ctx, req.CourseID)

	logical := rows[0]
	if len(rows) == 2 {
		logical.EndTime = rows[1].EndTime
	}
	return &logical, nil
}

// List retrieves reassembled timetable entries. Single-course queries are
// served from the per-course cache when it is warm.
func (s *TimetableService) List(ctx context.Context, limit, skip int, courseIDs []string) ([]model.CourseTimetable, error) {
	if len(courseIDs) == 1 {
		return s.listSingleCourse(ctx, limit, skip, courseIDs[0])
	}

	entries, err := s.timetableRepo.ListLogical(ctx, limit, skip, courseIDs)
	if err != nil {
		s.log.Error().Err(err).Msg("list timetables failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to list course timetables")
	}
	if entries == nil {
		entries = []model.CourseTimetable{}
	}
	return entries, nil
}

// GetByID retrieves one reassembled timetable entry. Child rows of a split
// are not addressable and yield NotFound.
func (s *TimetableService) GetByID(ctx context.Context, id string) (*model.CourseTimetable, error) {
	entry, err := s.timetableRepo.GetLogicalByID(ctx, s.pool, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Course timetable")
		}
		s.log.Error().Err(err).Str("timetable_id", id).Msg("get timetable failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to fetch course timetable")
	}
	return entry, nil
}

// Update patches the logical entry, re-normalizes it and rewrites its rows,
// re-running overlap validation in the same transaction. The entry keeps its
// id; a child row is recreated or dropped as the patched interval requires.
func (s *TimetableService) Update(ctx context.Context, id string, req model.UpdateCourseTimetableRequest) (*model.CourseTimetable, error) {
	var logical model.CourseTimetable

	err := database.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		entry, err := s.timetableRepo.GetLogicalByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.NotFound("Course timetable")
			}
			return err
		}
		oldCourseID := entry.CourseID

		if req.Day != nil {
			entry.Day = *req.Day
		}
		if req.StartTime != nil {
			entry.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			entry.EndTime = *req.EndTime
		}
		if req.CourseID != nil && *req.CourseID != entry.CourseID {
			courses, err := s.courseRepo.GetByIDs(ctx, tx, []string{*req.CourseID})
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				return apperr.Newf(apperr.KindInvalidReference, "Invalid course id: %s", *req.CourseID)
			}
			entry.CourseID = *req.CourseID
		}

		rows, err := s.normalize(entry.Day, entry.StartTime, entry.EndTime, entry.CourseID)
		if err != nil {
			return err
		}
		// Keep the public id stable across the rewrite.
		rows[0].ID = entry.ID
		if len(rows) == 2 {
			rows[1].ParentID = &entry.ID
		}

		if err := s.validateCourseOverlap(ctx, tx, rows, entry.ID); err != nil {
			return err
		}

		if _, err := s.timetableRepo.DeleteEntry(ctx, tx, entry.ID); err != nil {
			return err
		}
		if err := s.timetableRepo.InsertRows(ctx, tx, rows); err != nil {
			return err
		}

		logical = rows[0]
		if len(rows) == 2 {
			logical.EndTime = rows[1].EndTime
		}

		s.invalidateCache(ctx, oldCourseID)
		if entry.CourseID != oldCourseID {
			s.invalidateCache(ctx, entry.CourseID)
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		s.log.Error().Err(err).Str("timetable_id", id).Msg("update timetable failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to update course timetable")
	}
	return &logical, nil
}

// Delete removes a logical entry (parent plus child when split).
func (s *TimetableService) Delete(ctx context.Context, id string) error {
	var courseID string

	err := database.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		entry, err := s.timetableRepo.GetLogicalByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.NotFound("Course timetable")
			}
			return err
		}
		courseID = entry.CourseID

		_, err = s.timetableRepo.DeleteEntry(ctx, tx, id)
		return err
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return err
		}
		s.log.Error().Err(err).Str("timetable_id", id).Msg("delete timetable failed")
		return apperr.Wrap(err, apperr.KindStoreFailure, "failed to delete course timetable")
	}

	s.invalidateCache(ctx, courseID)
	return nil
}

// normalize parses and splits a proposed interval into persistable rows.
func (s *TimetableService) normalize(day, startTime, endTime, courseID string) ([]model.CourseTimetable, error) {
	d, err := schedule.ParseDay(day)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "Invalid day: %s", day)
	}
	rows, err := schedule.Split(d, startTime, endTime, courseID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "Invalid start or end time, expected HH:MM:SS")
	}
	return rows, nil
}

// validateCourseOverlap rejects candidate rows that intersect any stored row
// of the same course. excludeID skips the rows of the entry being rewritten.
func (s *TimetableService) validateCourseOverlap(ctx context.Context, tx pgx.Tx, candidates []model.CourseTimetable, excludeID string) error {
	courseID := candidates[0].CourseID

	stored, err := s.timetableRepo.ListRawByCourses(ctx, tx, []string{courseID})
	if err != nil {
		return err
	}

	existing := make([]model.CourseTimetable, 0, len(stored))
	for _, row := range stored {
		if excludeID != "" && (row.ID == excludeID || (row.ParentID != nil && *row.ParentID == excludeID)) {
			continue
		}
		existing = append(existing, row)
	}

	candidateIvs, err := schedule.RowIntervals(candidates)
	if err != nil {
		return err
	}
	existingIvs, err := schedule.RowIntervals(existing)
	if err != nil {
		return err
	}

	if cand, conflict, ok := schedule.FindConflict(candidateIvs, existingIvs); ok {
		return apperr.New(apperr.KindSchedulingConflict, "Overlapping timetable slot").
			WithDetails(map[string]any{
				"course_id": courseID,
				"day":       cand.Day.String(),
				"requested": fmt.Sprintf("%s-%s", schedule.FormatClock(cand.Start), schedule.FormatClock(cand.End)),
				"existing":  fmt.Sprintf("%s-%s", schedule.FormatClock(conflict.Start), schedule.FormatClock(conflict.End)),
			})
	}
	return nil
}

func (s *TimetableService) listSingleCourse(ctx context.Context, limit, skip int, courseID string) ([]model.CourseTimetable, error) {
	key := config.CacheKey.CourseTimetablesKey(courseID)

	var entries []model.CourseTimetable
	cached, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(cached, &entries); jsonErr == nil {
			return paginate(entries, limit, skip), nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("course_id", courseID).Msg("timetable cache read failed")
	}

	// Cache the full per-course set; a course's timetable is small.
	entries, err = s.timetableRepo.ListLogical(ctx, allCourseEntries, 0, []string{courseID})
	if err != nil {
		s.log.Error().Err(err).Str("course_id", courseID).Msg("list timetables failed")
		return nil, apperr.Wrap(err, apperr.KindStoreFailure, "failed to list course timetables")
	}
	if entries == nil {
		entries = []model.CourseTimetable{}
	}

	if payload, jsonErr := json.Marshal(entries); jsonErr == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.TimetableCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("course_id", courseID).Msg("timetable cache write failed")
		}
	}

	return paginate(entries, limit, skip), nil
}

// allCourseEntries bounds a single course's timetable rows when loading the
// full set for caching.
const allCourseEntries = 1000

func paginate(entries []model.CourseTimetable, limit, skip int) []model.CourseTimetable {
	if skip >= len(entries) {
		return []model.CourseTimetable{}
	}
	entries = entries[skip:]
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

func (s *TimetableService) invalidateCache(ctx context.Context, courseID string) {
	if err := s.rdb.Del(ctx, config.CacheKey.CourseTimetablesKey(courseID)).Err(); err != nil {
		s.log.Warn().Err(err).Str("course_id", courseID).Msg("timetable cache invalidation failed")
	}
}
