// Package schedule holds the timetable consistency core: the day-of-week
// enumeration, clock-time arithmetic, the midnight split for weekly intervals
// and the single canonical overlap predicate used by every validation path.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/campuskit/campus-backend/internal/model"
	"github.com/google/uuid"
)

// Day is an ordinal weekday, Monday-first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the exact day name used on the wire and in storage.
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// Next returns the following weekday, wrapping Sunday back to Monday.
func (d Day) Next() Day {
	return (d + 1) % 7
}

// ParseDay maps an exact, case-sensitive day name to its Day ordinal.
func ParseDay(s string) (Day, error) {
	for i, name := range dayNames {
		if name == s {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("invalid day %q", s)
}

// ErrInvalidClock indicates a time string that is not a valid HH:MM:SS clock.
var ErrInvalidClock = errors.New("invalid clock time")

// ClockSeconds converts "HH:MM:SS" (minutes and seconds optional) to
// seconds since midnight.
func ClockSeconds(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	units := [3]int{} // hours, minutes, seconds
	limits := [3]int{23, 59, 59}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		units[i] = n
	}
	return units[0]*3600 + units[1]*60 + units[2], nil
}

// FormatClock renders seconds since midnight as "HH:MM:SS".
func FormatClock(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}

// Interval is one half-open weekly slot [Start, End) in seconds of day.
// CourseID is carried through so conflict errors can name the courses.
type Interval struct {
	Day      Day
	Start    int
	End      int
	CourseID string
}

// Overlaps reports whether two intervals intersect. Half-open semantics:
// touching endpoints do not conflict. Intervals on different days never
// overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Day == b.Day && a.Start < b.End && b.Start < a.End
}

// RowInterval converts a stored timetable row into an Interval. Both parent
// and child rows are valid inputs: each occupies a single day by construction.
func RowInterval(t model.CourseTimetable) (Interval, error) {
	day, err := ParseDay(t.Day)
	if err != nil {
		return Interval{}, err
	}
	start, err := ClockSeconds(t.StartTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := ClockSeconds(t.EndTime)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Day: day, Start: start, End: end, CourseID: t.CourseID}, nil
}

// RowIntervals converts a slice of stored rows.
func RowIntervals(rows []model.CourseTimetable) ([]Interval, error) {
	intervals := make([]Interval, 0, len(rows))
	for _, row := range rows {
		iv, err := RowInterval(row)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// FindConflict returns the first pair of overlapping intervals between the
// candidate set and the existing set, or ok=false when every pairing is
// conflict-free.
func FindConflict(candidates, existing []Interval) (Interval, Interval, bool) {
	for _, c := range candidates {
		for _, e := range existing {
			if c.Overlaps(e) {
				return c, e, true
			}
		}
	}
	return Interval{}, Interval{}, false
}

const (
	dayStart = "00:00:00"
	dayEnd   = "23:59:59"
)

// Split normalizes a proposed weekly interval into persistable rows. An
// interval whose end falls at or after its start within the same day yields a
// single row. An interval that crosses midnight (start > end in seconds of
// day) yields two rows: the parent truncated to day-end and a child on the
// next day from day-start to the true end, linked by ParentID. Split depth is
// one by construction; inputs are raw intervals, never already-split rows.
func Split(day Day, startTime, endTime, courseID string) ([]model.CourseTimetable, error) {
	startSec, err := ClockSeconds(startTime)
	if err != nil {
		return nil, err
	}
	endSec, err := ClockSeconds(endTime)
	if err != nil {
		return nil, err
	}

	// Emit canonical HH:MM:SS regardless of how the input abbreviated it, so
	// created rows match what the store's TIME columns read back.
	parent := model.CourseTimetable{
		ID:        uuid.New().String(),
		Day:       day.String(),
		StartTime: FormatClock(startSec),
		EndTime:   FormatClock(endSec),
		CourseID:  courseID,
	}

	if startSec <= endSec {
		return []model.CourseTimetable{parent}, nil
	}

	parent.EndTime = dayEnd
	child := model.CourseTimetable{
		ID:        uuid.New().String(),
		Day:       day.Next().String(),
		StartTime: dayStart,
		EndTime:   FormatClock(endSec),
		CourseID:  courseID,
		ParentID:  &parent.ID,
	}
	return []model.CourseTimetable{parent, child}, nil
}
