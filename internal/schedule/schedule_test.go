package schedule

import (
	"testing"

	"github.com/campuskit/campus-backend/internal/model"
)

func TestDayNext_WrapsAroundWeek(t *testing.T) {
	cases := []struct {
		in, want Day
	}{
		{Monday, Tuesday},
		{Friday, Saturday},
		{Saturday, Sunday},
		{Sunday, Monday},
	}
	for _, c := range cases {
		if got := c.in.Next(); got != c.want {
			t.Fatalf("Next(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseDay_ExactNamesOnly(t *testing.T) {
	d, err := ParseDay("Wednesday")
	if err != nil {
		t.Fatalf("ParseDay(Wednesday): %v", err)
	}
	if d != Wednesday {
		t.Fatalf("ParseDay(Wednesday) = %d", d)
	}

	for _, bad := range []string{"wednesday", "WEDNESDAY", "Wed", ""} {
		if _, err := ParseDay(bad); err == nil {
			t.Fatalf("ParseDay(%q) accepted, want error", bad)
		}
	}
}

func TestClockSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00:00", 0},
		{"09:30:00", 9*3600 + 30*60},
		{"23:59:59", 23*3600 + 59*60 + 59},
		{"10", 10 * 3600},
		{"10:15", 10*3600 + 15*60},
	}
	for _, c := range cases {
		got, err := ClockSeconds(c.in)
		if err != nil {
			t.Fatalf("ClockSeconds(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ClockSeconds(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "24:00:00", "10:60:00", "10:00:60", "ab:cd", "10:00:00:00", "-1:00"} {
		if _, err := ClockSeconds(bad); err == nil {
			t.Fatalf("ClockSeconds(%q) accepted, want error", bad)
		}
	}
}

func mustInterval(t *testing.T, day Day, start, end string) Interval {
	t.Helper()
	iv, err := RowInterval(model.CourseTimetable{
		Day: day.String(), StartTime: start, EndTime: end, CourseID: "c",
	})
	if err != nil {
		t.Fatalf("RowInterval: %v", err)
	}
	return iv
}

func TestOverlaps_Boundary(t *testing.T) {
	nine := mustInterval(t, Monday, "09:00:00", "10:00:00")
	ten := mustInterval(t, Monday, "10:00:00", "11:00:00")
	half := mustInterval(t, Monday, "09:30:00", "10:30:00")

	if nine.Overlaps(ten) {
		t.Fatal("[09:00,10:00) and [10:00,11:00) must not overlap")
	}
	if !nine.Overlaps(half) {
		t.Fatal("[09:00,10:00) and [09:30,10:30) must overlap")
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	ivs := []Interval{
		mustInterval(t, Monday, "09:00:00", "10:00:00"),
		mustInterval(t, Monday, "09:30:00", "10:30:00"),
		mustInterval(t, Monday, "10:00:00", "11:00:00"),
		mustInterval(t, Tuesday, "09:00:00", "10:00:00"),
		mustInterval(t, Monday, "00:00:00", "23:59:59"),
	}
	for _, a := range ivs {
		for _, b := range ivs {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Fatalf("overlap not symmetric for %+v and %+v", a, b)
			}
		}
	}
}

func TestOverlaps_DifferentDaysNeverConflict(t *testing.T) {
	mon := mustInterval(t, Monday, "09:00:00", "17:00:00")
	tue := mustInterval(t, Tuesday, "09:00:00", "17:00:00")
	if mon.Overlaps(tue) {
		t.Fatal("intervals on different days must not overlap")
	}
}

func TestSplit_SameDaySingleRow(t *testing.T) {
	rows, err := Split(Monday, "09:00:00", "10:00:00", "course-1")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Day != "Monday" || row.StartTime != "09:00:00" || row.EndTime != "10:00:00" {
		t.Fatalf("row mutated: %+v", row)
	}
	if row.ParentID != nil {
		t.Fatal("single row must have no parent")
	}
	if row.ID == "" {
		t.Fatal("row must have a minted id")
	}
}

func TestSplit_MidnightCrossingProducesLinkedPair(t *testing.T) {
	rows, err := Split(Sunday, "22:00:00", "02:00:00", "course-1")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	parent, child := rows[0], rows[1]
	if parent.Day != "Sunday" || parent.StartTime != "22:00:00" || parent.EndTime != "23:59:59" {
		t.Fatalf("unexpected parent: %+v", parent)
	}
	if child.Day != "Monday" || child.StartTime != "00:00:00" || child.EndTime != "02:00:00" {
		t.Fatalf("unexpected child: %+v", child)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Fatalf("child not linked to parent: %+v", child)
	}
	if parent.ParentID != nil {
		t.Fatal("parent must not have a parent")
	}
	if parent.ID == child.ID {
		t.Fatal("parent and child ids must differ")
	}

	// Reassembled logical view preserves the original bounds.
	if parent.StartTime != "22:00:00" || child.EndTime != "02:00:00" {
		t.Fatal("logical view lost original start or end")
	}
}

func TestSplit_CanonicalizesAbbreviatedTimes(t *testing.T) {
	// Stored TIME columns read back as HH:MM:SS, so emitted rows must carry
	// the same form even when the request abbreviates to HH:MM.
	rows, err := Split(Monday, "09:00", "10:30", "course-1")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if rows[0].StartTime != "09:00:00" || rows[0].EndTime != "10:30:00" {
		t.Fatalf("single row not canonical: %+v", rows[0])
	}

	rows, err = Split(Friday, "22:00", "01:00", "course-1")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].StartTime != "22:00:00" || rows[1].EndTime != "01:00:00" {
		t.Fatalf("split pair not canonical: %+v / %+v", rows[0], rows[1])
	}
}

func TestSplit_EqualStartEndIsSingleRow(t *testing.T) {
	rows, err := Split(Monday, "09:00:00", "09:00:00", "course-1")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestSplit_RejectsInvalidTimes(t *testing.T) {
	if _, err := Split(Monday, "25:00:00", "10:00:00", "c"); err == nil {
		t.Fatal("expected error for invalid start")
	}
	if _, err := Split(Monday, "09:00:00", "10:61:00", "c"); err == nil {
		t.Fatal("expected error for invalid end")
	}
}

func TestFindConflict(t *testing.T) {
	existing := []Interval{
		mustInterval(t, Monday, "09:00:00", "10:00:00"),
		mustInterval(t, Tuesday, "13:00:00", "15:00:00"),
	}

	if _, _, ok := FindConflict([]Interval{mustInterval(t, Monday, "10:00:00", "11:00:00")}, existing); ok {
		t.Fatal("touching interval must not conflict")
	}

	c, e, ok := FindConflict([]Interval{mustInterval(t, Tuesday, "14:00:00", "16:00:00")}, existing)
	if !ok {
		t.Fatal("expected conflict on Tuesday")
	}
	if c.Day != Tuesday || e.Day != Tuesday {
		t.Fatalf("conflict pair on wrong day: %+v / %+v", c, e)
	}
}
