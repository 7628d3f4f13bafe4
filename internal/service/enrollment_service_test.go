package service

import (
	"errors"
	"testing"

	"github.com/campuskit/campus-backend/internal/apperr"
	"github.com/campuskit/campus-backend/internal/model"
)

func mapping(studentID, courseID string) model.StudentCourseMapping {
	return model.StudentCourseMapping{ID: "m-" + courseID, StudentID: studentID, CourseID: courseID}
}

func TestDuplicateCourseIDs(t *testing.T) {
	existing := []model.StudentCourseMapping{
		mapping("s1", "math"),
		mapping("s1", "physics"),
	}

	dupes := duplicateCourseIDs([]string{"chemistry", "math"}, existing)
	if len(dupes) != 1 || dupes[0] != "math" {
		t.Fatalf("unexpected duplicates: %v", dupes)
	}

	if dupes := duplicateCourseIDs([]string{"chemistry"}, existing); dupes != nil {
		t.Fatalf("expected no duplicates, got %v", dupes)
	}

	if dupes := duplicateCourseIDs([]string{"math"}, nil); dupes != nil {
		t.Fatalf("no existing enrollments must mean no duplicates, got %v", dupes)
	}
}

func TestMissingCourseIDs(t *testing.T) {
	courses := []model.Course{
		{ID: "math", Name: "Mathematics"},
	}

	missing := missingCourseIDs([]string{"math", "ghost"}, courses)
	if len(missing) != 1 || missing[0] != "ghost" {
		t.Fatalf("unexpected missing ids: %v", missing)
	}

	if missing := missingCourseIDs([]string{"math"}, courses); missing != nil {
		t.Fatalf("expected none missing, got %v", missing)
	}
}

func TestRequestedCoursesWithoutTimetable(t *testing.T) {
	courses := []model.Course{
		{ID: "math", Name: "Mathematics"},
		{ID: "art", Name: "Art History"},
	}
	timetables := []model.CourseTimetable{
		{ID: "t1", Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "math"},
	}

	missing := requestedCoursesWithoutTimetable([]string{"math", "art"}, courses, timetables)
	if len(missing) != 1 || missing[0] != "Art History" {
		t.Fatalf("unexpected missing courses: %v", missing)
	}
}

func TestCollegeMismatches(t *testing.T) {
	courses := []model.Course{
		{ID: "math", Name: "Mathematics", CollegeID: "c1"},
		{ID: "law", Name: "Law", CollegeID: "c2"},
		{ID: "old", Name: "Already Enrolled Elsewhere", CollegeID: "c2"},
	}

	// Only requested courses count; "old" belongs to the existing set.
	mismatched := collegeMismatches("c1", []string{"math", "law"}, courses)
	if len(mismatched) != 1 || mismatched[0] != "Law" {
		t.Fatalf("unexpected mismatches: %v", mismatched)
	}
}

func TestValidateCrossCourseOverlap_Conflict(t *testing.T) {
	courses := []model.Course{
		{ID: "x", Name: "Algebra", CollegeID: "c1"},
		{ID: "y", Name: "Geometry", CollegeID: "c1"},
	}
	timetables := []model.CourseTimetable{
		{ID: "t1", Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "x"},
		{ID: "t2", Day: "Monday", StartTime: "09:30:00", EndTime: "10:30:00", CourseID: "y"},
	}

	err := validateCrossCourseOverlap([]string{"x", "y"}, courses, timetables)
	if err == nil {
		t.Fatal("expected scheduling conflict")
	}
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.KindSchedulingConflict {
		t.Fatalf("expected SCHEDULING_CONFLICT, got %v", err)
	}
}

func TestValidateCrossCourseOverlap_TouchingIsAllowed(t *testing.T) {
	courses := []model.Course{
		{ID: "x", Name: "Algebra", CollegeID: "c1"},
		{ID: "y", Name: "Geometry", CollegeID: "c1"},
	}
	timetables := []model.CourseTimetable{
		{ID: "t1", Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "x"},
		{ID: "t2", Day: "Monday", StartTime: "10:00:00", EndTime: "11:00:00", CourseID: "y"},
	}

	if err := validateCrossCourseOverlap([]string{"x", "y"}, courses, timetables); err != nil {
		t.Fatalf("touching intervals must not conflict: %v", err)
	}
}

func TestValidateCrossCourseOverlap_AgainstEnrolledCourse(t *testing.T) {
	courses := []model.Course{
		{ID: "new", Name: "New Course", CollegeID: "c1"},
		{ID: "enrolled", Name: "Enrolled Course", CollegeID: "c1"},
	}
	timetables := []model.CourseTimetable{
		{ID: "t1", Day: "Friday", StartTime: "13:00:00", EndTime: "15:00:00", CourseID: "new"},
		{ID: "t2", Day: "Friday", StartTime: "14:00:00", EndTime: "16:00:00", CourseID: "enrolled"},
	}

	// Only "new" is requested; "enrolled" is an existing enrollment.
	err := validateCrossCourseOverlap([]string{"new"}, courses, timetables)
	if err == nil {
		t.Fatal("expected conflict against already-enrolled course")
	}
}

func TestValidateCrossCourseOverlap_SameCourseRowsIgnored(t *testing.T) {
	courses := []model.Course{
		{ID: "x", Name: "Night Lab", CollegeID: "c1"},
	}
	// A midnight split pair of one course: parent and child never conflict
	// with each other.
	parentID := "t1"
	timetables := []model.CourseTimetable{
		{ID: "t1", Day: "Sunday", StartTime: "22:00:00", EndTime: "23:59:59", CourseID: "x"},
		{ID: "t2", Day: "Monday", StartTime: "00:00:00", EndTime: "02:00:00", CourseID: "x", ParentID: &parentID},
	}

	if err := validateCrossCourseOverlap([]string{"x"}, courses, timetables); err != nil {
		t.Fatalf("same-course rows must not conflict with each other: %v", err)
	}
}

func TestValidateCrossCourseOverlap_DifferentDays(t *testing.T) {
	courses := []model.Course{
		{ID: "x", Name: "Algebra", CollegeID: "c1"},
		{ID: "y", Name: "Geometry", CollegeID: "c1"},
	}
	timetables := []model.CourseTimetable{
		{ID: "t1", Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "x"},
		{ID: "t2", Day: "Tuesday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "y"},
	}

	if err := validateCrossCourseOverlap([]string{"x", "y"}, courses, timetables); err != nil {
		t.Fatalf("different days must not conflict: %v", err)
	}
}

func TestValidateCrossCourseOverlap_RejectsCorruptRow(t *testing.T) {
	courses := []model.Course{{ID: "x", Name: "Algebra", CollegeID: "c1"}}
	timetables := []model.CourseTimetable{
		{ID: "t1", Day: "Blursday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "x"},
	}

	err := validateCrossCourseOverlap([]string{"x"}, courses, timetables)
	if err == nil {
		t.Fatal("expected error for unparseable row")
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		t.Fatalf("corrupt rows are internal failures, not client errors: %v", err)
	}
}
