package repository

import (
	"testing"

	"github.com/campuskit/campus-backend/internal/model"
)

func strPtr(s string) *string { return &s }

func TestFoldChildren_RewritesParentEnd(t *testing.T) {
	parents := []model.CourseTimetable{
		{ID: "p1", Day: "Sunday", StartTime: "22:00:00", EndTime: "23:59:59", CourseID: "c1"},
		{ID: "p2", Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "c1"},
	}
	children := []model.CourseTimetable{
		{ID: "ch1", Day: "Monday", StartTime: "00:00:00", EndTime: "02:00:00", CourseID: "c1", ParentID: strPtr("p1")},
	}

	folded := FoldChildren(parents, children)
	if len(folded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(folded))
	}
	if folded[0].EndTime != "02:00:00" {
		t.Fatalf("split parent end not folded: %q", folded[0].EndTime)
	}
	if folded[0].StartTime != "22:00:00" || folded[0].Day != "Sunday" {
		t.Fatalf("parent day/start mutated: %+v", folded[0])
	}
	if folded[1].EndTime != "10:00:00" {
		t.Fatalf("simple entry mutated: %+v", folded[1])
	}
}

func TestFoldChildren_NoChildrenPassthrough(t *testing.T) {
	parents := []model.CourseTimetable{
		{ID: "p1", Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "c1"},
	}
	folded := FoldChildren(parents, nil)
	if len(folded) != 1 || folded[0].EndTime != "10:00:00" {
		t.Fatalf("unexpected passthrough result: %+v", folded)
	}
}

func TestFoldChildren_IgnoresOrphanChildren(t *testing.T) {
	parents := []model.CourseTimetable{
		{ID: "p1", Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00", CourseID: "c1"},
	}
	children := []model.CourseTimetable{
		{ID: "ch1", Day: "Tuesday", StartTime: "00:00:00", EndTime: "01:00:00", CourseID: "c2", ParentID: strPtr("other")},
	}
	folded := FoldChildren(parents, children)
	if folded[0].EndTime != "10:00:00" {
		t.Fatalf("unrelated child folded onto parent: %+v", folded[0])
	}
}
