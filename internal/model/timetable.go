package model

// CourseTimetable is one weekly recurring interval [start_time, end_time) on a
// given day for a course. An interval that crosses midnight is stored as two
// linked rows: the parent truncated to day-end, and a child on the next day
// carrying the true end time. ParentID is set only on child rows; read paths
// fold the child's end_time back onto the parent so callers always see one
// logical entry.
type CourseTimetable struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	CourseID  string  `json:"course_id"`
	ParentID  *string `json:"parent_id,omitempty"`
}

// CreateCourseTimetableRequest is the payload for creating a timetable entry.
type CreateCourseTimetableRequest struct {
	Day       string `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
}

// UpdateCourseTimetableRequest is the payload for partially updating a
// timetable entry. The update applies to the logical entry; a midnight
// crossing is re-split after the patch.
type UpdateCourseTimetableRequest struct {
	Day       *string `json:"day" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime *string `json:"start_time" binding:"omitempty"`
	EndTime   *string `json:"end_time" binding:"omitempty"`
	CourseID  *string `json:"course_id" binding:"omitempty"`
}
