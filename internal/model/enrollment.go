package model

// StudentCourseMapping is one committed enrollment linking a student to a
// course. (student_id, course_id) is unique. Rows are created only through
// the enrollment flow, never singly.
type StudentCourseMapping struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
}

// EnrollStudentRequest is the payload for enrolling a student into a set of
// courses. All courses are committed atomically or none are.
type EnrollStudentRequest struct {
	StudentID string   `json:"student_id" binding:"required"`
	CourseIDs []string `json:"course_ids" binding:"required,min=1,dive,required"`
}

// StudentEnrollments is the read view of a student's enrollment state.
type StudentEnrollments struct {
	Student *Student `json:"student"`
	Courses []Course `json:"courses"`
}
