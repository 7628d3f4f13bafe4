package model

// Course belongs to one college. (name, college_id) is unique.
type Course struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code"`
	CollegeID  string `json:"college_id"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=150"`
	CourseCode string `json:"course_code" binding:"required,min=2,max=50"`
	CollegeID  string `json:"college_id" binding:"required"`
}

// UpdateCourseRequest is the payload for partially updating a course.
type UpdateCourseRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=150"`
	CourseCode *string `json:"course_code" binding:"omitempty,min=2,max=50"`
	CollegeID  *string `json:"college_id" binding:"omitempty"`
}
