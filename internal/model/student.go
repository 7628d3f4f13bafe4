package model

// Student belongs to exactly one college.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CollegeID string `json:"college_id"`
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=150"`
	CollegeID string `json:"college_id" binding:"required"`
}

// UpdateStudentRequest is the payload for partially updating a student.
type UpdateStudentRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=150"`
	CollegeID *string `json:"college_id" binding:"omitempty"`
}
