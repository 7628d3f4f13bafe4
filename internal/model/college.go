package model

// College is the root tenant scope. Students and courses belong to exactly
// one college; deleting a college cascades to both.
type College struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCollegeRequest is the payload for creating a college.
type CreateCollegeRequest struct {
	Name string `json:"name" binding:"required,min=2,max=150"`
}

// UpdateCollegeRequest is the payload for partially updating a college.
type UpdateCollegeRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=150"`
}
