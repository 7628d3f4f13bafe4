package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/response"
	"github.com/campuskit/campus-backend/internal/service"
	"github.com/campuskit/campus-backend/internal/validator"
)

type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Enroll godoc
// POST /student-course-mapping
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req model.EnrollStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	mappings, err := h.enrollmentService.Enroll(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mappings)
}

// GetByStudent godoc
// GET /student-course-mapping/:student_id
func (h *EnrollmentHandler) GetByStudent(c *gin.Context) {
	enrollments, err := h.enrollmentService.GetStudentEnrollments(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, enrollments)
}
