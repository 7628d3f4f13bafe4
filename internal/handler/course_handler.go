package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/response"
	"github.com/campuskit/campus-backend/internal/service"
	"github.com/campuskit/campus-backend/internal/validator"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// Create godoc
// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, course)
}

// List godoc
// GET /courses?limit=&skip=&college_id=&course_ids=
func (h *CourseHandler) List(c *gin.Context) {
	limit, skip, ok := parsePagination(c)
	if !ok {
		return
	}

	courses, err := h.courseService.List(c.Request.Context(), limit, skip,
		c.Query("college_id"), parseIDList(c, "course_ids"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// Get godoc
// GET /courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courseService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// Update godoc
// PATCH /courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	var req model.UpdateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// Delete godoc
// DELETE /courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
