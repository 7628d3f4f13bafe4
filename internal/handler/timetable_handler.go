package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/response"
	"github.com/campuskit/campus-backend/internal/service"
	"github.com/campuskit/campus-backend/internal/validator"
)

type TimetableHandler struct {
	timetableService *service.TimetableService
}

func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// Create godoc
// POST /course-timetables
func (h *TimetableHandler) Create(c *gin.Context) {
	var req model.CreateCourseTimetableRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	entry, err := h.timetableService.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

// List godoc
// GET /course-timetables?limit=&skip=&course_ids=
func (h *TimetableHandler) List(c *gin.Context) {
	limit, skip, ok := parsePagination(c)
	if !ok {
		return
	}

	entries, err := h.timetableService.List(c.Request.Context(), limit, skip,
		parseIDList(c, "course_ids"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries)
}

// Get godoc
// GET /course-timetables/:id
func (h *TimetableHandler) Get(c *gin.Context) {
	entry, err := h.timetableService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

// Update godoc
// PATCH /course-timetables/:id
func (h *TimetableHandler) Update(c *gin.Context) {
	var req model.UpdateCourseTimetableRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	entry, err := h.timetableService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

// Delete godoc
// DELETE /course-timetables/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	if err := h.timetableService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
