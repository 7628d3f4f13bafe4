package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/response"
	"github.com/campuskit/campus-backend/internal/service"
	"github.com/campuskit/campus-backend/internal/validator"
)

type CollegeHandler struct {
	collegeService *service.CollegeService
}

func NewCollegeHandler(collegeService *service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeService: collegeService}
}

// Create godoc
// POST /colleges
func (h *CollegeHandler) Create(c *gin.Context) {
	var req model.CreateCollegeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	college, err := h.collegeService.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, college)
}

// List godoc
// GET /colleges?limit=&skip=
func (h *CollegeHandler) List(c *gin.Context) {
	limit, skip, ok := parsePagination(c)
	if !ok {
		return
	}

	colleges, err := h.collegeService.List(c.Request.Context(), limit, skip)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, colleges)
}

// Get godoc
// GET /colleges/:id
func (h *CollegeHandler) Get(c *gin.Context) {
	college, err := h.collegeService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, college)
}

// Update godoc
// PATCH /colleges/:id
func (h *CollegeHandler) Update(c *gin.Context) {
	var req model.UpdateCollegeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		failValidation(c, fields)
		return
	}

	college, err := h.collegeService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, college)
}

// Delete godoc
// DELETE /colleges/:id
func (h *CollegeHandler) Delete(c *gin.Context) {
	if err := h.collegeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
