package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-backend/internal/apperr"
	"github.com/campuskit/campus-backend/internal/response"
)

// handleError maps a service error onto the failure envelope. Unclassified
// errors surface as a generic server error; their cause is already logged at
// the service layer.
func handleError(c *gin.Context, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		response.Fail(c, http.StatusInternalServerError, string(apperr.KindStoreFailure),
			"Something went wrong", nil)
		return
	}
	response.Fail(c, statusFor(appErr.Kind), string(appErr.Kind), appErr.Message, appErr.Details)
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindStoreFailure:
		return http.StatusInternalServerError
	default:
		// InvalidReference, SchedulingConflict, IncompletePrerequisite,
		// DuplicateEnrollment and Validation are all client errors.
		return http.StatusBadRequest
	}
}

// failValidation sends a field-level validation failure.
func failValidation(c *gin.Context, fields map[string]string) {
	details := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	response.Fail(c, http.StatusBadRequest, string(apperr.KindValidation),
		"Validation failed. Please check your input.", details)
}
