package response

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the standardized success response body.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// ErrorEnvelope is the standardized failure response body.
type ErrorEnvelope struct {
	StatusCode int        `json:"statusCode"`
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Error      *ErrorBody `json:"error"`
	Timestamp  string     `json:"timestamp"`
	Path       string     `json:"path"`
}

// ErrorBody carries the machine-readable error classification.
type ErrorBody struct {
	Type    string                 `json:"type"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Success sends a successful response with the given status code and data.
// The message names the operation that succeeded.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Success:    true,
		Message:    successMessage(c),
		Data:       data,
	})
}

// Fail sends a failure response with a typed error body.
func Fail(c *gin.Context, statusCode int, errType, message string, details map[string]interface{}) {
	c.JSON(statusCode, ErrorEnvelope{
		StatusCode: statusCode,
		Success:    false,
		Message:    message,
		Error:      &ErrorBody{Type: errType, Details: details},
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
	})
}

// AbortFail aborts the middleware chain and sends a failure response.
func AbortFail(c *gin.Context, statusCode int, errType, message string) {
	c.Abort()
	Fail(c, statusCode, errType, message, nil)
}

func successMessage(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return fmt.Sprintf("%s %s successful", c.Request.Method, route)
	}
	return "Request successful"
}
