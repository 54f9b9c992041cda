package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// StatusFor maps a business error code to an HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeDoctorNotFound, CodePatientNotFound, CodeAppointmentNotFound, CodeNotificationNotFound:
		return http.StatusNotFound
	case CodeSlotConflict, CodeReviewExists:
		return http.StatusConflict
	case CodeReviewForbidden:
		return http.StatusForbidden
	case CodeStorageNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// Business writes err as a JSON error response. Non-business errors
// become an opaque 500.
func Business(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, StatusFor(be.Code), be.Code, be.Message)
		return
	}
	Internal(c, "internal_error", "unexpected error")
}
