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

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Business maps a domain error code onto an HTTP response. Unknown errors
// become a generic 500.
func Business(c *gin.Context, err error) {
	switch code := BusinessCode(err); code {
	case "empty_services", "missing_time_slot", "invalid_service", "invalid_date", "invalid_code":
		BadRequest(c, code, "Invalid booking request.")
	case "booking_not_found", "user_not_found":
		NotFound(c, code, "Not found.")
	case "stylist_unavailable", "invalid_transition":
		Conflict(c, code, "The requested change is not possible.")
	case "code_expired":
		BadRequest(c, code, "The verification code has expired.")
	case "points_underflow":
		Internal(c, code, "Loyalty balance inconsistency.")
	case "":
		Internal(c, "internal_error", "Something went wrong.")
	default:
		BadRequest(c, code, "Request rejected.")
	}
}
