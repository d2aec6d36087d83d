package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFoundError reports a lookup by id that yielded nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}

// PropertyNotFoundError reports an edit targeting a property name the
// product does not carry. It aborts any in-flight recursive propagation.
type PropertyNotFoundError struct {
	Name      string
	ProductID string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("custom property '%s' not found for product '%s'", e.Name, e.ProductID)
}

// ValidationError reports malformed identifiers or out-of-range fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StatusFor maps a domain error onto an HTTP status code.
func StatusFor(err error) int {
	var nf *NotFoundError
	var pnf *PropertyNotFoundError
	var ve *ValidationError

	switch {
	case errors.As(err, &nf), errors.As(err, &pnf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes a JSON error response for err using the domain mapping.
// Store connectivity failures and anything unrecognized come out as 500.
func HandleError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	c.JSON(status, gin.H{"error": msg})
}
