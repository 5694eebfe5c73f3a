package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bread-orders/internal/domain"
)

var kindStatus = map[domain.Kind]int{
	domain.KindValidation:   http.StatusBadRequest,
	domain.KindUnauthorized: http.StatusUnauthorized,
	domain.KindForbidden:    http.StatusForbidden,
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindConflict:     http.StatusConflict,
	domain.KindUnavailable:  http.StatusServiceUnavailable,
	domain.KindPolicy:       http.StatusBadRequest,
	domain.KindInternal:     http.StatusInternalServerError,
}

// StatusOf maps a service error to its HTTP status.
func StatusOf(err error) int {
	if s, ok := kindStatus[domain.KindOf(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error writes err as a JSON body with the mapped status. Internal
// errors also carry the underlying cause for diagnostics, mirroring the
// {message, error} shape the rest of the API uses.
func Error(c *gin.Context, err error) {
	body := gin.H{"message": domain.MessageOf(err)}
	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.KindInternal && de.Err != nil {
		body["error"] = de.Err.Error()
	}
	c.AbortWithStatusJSON(StatusOf(err), body)
}

// OK writes data with the given success status.
func OK(c *gin.Context, status int, data gin.H) {
	c.JSON(status, data)
}
