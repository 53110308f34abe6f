package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds the service layer reports upward. Controllers translate them
// to HTTP status codes at the boundary.
var (
	ErrNotFound   = errors.New("entity not found")
	ErrBadRequest = errors.New("bad request")
	ErrForbidden  = errors.New("you do not have permission")
)

// RespondServiceError maps a service error kind to its HTTP status.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, ErrBadRequest):
		RespondError(c, http.StatusUnprocessableEntity, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}
