package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce/internal/domain"
	usersvc "ecommerce/internal/service/user"
	"github.com/gin-gonic/gin"
)

// envelope is the response shape for every endpoint: a human-readable message
// plus the payload.
type envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{Message: message, Data: data})
}

// respondError maps the domain error taxonomy onto stable HTTP statuses. The
// message is the error text itself; InsufficientStockError already names
// every offending product.
func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusForError(err), envelope{Message: err.Error()})
}

func statusForError(err error) int {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
		duplicate  *domain.DuplicateError
		forbidden  *domain.ForbiddenError
		stock      *domain.InsufficientStockError
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, usersvc.ErrInvalidCredentials),
		errors.Is(err, usersvc.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusNotFound
	case errors.As(err, &notFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &validation), errors.As(err, &stock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parsePagination applies the listing defaults: page >= 1, limit 1-100.
func parsePagination(c *gin.Context) (page, limit int, err error) {
	page, err = positiveQueryInt(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err = positiveQueryInt(c, "limit", 10)
	if err != nil {
		return 0, 0, err
	}
	if limit > 100 {
		return 0, 0, &domain.ValidationError{Reason: "limit must be between 1 and 100"}
	}
	return page, limit, nil
}

func positiveQueryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &domain.ValidationError{Reason: name + " must be a positive integer"}
	}
	return n, nil
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, &domain.ValidationError{Reason: "invalid " + name}
	}
	return id, nil
}
