package v1

import (
	"errors"
	"net/http"

	"github.com/scastellanosl/coinary-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"an ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errKindInvalid      = errors.New("the kind parameter must be INCOME or EXPENSE")
	errMonthNotSet      = errors.New("the month query parameter must be set in YYYY-MM format")
	errTimeInvalid      = errors.New("the time query parameter must be an RFC3339 timestamp or a YYYY-MM-DD date")
	errWindowNotANumber = errors.New("the window query parameter must be a whole number")
)
