// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrJobFetch indicates the job posting URL could not be fetched or parsed
type ErrJobFetch struct {
	URL   string
	Cause error
}

func (e *ErrJobFetch) Error() string {
	return fmt.Sprintf("failed to load job posting from %s: %v", e.URL, e.Cause)
}

func (e *ErrJobFetch) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *analyzer.InvalidInputError:
		return http.StatusBadRequest
	case *ErrJobFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
