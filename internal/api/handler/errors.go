package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tempofy/time-tracking/internal/core/domain"
)

// ErrorResponse is the JSON error envelope shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Rule  string `json:"rule,omitempty"`
}

// NewErrorResponse renders err. Domain errors expose their code, rule and
// message; anything else is reported by its Error string.
func NewErrorResponse(err error) ErrorResponse {
	var de *domain.Error
	if errors.As(err, &de) {
		return ErrorResponse{Error: de.Message, Code: string(de.Code), Rule: string(de.Rule)}
	}
	return ErrorResponse{Error: err.Error()}
}

// StatusOf maps a domain error to its HTTP status. ok is false for errors
// outside the domain family.
func StatusOf(err error) (status int, ok bool) {
	if domain.IsValidation(err) {
		return http.StatusBadRequest, true
	}
	switch domain.CodeOf(err) {
	case domain.CodeInvalidCredentials:
		return http.StatusUnauthorized, true
	case domain.CodeForbidden:
		return http.StatusForbidden, true
	case domain.CodeNotFound:
		return http.StatusNotFound, true
	case domain.CodeAlreadyExists:
		return http.StatusConflict, true
	}
	return 0, false
}

// respondError writes known domain errors and hands the rest to the global
// error handler.
func respondError(c echo.Context, err error) error {
	status, ok := StatusOf(err)
	if !ok {
		return err
	}
	return c.JSON(status, NewErrorResponse(err))
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
