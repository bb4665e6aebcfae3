package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	accountdomain "github.com/munimji/munimji/internal/account/domain"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	pipelinedomain "github.com/munimji/munimji/internal/pipeline/domain"
	statementdomain "github.com/munimji/munimji/internal/statement/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string                    `json:"type"`
	Message string                    `json:"message"`
	Errors  []journaldomain.FieldError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware renders the last error a handler recorded.
// Handlers never write error bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &journaldomain.ValidationErrors{
		Errors: []journaldomain.FieldError{
			{Field: field, Code: code, Message: message},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	var vErr *journaldomain.ValidationErrors
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case isBadRequest(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isNotFound(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case isConflict(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, pipelinedomain.ErrAuthoringFailed):
		return http.StatusBadGateway, errorPayload{
			Type:    "authoring_failed",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func isBadRequest(err error) bool {
	for _, candidate := range []error{
		accountdomain.ErrInvalidCode,
		accountdomain.ErrInvalidName,
		accountdomain.ErrInvalidType,
		accountdomain.ErrInvalidClassification,
		journaldomain.ErrInvalidReviewer,
		pipelinedomain.ErrEmptyDescription,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

func isNotFound(err error) bool {
	for _, candidate := range []error{
		accountdomain.ErrNotFound,
		journaldomain.ErrNotFound,
		statementdomain.ErrAccountNotFound,
		gorm.ErrRecordNotFound,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

// Lifecycle guards are conflicts: the entry exists, its state just
// forbids the transition.
func isConflict(err error) bool {
	for _, candidate := range []error{
		accountdomain.ErrCodeExists,
		journaldomain.ErrEntryNotBalanced,
		journaldomain.ErrEntryNotReviewable,
		journaldomain.ErrEntryNotApproved,
		journaldomain.ErrEntryAlreadyPosted,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
