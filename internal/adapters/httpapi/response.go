package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondDomainError maps a domain sentinel to its status and code
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrWorkspaceNotFound):
		RespondError(c, http.StatusNotFound, "workspace_not_found", err)
	case errors.Is(err, domain.ErrFixtureNotFound):
		RespondError(c, http.StatusNotFound, "fixture_not_found", err)
	case errors.Is(err, domain.ErrSavedNotFound):
		RespondError(c, http.StatusNotFound, "saved_not_found", err)
	case errors.Is(err, domain.ErrUnknownTemplate):
		RespondError(c, http.StatusNotFound, "unknown_fixture", err)
	case errors.Is(err, domain.ErrUnknownPreset):
		RespondError(c, http.StatusNotFound, "unknown_preset", err)
	case errors.Is(err, domain.ErrUnknownControl):
		RespondError(c, http.StatusBadRequest, "unknown_control", err)
	case errors.Is(err, domain.ErrIncompleteFixture):
		RespondError(c, http.StatusUnprocessableEntity, "incomplete_fixture", err)
	case errors.Is(err, domain.ErrNothingToSave):
		RespondError(c, http.StatusUnprocessableEntity, "nothing_to_save", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
