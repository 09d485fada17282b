package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mamtahealth/mamta-backend/service"
)

// errorStatus maps the service error taxonomy to HTTP statuses. Anything
// unrecognized is an unexpected store failure and becomes a 500.
func errorStatus(err error) int {
	var ve *service.ValidationError
	var ue *service.UpstreamError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrDuplicateAccount):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrMissingAPIKey):
		return http.StatusInternalServerError
	case errors.As(err, &ue):
		if ue.StatusCode >= http.StatusBadRequest {
			return ue.StatusCode
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondError converts a failure to the `{"error": ...}` JSON body. Every
// failure is logged here, at the boundary, and never crashes the process.
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)

	evt := log.Warn()
	if status >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Msg("request failed")

	c.JSON(status, gin.H{"error": err.Error()})
}
