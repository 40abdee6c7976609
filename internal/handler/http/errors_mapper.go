package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-validation-gate/gate"
	"github.com/MKhiriev/go-validation-gate/internal/logger"
	"github.com/MKhiriev/go-validation-gate/internal/utils"
	"github.com/MKhiriev/go-validation-gate/internal/validators"
	"github.com/MKhiriev/go-validation-gate/models"
)

var errorStatusMap = map[error]int{
	gate.ErrDataInvalid: http.StatusUnprocessableEntity,

	ErrMalformedBody: http.StatusBadRequest,
	ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,

	validators.ErrEmptyRule:   http.StatusInternalServerError,
	validators.ErrInvalidRule: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers r with the status mapped from err. Rejected input is
// reported with its messages; server-side failures hide the error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var invalid *gate.DataInvalidError
	if errors.As(err, &invalid) {
		_, writeErr := utils.WriteJSON(w, models.ValidationErrorResponse{
			Message: invalid.Error(),
			Errors:  invalid.Messages(),
		}, http.StatusUnprocessableEntity)
		if writeErr != nil {
			log.Err(writeErr).Msg("failed to write validation errors")
		}
		return
	}

	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(status)
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
