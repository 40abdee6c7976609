package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-validation-gate/internal/forms"
	"github.com/MKhiriev/go-validation-gate/internal/logger"
	"github.com/MKhiriev/go-validation-gate/internal/utils"
	"github.com/MKhiriev/go-validation-gate/models"
)

func (h *Handler) sendContactMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var message models.ContactMessage
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
			return
		}
	} else {
		message.Email = r.PostFormValue(forms.FieldEmail)
		message.Subject = r.PostFormValue(forms.FieldSubject)
		message.Message = r.PostFormValue(forms.FieldMessage)
	}

	attachments := 0
	if r.MultipartForm != nil {
		attachments = len(r.MultipartForm.File[forms.FieldAttach])
	}

	receipt := models.ContactReceipt{
		ID:          h.ids.Generate(),
		Attachments: attachments,
	}
	log.Info().
		Str("receipt_id", receipt.ID).
		Str("subject", message.Subject).
		Int("attachments", attachments).
		Msg("contact message accepted")

	if _, err := utils.WriteJSON(w, receipt, http.StatusAccepted); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}
