package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-validation-gate/internal/forms"
	"github.com/MKhiriev/go-validation-gate/internal/logger"
	"github.com/MKhiriev/go-validation-gate/internal/utils"
	"github.com/MKhiriev/go-validation-gate/models"
	"github.com/gabriel-vasile/mimetype"
)

const defaultRole = "member"

func (h *Handler) signUpUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := decodeUser(r)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
		return
	}
	if user.Role == "" {
		user.Role = defaultRole
	}

	registered := models.RegisteredUser{
		ID:    h.ids.Generate(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	log.Info().Str("user_id", registered.ID).Str("role", registered.Role).Msg("user signed up")

	if _, err = utils.WriteJSON(w, registered, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	file, header, err := r.FormFile(forms.FieldAvatar)
	if err != nil {
		log.Err(err).Msg("no avatar in request")
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to read avatar: %w", err))
		return
	}

	uploaded := models.UploadResponse{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: mtype.String(),
	}
	log.Info().Str("filename", uploaded.Filename).Int64("size", uploaded.Size).Msg("avatar uploaded")

	if _, err = utils.WriteJSON(w, uploaded, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

// decodeUser reads the sign-up input from a JSON body or from form values.
func decodeUser(r *http.Request) (models.User, error) {
	var user models.User
	if isJSON(r) {
		err := json.NewDecoder(r.Body).Decode(&user)
		return user, err
	}

	user.Name = r.PostFormValue(forms.FieldName)
	user.Email = r.PostFormValue(forms.FieldEmail)
	user.Password = r.PostFormValue(forms.FieldPassword)
	user.Role = r.PostFormValue(forms.FieldRole)
	return user, nil
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == mediaTypeJSON
}
