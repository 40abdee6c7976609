package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-validation-gate/gate"
	"github.com/MKhiriev/go-validation-gate/internal/config"
)

const (
	mediaTypeJSON      = "application/json"
	mediaTypeMultipart = "multipart/form-data"
	mediaTypeForm      = "application/x-www-form-urlencoded"
)

var _ gate.Request = (*gateRequest)(nil)

// gateRequest is the gate's view of an *http.Request.
type gateRequest struct {
	r     *http.Request
	body  gate.Input
	files gate.Input
}

func (g *gateRequest) ParsedBody() gate.Input {
	return g.body
}

func (g *gateRequest) UploadedFiles() gate.Input {
	return g.files
}

// newGateRequest extracts the validation input of r according to its media
// type. The body of r stays readable for the next handler: JSON bodies are
// restored, form bodies remain available through r.Form and r.MultipartForm.
//
// Bodies larger than limits.MaxBodyBytes yield ErrBodyTooLarge, bodies that
// cannot be decoded yield ErrMalformedBody. Requests without a body or with
// another media type produce empty input.
func newGateRequest(w http.ResponseWriter, r *http.Request, limits config.Validation) (*gateRequest, error) {
	req := &gateRequest{
		r:     r,
		body:  gate.Input{},
		files: gate.Input{},
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" || r.Body == nil || r.Body == http.NoBody {
		return req, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if limits.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBodyBytes)
	}

	switch mediaType {
	case mediaTypeJSON:
		err = req.readJSON()
	case mediaTypeMultipart:
		err = req.readMultipart(limits.MaxMultipartMemory)
	case mediaTypeForm:
		err = req.readForm()
	}
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (g *gateRequest) readJSON() error {
	data, err := io.ReadAll(g.r.Body)
	if err != nil {
		return bodyError(err)
	}
	// restore request body
	g.r.Body = io.NopCloser(bytes.NewReader(data))

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var body map[string]any
	if err = json.Unmarshal(data, &body); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if body != nil {
		g.body = body
	}
	return nil
}

func (g *gateRequest) readMultipart(maxMemory int64) error {
	if err := g.r.ParseMultipartForm(maxMemory); err != nil {
		return bodyError(err)
	}

	form := g.r.MultipartForm
	for field, values := range form.Value {
		g.body[field] = formValue(values)
	}
	for field, headers := range form.File {
		g.files[field] = uploadedFile(headers)
	}
	return nil
}

func (g *gateRequest) readForm() error {
	if err := g.r.ParseForm(); err != nil {
		return bodyError(err)
	}

	for field, values := range g.r.PostForm {
		g.body[field] = formValue(values)
	}
	return nil
}

// bodyError classifies an error raised while reading the request body.
func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

// formValue collapses a single form value to a string.
func formValue(values []string) any {
	if len(values) == 1 {
		return values[0]
	}
	return values
}

// uploadedFile collapses a single upload to its header.
func uploadedFile(headers []*multipart.FileHeader) any {
	if len(headers) == 1 {
		return headers[0]
	}
	return headers
}
