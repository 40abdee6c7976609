package models

// ValidationErrorResponse is the body of a 422 response. It carries the
// fixed summary of the rejection and the failure messages keyed by field.
type ValidationErrorResponse struct {
	// Message is the human-readable summary of the failure.
	Message string `json:"message"`

	// Errors maps every rejected field to its failure messages.
	Errors map[string][]string `json:"errors"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse exposes the build metadata of the running binary.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// UploadResponse describes an accepted file.
type UploadResponse struct {
	// Filename is the name sent by the client.
	Filename string `json:"filename"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// ContentType is sniffed from the file content, not taken from the
	// client's headers.
	ContentType string `json:"content_type"`
}

// ContactReceipt acknowledges an accepted contact message.
type ContactReceipt struct {
	ID          string `json:"id"`
	Attachments int    `json:"attachments"`
}

// ErrorResponse is the body of every other error response.
type ErrorResponse struct {
	Message string `json:"message"`
}
