package gate

// Input maps a field key to its value. A value is either a decoded body
// value (string, number, slice, nested map) or an uploaded file handle.
type Input map[string]any

// Rules maps a field key to an engine-specific rule expression.
type Rules map[string]string

// Labels maps a field key to the human-readable name used in messages.
type Labels map[string]string

// Templates maps a field key or a rule name to a custom message template.
type Templates map[string]string

// Messages maps a field key to the failure messages produced for it.
type Messages map[string][]string

// Response is whatever the next handler in the chain returns.
// The gate passes it through without inspecting it.
type Response any

// MergeInput builds a fresh input bag from the parsed body and the uploaded
// files. Files are applied last, so a file wins over a body field with the
// same key. Neither source is modified.
func MergeInput(body, files Input) Input {
	input := make(Input, len(body)+len(files))
	for key, value := range body {
		input[key] = value
	}
	for key, value := range files {
		input[key] = value
	}

	return input
}
