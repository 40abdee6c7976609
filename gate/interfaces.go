package gate

import "context"

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/gate_mock.go -package=mock

// Request is the view of an incoming request the gate needs.
type Request interface {
	// ParsedBody returns the decoded request body keyed by field name.
	// It returns nil or an empty map when the request has no body.
	ParsedBody() Input

	// UploadedFiles returns the uploaded files keyed by field name.
	UploadedFiles() Input
}

// Handler is the next element of the chain.
type Handler interface {
	Process(ctx context.Context, req Request) (Response, error)
}

// HandlerFunc adapts an ordinary function to the [Handler] interface.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

// Process calls f(ctx, req).
func (f HandlerFunc) Process(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// ValidatorFactory builds a validator for a rule set.
type ValidatorFactory interface {
	GetValidator(rules Rules) (Validator, error)
}

// Validator validates an input bag.
//
// WithLabels and WithTemplates return a configured validator and must not
// modify the receiver, so a validator can be shared between requests.
type Validator interface {
	WithLabels(labels Labels) Validator
	WithTemplates(templates Templates) Validator
	Validate(ctx context.Context, input Input) (Result, error)
}

// Result is the outcome of a validation.
type Result interface {
	// Passed reports whether the input satisfied every rule.
	Passed() bool

	// Messages returns the failure messages keyed by field.
	// It is empty when Passed returns true.
	Messages() Messages
}

// Declaration is implemented by a concrete use case to declare what the
// gate validates. Rules is mandatory; embed [Defaults] to get empty labels
// and templates.
type Declaration interface {
	Rules() Rules
	Labels() Labels
	Templates() Templates
}
