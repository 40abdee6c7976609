package gate

import (
	"context"

	"github.com/MKhiriev/go-validation-gate/internal/logger"
)

// Gate validates request input against a [Declaration] and only lets valid
// requests through to the next handler.
type Gate struct {
	factory     ValidatorFactory
	declaration Declaration
}

// New creates a Gate. Both the factory and the declaration are required.
func New(factory ValidatorFactory, declaration Declaration) (*Gate, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if declaration == nil {
		return nil, ErrNilDeclaration
	}

	return &Gate{
		factory:     factory,
		declaration: declaration,
	}, nil
}

// Process validates the input of req and, when it passes, delegates to next
// with the unmodified request, returning whatever next returns.
//
// When the input fails validation Process returns a [*DataInvalidError] with
// the validator's messages and next is not called. Errors from the factory,
// the validator or next are returned as is.
func (g *Gate) Process(ctx context.Context, req Request, next Handler) (Response, error) {
	log := logger.FromContext(ctx)

	input := MergeInput(req.ParsedBody(), req.UploadedFiles())

	rules := g.declaration.Rules()
	labels := g.declaration.Labels()
	templates := g.declaration.Templates()

	validator, err := g.factory.GetValidator(rules)
	if err != nil {
		return nil, err
	}
	validator = validator.WithLabels(labels).WithTemplates(templates)

	result, err := validator.Validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if !result.Passed() {
		messages := result.Messages()
		log.Debug().Str("func", "*Gate.Process").
			Int("failed_fields", len(messages)).
			Msg("request data rejected")
		return nil, NewDataInvalidError(messages)
	}

	log.Debug().Str("func", "*Gate.Process").Msg("request data passed validation")

	return next.Process(ctx, req)
}

// Middleware binds g in front of next.
func (g *Gate) Middleware(next Handler) Handler {
	return HandlerFunc(func(ctx context.Context, req Request) (Response, error) {
		return g.Process(ctx, req, next)
	})
}
