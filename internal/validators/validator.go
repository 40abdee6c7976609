package validators

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-validation-gate/gate"
	"github.com/go-playground/validator/v10"
)

var _ gate.ValidatorFactory = (*Factory)(nil)

// Factory builds rule validators that share one go-playground engine.
type Factory struct {
	validate *validator.Validate
}

// NewFactory returns a [gate.ValidatorFactory] on top of validate.
// When validate is nil a new engine with the custom rules is created.
func NewFactory(validate *validator.Validate) (*Factory, error) {
	if validate == nil {
		v, err := NewValidate()
		if err != nil {
			return nil, err
		}
		validate = v
	}

	return &Factory{validate: validate}, nil
}

// NewValidate creates a go-playground engine with the custom rules registered.
func NewValidate() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerRules(validate); err != nil {
		return nil, fmt.Errorf("error registering custom rules: %w", err)
	}
	return validate, nil
}

// GetValidator returns a validator for rules. Every rule expression must be
// non-empty and name only known rules with usable parameters.
func (f *Factory) GetValidator(rules gate.Rules) (gate.Validator, error) {
	for field, rule := range rules {
		if strings.TrimSpace(rule) == "" {
			return nil, fmt.Errorf("%w for field %q", ErrEmptyRule, field)
		}
		if err := f.compile(rule); err != nil {
			return nil, fmt.Errorf("%w for field %q", err, field)
		}
	}

	return &ruleValidator{
		validate:  f.validate,
		rules:     maps.Clone(rules),
		labels:    gate.Labels{},
		templates: gate.Templates{},
	}, nil
}

// compile runs rule once against an empty string. go-playground panics on
// unknown tags and unparsable parameters; panics about the type of the value
// are left to Validate, where the real value is known.
func (f *Factory) compile(rule string) (err error) {
	defer func() {
		if r := recover(); r != nil && !isFieldTypePanic(r) {
			err = fmt.Errorf("%w %q: %v", ErrInvalidRule, rule, r)
		}
	}()

	_ = f.validate.Var("", rule)
	return nil
}

func isFieldTypePanic(r any) bool {
	msg, ok := r.(string)
	return ok && strings.HasPrefix(msg, "Bad field type")
}

type ruleValidator struct {
	validate  *validator.Validate
	rules     gate.Rules
	labels    gate.Labels
	templates gate.Templates
}

func (v *ruleValidator) WithLabels(labels gate.Labels) gate.Validator {
	clone := *v
	clone.labels = maps.Clone(labels)
	return &clone
}

func (v *ruleValidator) WithTemplates(templates gate.Templates) gate.Validator {
	clone := *v
	clone.templates = maps.Clone(templates)
	return &clone
}

// Validate checks every ruled field of input. Fields without a rule are
// ignored; a ruled field missing from input is validated as nil.
//
// A value of a type its rule cannot evaluate fails that field with the
// "type" rule, rendered through the usual template lookup.
func (v *ruleValidator) Validate(ctx context.Context, input gate.Input) (gate.Result, error) {
	messages := gate.Messages{}

	for _, field := range slices.Sorted(maps.Keys(v.rules)) {
		rule := v.rules[field]

		err := v.check(ctx, asFiles(input[field]), rule)
		if err == nil {
			continue
		}

		if errors.Is(err, errUnsupportedValue) {
			messages[field] = append(messages[field],
				renderMessage(field, RuleType, "", v.labels, v.templates))
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidRule, rule, err)
		}
		for _, fe := range fieldErrs {
			messages[field] = append(messages[field],
				renderMessage(field, fe.Tag(), fe.Param(), v.labels, v.templates))
		}
	}

	return &result{messages: messages}, nil
}

// check runs one rule expression. Rules were compiled by GetValidator, so a
// panic here comes from the value and is reported as errUnsupportedValue.
func (v *ruleValidator) check(ctx context.Context, value any, rule string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errUnsupportedValue, r)
		}
	}()

	return v.validate.VarCtx(ctx, value, rule)
}

type result struct {
	messages gate.Messages
}

func (r *result) Passed() bool {
	return len(r.messages) == 0
}

func (r *result) Messages() gate.Messages {
	return r.messages
}
