package validators

import (
	"strings"

	"github.com/MKhiriev/go-validation-gate/gate"
)

const fallbackTemplate = "{label} is invalid"

var defaultTemplates = map[string]string{
	"required":  "{label} is required",
	"email":     "{label} must be a valid e-mail address",
	"url":       "{label} must be a valid URL",
	"uuid":      "{label} must be a valid UUID",
	"min":       "{label} must be at least {param}",
	"max":       "{label} must be at most {param}",
	"len":       "{label} must have a length of {param}",
	"gte":       "{label} must be greater than or equal to {param}",
	"lte":       "{label} must be less than or equal to {param}",
	"gt":        "{label} must be greater than {param}",
	"lt":        "{label} must be less than {param}",
	"oneof":     "{label} must be one of [{param}]",
	"numeric":   "{label} must be numeric",
	"number":    "{label} must be a number",
	"alpha":     "{label} must contain only letters",
	"alphanum":  "{label} must contain only letters and digits",
	"boolean":   "{label} must be a boolean",
	RuleString:  "{label} must be a string",
	RuleUpload:  "{label} must be an uploaded file",
	RuleMaxSize: "{label} must not be larger than {param} bytes",
	RuleMimes:   "{label} must be a file of type: {param}",
}

// renderMessage picks the most specific template for a failed rule and fills
// its placeholders.
func renderMessage(field, rule, param string, labels gate.Labels, templates gate.Templates) string {
	label, ok := labels[field]
	if !ok || label == "" {
		label = field
	}

	return strings.NewReplacer(
		"{label}", label,
		"{field}", field,
		"{rule}", rule,
		"{param}", param,
	).Replace(lookupTemplate(field, rule, templates))
}

func lookupTemplate(field, rule string, templates gate.Templates) string {
	for _, key := range []string{field + "." + rule, field, rule} {
		if tmpl, ok := templates[key]; ok {
			return tmpl
		}
	}
	if tmpl, ok := defaultTemplates[rule]; ok {
		return tmpl
	}
	return fallbackTemplate
}
