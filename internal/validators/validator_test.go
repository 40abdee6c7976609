// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/MKhiriev/go-validation-gate/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

// uploadedFiles builds real multipart file headers for field, one per
// content entry, by round-tripping them through multipart.Reader.
func uploadedFiles(t *testing.T, field string, contents ...[]byte) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i, content := range contents {
		part, err := w.CreateFormFile(field, "file"+string(rune('a'+i)))
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[field]
}

func newTestValidator(t *testing.T, rules gate.Rules) gate.Validator {
	t.Helper()
	factory, err := NewFactory(nil)
	require.NoError(t, err)
	v, err := factory.GetValidator(rules)
	require.NoError(t, err)
	return v
}

func validate(t *testing.T, v gate.Validator, input gate.Input) gate.Result {
	t.Helper()
	res, err := v.Validate(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// ---------------------------------------------------------------------------
// Factory
// ---------------------------------------------------------------------------

func TestNewFactory_WithProvidedEngine(t *testing.T) {
	engine, err := NewValidate()
	require.NoError(t, err)

	factory, err := NewFactory(engine)
	require.NoError(t, err)
	assert.Same(t, engine, factory.validate)
}

func TestGetValidator_EmptyRule(t *testing.T) {
	factory, err := NewFactory(nil)
	require.NoError(t, err)

	v, err := factory.GetValidator(gate.Rules{"name": "  "})
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrEmptyRule)
}

func TestGetValidator_CopiesRules(t *testing.T) {
	rules := gate.Rules{"name": "required"}
	v := newTestValidator(t, rules)

	rules["email"] = "required,email"

	res := validate(t, v, gate.Input{"name": "ann"})
	assert.True(t, res.Passed())
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestValidate_Passes(t *testing.T) {
	v := newTestValidator(t, gate.Rules{
		"name":  "required",
		"email": "required,email",
		"age":   "omitempty,gte=18",
	})

	res := validate(t, v, gate.Input{
		"name":  "ann",
		"email": "ann@example.com",
		"extra": "not ruled",
	})

	assert.True(t, res.Passed())
	assert.Empty(t, res.Messages())
}

func TestValidate_DefaultMessages(t *testing.T) {
	tests := []struct {
		name  string
		rules gate.Rules
		input gate.Input
		want  gate.Messages
	}{
		{
			name:  "missing field is required",
			rules: gate.Rules{"name": "required"},
			input: gate.Input{},
			want:  gate.Messages{"name": {"name is required"}},
		},
		{
			name:  "empty string is required",
			rules: gate.Rules{"name": "required"},
			input: gate.Input{"name": ""},
			want:  gate.Messages{"name": {"name is required"}},
		},
		{
			name:  "invalid email",
			rules: gate.Rules{"email": "required,email"},
			input: gate.Input{"email": "nope"},
			want:  gate.Messages{"email": {"email must be a valid e-mail address"}},
		},
		{
			name:  "string too short",
			rules: gate.Rules{"password": "required,min=8"},
			input: gate.Input{"password": "short"},
			want:  gate.Messages{"password": {"password must be at least 8"}},
		},
		{
			name:  "json number below bound",
			rules: gate.Rules{"age": "gte=18"},
			input: gate.Input{"age": float64(17)},
			want:  gate.Messages{"age": {"age must be greater than or equal to 18"}},
		},
		{
			name:  "oneof",
			rules: gate.Rules{"role": "oneof=admin member"},
			input: gate.Input{"role": "guest"},
			want:  gate.Messages{"role": {"role must be one of [admin member]"}},
		},
		{
			name:  "several fields fail",
			rules: gate.Rules{"name": "required", "email": "required,email"},
			input: gate.Input{"email": "nope"},
			want: gate.Messages{
				"name":  {"name is required"},
				"email": {"email must be a valid e-mail address"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate(t, newTestValidator(t, tt.rules), tt.input)
			assert.False(t, res.Passed())
			assert.Equal(t, tt.want, res.Messages())
		})
	}
}

func TestGetValidator_InvalidRule(t *testing.T) {
	tests := []struct {
		name string
		rule string
	}{
		{name: "unknown tag", rule: "required,no_such_rule"},
		{name: "unknown tag after omitempty", rule: "omitempty,no_such_rule"},
		{name: "unparsable parameter", rule: "min=abc"},
	}

	factory, err := NewFactory(nil)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := factory.GetValidator(gate.Rules{"name": tt.rule})
			assert.Nil(t, v)
			assert.ErrorIs(t, err, ErrInvalidRule)
		})
	}
}

func TestGetValidator_AcceptsRulesForNonStringValues(t *testing.T) {
	v := newTestValidator(t, gate.Rules{"tags": "unique", "age": "gte=18"})

	res := validate(t, v, gate.Input{"tags": []any{"a", "b"}, "age": float64(20)})
	assert.True(t, res.Passed(), "unexpected messages: %v", res.Messages())
}

func TestValidate_UnsupportedValueTypeFailsField(t *testing.T) {
	tests := []struct {
		name      string
		rules     gate.Rules
		input     gate.Input
		templates gate.Templates
		want      gate.Messages
	}{
		{
			name:  "oneof on a number",
			rules: gate.Rules{"role": "omitempty,oneof=admin member"},
			input: gate.Input{"role": 1.5},
			want:  gate.Messages{"role": {"role is invalid"}},
		},
		{
			name:  "min on a boolean",
			rules: gate.Rules{"name": "required,min=2,max=64"},
			input: gate.Input{"name": true},
			want:  gate.Messages{"name": {"name is invalid"}},
		},
		{
			name:      "type template",
			rules:     gate.Rules{"name": "required,min=2"},
			input:     gate.Input{"name": true},
			templates: gate.Templates{RuleType: "{label} has the wrong type"},
			want:      gate.Messages{"name": {"name has the wrong type"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, tt.rules).WithTemplates(tt.templates)

			res := validate(t, v, tt.input)
			assert.False(t, res.Passed())
			assert.Equal(t, tt.want, res.Messages())
		})
	}
}

func TestValidate_StringRule(t *testing.T) {
	v := newTestValidator(t, gate.Rules{"name": "required,string,min=2"})

	assert.True(t, validate(t, v, gate.Input{"name": "ann"}).Passed())

	for _, value := range []any{float64(10), true, []any{"ann"}, map[string]any{}} {
		res := validate(t, v, gate.Input{"name": value})
		assert.Equal(t, gate.Messages{"name": {"name must be a string"}}, res.Messages(), "value %v", value)
	}
}

// ---------------------------------------------------------------------------
// Labels and templates
// ---------------------------------------------------------------------------

func TestValidate_Labels(t *testing.T) {
	v := newTestValidator(t, gate.Rules{"email": "required,email"}).
		WithLabels(gate.Labels{"email": "E-mail address"})

	res := validate(t, v, gate.Input{"email": "nope"})
	assert.Equal(t, gate.Messages{"email": {"E-mail address must be a valid e-mail address"}}, res.Messages())
}

func TestValidate_TemplatePrecedence(t *testing.T) {
	rules := gate.Rules{"password": "required,min=8"}
	input := gate.Input{"password": "short"}

	tests := []struct {
		name      string
		templates gate.Templates
		want      string
	}{
		{
			name:      "default template",
			templates: gate.Templates{},
			want:      "Password must be at least 8",
		},
		{
			name:      "rule template",
			templates: gate.Templates{"min": "{label}: {param}+ characters"},
			want:      "Password: 8+ characters",
		},
		{
			name: "field template beats rule template",
			templates: gate.Templates{
				"min":      "{label}: {param}+ characters",
				"password": "{field} rejected by {rule}",
			},
			want: "password rejected by min",
		},
		{
			name: "field.rule template beats everything",
			templates: gate.Templates{
				"min":          "{label}: {param}+ characters",
				"password":     "{field} rejected by {rule}",
				"password.min": "pick a longer password",
			},
			want: "pick a longer password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, rules).
				WithLabels(gate.Labels{"password": "Password"}).
				WithTemplates(tt.templates)

			res := validate(t, v, input)
			assert.Equal(t, gate.Messages{"password": {tt.want}}, res.Messages())
		})
	}
}

func TestValidate_FallbackTemplate(t *testing.T) {
	v := newTestValidator(t, gate.Rules{"code": "hexadecimal"})

	res := validate(t, v, gate.Input{"code": "xyz"})
	assert.Equal(t, gate.Messages{"code": {"code is invalid"}}, res.Messages())
}

func TestWithLabelsAndTemplates_DoNotModifyReceiver(t *testing.T) {
	base := newTestValidator(t, gate.Rules{"name": "required"})
	labelled := base.WithLabels(gate.Labels{"name": "Full name"})
	templated := labelled.WithTemplates(gate.Templates{"required": "{label} missing"})

	assert.NotSame(t, base, labelled)
	assert.NotSame(t, labelled, templated)

	assert.Equal(t, gate.Messages{"name": {"name is required"}}, validate(t, base, gate.Input{}).Messages())
	assert.Equal(t, gate.Messages{"name": {"Full name is required"}}, validate(t, labelled, gate.Input{}).Messages())
	assert.Equal(t, gate.Messages{"name": {"Full name missing"}}, validate(t, templated, gate.Input{}).Messages())
}

// ---------------------------------------------------------------------------
// File rules
// ---------------------------------------------------------------------------

func TestValidate_FileRules(t *testing.T) {
	png := uploadedFiles(t, "avatar", pngBytes)[0]
	text := uploadedFiles(t, "avatar", []byte("just some plain text"))[0]
	two := uploadedFiles(t, "avatar", pngBytes, pngBytes)

	tests := []struct {
		name  string
		rules gate.Rules
		value any
		want  gate.Messages
	}{
		{
			name:  "single upload passes",
			rules: gate.Rules{"avatar": "required,upload"},
			value: png,
		},
		{
			name:  "missing upload is required",
			rules: gate.Rules{"avatar": "required,upload"},
			value: nil,
			want:  gate.Messages{"avatar": {"avatar is required"}},
		},
		{
			name:  "string is not an upload",
			rules: gate.Rules{"avatar": "required,upload"},
			value: "avatar.png",
			want:  gate.Messages{"avatar": {"avatar must be an uploaded file"}},
		},
		{
			name:  "within max size",
			rules: gate.Rules{"avatar": "upload,maxsize=1024"},
			value: png,
		},
		{
			name:  "over max size",
			rules: gate.Rules{"avatar": "upload,maxsize=8"},
			value: png,
			want:  gate.Messages{"avatar": {"avatar must not be larger than 8 bytes"}},
		},
		{
			name:  "sniffed mime type allowed",
			rules: gate.Rules{"avatar": "upload,mimes=image/png image/jpeg"},
			value: png,
		},
		{
			name:  "sniffed mime type rejected",
			rules: gate.Rules{"avatar": "upload,mimes=image/png image/jpeg"},
			value: text,
			want:  gate.Messages{"avatar": {"avatar must be a file of type: image/png image/jpeg"}},
		},
		{
			name:  "repeated upload passes",
			rules: gate.Rules{"avatar": "upload,mimes=image/png"},
			value: two,
		},
		{
			name:  "too many files",
			rules: gate.Rules{"avatar": "upload,max=1"},
			value: two,
			want:  gate.Messages{"avatar": {"avatar must be at most 1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate(t, newTestValidator(t, tt.rules), gate.Input{"avatar": tt.value})
			if tt.want == nil {
				assert.True(t, res.Passed(), "unexpected messages: %v", res.Messages())
				return
			}
			assert.False(t, res.Passed())
			assert.Equal(t, tt.want, res.Messages())
		})
	}
}

func TestAsFiles(t *testing.T) {
	header := &multipart.FileHeader{Filename: "a.png"}

	assert.Equal(t, Files{header}, asFiles(header))
	assert.Equal(t, Files{header, header}, asFiles([]*multipart.FileHeader{header, header}))
	assert.Nil(t, asFiles((*multipart.FileHeader)(nil)))
	assert.Equal(t, "text", asFiles("text"))
}
