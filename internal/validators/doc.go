// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the validation engine behind request gates.
//
// Core concepts:
//   - Factory: implements gate.ValidatorFactory on top of
//     go-playground/validator. Rule expressions are validator tag strings,
//     e.g. "required,email" or "omitempty,min=8".
//   - Validator: an immutable rule set with optional labels and message
//     templates. Every ruled field is checked with a single Var call.
//   - File rules: "upload", "maxsize=<bytes>" and "mimes=<type> <type>"
//     validate uploaded multipart files. Uploaded files are normalised to
//     [Files] before validation, so slice rules such as "max=3" count files.
//
// Message templates are looked up in this order: "<field>.<rule>", "<field>",
// "<rule>", the built-in defaults, and a generic fallback. Templates may use
// the {label}, {field}, {rule} and {param} placeholders.
package validators
