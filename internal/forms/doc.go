// Package forms declares the request inputs accepted by the HTTP API.
//
// Each form is a gate.Declaration: it lists the rule expression of every
// field, and optionally the labels and message templates used when the
// input is rejected.
package forms
