// Package http implements the HTTP transport layer of the gate server.
//
// It extracts validation input (the parsed body and the uploaded files) from
// incoming requests, runs it through a [gate.Gate] in the withValidation
// middleware and maps rejected input to a 422 response. Request tracing,
// access logging and response compression are handled here as well, before
// requests reach the route handlers.
package http
