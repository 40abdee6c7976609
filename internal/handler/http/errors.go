// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while extracting validation input from an
// incoming request. Callers can match against them with [errors.Is].
var (
	// ErrMalformedBody is returned when the request body cannot be decoded
	// for its declared media type, or when a JSON body is not an object.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is returned when the request body exceeds the
	// configured MaxBodyBytes limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
