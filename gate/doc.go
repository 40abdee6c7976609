// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate implements a request-validation gate: a middleware unit that
// validates the input of an incoming request before handing it to the next
// handler in the chain.
//
// Core concepts:
//   - Input: the merged view of the parsed request body and the uploaded
//     files. Uploaded files override body fields with the same key.
//   - Declaration: the rule set, labels and message templates of a concrete
//     use case. Embed [Defaults] to declare rules only, or use [Config].
//   - ValidatorFactory / Validator / Result: the pluggable validation engine.
//     The gate never evaluates rules itself.
//
// Usage:
//
//	g, err := gate.New(factory, signUpForm{})
//	if err != nil {
//		return err
//	}
//	resp, err := g.Process(ctx, req, next)
//	if errors.Is(err, gate.ErrDataInvalid) {
//		// map to a 422 response with the field messages
//	}
//
// A Gate holds no per-call state and may be shared between concurrent
// requests, provided the factory and validators it uses are reentrant.
package gate
