// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddress = errors.New("no HTTP address is configured")
	errNoRouter  = errors.New("no HTTP router is provided")
)
