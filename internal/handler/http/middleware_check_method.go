// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler to be registered with
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed when a path matches but the method does
// not. The gate server answers 404 Not Found instead, so a POST-only
// validation endpoint looks absent to a GET. Requests whose method is
// registered for the exact route pattern are served by router as usual.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		routes := router.Routes()
		i := slices.IndexFunc(routes, func(route chi.Route) bool {
			return route.Pattern == r.URL.Path
		})

		if i < 0 {
			http.NotFound(w, r)
			return
		}
		if _, ok := routes[i].Handlers[r.Method]; !ok {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
