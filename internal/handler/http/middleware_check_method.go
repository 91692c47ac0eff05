// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists but does not serve the requested method answers 404
// instead of chi's 405, so unsupported methods look like unknown routes.
// Only exact route patterns are compared.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
