// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
)

const jsonInternalError = `{"error":"Internal server error"}`

// Recoverer turns a handler panic into a logged 500. Clients of the JSON
// endpoints get a JSON error body, everyone else plain text.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slog.Error("panic recovered",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", GetRequestID(r.Context()),
				"stack", string(debug.Stack()),
			)

			if !wantsJSON(r) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(jsonInternalError))
		}()

		next.ServeHTTP(w, r)
	})
}

// wantsJSON reports whether the client sent or asked for JSON, or hit an
// API path.
func wantsJSON(r *http.Request) bool {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/"):
		return true
	case strings.HasPrefix(r.Header.Get("Content-Type"), "application/json"):
		return true
	default:
		return strings.Contains(r.Header.Get("Accept"), "application/json")
	}
}
