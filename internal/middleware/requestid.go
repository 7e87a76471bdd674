package middleware

import (
	"context"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid"
)

// RequestIDHeader carries the request ID back to the client
const RequestIDHeader = "X-Request-ID"

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RequestID assigns each request a nanoid, stores it in the request context
// under the key the structured logger reads, and echoes it in the response
// header. An incoming X-Request-ID is honored for trace continuity.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			generated, err := gonanoid.Generate(requestIDAlphabet, 16)
			if err == nil {
				requestID = generated
			}
		}

		if requestID != "" {
			ctx := context.WithValue(r.Context(), "request_id", requestID)
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, requestID)
		}

		next.ServeHTTP(w, r)
	})
}
