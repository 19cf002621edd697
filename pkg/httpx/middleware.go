// Package httpx carries the small HTTP building blocks shared by the
// handlers: middleware chaining, JSON responses, the session cookie
// transport and the authenticate/authorize gates.
package httpx

import "net/http"

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so that the first middleware listed is
// the outermost, i.e. runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
