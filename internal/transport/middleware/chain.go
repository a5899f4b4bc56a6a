package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so the first argument is the outermost wrapper.
// Nil entries are skipped, which lets callers switch middleware off with
// Optional.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// Optional returns mw when enabled is true and nil otherwise.
func Optional(enabled bool, mw Middleware) Middleware {
	if !enabled {
		return nil
	}
	return mw
}
