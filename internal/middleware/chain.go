package middleware

import "net/http"

// Chain applies middleware in the order given, the first one outermost.
//
//	handler := Chain(mux,
//	    RequestLogging, // sees every request
//	    Config(cfg),
//	    CSRFProtection, // reads the config set above
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
