// Package api is the client side of the recommendation service.
//
// The service exposes two endpoints under a configurable base URL:
//
//	GET  /movies     -> {"movie_titles": ["...", ...]}
//	POST /recommend  <- {"movie_title": "..."}
//	                 -> {"recommendations": ["...", ...]}   on 2xx
//	                 -> {"message": "..."}                  on failure
//
// Consumers (the TUI and the CLI commands) depend on the Service interface;
// Client is the HTTP implementation. Client wraps both calls in a circuit
// breaker, caches successful recommendation lists for a configurable TTL and
// tags every request with an X-Request-ID header so it can be correlated with
// the debug log.
package api
