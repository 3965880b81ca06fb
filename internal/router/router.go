package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/bapa-labs/bapa-api/internal/handler"    // import the handlers that implement business logic
	"github.com/bapa-labs/bapa-api/internal/middleware" // import middleware for bearer credential extraction
)

// RegisterRoutes registers the unauthenticated diagnostic routes. The cache
// middleware wraps only the JSON diagnostics; the root status string and the
// health check stay uncached so they always reflect the live process.
func RegisterRoutes(e *echo.Echo, s *handler.StatusHandler, cache echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring systems.
	e.GET("/healthz", handler.Health)
	// Plain-text status string at the root, kept for parity with the
	// original deployment checks.
	e.GET("/", s.Root)
	// Environment and store diagnostics, cacheable since they change only
	// on restart (env) or slowly (store probe).
	e.GET("/test-env", s.TestEnv, cache)
	e.GET("/test-db", s.TestDB, cache)
}

// RegisterAPI registers the submission and profile endpoints. Submission is
// open; the profile group requires a well-formed bearer credential, which
// the BearerKey middleware extracts before the handler resolves it against
// the store.
func RegisterAPI(e *echo.Echo, sub *handler.SubmitHandler, prof *handler.ProfileHandler) {
	e.POST("/api/submit", sub.Submit)

	v1 := e.Group("/api/v1")
	v1.Use(middleware.BearerKey())
	v1.GET("/profile", prof.GetProfile)
}
