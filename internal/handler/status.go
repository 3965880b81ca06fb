// Package handler exposes the HTTP handlers of the API. This file holds the
// unauthenticated diagnostic endpoints used to verify that the process came
// up with the environment and store it expects.
package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bapa-labs/bapa-api/internal/store"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// StatusHandler aggregates what the diagnostic endpoints need: the active
// store and the mode it was selected with at startup.
type StatusHandler struct {
	Store store.Store
	Mode  string // "live" or "mock"
}

func NewStatusHandler(s store.Store, mode string) *StatusHandler {
	return &StatusHandler{Store: s, Mode: mode}
}

// Root serves the plain-text status string at /.
func (h *StatusHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "BAPA API is running!")
}

// TestEnv reports which pieces of configuration are present without leaking
// their values.
func (h *StatusHandler) TestEnv(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":        "success",
		"mode":          h.Mode,
		"db_host_set":   os.Getenv("DB_HOST") != "",
		"db_name_set":   os.Getenv("DB_NAME") != "",
		"redis_set":     os.Getenv("REDIS_ADDR") != "" || os.Getenv("REDIS_HOST") != "",
		"broker_set":    os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "",
		"cache_enabled": os.Getenv("CACHE_ENABLED") != "false",
	})
}

// TestDB probes the store with a one-row select against the users table and
// echoes whatever came back. Store errors are surfaced verbatim; this is an
// internal diagnostic, not a public surface.
func (h *StatusHandler) TestDB(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	recs, err := h.Store.Select(ctx, store.TableUsers, nil, 1)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "data": jsonSafe(recs)})
}

// jsonSafe converts driver-level []byte column values to strings so the
// diagnostic output is readable JSON instead of base64.
func jsonSafe(recs []store.Record) []map[string]any {
	out := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		m := make(map[string]any, len(rec))
		for k, v := range rec {
			if b, ok := v.([]byte); ok {
				m[k] = string(b)
			} else {
				m[k] = v
			}
		}
		out = append(out, m)
	}
	return out
}
