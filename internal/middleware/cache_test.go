package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/bapa-labs/bapa-api/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	body := []byte(`{"status":"success"}`)
	status, got, ok := decodePayload(encodePayload(http.StatusOK, body))
	require.True(t, ok)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, body, got)

	_, _, ok = decodePayload([]byte{1, 2})
	require.False(t, ok)
}

func TestCacheKeyDependsOnRouteAndQuery(t *testing.T) {
	e := echo.New()

	ctxFor := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath(req.URL.Path)
		return c
	}

	a := cacheKey("cache", ctxFor("/test-db"))
	require.Equal(t, a, cacheKey("cache", ctxFor("/test-db")))
	require.NotEqual(t, a, cacheKey("cache", ctxFor("/test-env")))
	require.NotEqual(t, a, cacheKey("cache", ctxFor("/test-db?x=1")))
}

func TestNewRedisCacheWithoutClientIsPassThrough(t *testing.T) {
	e := echo.New()
	calls := 0
	h := NewRedisCache(config.CacheConfig{Enabled: true}, nil)(func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"status": "success"})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test-db", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	// No Redis, no caching: the handler runs every time.
	require.Equal(t, 2, calls)
}
