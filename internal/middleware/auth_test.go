package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func runBearer(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	var captured string
	h := BearerKey()(func(c echo.Context) error {
		captured, _ = c.Get(ContextKeyAPIKey).(string)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, captured
}

func TestBearerKeyExtractsToken(t *testing.T) {
	rec, captured := runBearer(t, "Bearer bapa_abc123")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "bapa_abc123", captured)
}

func TestBearerKeyRejectsMalformedCredential(t *testing.T) {
	for _, header := range []string{
		"",                  // absent
		"bapa_abc123",       // no scheme
		"Basic dXNlcjpwdw==", // wrong scheme
		"Bearer",            // no token
		"Bearer ",           // empty token
		"Bearer a b",        // embedded whitespace
	} {
		rec, captured := runBearer(t, header)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.Empty(t, captured, "header %q", header)
		require.Contains(t, rec.Body.String(), "missing or malformed credential")
	}
}
