package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bapa-labs/bapa-api/internal/store"
)

func TestRootStatusString(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "BAPA API is running!", rec.Body.String())
}

func TestHealthz(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestTestEnvReportsMode(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/test-env", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	require.Equal(t, "success", body["status"])
	require.Equal(t, "mock", body["mode"])
}

func TestTestDBProbesStore(t *testing.T) {
	e, st := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/test-db", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "success", body["status"])
	require.Empty(t, body["data"])

	_, err := st.Insert(context.Background(), store.TableUsers, store.Record{"email": "probe@x.com"})
	require.NoError(t, err)

	body = decode(t, doJSON(e, http.MethodGet, "/test-db", nil, nil))
	data := body["data"].([]any)
	require.Len(t, data, 1)
	require.Equal(t, "probe@x.com", data[0].(map[string]any)["email"])
}
