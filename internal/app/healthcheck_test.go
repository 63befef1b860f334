package app

import (
	"net/http"
	"testing"

	"github.com/motinhapro/CinemaWeb/api"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	app, _ := newTestApplication(t)

	rr := executeRequest(t, app, http.MethodGet, "/health", nil)

	requireStatus(t, rr, http.StatusOK)

	var resp api.HealthcheckResponse
	decodeResponse(t, rr, &resp)

	require.Equal(t, "available", resp.Status)
	require.Equal(t, "test", resp.SystemInfo.Environment)
}
