package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(NewHandler().ServeHTTP))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestLiveTuning_ResultPerMessage(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(TuneMessage{
		TimeScaleMinutes: 60,
		Kp:               0.8,
		Ki:               0.3,
	}))

	var reply ResultMessage
	require.NoError(t, conn.ReadJSON(&reply))

	assert.Equal(t, TypeResult, reply.Type)
	assert.GreaterOrEqual(t, reply.DeficitKWh, 0.0)
	assert.GreaterOrEqual(t, reply.OverperformanceKWh, 0.0)
	assert.Greater(t, reply.PeakPowerKW, 0.0)
	assert.Empty(t, reply.Trace)
}

func TestLiveTuning_TraceOnRequest(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(TuneMessage{
		TimeScaleMinutes: 10,
		Kp:               1,
		CustomLoad:       "10,20,30",
		IncludeTrace:     true,
	}))

	var reply ResultMessage
	require.NoError(t, conn.ReadJSON(&reply))

	require.Len(t, reply.Trace, 3)
	assert.Equal(t, 10.0, reply.Trace[0].LoadKW)
	assert.Equal(t, 0.0, reply.Trace[0].ResponseKW)
}

func TestLiveTuning_ErrorKeepsConnectionOpen(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(TuneMessage{
		TimeScaleMinutes: 10,
		Kp:               1,
		CustomLoad:       "10,abc",
	}))

	var errReply ErrorMessage
	require.NoError(t, conn.ReadJSON(&errReply))
	assert.Equal(t, TypeError, errReply.Type)
	assert.Contains(t, errReply.Message, "custom_load")

	// A corrected parameter set on the same connection still works.
	require.NoError(t, conn.WriteJSON(TuneMessage{
		TimeScaleMinutes: 60,
		Kp:               0.8,
		Ki:               0.3,
	}))
	var reply ResultMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, TypeResult, reply.Type)
}
