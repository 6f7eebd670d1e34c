package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroracle/starway/ai"
)

type sseEvent struct {
	name string
	data string
}

func parseSSE(t *testing.T, body string) []sseEvent {
	t.Helper()
	var events []sseEvent
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		var e sseEvent
		for _, line := range strings.Split(block, "\n") {
			if name, ok := strings.CutPrefix(line, "event: "); ok {
				e.name = name
			}
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				e.data = data
			}
		}
		require.NotEmpty(t, e.name, "SSE block without event name: %q", block)
		events = append(events, e)
	}
	return events
}

func TestHandleStream(t *testing.T) {
	t.Run("relays deltas and completion", func(t *testing.T) {
		srv, gw := newTestServer(t)
		h := srv.Handler()
		gw.DefaultResponse = "SELECTED_ID: SS-001"
		gw.DefaultDeltas = []string{"星舟", "指向北方。"}

		rec := doJSON(t, h, http.MethodPost, "/api/v1/oracle/stream",
			`{"birth_date":"1990-04-24","question":"我该远行吗"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

		events := parseSSE(t, rec.Body.String())
		require.Len(t, events, 3)
		assert.Equal(t, "result", events[0].name)
		assert.JSONEq(t, `{"kind":"result","text":"星舟"}`, events[0].data)
		assert.Equal(t, "result", events[1].name)
		assert.Equal(t, "completed", events[2].name)
		assert.JSONEq(t, `{"kind":"completed"}`, events[2].data)
	})

	t.Run("gateway failure degrades to fallback plus completion", func(t *testing.T) {
		srv, gw := newTestServer(t)
		h := srv.Handler()
		gw.CompleteFunc = func(context.Context, string, string, string) (string, error) {
			return "", errors.New("selection down")
		}
		gw.CompleteStreamFunc = func(context.Context, string, string, string, ai.StreamFunc) error {
			return errors.New("stream down")
		}

		rec := doJSON(t, h, http.MethodPost, "/api/v1/oracle/stream",
			`{"birth_date":"1990-04-24","question":"我该远行吗"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		events := parseSSE(t, rec.Body.String())
		require.Len(t, events, 2)
		assert.Equal(t, "result", events[0].name)
		assert.Contains(t, events[0].data, "哈勃") // fallback carries the origin record
		assert.Equal(t, "completed", events[1].name)
	})

	t.Run("malformed body emits one error event", func(t *testing.T) {
		srv, gw := newTestServer(t)
		h := srv.Handler()

		rec := doJSON(t, h, http.MethodPost, "/api/v1/oracle/stream", `{`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

		events := parseSSE(t, rec.Body.String())
		require.Len(t, events, 1)
		assert.Equal(t, "error", events[0].name)
		assert.Equal(t, 0, gw.TotalCalls())
	})

	t.Run("bad birth_date emits one error event", func(t *testing.T) {
		srv, gw := newTestServer(t)
		h := srv.Handler()

		rec := doJSON(t, h, http.MethodPost, "/api/v1/oracle/stream",
			`{"birth_date":"nope"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		events := parseSSE(t, rec.Body.String())
		require.Len(t, events, 1)
		assert.Equal(t, "error", events[0].name)
		assert.Equal(t, 0, gw.TotalCalls())
	})
}
