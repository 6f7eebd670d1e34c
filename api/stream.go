package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/astroracle/starway/core"
)

// handleStream relays a full resolution as server-sent events. Every
// request-validation failure, an unreadable body included, emits a single
// error event; once the model stream is underway every failure mode
// arrives as ordinary result fragments carrying fallback text, so the
// event sequence always terminates.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var req divineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFragment(w, core.ErrorFragment("invalid json body"))
		flusher.Flush()
		return
	}

	oracleReq, err := toOracleRequest(req)
	if err != nil {
		writeFragment(w, core.ErrorFragment(err.Error()))
		flusher.Flush()
		return
	}

	ctx := r.Context()
	bundle := s.engine.Resolve(ctx, oracleReq)

	for fragment := range s.engine.InterpretStream(ctx, bundle) {
		select {
		case <-ctx.Done():
			s.logger.Debug("stream client disconnected")
			return
		default:
		}
		writeFragment(w, fragment)
		flusher.Flush()
	}
}

// writeFragment writes one fragment in SSE framing, the fragment kind as
// the event name and its JSON form as the data line.
func writeFragment(w http.ResponseWriter, f core.StreamFragment) {
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", f.Kind, data)
}
