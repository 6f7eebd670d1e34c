// Copyright 2025 Starway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/astroracle/starway/core"
	"github.com/astroracle/starway/oracle"
)

// maxBatchRequests bounds one batch submission; each item may cost a
// model round trip.
const maxBatchRequests = 20

// Server exposes the resolution engine over HTTP.
type Server struct {
	engine  *oracle.Engine
	batch   *oracle.BatchResolver
	logger  *slog.Logger
	limiter *RateLimiter
	addr    string

	httpSrv *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address. Default is ":8080".
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithServerLogger sets a custom logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// WithRateLimit replaces the default limiter on model-consuming routes.
// A zero or negative limit disables rate limiting.
func WithRateLimit(limit int, span time.Duration) ServerOption {
	return func(s *Server) {
		if limit <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = NewRateLimiter(limit, span)
	}
}

// NewServer creates an HTTP server over an engine. The batch resolver is
// owned by the server and released on Shutdown.
func NewServer(engine *oracle.Engine, opts ...ServerOption) (*Server, error) {
	if engine == nil {
		return nil, oracle.ErrEngineRequired
	}

	batch, err := oracle.NewBatchResolver(engine)
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:  engine,
		batch:   batch,
		logger:  slog.Default().With("component", "api-server"),
		limiter: NewRateLimiter(60, time.Hour),
		addr:    ":8080",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler builds the full route table wrapped in CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/divine/origin", s.handleOrigin)
	mux.HandleFunc("POST /api/v1/divine/celestial", s.handleCelestial)
	mux.HandleFunc("POST /api/v1/divine/inquiry", limited(s.limiter, s.handleInquiry))
	mux.HandleFunc("POST /api/v1/divine", limited(s.limiter, s.handleDivine))
	mux.HandleFunc("POST /api/v1/divine/batch", limited(s.limiter, s.handleBatch))
	mux.HandleFunc("POST /api/v1/oracle/stream", limited(s.limiter, s.handleStream))

	mux.HandleFunc("GET /api/v1/starships", s.handleStarships)
	mux.HandleFunc("GET /api/v1/starships/{id}", s.handleStarshipDetail)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	return corsMiddleware(mux)
}

// ListenAndServe blocks serving HTTP until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http api listening", "addr", s.addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and releases the batch pool.
func (s *Server) Shutdown(ctx context.Context) error {
	s.batch.Release()
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// corsMiddleware allows browser calls from localhost dev servers plus any
// origin listed in the comma-separated CORS_ORIGINS env var.
func corsMiddleware(next http.Handler) http.Handler {
	allowed := map[string]bool{
		"http://localhost:3000": true,
		"http://localhost:5173": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowed[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type divineRequest struct {
	BirthDate string `json:"birth_date"`
	Date      string `json:"date"`
	Question  string `json:"question"`
	UserName  string `json:"user_name"`
}

// bundlePayload is the wire form of a resolution bundle. Scores in the
// match_scores map mirror the per-axis Score fields for clients that only
// chart numbers.
type bundlePayload struct {
	Origin         core.MatchResult   `json:"origin"`
	Celestial      core.MatchResult   `json:"celestial"`
	Inquiry        core.MatchResult   `json:"inquiry"`
	MatchScores    map[string]float64 `json:"match_scores"`
	Interpretation string             `json:"interpretation,omitempty"`
}

func toPayload(bundle core.ResolutionBundle) bundlePayload {
	return bundlePayload{
		Origin:    bundle.Origin,
		Celestial: bundle.Celestial,
		Inquiry:   bundle.Inquiry,
		MatchScores: map[string]float64{
			string(core.BasisOrigin):    bundle.Origin.Score,
			string(core.BasisCelestial): bundle.Celestial.Score,
			string(core.BasisInquiry):   bundle.Inquiry.Score,
		},
	}
}

func (s *Server) handleOrigin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDivineRequest(w, r)
	if !ok {
		return
	}
	birth, err := core.ParseDate(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid birth_date, want YYYY-MM-DD")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.ResolveOrigin(birth))
}

func (s *Server) handleCelestial(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDivineRequest(w, r)
	if !ok {
		return
	}
	date := time.Now()
	if req.Date != "" {
		var err error
		if date, err = core.ParseDate(req.Date); err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
	}
	writeJSON(w, http.StatusOK, s.engine.ResolveCelestial(date))
}

func (s *Server) handleInquiry(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDivineRequest(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.ResolveInquiry(r.Context(), req.Question))
}

func (s *Server) handleDivine(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDivineRequest(w, r)
	if !ok {
		return
	}
	oracleReq, err := toOracleRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bundle := s.engine.Resolve(r.Context(), oracleReq)
	payload := toPayload(bundle)
	payload.Interpretation = s.engine.Interpret(r.Context(), bundle)
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Requests []divineRequest `json:"requests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if len(body.Requests) == 0 {
		writeError(w, http.StatusBadRequest, "requests is required")
		return
	}
	if len(body.Requests) > maxBatchRequests {
		writeError(w, http.StatusBadRequest, "too many requests in one batch")
		return
	}

	oracleReqs := make([]oracle.Request, len(body.Requests))
	for i, item := range body.Requests {
		req, err := toOracleRequest(item)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		oracleReqs[i] = req
	}

	bundles := s.batch.ResolveAll(r.Context(), oracleReqs)
	results := make([]bundlePayload, len(bundles))
	for i := range bundles {
		results[i] = toPayload(bundles[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleStarships(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"starships": s.engine.Catalog().Records(),
	})
}

func (s *Server) handleStarshipDetail(w http.ResponseWriter, r *http.Request) {
	record, ok := s.engine.Catalog().Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "starship not found")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"starships": s.engine.Catalog().Len(),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "starway",
		"message": "星途占卜 API",
	})
}

// toOracleRequest validates wire input into an engine request. birth_date
// is required; date (the celestial reference) is optional and defaults to
// today.
func toOracleRequest(req divineRequest) (oracle.Request, error) {
	birth, err := core.ParseDate(req.BirthDate)
	if err != nil {
		return oracle.Request{}, errors.New("invalid birth_date, want YYYY-MM-DD")
	}

	out := oracle.Request{
		BirthDate: birth,
		Question:  req.Question,
		UserName:  req.UserName,
	}
	if req.Date != "" {
		now, err := core.ParseDate(req.Date)
		if err != nil {
			return oracle.Request{}, errors.New("invalid date, want YYYY-MM-DD")
		}
		out.Now = now
	}
	return out, nil
}

func decodeDivineRequest(w http.ResponseWriter, r *http.Request) (divineRequest, bool) {
	var req divineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return divineRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
