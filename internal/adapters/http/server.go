// Package http exposes the engine over a small JSON API. It is a host
// surface: it serializes access to the single-caller engine, translates
// engine errors to status codes, and records metrics, but holds no
// automaton logic of its own.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finitolabs/finito"
	"github.com/finitolabs/finito/internal/validator"
	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/observability"
)

// Server wraps an engine for HTTP access.
type Server struct {
	mu      sync.Mutex // the engine is single-caller; requests are serialized
	engine  *finito.Engine
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewHandler builds the HTTP handler for the engine.
func NewHandler(engine *finito.Engine, metrics *observability.Metrics, registry http.Handler, logger *slog.Logger) http.Handler {
	s := &Server{engine: engine, metrics: metrics, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if registry != nil {
		r.Handle("/metrics", registry)
	}
	r.Get("/machine", s.getMachine)
	r.Put("/machine", s.putMachine)
	r.Post("/accept", s.accept)
	r.Post("/trace", s.trace)
	r.Post("/validate", s.validate)
	r.Post("/closure", s.closure)
	r.Post("/analyze", s.analyze)
	return r
}

// NewMeteredHandler wires a fresh metrics registry into the handler.
func NewMeteredHandler(engine *finito.Engine, logger *slog.Logger) http.Handler {
	metrics, registry := observability.NewRegistered()
	return NewHandler(engine, metrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), logger)
}

type inputRequest struct {
	Input string `json:"input"`
}

type closureRequest struct {
	Symbols      string `json:"symbols"`
	MaxLength    int    `json:"max_length"`
	IncludeEmpty bool   `json:"include_empty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getMachine(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data, err := s.engine.SaveNative()
	s.mu.Unlock()
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// putMachine replaces the active machine with the native-schema body.
// A rejected body leaves the previous machine serving.
func (s *Server) putMachine(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err = s.engine.LoadNative(data)
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.ObserveLoad("native", err)
	}
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) accept(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	accepted, err := s.engine.Accept(req.Input)
	s.mu.Unlock()
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}
	if s.metrics != nil {
		s.metrics.ObserveSimulation(accepted)
	}
	s.respond(w, map[string]any{"input": req.Input, "accepted": accepted})
}

func (s *Server) trace(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	trace, err := s.engine.BuildTrace(req.Input)
	s.mu.Unlock()
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}
	if s.metrics != nil {
		s.metrics.ObserveSimulation(trace.Accepted)
	}
	s.respond(w, trace)
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	m := s.engine.Machine()
	s.mu.Unlock()

	errs, findings := validator.Check(m)
	resp := map[string]any{"valid": len(errs) == 0}
	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	for _, f := range findings {
		messages = append(messages, f.String())
	}
	resp["findings"] = messages
	s.respond(w, resp)
}

func (s *Server) closure(w http.ResponseWriter, r *http.Request) {
	var req closureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	strings, err := s.engine.Closure(req.Symbols, req.MaxLength, req.IncludeEmpty)
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}
	if s.metrics != nil {
		s.metrics.ClosureSize.Observe(float64(len(strings)))
	}
	s.respond(w, map[string]any{"count": len(strings), "strings": strings})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	s.respond(w, s.engine.Analyze(req.Input))
}

func (s *Server) respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.Debug("request failed", "status", status, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	var buf json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// statusFor maps engine errors to HTTP statuses. Everything the caller can
// fix is a 4xx; the engine has no 5xx failure modes of its own.
func statusFor(err error) int {
	var (
		parse   *automaton.ParseError
		schema  *automaton.SchemaError
		nondet  *automaton.NonDeterministicTransitionError
		limit   *automaton.ResourceLimitError
		unknown *automaton.UnknownStateError
	)
	switch {
	case errors.As(err, &parse), errors.As(err, &schema):
		return http.StatusBadRequest
	case errors.As(err, &nondet):
		return http.StatusUnprocessableEntity
	case errors.As(err, &limit):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.Is(err, automaton.ErrNoInitialState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
