// Package http exposes the engine as a JSON API: run sorts, fetch stored
// traces, and stream replays over SSE.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sortviz/sortviz/internal/logging"
	"github.com/sortviz/sortviz/pkg/domain"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Engine defines the interface for the Sortviz core.
type Engine interface {
	Sort(ctx context.Context, arr []int) (domain.Trace, error)
}

// TraceStore defines the persistence interface the server needs.
// Both the Redis and file adapters satisfy it.
type TraceStore interface {
	Save(ctx context.Context, id string, trace domain.Trace) error
	Load(ctx context.Context, id string) (domain.Trace, error)
	List(ctx context.Context) ([]string, error)
}

// Server handles the HTTP surface of Sortviz.
type Server struct {
	engine  Engine
	store   TraceStore
	logger  *slog.Logger
	metrics http.Handler
	delay   time.Duration
}

// Option configures the server.
type Option func(*Server)

// WithStore enables trace persistence. Without a store, POST /sort still
// works but traces are not retrievable later.
func WithStore(store TraceStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsHandler mounts a metrics endpoint at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithStreamDelay paces SSE replays. Zero streams as fast as the client reads.
func WithStreamDelay(d time.Duration) Option {
	return func(s *Server) {
		s.delay = d
	}
}

// NewHandler builds the router. It also loads and validates the embedded
// OpenAPI document so a malformed contract fails at startup, not when a
// client asks for it.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	s := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	specCtx := context.Background()
	loader := &openapi3.Loader{Context: specCtx}
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi spec: %w", err)
	}
	if err := doc.Validate(specCtx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}

	r := chi.NewRouter()

	r.Post("/sort", s.handleSort)
	r.Get("/traces", s.handleListTraces)
	r.Get("/traces/{id}", s.handleGetTrace)
	r.Get("/traces/{id}/events", s.handleStreamTrace)
	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	return r, nil
}

// SortRequest is the POST /sort body.
type SortRequest struct {
	// Array is kept loosely typed so non-numeric elements produce a clean
	// 400 instead of a json.UnmarshalTypeError with no context.
	Array []any `json:"array"`
}

// SortResponse carries the trace plus the derived sorted array.
type SortResponse struct {
	ID     string       `json:"id,omitempty"`
	Steps  domain.Trace `json:"steps"`
	Sorted []int        `json:"sorted"`
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	var body SortRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	arr, err := domain.ParseElements(body.Array)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid array: %v", err), http.StatusBadRequest)
		return
	}

	trace, err := s.engine.Sort(r.Context(), arr)
	if err != nil {
		http.Error(w, fmt.Sprintf("Sort error: %v", err), http.StatusInternalServerError)
		return
	}

	resp := SortResponse{Steps: trace, Sorted: sortedOf(arr, trace)}

	if s.store != nil {
		resp.ID = uuid.NewString()
		if err := s.store.Save(r.Context(), resp.ID, trace); err != nil {
			// Sorting succeeded; losing persistence should not fail the
			// request. Log and return the trace without an ID.
			s.logger.Warn("failed to persist trace", "error", err)
			resp.ID = ""
		}
	}

	s.writeJSON(w, resp)
}

// sortedOf derives the sorted array. Traces of inputs with fewer than two
// elements are empty, in which case the input already is the answer.
func sortedOf(arr []int, trace domain.Trace) []int {
	if final := trace.Final(); final != nil {
		return final
	}
	return domain.Snapshot(arr)
}

func (s *Server) handleListTraces(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Persistence is not configured", http.StatusNotFound)
		return
	}
	ids, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, map[string][]string{"traces": ids})
}

func (s *Server) loadTrace(w http.ResponseWriter, r *http.Request) (domain.Trace, bool) {
	if s.store == nil {
		http.Error(w, "Persistence is not configured", http.StatusNotFound)
		return nil, false
	}
	id := chi.URLParam(r, "id")
	trace, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTraceNotFound) {
			http.Error(w, "Trace not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		}
		return nil, false
	}
	return trace, true
}

func (s *Server) handleGetTrace(w http.ResponseWriter, r *http.Request) {
	trace, ok := s.loadTrace(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, trace)
}

// handleStreamTrace replays a stored trace as Server-Sent Events, one
// event per step. The client's disconnect cancels the stream.
func (s *Server) handleStreamTrace(w http.ResponseWriter, r *http.Request) {
	trace, ok := s.loadTrace(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	for i, step := range trace {
		if s.delay > 0 && i > 0 {
			select {
			case <-time.After(s.delay):
			case <-r.Context().Done():
				return
			}
		} else if r.Context().Err() != nil {
			return
		}

		data, err := json.Marshal(step)
		if err != nil {
			s.logger.Error("failed to marshal step", "error", err, "index", i)
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", step.Type, data)
		flusher.Flush()
	}

	fmt.Fprint(w, "event: done\ndata: {}\n\n")
	flusher.Flush()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
