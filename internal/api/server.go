// Package api implements the HTTP surface used by the design-tool plugin.
//
// The API exposes a single generation endpoint plus a health check. The
// plugin posts its selection export and receives the assembled prompt back,
// so the heavy lifting stays out of the plugin sandbox.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/buildinfo"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/cache"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/errors"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/pipeline"
)

// maxRequestBody caps the selection export size at 10 MiB.
const maxRequestBody = 10 << 20

// Server wires the pipeline runner into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server around the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/prompts", s.handleGenerate)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// requestID assigns a uuid to each request and echoes it in the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", requestIDFrom(r.Context()),
			"duration", time.Since(start))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// =============================================================================
// Handlers
// =============================================================================

// generateRequest is the body of POST /api/v1/prompts.
type generateRequest struct {
	// Selection is the raw selection export from the plugin: either a node
	// array or an object with a "selection" key.
	Selection json.RawMessage `json:"selection"`

	Framework   string `json:"framework,omitempty"`
	Schema      string `json:"schema,omitempty"`
	Description string `json:"description,omitempty"`
	Refresh     bool   `json:"refresh,omitempty"`
}

// generateResponse is the success body of POST /api/v1/prompts.
type generateResponse struct {
	ID     string        `json:"id"`
	Prompt string        `json:"prompt"`
	Layout string        `json:"layout,omitempty"`
	Stats  generateStats `json:"stats"`
}

type generateStats struct {
	NodeCount int    `json:"node_count"`
	TreeSize  int    `json:"tree_size"`
	LayoutHit bool   `json:"layout_cached"`
	PromptHit bool   `json:"prompt_cached"`
	Duration  string `json:"duration"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if len(req.Selection) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "missing selection"))
		return
	}

	start := time.Now()
	result, err := s.runner.Execute(r.Context(), req.Selection, pipeline.Options{
		Framework:   req.Framework,
		Schema:      req.Schema,
		Description: req.Description,
		Refresh:     req.Refresh,
		Logger:      s.logger,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		ID:     uuid.NewString(),
		Prompt: result.Prompt,
		Layout: result.Layout,
		Stats: generateStats{
			NodeCount: result.Stats.NodeCount,
			TreeSize:  result.Stats.TreeSize,
			LayoutHit: result.CacheInfo.LayoutHit,
			PromptHit: result.CacheInfo.PromptHit,
			Duration:  time.Since(start).Round(time.Millisecond).String(),
		},
	})
}

// writeError maps structured error codes to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSelection,
		errors.ErrCodeInvalidFramework, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	if status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// =============================================================================
// Cache factory
// =============================================================================

// NewCache builds the cache backend selected by the config.
func NewCache(ctx context.Context, cfg Config) (cache.Cache, error) {
	switch cfg.CacheBackend {
	case "", "memory":
		return cache.NewMemoryCache(), nil
	case "none":
		return cache.NewNullCache(), nil
	case "file":
		dir := cfg.CacheDir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve cache directory")
			}
			dir = filepath.Join(base, "promptgen")
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.CacheBackend)
	}
}
