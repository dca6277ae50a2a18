// Package server implements the bigint HTTP compute API: a single
// GET /v1/compute endpoint backed by internal/ops, a Prometheus /metrics
// endpoint, and the security/CORS middleware every route runs behind.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/atmofx/bigint/internal/errors"
	"github.com/atmofx/bigint/internal/logging"
	"github.com/atmofx/bigint/internal/ops"
)

var tracer = otel.Tracer("github.com/atmofx/bigint/internal/server")

// Server serves the compute API and its supporting endpoints.
type Server struct {
	addr     string
	security SecurityConfig
	metrics  *Metrics
	logger   logging.Logger
	http     *http.Server
}

// New builds a Server listening on addr, enforcing security against the
// given SecurityConfig and logging through logger.
func New(addr string, security SecurityConfig, logger logging.Logger) *Server {
	s := &Server{
		addr:     addr,
		security: security,
		metrics:  NewMetrics(),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/compute", SecurityMiddleware(security, s.metricsMiddleware(s.handleCompute)))
	mux.HandleFunc("/metrics", SecurityMiddleware(security, s.handleMetrics))

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// metricsMiddleware tracks in-flight and completed requests around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition endpoint, GET only.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// computeResponse is the JSON body returned by a successful compute call.
type computeResponse struct {
	Op       string `json:"op"`
	Operands []string `json:"operands"`
	Base     int    `json:"base"`
	Result   string `json:"result"`
	Bits     int    `json:"bits"`
	Digits   int    `json:"digits"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleCompute serves GET /v1/compute?op=...&operand=...&operand=...&base=...
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	_, span := tracer.Start(r.Context(), "server.compute")
	defer span.End()

	query := r.URL.Query()
	op := query.Get("op")
	operands := query["operand"]
	base := 10
	if b := query.Get("base"); b != "" {
		parsed, err := strconv.Atoi(b)
		if err != nil || parsed < 2 || parsed > 64 {
			s.writeError(w, op, http.StatusBadRequest, "base must be an integer between 2 and 64")
			return
		}
		base = parsed
	}
	span.SetAttributes(attribute.String("bigint.op", op), attribute.Int("bigint.base", base))

	start := time.Now()
	result, err := ops.Run(op, operands, base, s.security.MaxLimbs)
	duration := time.Since(start)

	if err != nil {
		status := statusForError(err)
		s.metrics.ObserveRequest(op, "error", duration.Seconds(), 0)
		span.SetAttributes(attribute.String("bigint.error", err.Error()))
		s.writeError(w, op, status, err.Error())
		return
	}

	text, err := result.Text(base)
	if err != nil {
		s.metrics.ObserveRequest(op, "error", duration.Seconds(), 0)
		s.writeError(w, op, http.StatusInternalServerError, err.Error())
		return
	}

	limbs := (result.BitLen() + 31) / 32
	s.metrics.ObserveRequest(op, "ok", duration.Seconds(), limbs)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(computeResponse{
		Op:       op,
		Operands: operands,
		Base:     base,
		Result:   text,
		Bits:     result.BitLen(),
		Digits:   len(text),
	})
}

func (s *Server) writeError(w http.ResponseWriter, op string, status int, message string) {
	s.logger.Error("compute request failed", errors.New(message), logging.String("op", op))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// statusForError maps an apperrors classification to an HTTP status code.
func statusForError(err error) int {
	var validationErr apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var configErr apperrors.ConfigError
	if errors.As(err, &configErr) {
		return http.StatusBadRequest
	}
	var memErr apperrors.MemoryError
	if errors.As(err, &memErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
