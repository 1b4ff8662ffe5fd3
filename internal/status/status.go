// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package status exposes the daemon's read-only observability endpoint: the
// current connectivity state, whether a drain pass is running, and the
// queued operations awaiting sync.
package status

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/offlinekit/docsync/internal/connectivity"
	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/models"
)

// QueueInspector is the read-only slice of the operation queue the endpoint
// serves. Satisfied by the operation queue.
type QueueInspector interface {
	Len() int
	Draining() bool
	Snapshot() []models.PendingOperation
}

// ReportLog retains the most recent drain report so the status endpoint can
// show why the last dropped operation was dropped. Record is safe to call
// from the queue's report callback.
type ReportLog struct {
	mu   sync.Mutex
	last *models.DrainReport
}

// Record stores report as the most recent one.
func (l *ReportLog) Record(report models.DrainReport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = &report
}

// Last returns the most recent report, if any was recorded.
func (l *ReportLog) Last() (models.DrainReport, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last == nil {
		return models.DrainReport{}, false
	}
	return *l.last, true
}

// Handler serves the status routes.
type Handler struct {
	queue   QueueInspector
	monitor connectivity.Monitor
	reports *ReportLog
	logger  *logger.Logger
}

// NewHandler builds a status Handler. reports may be nil when drain reports
// are not surfaced.
func NewHandler(queue QueueInspector, monitor connectivity.Monitor, reports *ReportLog, log *logger.Logger) *Handler {
	return &Handler{queue: queue, monitor: monitor, reports: reports, logger: log}
}

// Init assembles the router:
//
//	GET /status — connectivity, drain state, queue length
//	GET /queue  — queued operations in queue order
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/status", h.status)
	router.Get("/queue", h.pendingOperations)

	return router
}

type statusResponse struct {
	Online   bool            `json:"online"`
	Draining bool            `json:"draining"`
	Queued   int             `json:"queued"`
	LastDrop *lastDropDetail `json:"last_drop,omitempty"`
}

type lastDropDetail struct {
	Operation models.PendingOperation `json:"operation"`
	Reason    models.FailureReason    `json:"reason"`
	Error     string                  `json:"error,omitempty"`
}

func (h *Handler) status(w http.ResponseWriter, _ *http.Request) {
	resp := statusResponse{
		Online:   h.monitor.IsOnline(),
		Draining: h.queue.Draining(),
		Queued:   h.queue.Len(),
	}
	if h.reports != nil {
		if report, ok := h.reports.Last(); ok {
			detail := &lastDropDetail{Operation: report.Operation, Reason: report.Reason}
			if report.Err != nil {
				detail.Error = report.Err.Error()
			}
			resp.LastDrop = detail
		}
	}

	h.writeJSON(w, resp)
}

type queueResponse struct {
	Operations []models.PendingOperation `json:"operations"`
}

func (h *Handler) pendingOperations(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, queueResponse{Operations: h.queue.Snapshot()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Err(err).Msg("error encoding status response")
	}
}

// Server wraps the http.Server hosting the status routes.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer builds a Server listening on address. An empty address disables
// the endpoint: Run and Shutdown become no-ops.
func NewServer(address string, handler *Handler, log *logger.Logger) *Server {
	if address == "" {
		return &Server{logger: log}
	}

	return &Server{
		server: &http.Server{Addr: address, Handler: handler.Init()},
		logger: log,
	}
}

// Run starts serving and blocks until the server stops.
func (s *Server) Run() {
	if s.server == nil {
		return
	}
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Err(err).Msg("status server stopped")
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) {
	if s.server == nil {
		return
	}
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("status server shutdown")
	}
}
