package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/gorilla/mux"
)

const (
	DefaultListenAddr = "127.0.0.1:8080"
	latestReset       = "latest"
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server exposes the display-ready views as JSON.
type Server struct {
	service    *application.Service
	selections *application.SelectionService
	logger     *slog.Logger
	router     *mux.Router
}

func New(service *application.Service, selections *application.SelectionService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		service:    service,
		selections: selections,
		logger:     logger,
		router:     mux.NewRouter(),
	}
	s.routes()

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving stats", slog.String("addr", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/resets", s.handleResets).Methods(http.MethodGet)
	api.HandleFunc("/ranks", s.handleRanks).Methods(http.MethodGet)

	reset := api.PathPrefix("/resets/{reset}").Subrouter()
	reset.HandleFunc("/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)
	reset.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	reset.HandleFunc("/jump-gate", s.handleJumpGate).Methods(http.MethodGet)
	reset.HandleFunc("/materials", s.handleMaterials).Methods(http.MethodGet)
	reset.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)
	reset.HandleFunc("/selection", s.handleSelection).Methods(http.MethodGet)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleResets(w http.ResponseWriter, r *http.Request) {
	resets, err := s.service.ListResets(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resets)
}

func (s *Server) handleRanks(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.Ranks(r.Context(), domain.ParseHistoryFilter(r.URL.Query()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	reset, ok := s.resolveReset(w, r)
	if !ok {
		return
	}

	view, err := s.service.Leaderboard(r.Context(), reset, leaderboardField(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	reset, ok := s.resolveReset(w, r)
	if !ok {
		return
	}

	view, err := s.service.Dashboard(r.Context(), reset, leaderboardField(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleJumpGate(w http.ResponseWriter, r *http.Request) {
	reset, ok := s.resolveReset(w, r)
	if !ok {
		return
	}

	view, err := s.service.JumpGates(r.Context(), reset)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	reset, ok := s.resolveReset(w, r)
	if !ok {
		return
	}

	view, err := s.service.Materials(r.Context(), reset)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleHistory uses the reset's agent selection when no agent is given.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	reset, ok := s.resolveReset(w, r)
	if !ok {
		return
	}

	var (
		agents []domain.AgentSymbol
		err    error
	)
	if queries := agentQueries(r); len(queries) > 0 {
		agents, err = s.service.ResolveAgents(r.Context(), reset, queries)
	} else {
		var selection application.SelectionView
		selection, err = s.selections.Get(r.Context(), reset)
		agents = selection.Agents
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.service.History(r.Context(), reset, agents)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	reset, ok := s.resolveReset(w, r)
	if !ok {
		return
	}

	view, err := s.selections.Get(r.Context(), reset)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) resolveReset(w http.ResponseWriter, r *http.Request) (domain.ResetID, bool) {
	raw := mux.Vars(r)["reset"]
	if raw == latestReset {
		raw = ""
	}

	reset, err := s.service.ResolveReset(r.Context(), raw)
	if err != nil {
		s.writeError(w, r, err)
		return "", false
	}

	return reset.ID, true
}

// leaderboardField falls back to credits for a missing or unknown "by".
func leaderboardField(r *http.Request) domain.LeaderboardField {
	field, err := domain.ParseLeaderboardField(r.URL.Query().Get("by"))
	if err != nil {
		return domain.LeaderboardFieldCredits
	}

	return field
}

// agentQueries accepts both repeated and comma separated "agent" values.
func agentQueries(r *http.Request) []string {
	var queries []string
	for _, raw := range r.URL.Query()["agent"] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				queries = append(queries, trimmed)
			}
		}
	}

	return queries
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrResetNotFound),
		errors.Is(err, domain.ErrNoResets),
		errors.Is(err, domain.ErrAgentNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
