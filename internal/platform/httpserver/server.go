package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	lifecycleservice "canje/contexts/marketplace/lifecycle-service"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
	lifecyclehttp "canje/contexts/marketplace/lifecycle-service/transport/http"
	_ "canje/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	lifecycle lifecycleservice.Module
}

func New(
	lifecycle lifecycleservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		lifecycle: lifecycle,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest callers.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}/deliverables/buckets", s.handleCampaignBuckets)

	s.mux.HandleFunc("POST /v1/applications", s.handleApply)
	s.mux.HandleFunc("GET /v1/applications", s.handleListApplications)
	s.mux.HandleFunc("GET /v1/applications/{application_id}", s.handleGetApplication)
	s.mux.HandleFunc("POST /v1/applications/{application_id}/transition", s.handleTransitionApplication)

	s.mux.HandleFunc("GET /v1/deliverables", s.handleListDeliverables)
	s.mux.HandleFunc("GET /v1/deliverables/{deliverable_id}", s.handleGetDeliverable)
	s.mux.HandleFunc("GET /v1/deliverables/{deliverable_id}/deadlines", s.handleDeliverableDeadlines)
	s.mux.HandleFunc("GET /v1/deliverables/{deliverable_id}/review-notes", s.handleListReviewNotes)
	s.mux.HandleFunc("POST /v1/deliverables/{deliverable_id}/post-url", s.handleSubmitPost)
	s.mux.HandleFunc("POST /v1/deliverables/{deliverable_id}/review", s.handleReview)
	s.mux.HandleFunc("POST /v1/deliverables/{deliverable_id}/metrics", s.handleSubmitMetrics)
	s.mux.HandleFunc("POST /v1/deliverables/{deliverable_id}/reset", s.handleResetDeliverable)
	s.mux.HandleFunc("POST /v1/deliverables/{deliverable_id}/rating", s.handleRateDeliverable)

	s.mux.HandleFunc("GET /v1/creators/{creator_id}/deliverables/buckets", s.handleCreatorBuckets)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	brandID := resolveUserID(r)
	if brandID == "" {
		writeError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req lifecyclehttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.CreateCampaignHandler(r.Context(), brandID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	creatorID := resolveUserID(r)
	if creatorID == "" {
		writeError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req lifecyclehttp.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.ApplyHandler(r.Context(), creatorID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleTransitionApplication(w http.ResponseWriter, r *http.Request) {
	actorID := resolveUserID(r)

	var req lifecyclehttp.TransitionApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.TransitionApplicationHandler(
		r.Context(),
		actorID,
		r.PathValue("application_id"),
		req,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetApplicationHandler(r.Context(), r.PathValue("application_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.lifecycle.Handler.ListApplicationsHandler(
		r.Context(),
		query.Get("campaign_id"),
		query.Get("creator_id"),
		query.Get("status"),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListDeliverables(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.lifecycle.Handler.ListDeliverablesHandler(
		r.Context(),
		query.Get("campaign_id"),
		query.Get("creator_id"),
		query.Get("status"),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDeliverable(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetDeliverableHandler(r.Context(), r.PathValue("deliverable_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeliverableDeadlines(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.DeadlinesHandler(r.Context(), r.PathValue("deliverable_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListReviewNotes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.ListReviewNotesHandler(r.Context(), r.PathValue("deliverable_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitPost(w http.ResponseWriter, r *http.Request) {
	creatorID := resolveUserID(r)

	var req lifecyclehttp.SubmitPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.SubmitPostHandler(
		r.Context(),
		creatorID,
		r.PathValue("deliverable_id"),
		req,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	actorID := resolveUserID(r)

	var req lifecyclehttp.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.ReviewHandler(
		r.Context(),
		actorID,
		r.PathValue("deliverable_id"),
		req,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitMetrics(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.SubmitMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.SubmitMetricsHandler(
		r.Context(),
		r.PathValue("deliverable_id"),
		req,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResetDeliverable(w http.ResponseWriter, r *http.Request) {
	actorID := resolveUserID(r)

	var req lifecyclehttp.ResetDeliverableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.ResetDeliverableHandler(
		r.Context(),
		actorID,
		r.PathValue("deliverable_id"),
		req,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRateDeliverable(w http.ResponseWriter, r *http.Request) {
	brandID := resolveUserID(r)
	if brandID == "" {
		writeError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req lifecyclehttp.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.lifecycle.Handler.RateHandler(
		r.Context(),
		brandID,
		r.PathValue("deliverable_id"),
		req,
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCampaignBuckets(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.CampaignBucketsHandler(
		r.Context(),
		r.PathValue("campaign_id"),
		includeCancelled(r),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatorBuckets(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.CreatorBucketsHandler(
		r.Context(),
		r.PathValue("creator_id"),
		includeCancelled(r),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func includeCancelled(r *http.Request) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get("include_cancelled"))
	return err == nil && value
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrApplicationNotFound):
		writeError(w, http.StatusNotFound, "application_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrDeliverableNotFound):
		writeError(w, http.StatusNotFound, "deliverable_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrDuplicateApplication):
		writeError(w, http.StatusConflict, "duplicate_application", err.Error())
	case errors.Is(err, domainerrors.ErrSlotsExhausted):
		writeError(w, http.StatusConflict, "slots_exhausted", err.Error())
	case errors.Is(err, domainerrors.ErrReviewRoundsExhausted):
		writeError(w, http.StatusConflict, "review_rounds_exhausted", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, domainerrors.ErrNotReadyToRate):
		writeError(w, http.StatusConflict, "not_ready_to_rate", err.Error())
	case errors.Is(err, domainerrors.ErrNothingToReset):
		writeError(w, http.StatusBadRequest, "nothing_to_reset", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, "invalid_rating", err.Error())
	case errors.Is(err, domainerrors.ErrMissingConfirmationTimestamp):
		writeError(w, http.StatusUnprocessableEntity, "missing_confirmation_timestamp", err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorizedActor):
		writeError(w, http.StatusUnauthorized, "unauthorized_actor", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCampaignInput),
		errors.Is(err, domainerrors.ErrInvalidApplicationInput),
		errors.Is(err, domainerrors.ErrInvalidDeliverableInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, lifecyclehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func resolveUserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}
