package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpath/fitpath/internal/catalog"
	"github.com/fitpath/fitpath/internal/telemetry/metrics"
	"github.com/fitpath/fitpath/internal/telemetry/tracing"
	"github.com/fitpath/fitpath/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type service interface {
	Start(ctx context.Context, userID, templateID string, startLevel int) (*Status, error)
	Transition(ctx context.Context, id string, transition Transition) (*Status, error)
	Get(ctx context.Context, id string) (*Status, error)
	List(ctx context.Context, userID string) ([]Status, error)
}

type Handler struct {
	service service
	metrics *metrics.Manager
}

func NewHandler(service service, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

type startProgressionRequest struct {
	UserID     string `json:"userId"`
	TemplateID string `json:"templateId"`
	StartLevel int    `json:"startLevel,omitempty"`
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.start")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req startProgressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("start progression, unmarshal json params: %s", err)
		http.Error(w, "start progression failed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.TemplateID == "" {
		http.Error(w, "user id and template id are required", http.StatusBadRequest)
		return
	}

	status, err := h.service.Start(ctx, req.UserID, req.TemplateID, req.StartLevel)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			http.Error(w, "unknown progression template", http.StatusBadRequest)
		case errors.Is(err, ErrRecordExists):
			http.Error(w, "progression already started", http.StatusConflict)
		default:
			log.Errorf("start progression: %s", err)
			http.Error(w, "start progression failed", http.StatusInternalServerError)
		}
		return
	}

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("failed to marshal progression status: %s", err)
		http.Error(w, "start progression failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusCreated)
}

func (h *Handler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.transition")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	transition := Transition(vars["transition"])
	if !transition.IsValid() {
		http.Error(w, "unknown transition", http.StatusBadRequest)
		return
	}

	status, err := h.service.Transition(ctx, id, transition)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "progression record not found", http.StatusNotFound)
			return
		}
		log.Errorf("progression transition [%s] on [%s]: %s", transition, id, err)
		http.Error(w, "progression transition failed", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterProgressionTransitions.WithLabelValues(string(transition)).Inc()

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("failed to marshal progression status [%s]: %s", id, err)
		http.Error(w, "progression transition failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statusJson)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "progression record id is required", http.StatusBadRequest)
		return
	}

	status, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "progression record not found", http.StatusNotFound)
			return
		}
		log.Errorf("get progression record [%s]: %s", id, err)
		http.Error(w, "get progression record failed", http.StatusInternalServerError)
		return
	}

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("failed to marshal progression status [%s]: %s", id, err)
		http.Error(w, "get progression record failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statusJson)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.list")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	statuses, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list progression records for user [%s]: %s", userID, err)
		http.Error(w, "list progression records failed", http.StatusInternalServerError)
		return
	}
	if statuses == nil {
		statuses = []Status{}
	}

	statusesJson, err := json.Marshal(statuses)
	if err != nil {
		log.Errorf("failed to marshal progression statuses for user [%s]: %s", userID, err)
		http.Error(w, "list progression records failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statusesJson)
}
