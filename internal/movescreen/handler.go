package movescreen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpath/fitpath/internal/catalog"
	"github.com/fitpath/fitpath/internal/telemetry/metrics"
	"github.com/fitpath/fitpath/internal/telemetry/tracing"
	"github.com/fitpath/fitpath/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	reportCacheSize          = 2 * 1024 * 1024
	reportCacheExpireSeconds = 60 * 60
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=movescreen_test

type service interface {
	Complete(ctx context.Context, userID string, results []TestResult) (*Assessment, error)
	Get(ctx context.Context, id string) (*Assessment, error)
	List(ctx context.Context, userID string) ([]Assessment, error)
}

type Handler struct {
	service service
	metrics *metrics.Manager
	// scored screens are immutable, rendered reports can be cached
	reportCache *freecache.Cache
}

func NewHandler(service service, metrics *metrics.Manager) *Handler {
	return &Handler{
		service:     service,
		metrics:     metrics,
		reportCache: freecache.NewCache(reportCacheSize),
	}
}

type completeScreenRequest struct {
	UserID  string       `json:"userId"`
	Results []TestResult `json:"results"`
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movescreen.complete")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req completeScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("complete movement screen, unmarshal json params: %s", err)
		http.Error(w, "complete movement screen failed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	screenAssessment, err := h.service.Complete(ctx, req.UserID, req.Results)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "unknown movement test", http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrInvalidScore) {
			http.Error(w, "test score out of bounds", http.StatusBadRequest)
			return
		}
		log.Errorf("complete movement screen: %s", err)
		http.Error(w, "complete movement screen failed", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterMovementScreens.Inc()

	assessmentJson, err := json.Marshal(screenAssessment)
	if err != nil {
		log.Errorf("failed to marshal movement screen: %s", err)
		http.Error(w, "error, failed to complete movement screen", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, assessmentJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movescreen.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "movement screen id is required", http.StatusBadRequest)
		return
	}

	screenAssessment, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrScreenNotFound) {
			http.Error(w, "movement screen not found", http.StatusNotFound)
			return
		}
		log.Errorf("get movement screen [%s]: %s", id, err)
		http.Error(w, "get movement screen failed", http.StatusInternalServerError)
		return
	}

	assessmentJson, err := json.Marshal(screenAssessment)
	if err != nil {
		log.Errorf("failed to marshal movement screen [%s]: %s", id, err)
		http.Error(w, "get movement screen failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, assessmentJson)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movescreen.list")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	assessments, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list movement screens for user [%s]: %s", userID, err)
		http.Error(w, "list movement screens failed", http.StatusInternalServerError)
		return
	}
	if assessments == nil {
		assessments = []Assessment{}
	}

	assessmentsJson, err := json.Marshal(assessments)
	if err != nil {
		log.Errorf("failed to marshal movement screens for user [%s]: %s", userID, err)
		http.Error(w, "list movement screens failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, assessmentsJson)
}

func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movescreen.report")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "movement screen id is required", http.StatusBadRequest)
		return
	}

	cacheKey := []byte("report||" + id)
	if cachedReport, err := h.reportCache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.Text, cachedReport)
		return
	}

	screenAssessment, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrScreenNotFound) {
			http.Error(w, "movement screen not found", http.StatusNotFound)
			return
		}
		log.Errorf("render movement screen report [%s]: %s", id, err)
		http.Error(w, "render report failed", http.StatusInternalServerError)
		return
	}

	report := RenderReport(screenAssessment)
	if err := h.reportCache.Set(cacheKey, []byte(report), reportCacheExpireSeconds); err != nil {
		log.Warnf("failed to cache movement screen report [%s]: %s", id, err)
	}

	pkg.WriteTextResponseOK(w, report)
}
