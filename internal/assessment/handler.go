package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpath/fitpath/internal/telemetry/metrics"
	"github.com/fitpath/fitpath/internal/telemetry/tracing"
	"github.com/fitpath/fitpath/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=assessment_test

type service interface {
	Complete(ctx context.Context, userID string, answers AnswerSet, notes string) (*UserAssessment, error)
	Get(ctx context.Context, id string) (*UserAssessment, error)
	List(ctx context.Context, userID string) ([]UserAssessment, error)
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

type completeAssessmentRequest struct {
	UserID  string    `json:"userId"`
	Answers AnswerSet `json:"answers"`
	Notes   string    `json:"notes,omitempty"`
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assessment.complete")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req completeAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("complete assessment, unmarshal json params: %s", err)
		http.Error(w, "complete assessment failed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	userAssessment, err := h.service.Complete(ctx, req.UserID, req.Answers, req.Notes)
	if err != nil {
		if errors.Is(err, ErrInvalidAnswer) {
			http.Error(w, "answer out of bounds", http.StatusBadRequest)
			return
		}
		log.Errorf("complete assessment: %s", err)
		http.Error(w, "complete assessment failed", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterAssessmentsCompleted.Inc()

	assessmentJson, err := json.Marshal(userAssessment)
	if err != nil {
		log.Errorf("failed to marshal completed assessment: %s", err)
		http.Error(w, "error, failed to complete assessment", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, assessmentJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assessment.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "assessment id is required", http.StatusBadRequest)
		return
	}

	userAssessment, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAssessmentNotFound) {
			http.Error(w, "assessment not found", http.StatusNotFound)
			return
		}
		log.Errorf("get assessment [%s]: %s", id, err)
		http.Error(w, "get assessment failed", http.StatusInternalServerError)
		return
	}

	assessmentJson, err := json.Marshal(userAssessment)
	if err != nil {
		log.Errorf("failed to marshal assessment [%s]: %s", id, err)
		http.Error(w, "get assessment failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, assessmentJson)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assessment.list")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	assessments, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list assessments for user [%s]: %s", userID, err)
		http.Error(w, "list assessments failed", http.StatusInternalServerError)
		return
	}
	if assessments == nil {
		assessments = []UserAssessment{}
	}

	assessmentsJson, err := json.Marshal(assessments)
	if err != nil {
		log.Errorf("failed to marshal assessments for user [%s]: %s", userID, err)
		http.Error(w, "list assessments failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, assessmentsJson)
}
