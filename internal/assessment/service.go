package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/fitpath/fitpath/internal/catalog"
	"github.com/fitpath/fitpath/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=assessment_test

type catalogProvider interface {
	Categories() []catalog.Category
}

type assessmentsRepo interface {
	Save(ctx context.Context, assessment UserAssessment) (string, error)
	Get(ctx context.Context, id string) (*UserAssessment, error)
	List(ctx context.Context, userID string) ([]UserAssessment, error)
}

// CompletionCallback lets the surrounding application react to a
// finished assessment (e.g. navigate to a results view).
type CompletionCallback func(assessment *UserAssessment)

type Service struct {
	catalog    catalogProvider
	repo       assessmentsRepo
	scorer     *Scorer
	onComplete CompletionCallback
}

func NewService(
	catalogProvider catalogProvider,
	repo assessmentsRepo,
	scorer *Scorer,
	onComplete CompletionCallback,
) *Service {
	return &Service{
		catalog:    catalogProvider,
		repo:       repo,
		scorer:     scorer,
		onComplete: onComplete,
	}
}

// Complete scores all catalog categories against the raw answers,
// aggregates the overall level and recommended progressions, persists
// the assessment and invokes the completion callback. The returned
// assessment is valid regardless of whether persistence succeeded,
// a failed save only invalidates its durability.
func (s *Service) Complete(
	ctx context.Context,
	userID string,
	answers AnswerSet,
	notes string,
) (_ *UserAssessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assessment.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	categories := s.catalog.Categories()
	if err := ValidateAnswers(categories, answers); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(categories))
	for _, category := range categories {
		results = append(results, s.scorer.ScoreCategory(category, answers[category.ID]))
	}

	userAssessment := &UserAssessment{
		ID:                      uuid.NewString(),
		UserID:                  userID,
		CompletedAt:             time.Now().UTC(),
		Results:                 results,
		OverallLevel:            OverallLevel(results),
		RecommendedProgressions: RecommendedProgressions(results),
		Notes:                   notes,
	}

	if _, err := s.repo.Save(ctx, *userAssessment); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}

	if s.onComplete != nil {
		s.onComplete(userAssessment)
	}

	return userAssessment, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *UserAssessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assessment.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("assessment.id", id))

	userAssessment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return userAssessment, nil
}

func (s *Service) List(ctx context.Context, userID string) (_ []UserAssessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assessment.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	assessments, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return assessments, nil
}
