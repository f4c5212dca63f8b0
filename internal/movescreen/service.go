package movescreen

import (
	"context"
	"fmt"
	"time"

	"github.com/fitpath/fitpath/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=movescreen_test

type screensRepo interface {
	Save(ctx context.Context, assessment Assessment) (string, error)
	Get(ctx context.Context, id string) (*Assessment, error)
	List(ctx context.Context, userID string) ([]Assessment, error)
}

type CompletionCallback func(assessment *Assessment)

type Service struct {
	repo       screensRepo
	scorer     *Scorer
	onComplete CompletionCallback
}

func NewService(repo screensRepo, scorer *Scorer, onComplete CompletionCallback) *Service {
	return &Service{
		repo:       repo,
		scorer:     scorer,
		onComplete: onComplete,
	}
}

// Complete aggregates the evaluator-scored test results, persists the
// screen assessment and invokes the completion callback.
func (s *Service) Complete(
	ctx context.Context,
	userID string,
	results []TestResult,
) (_ *Assessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.movescreen.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	screenAssessment, err := s.scorer.Score(results)
	if err != nil {
		return nil, fmt.Errorf("score movement screen: %w", err)
	}

	screenAssessment.ID = uuid.NewString()
	screenAssessment.UserID = userID
	screenAssessment.CompletedAt = time.Now().UTC()

	if _, err := s.repo.Save(ctx, *screenAssessment); err != nil {
		return nil, fmt.Errorf("save movement screen: %w", err)
	}

	if s.onComplete != nil {
		s.onComplete(screenAssessment)
	}

	return screenAssessment, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *Assessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.movescreen.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("movescreen.id", id))

	screenAssessment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movement screen: %w", err)
	}
	return screenAssessment, nil
}

func (s *Service) List(ctx context.Context, userID string) (_ []Assessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.movescreen.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	assessments, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list movement screens: %w", err)
	}
	return assessments, nil
}
