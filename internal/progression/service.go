package progression

import (
	"context"
	"fmt"

	"github.com/fitpath/fitpath/internal/catalog"
	"github.com/fitpath/fitpath/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progression_test

type templateCatalog interface {
	ProgressionTemplate(id string) (catalog.ProgressionTemplate, error)
}

type recordsRepo interface {
	Save(ctx context.Context, record Record) (string, error)
	Update(ctx context.Context, record Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, userID string) ([]Record, error)
}

// Status is a record together with its derived, template-dependent
// view: overall progress and which transitions are currently allowed.
type Status struct {
	Record     Record  `json:"record"`
	Progress   float64 `json:"progress"`
	CanAdvance bool    `json:"canAdvance"`
	CanRegress bool    `json:"canRegress"`
}

type Service struct {
	catalog templateCatalog
	repo    recordsRepo
	tracker *Tracker
}

func NewService(templateCatalog templateCatalog, repo recordsRepo, tracker *Tracker) *Service {
	return &Service{
		catalog: templateCatalog,
		repo:    repo,
		tracker: tracker,
	}
}

// Start creates and persists a new record for the (user, template)
// pair. startLevel below 1 starts at the first level, values beyond
// the template are clamped to the last one. A record that already
// exists for the pair surfaces as ErrRecordExists from the repo.
func (s *Service) Start(
	ctx context.Context,
	userID, templateID string,
	startLevel int,
) (_ *Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("template.id", templateID),
	)

	template, err := s.catalog.ProgressionTemplate(templateID)
	if err != nil {
		return nil, fmt.Errorf("progression template [%s]: %w", templateID, err)
	}

	record := s.tracker.NewRecordAt(userID, template, startLevel)
	record.ID = uuid.NewString()

	if _, err := s.repo.Save(ctx, *record); err != nil {
		return nil, fmt.Errorf("save progression record: %w", err)
	}

	return s.status(record, template), nil
}

// Transition applies one named transition to the record and persists
// the result. Boundary advance/regress attempts are silent no-ops,
// the returned status simply reflects the unchanged record.
func (s *Service) Transition(ctx context.Context, id string, transition Transition) (_ *Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.transition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("record.id", id),
		attribute.String("transition", string(transition)),
	)

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get progression record: %w", err)
	}

	template, err := s.catalog.ProgressionTemplate(record.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("progression template [%s]: %w", record.TemplateID, err)
	}

	changed := true
	switch transition {
	case TransitionAdvance:
		changed = s.tracker.Advance(record, template)
	case TransitionRegress:
		changed = s.tracker.Regress(record, template)
	case TransitionPause:
		s.tracker.Pause(record)
	case TransitionResume:
		s.tracker.Resume(record)
	case TransitionReset:
		s.tracker.Reset(record)
	default:
		return nil, fmt.Errorf("unknown transition [%s]", transition)
	}

	if changed {
		if err := s.repo.Update(ctx, *record); err != nil {
			return nil, fmt.Errorf("update progression record: %w", err)
		}
	}

	return s.status(record, template), nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("record.id", id))

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get progression record: %w", err)
	}

	template, err := s.catalog.ProgressionTemplate(record.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("progression template [%s]: %w", record.TemplateID, err)
	}

	return s.status(record, template), nil
}

func (s *Service) List(ctx context.Context, userID string) (_ []Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	records, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progression records: %w", err)
	}

	statuses := make([]Status, 0, len(records))
	for i := range records {
		template, err := s.catalog.ProgressionTemplate(records[i].TemplateID)
		if err != nil {
			return nil, fmt.Errorf("progression template [%s]: %w", records[i].TemplateID, err)
		}
		statuses = append(statuses, *s.status(&records[i], template))
	}
	return statuses, nil
}

func (s *Service) status(record *Record, template catalog.ProgressionTemplate) *Status {
	return &Status{
		Record:     *record,
		Progress:   Progress(record, template),
		CanAdvance: CanAdvance(record, template),
		CanRegress: CanRegress(record),
	}
}

// Transition can be one of:
//   - advance
//   - regress
//   - pause
//   - resume
//   - reset
type Transition string

const (
	TransitionAdvance Transition = "advance"
	TransitionRegress Transition = "regress"
	TransitionPause   Transition = "pause"
	TransitionResume  Transition = "resume"
	TransitionReset   Transition = "reset"
)

func (t Transition) IsValid() bool {
	switch t {
	case TransitionAdvance, TransitionRegress, TransitionPause, TransitionResume, TransitionReset:
		return true
	}
	return false
}
