package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fitpath/fitpath/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Save(ctx context.Context, assessment UserAssessment) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assessment.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resultsJson, err := json.Marshal(assessment.Results)
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	progressionsJson, err := json.Marshal(assessment.RecommendedProgressions)
	if err != nil {
		return "", fmt.Errorf("marshal recommended progressions: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`INSERT INTO assessment (id, user_id, completed_at, results, overall_level, recommended_progressions, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		assessment.ID, assessment.UserID, assessment.CompletedAt,
		resultsJson, string(assessment.OverallLevel), progressionsJson, assessment.Notes,
	)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		return "", errors.New("unexpected error, failed to insert assessment")
	}

	var id string
	if err := rows.Scan(&id); err != nil {
		return "", fmt.Errorf("rows scan: %w", err)
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *UserAssessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assessment.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, completed_at, results, overall_level, recommended_progressions, notes
			FROM assessment
			WHERE id = $1;`,
		id,
	)

	assessment, err := scanAssessment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return assessment, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []UserAssessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assessment.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, completed_at, results, overall_level, recommended_progressions, notes
			FROM assessment
			WHERE user_id = $1
			ORDER BY completed_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []UserAssessment
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, *assessment)
	}
	return assessments, nil
}

func scanAssessment(row pgx.Row) (*UserAssessment, error) {
	var (
		assessment       UserAssessment
		completedAt      time.Time
		resultsJson      []byte
		overallLevel     string
		progressionsJson []byte
	)
	if err := row.Scan(
		&assessment.ID, &assessment.UserID, &completedAt,
		&resultsJson, &overallLevel, &progressionsJson, &assessment.Notes,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resultsJson, &assessment.Results); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	if err := json.Unmarshal(progressionsJson, &assessment.RecommendedProgressions); err != nil {
		return nil, fmt.Errorf("unmarshal recommended progressions: %w", err)
	}

	assessment.CompletedAt = completedAt.UTC()
	assessment.OverallLevel = Level(overallLevel)
	return &assessment, nil
}
