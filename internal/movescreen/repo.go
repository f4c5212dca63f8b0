package movescreen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fitpath/fitpath/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrScreenNotFound = errors.New("movement screen not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Save(ctx context.Context, assessment Assessment) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movescreen.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// everything derived sits next to the raw results in one document,
	// reports are rendered from it without re-scoring
	assessmentJson, err := json.Marshal(assessment)
	if err != nil {
		return "", fmt.Errorf("marshal movement screen: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`INSERT INTO movement_screen (id, user_id, completed_at, risk_level, assessment)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		assessment.ID, assessment.UserID, assessment.CompletedAt,
		string(assessment.RiskLevel), assessmentJson,
	)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		return "", errors.New("unexpected error, failed to insert movement screen")
	}

	var id string
	if err := rows.Scan(&id); err != nil {
		return "", fmt.Errorf("rows scan: %w", err)
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Assessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movescreen.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx,
		`SELECT assessment FROM movement_screen WHERE id = $1;`,
		id,
	)

	assessment, err := scanScreen(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScreenNotFound
		}
		return nil, err
	}
	return assessment, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Assessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movescreen.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT assessment FROM movement_screen
			WHERE user_id = $1
			ORDER BY completed_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []Assessment
	for rows.Next() {
		assessment, err := scanScreen(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, *assessment)
	}
	return assessments, nil
}

func scanScreen(row pgx.Row) (*Assessment, error) {
	var assessmentJson []byte
	if err := row.Scan(&assessmentJson); err != nil {
		return nil, err
	}

	var assessment Assessment
	if err := json.Unmarshal(assessmentJson, &assessment); err != nil {
		return nil, fmt.Errorf("unmarshal movement screen: %w", err)
	}
	assessment.CompletedAt = assessment.CompletedAt.UTC()
	return &assessment, nil
}
