package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitpath/fitpath/internal/telemetry/tracing"
	"github.com/fitpath/fitpath/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRecordNotFound = errors.New("progression record not found")
	// one record per (user, template) pair, enforced by a unique index
	ErrRecordExists = errors.New("progression record already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Save(ctx context.Context, record Record) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`INSERT INTO progression_record
			(id, user_id, template_id, current_level, start_date,
			 completed_sessions, total_sessions, week_in_level, is_active, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id;`,
		record.ID, record.UserID, record.TemplateID, record.CurrentLevel, record.StartDate,
		record.CompletedSessions, record.TotalSessions, record.WeekInLevel,
		record.IsActive, record.Notes, record.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return "", ErrRecordExists
		}
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && pkg.IsUniqueViolationError(err) {
			return "", ErrRecordExists
		}
		return "", errors.New("unexpected error, failed to insert progression record")
	}

	var id string
	if err := rows.Scan(&id); err != nil {
		return "", fmt.Errorf("rows scan: %w", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, record Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE progression_record SET
			current_level = $1, completed_sessions = $2, total_sessions = $3,
			week_in_level = $4, is_active = $5, notes = $6
			WHERE id = $7;`,
		record.CurrentLevel, record.CompletedSessions, record.TotalSessions,
		record.WeekInLevel, record.IsActive, record.Notes, record.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, template_id, current_level, start_date,
			completed_sessions, total_sessions, week_in_level, is_active, notes, created_at
			FROM progression_record
			WHERE id = $1;`,
		id,
	)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, template_id, current_level, start_date,
			completed_sessions, total_sessions, week_in_level, is_active, notes, created_at
			FROM progression_record
			WHERE user_id = $1
			ORDER BY created_at;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var (
		record    Record
		startDate time.Time
		createdAt time.Time
	)
	if err := row.Scan(
		&record.ID, &record.UserID, &record.TemplateID, &record.CurrentLevel, &startDate,
		&record.CompletedSessions, &record.TotalSessions, &record.WeekInLevel,
		&record.IsActive, &record.Notes, &createdAt,
	); err != nil {
		return nil, err
	}
	if record.Notes == nil {
		record.Notes = []string{}
	}
	record.StartDate = startDate.UTC()
	record.CreatedAt = createdAt.UTC()
	return &record, nil
}
