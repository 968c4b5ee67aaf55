package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrRunNotFound is returned by GetRun for an unknown id
var ErrRunNotFound = errors.New("run not found")

type Storer interface {
	Init(context.Context) error
	SaveRun(context.Context, *Run) error
	GetRun(context.Context, uuid.UUID) (*Run, error)
	Close()
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{
		pool: pool,
	}, nil
}

// Close closes the connection pool
func (p *PostgresStore) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

const schema = `
	CREATE TABLE IF NOT EXISTS exam_runs (
		id UUID PRIMARY KEY,
		source TEXT NOT NULL,
		title TEXT NOT NULL,
		year TEXT,
		day TEXT,
		booklet TEXT,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exam_questions (
		id UUID PRIMARY KEY,
		run_id UUID NOT NULL REFERENCES exam_runs(id) ON DELETE CASCADE,
		number INT NOT NULL,
		area TEXT NOT NULL,
		page INT NOT NULL,
		markdown TEXT NOT NULL,
		tokens INT NOT NULL DEFAULT 0,
		UNIQUE (run_id, number)
	);

	CREATE INDEX IF NOT EXISTS idx_exam_questions_run_id ON exam_questions(run_id);
	CREATE INDEX IF NOT EXISTS idx_exam_runs_year ON exam_runs(year);
	`

// Init creates the tables when they do not exist
func (p *PostgresStore) Init(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// SaveRun writes the run and all its questions in one transaction
func (p *PostgresStore) SaveRun(ctx context.Context, run *Run) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO exam_runs (id, source, title, year, day, booklet, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID, run.Source, run.Title,
		run.Metadata.Year, run.Metadata.Day, run.Metadata.Booklet,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	batch := &pgx.Batch{}
	for _, q := range run.Questions {
		batch.Queue(
			`INSERT INTO exam_questions (id, run_id, number, area, page, markdown, tokens)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (run_id, number) DO UPDATE SET
				area = EXCLUDED.area,
				page = EXCLUDED.page,
				markdown = EXCLUDED.markdown,
				tokens = EXCLUDED.tokens`,
			q.ID, run.ID, q.Number, q.Area, q.Page, q.Markdown, q.Tokens,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save questions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// GetRun loads a run with its questions in ascending number
func (p *PostgresStore) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	run := &Run{ID: id}
	err := p.pool.QueryRow(ctx,
		`SELECT source, title, year, day, booklet, created_at FROM exam_runs WHERE id = $1`, id,
	).Scan(&run.Source, &run.Title,
		&run.Metadata.Year, &run.Metadata.Day, &run.Metadata.Booklet,
		&run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	rows, err := p.pool.Query(ctx,
		`SELECT id, number, area, page, markdown, tokens
		 FROM exam_questions WHERE run_id = $1 ORDER BY number`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	run.Questions, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (Question, error) {
		var q Question
		err := row.Scan(&q.ID, &q.Number, &q.Area, &q.Page, &q.Markdown, &q.Tokens)
		return q, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan questions: %w", err)
	}
	return run, nil
}
