package answerkey

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"testprep-server/models"
)

// PostgresSource reads the answer key from a database table with
// question_number, correct_option and domain columns. It is an alternate
// backend for deployments that keep the key in Postgres instead of a CSV
// export; grading semantics are identical.
type PostgresSource struct {
	Pool  *pgxpool.Pool
	Table string
}

// NewPostgresSource returns a Source backed by the given table.
func NewPostgresSource(pool *pgxpool.Pool, table string) *PostgresSource {
	return &PostgresSource{Pool: pool, Table: table}
}

// Load queries the full key, fresh on every call.
func (s *PostgresSource) Load(ctx context.Context) ([]models.AnswerKeyEntry, error) {
	query := fmt.Sprintf(`
		SELECT question_number, correct_option, COALESCE(domain, '')
		FROM %s
		ORDER BY question_number
	`, s.Table)
	rows, err := s.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query answer key table %s: %w", s.Table, err)
	}
	defer rows.Close()

	var entries []models.AnswerKeyEntry
	for rows.Next() {
		var e models.AnswerKeyEntry
		if err := rows.Scan(&e.QuestionNumber, &e.CorrectOption, &e.Domain); err != nil {
			return nil, fmt.Errorf("failed to scan answer key row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read answer key rows: %w", err)
	}
	return entries, nil
}

// Connect opens a pgx connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	log.Println("Connected to answer key database")
	return pool, nil
}

// EnsureSchema creates the answer key table if it does not exist. Kept
// minimal: the service only ever reads this table.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, table string) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			question_number INT PRIMARY KEY,
			correct_option  TEXT NOT NULL,
			domain          TEXT
		)
	`, table)
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure answer key schema: %w", err)
	}
	return nil
}
