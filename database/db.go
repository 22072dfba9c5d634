package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	apperrors "wellness-bot/errors"
	"wellness-bot/kb"
)

// PostgresStore backs the knowledge base and the query log. It satisfies
// kb.Store for the resolver's read path.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to the database")
	return &PostgresStore{DB: db}, nil
}

// EnsureSchema creates the required tables if they do not already exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS conditions (
            canonical_id TEXT PRIMARY KEY,
            condition_en TEXT NOT NULL,
            condition_hi TEXT DEFAULT '',
            description_en TEXT DEFAULT '',
            description_hi TEXT DEFAULT '',
            symptom_en TEXT DEFAULT '',
            symptom_hi TEXT DEFAULT '',
            first_aid_en TEXT DEFAULT '',
            first_aid_hi TEXT DEFAULT '',
            prevention_en TEXT DEFAULT '',
            prevention_hi TEXT DEFAULT '',
            disclaimer_en TEXT DEFAULT '',
            disclaimer_hi TEXT DEFAULT '',
            intent_category TEXT DEFAULT '',
            created_at TIMESTAMPTZ DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS query_logs (
            id UUID PRIMARY KEY,
            query_text TEXT NOT NULL,
            bot_response TEXT DEFAULT '',
            matched_conditions TEXT,
            intent TEXT DEFAULT '',
            query_language TEXT NOT NULL,
            response_language TEXT NOT NULL,
            email TEXT,
            created_at TIMESTAMPTZ DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_query_logs_created_at ON query_logs(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_query_logs_intent ON query_logs(intent)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

const conditionColumns = `canonical_id, condition_en, condition_hi,
    description_en, description_hi, symptom_en, symptom_hi,
    first_aid_en, first_aid_hi, prevention_en, prevention_hi,
    disclaimer_en, disclaimer_hi, intent_category`

// GetCondition returns one condition by canonical id, distinguishing
// not-found from a store failure.
func (s *PostgresStore) GetCondition(ctx context.Context, canonicalID string) (kb.Condition, error) {
	query := `SELECT ` + conditionColumns + ` FROM conditions WHERE canonical_id = $1`
	row := s.DB.QueryRowContext(ctx, query, canonicalID)

	cond, err := scanCondition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return kb.Condition{}, apperrors.WrapErrorf(apperrors.ErrNotFound, "condition %q", canonicalID)
	}
	if err != nil {
		return kb.Condition{}, apperrors.WrapError(err, "failed to get condition")
	}
	return cond, nil
}

// AllConditions returns every condition ordered by canonical id, so the
// alias index and the matching tiers iterate deterministically.
func (s *PostgresStore) AllConditions(ctx context.Context) ([]kb.Condition, error) {
	query := `SELECT ` + conditionColumns + ` FROM conditions ORDER BY canonical_id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to list conditions")
	}
	defer rows.Close()

	var conditions []kb.Condition
	for rows.Next() {
		cond, err := scanCondition(rows)
		if err != nil {
			return nil, apperrors.WrapError(err, "failed to scan condition")
		}
		conditions = append(conditions, cond)
	}
	return conditions, rows.Err()
}

// UpsertCondition inserts or replaces one condition. This is the
// administrative write path; callers are responsible for invalidating the
// condition cache and reloading the alias index afterwards.
func (s *PostgresStore) UpsertCondition(ctx context.Context, cond kb.Condition) error {
	query := `
        INSERT INTO conditions (` + conditionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (canonical_id) DO UPDATE SET
            condition_en = EXCLUDED.condition_en,
            condition_hi = EXCLUDED.condition_hi,
            description_en = EXCLUDED.description_en,
            description_hi = EXCLUDED.description_hi,
            symptom_en = EXCLUDED.symptom_en,
            symptom_hi = EXCLUDED.symptom_hi,
            first_aid_en = EXCLUDED.first_aid_en,
            first_aid_hi = EXCLUDED.first_aid_hi,
            prevention_en = EXCLUDED.prevention_en,
            prevention_hi = EXCLUDED.prevention_hi,
            disclaimer_en = EXCLUDED.disclaimer_en,
            disclaimer_hi = EXCLUDED.disclaimer_hi,
            intent_category = EXCLUDED.intent_category`

	_, err := s.DB.ExecContext(ctx, query,
		cond.CanonicalID,
		cond.DisplayName.EN, cond.DisplayName.HI,
		cond.Description.EN, cond.Description.HI,
		cond.Symptoms.EN, cond.Symptoms.HI,
		cond.FirstAid.EN, cond.FirstAid.HI,
		cond.Prevention.EN, cond.Prevention.HI,
		cond.Disclaimer.EN, cond.Disclaimer.HI,
		cond.IntentCategory)
	if err != nil {
		return apperrors.WrapErrorf(err, "failed to upsert condition %q", cond.CanonicalID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCondition(row rowScanner) (kb.Condition, error) {
	var cond kb.Condition
	err := row.Scan(
		&cond.CanonicalID,
		&cond.DisplayName.EN, &cond.DisplayName.HI,
		&cond.Description.EN, &cond.Description.HI,
		&cond.Symptoms.EN, &cond.Symptoms.HI,
		&cond.FirstAid.EN, &cond.FirstAid.HI,
		&cond.Prevention.EN, &cond.Prevention.HI,
		&cond.Disclaimer.EN, &cond.Disclaimer.HI,
		&cond.IntentCategory)
	return cond, err
}
