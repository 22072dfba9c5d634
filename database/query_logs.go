package database

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "wellness-bot/errors"
)

// maxBotResponseLen bounds the stored bot_response in bytes.
const maxBotResponseLen = 500

// QueryLogEntry is one analytics record: what was asked, what matched, and in
// which language. Unmatched queries log with no conditions and intent
// "unknown" so curators can mine them for missing aliases.
type QueryLogEntry struct {
	ID                uuid.UUID
	QueryText         string
	BotResponse       string
	MatchedConditions []string
	Intent            string
	QueryLanguage     string
	ResponseLanguage  string
	Email             string
	CreatedAt         time.Time
}

// LogQuery persists one resolution outcome. Responses are truncated so a
// multi-condition aggregation doesn't bloat the log table.
func (s *PostgresStore) LogQuery(ctx context.Context, entry QueryLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	response := truncateUTF8(entry.BotResponse, maxBotResponseLen)

	var matched any
	if len(entry.MatchedConditions) > 0 {
		matched = strings.Join(entry.MatchedConditions, ", ")
	}
	var email any
	if entry.Email != "" {
		email = entry.Email
	}

	query := `
        INSERT INTO query_logs
            (id, query_text, bot_response, matched_conditions, intent,
             query_language, response_language, email, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

	_, err := s.DB.ExecContext(ctx, query,
		entry.ID, entry.QueryText, response, matched, entry.Intent,
		entry.QueryLanguage, entry.ResponseLanguage, email)
	if err != nil {
		return apperrors.WrapError(err, "failed to log query")
	}
	return nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune. A byte
// slice through the middle of a Devanagari sequence would make Postgres
// reject the insert as invalid UTF-8.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// CountUnmatchedSince reports how many queries resolved to nothing since the
// cutoff, a cheap health signal for alias coverage.
func (s *PostgresStore) CountUnmatchedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM query_logs WHERE intent = 'unknown' AND created_at >= $1`
	if err := s.DB.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, apperrors.WrapError(err, "failed to count unmatched queries")
	}
	return count, nil
}
