package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/pkg/log"
)

const defaultConversation = "training"

type CorpusRepo struct {
	db *sql.DB
}

func NewCorpusRepo(db *sql.DB) *CorpusRepo {
	return &CorpusRepo{db: db}
}

// AddStatement stores a statement. Re-adding the same statement is a no-op, so
// training the same conversation twice does not duplicate it.
func (r *CorpusRepo) AddStatement(ctx context.Context, st core.Statement) error {
	text := strings.TrimSpace(st.Text)
	if text == "" {
		return errors.New("statement text is empty")
	}
	conversation := st.Conversation
	if conversation == "" {
		conversation = defaultConversation
	}

	query := `INSERT OR IGNORE INTO statements (text, in_response_to, conversation) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, text, strings.TrimSpace(st.InResponseTo), conversation); err != nil {
		return fmt.Errorf("failed to insert statement: %w", err)
	}
	return nil
}

// BestMatch finds the known prompt closest to text and returns the response
// recorded for it. Ties go to the earliest trained statement.
func (r *CorpusRepo) BestMatch(ctx context.Context, text string) (core.Match, error) {
	query := `
		SELECT in_response_to, text, similarity(in_response_to, ?) AS score
		FROM statements
		WHERE in_response_to <> ''
		ORDER BY score DESC, id ASC
		LIMIT 1`

	var m core.Match
	err := r.db.QueryRowContext(ctx, query, text).Scan(&m.Statement, &m.Response, &m.Confidence)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Match{}, core.ErrNoResponse
	}
	if err != nil {
		return core.Match{}, fmt.Errorf("failed to query best match: %w", err)
	}

	log.FromCtx(ctx).Debug().
		Str("input", text).
		Str("statement", m.Statement).
		Float64("confidence", m.Confidence).
		Msg("corpus match")
	return m, nil
}

func (r *CorpusRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM statements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count statements: %w", err)
	}
	return n, nil
}
