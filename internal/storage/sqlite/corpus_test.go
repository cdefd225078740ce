package sqlite

import (
	"context"
	"testing"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *CorpusRepo {
	t.Helper()
	db, err := NewDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCorpusRepo(db)
}

func TestCorpusRepo_AddStatement(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.AddStatement(ctx, core.Statement{Text: "hi"}))
	require.NoError(t, repo.AddStatement(ctx, core.Statement{Text: "Hello!", InResponseTo: "hi"}))
	// duplicate is ignored
	require.NoError(t, repo.AddStatement(ctx, core.Statement{Text: " Hello! ", InResponseTo: "hi"}))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Error(t, repo.AddStatement(ctx, core.Statement{Text: "   "}))
}

func TestCorpusRepo_BestMatch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	pairs := [][2]string{
		{"hi", "Hello! How can I help you today?"},
		{"thank you", "You're welcome!"},
		{"bye", "Goodbye!"},
	}
	for _, p := range pairs {
		require.NoError(t, repo.AddStatement(ctx, core.Statement{Text: p[1], InResponseTo: p[0]}))
	}

	tests := []struct {
		input     string
		statement string
		response  string
	}{
		{"hi", "hi", "Hello! How can I help you today?"},
		{"Thank you!", "thank you", "You're welcome!"},
		{"bye bye", "bye", "Goodbye!"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := repo.BestMatch(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.statement, m.Statement)
			assert.Equal(t, tt.response, m.Response)
			assert.Greater(t, m.Confidence, 0.0)
			assert.LessOrEqual(t, m.Confidence, 1.0)
		})
	}

	m, err := repo.BestMatch(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Confidence)
}

func TestCorpusRepo_BestMatchEmpty(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.BestMatch(context.Background(), "hi")
	assert.ErrorIs(t, err, core.ErrNoResponse)
}
