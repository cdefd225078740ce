package smalltalk

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrainedCorpus(t *testing.T, minConfidence float64) *Corpus {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c := NewCorpus(sqlite.NewCorpusRepo(db), minConfidence)
	require.NoError(t, c.Train(ctx, DefaultConversation))
	return c
}

func TestCorpus_Reply(t *testing.T) {
	c := newTrainedCorpus(t, 0.5)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "greeting", input: "hi", want: "Hello! How can I help you today?"},
		{name: "greeting variant", input: "Hello", want: "Hi there! I'm WeatherBot, your friendly weather assistant!"},
		{name: "name question", input: "what is your name?", want: "My name is WeatherBot. I can help you with weather forecasts and activity recommendations!"},
		{name: "thanks", input: "thank you!", want: "You're welcome!"},
		{name: "farewell", input: "bye", want: "Goodbye! Stay safe and enjoy your day!"},
		{name: "help", input: "help", want: "Just ask me about weather in any city! Try: 'What's the weather in London?' or 'Is it good for beach in Tokyo?'"},
		{name: "gibberish", input: "zzqxv jjkw ppq", wantErr: core.ErrNoResponse},
		{name: "empty", input: "  ", wantErr: core.ErrNoResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Reply(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorpus_TrainIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.NewDB(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	repo := sqlite.NewCorpusRepo(db)
	c := NewCorpus(repo, 0.5)
	require.NoError(t, c.Train(ctx, DefaultConversation))
	first, err := repo.Count(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Train(ctx, DefaultConversation))
	second, err := repo.Count(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(DefaultConversation), first)
	assert.Equal(t, first, second)
}

type stubRepo struct {
	match core.Match
	err   error
	added []core.Statement
}

func (s *stubRepo) AddStatement(_ context.Context, st core.Statement) error {
	s.added = append(s.added, st)
	return s.err
}

func (s *stubRepo) BestMatch(context.Context, string) (core.Match, error) {
	return s.match, s.err
}

func (s *stubRepo) Count(context.Context) (int, error) {
	return len(s.added), nil
}

func TestCorpus_LowConfidence(t *testing.T) {
	repo := &stubRepo{match: core.Match{Statement: "hi", Response: "Hello!", Confidence: 0.49}}

	_, err := NewCorpus(repo, 0.5).Reply(context.Background(), "hey")
	assert.ErrorIs(t, err, core.ErrNoResponse)

	got, err := NewCorpus(repo, 0.4).Reply(context.Background(), "hey")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", got)
}

func TestCorpus_RepoError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewCorpus(&stubRepo{err: boom}, 0.5).Reply(context.Background(), "hi")
	assert.ErrorIs(t, err, boom)
}

func TestCorpus_TrainLinksLines(t *testing.T) {
	repo := &stubRepo{}
	require.NoError(t, NewCorpus(repo, 0.5).Train(context.Background(), []string{"a", " ", "b", "c"}))

	assert.Equal(t, []core.Statement{
		{Text: "a"},
		{Text: "b", InResponseTo: "a"},
		{Text: "c", InResponseTo: "b"},
	}, repo.added)
}

func TestNone_Reply(t *testing.T) {
	_, err := None{}.Reply(context.Background(), "hi")
	assert.ErrorIs(t, err, core.ErrNoResponse)
}
