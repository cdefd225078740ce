package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "hello", "hello", 1},
		{"case and space insensitive", "  Hello ", "hello", 1},
		{"both empty", "", "", 1},
		{"one empty", "hi", "", 0},
		{"one edit", "hi", "ho", 0.5},
		{"disjoint", "abc", "xyz", 0},
		{"multibyte runes", "café", "cafe", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDriver_SimilarityFunction(t *testing.T) {
	db, err := sql.Open(DriverName, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())

	var score float64
	err = db.QueryRow(`SELECT similarity('what is your name', 'What is your name?')`).Scan(&score)
	require.NoError(t, err)
	assert.InDelta(t, Similarity("what is your name", "What is your name?"), score, 1e-9)
	assert.Greater(t, score, 0.9)
}

func TestDriver_OrderBySimilarity(t *testing.T) {
	db, err := sql.Open(DriverName, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE phrases (id INTEGER PRIMARY KEY AUTOINCREMENT, text TEXT NOT NULL)`)
	require.NoError(t, err)
	for _, p := range []string{"bye", "thank you", "hello"} {
		_, err = db.Exec(`INSERT INTO phrases (text) VALUES (?)`, p)
		require.NoError(t, err)
	}

	var best string
	err = db.QueryRow(`SELECT text FROM phrases ORDER BY similarity(text, ?) DESC, id ASC LIMIT 1`, "helo").Scan(&best)
	require.NoError(t, err)
	assert.Equal(t, "hello", best)
}
