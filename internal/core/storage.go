package core

import (
	"context"
	"time"
)

type CorpusRepository interface {
	AddStatement(ctx context.Context, st Statement) error
	BestMatch(ctx context.Context, text string) (Match, error)
	Count(ctx context.Context) (int, error)
}

// Statement is a trained (text, response) pair of the small-talk corpus.
type Statement struct {
	ID           int64     `json:"id"`
	Text         string    `json:"text"`
	InResponseTo string    `json:"in_response_to"`
	Conversation string    `json:"conversation"`
	CreatedAt    time.Time `json:"created_at"`
}

// Match is the closest known statement to some input, with the reply that
// followed it during training.
type Match struct {
	Statement  string
	Response   string
	Confidence float64
}
