package smalltalk

import (
	"context"

	"github.com/sandevgo/weatherbot/internal/core"
)

// None never answers; the bot falls back to its help text.
type None struct{}

func (None) Reply(context.Context, string) (string, error) {
	return "", core.ErrNoResponse
}
