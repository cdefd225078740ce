package core

import (
	"context"
	"errors"
)

// ErrNoResponse is returned by a SmallTalker that has nothing to say.
var ErrNoResponse = errors.New("no response")

type WeatherProvider interface {
	Current(ctx context.Context, city string) (WeatherReading, error)
}

type SmallTalker interface {
	Reply(ctx context.Context, text string) (string, error)
}
