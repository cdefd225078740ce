package srv

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/weatherbot/pkg/log"
)

// Service is a long running part of the app. Start blocks until the service
// is done or ctx is cancelled.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

const shutdownTimeout = 10 * time.Second

// StartServices starts every service in its own goroutine. The first service
// to return, with or without an error, cancels ctx through stop, so a
// foreground transport exiting brings the whole app down.
func StartServices(ctx context.Context, stop context.CancelCauseFunc, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			err := service.Start(ctx)
			switch {
			case err == nil:
				logger.Debug().Msgf("%T stopped", service)
				stop(nil)
			case errors.Is(err, context.Canceled):
				stop(nil)
			default:
				logger.Error().Err(err).Msgf("%T failed", service)
				stop(err)
			}
		}(service)
	}
}

// ShutdownServices waits for ctx to be done and shuts services down in
// reverse order. It returns the cause that stopped the app, if any.
func ShutdownServices(ctx context.Context, services []Service) error {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}

	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}
