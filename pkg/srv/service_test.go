package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type fakeService struct {
	name     string
	rec      *recorder
	startErr error
	block    bool
}

func (f *fakeService) Start(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.startErr
}

func (f *fakeService) Shutdown(context.Context) error {
	f.rec.add(f.name)
	return nil
}

func TestServices_ForegroundExitStopsApp(t *testing.T) {
	rec := &recorder{}
	services := []Service{
		&fakeService{name: "background", rec: rec, block: true},
		&fakeService{name: "foreground", rec: rec},
	}

	ctx, stop := context.WithCancelCause(context.Background())
	StartServices(ctx, stop, services)

	done := make(chan error, 1)
	go func() { done <- ShutdownServices(ctx, services) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("services did not shut down")
	}
	assert.Equal(t, []string{"foreground", "background"}, rec.order)
}

func TestServices_FailureIsReturned(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("boom")
	services := []Service{
		&fakeService{name: "ok", rec: rec, block: true},
		&fakeService{name: "bad", rec: rec, startErr: boom},
	}

	ctx, stop := context.WithCancelCause(context.Background())
	StartServices(ctx, stop, services)

	err := ShutdownServices(ctx, services)
	assert.ErrorIs(t, err, boom)
}

func TestServices_ExternalCancel(t *testing.T) {
	rec := &recorder{}
	services := []Service{
		&fakeService{name: "a", rec: rec, block: true},
		NewCleanup(func() error {
			rec.add("cleanup")
			return nil
		}),
	}

	ctx, stop := context.WithCancelCause(context.Background())
	StartServices(ctx, stop, services)
	stop(nil)

	require.NoError(t, ShutdownServices(ctx, services))
	assert.Equal(t, []string{"cleanup", "a"}, rec.order)
}
