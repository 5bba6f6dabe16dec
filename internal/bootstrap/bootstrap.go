// Package bootstrap runs one CLI action and releases its resources afterwards.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"time"
)

var ErrInterrupted = errors.New("interrupted")

// DefaultShutdownTimeout bounds how long an interrupted action may keep running
// before its resources are closed.
const DefaultShutdownTimeout = 5 * time.Second

// App runs an action and then its cleanup hooks.
type App struct {
	mu              sync.Mutex
	hooks           []func(ctx context.Context) error
	shutdownTimeout time.Duration
}

func New() *App {
	return &App{shutdownTimeout: DefaultShutdownTimeout}
}

// AddCleanup registers fn to run after the action. Hooks run in reverse order (LIFO).
func (a *App) AddCleanup(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// AddCloser registers c.Close as a cleanup hook.
func (a *App) AddCloser(c interface{ Close() error }) {
	a.AddCleanup(func(context.Context) error { return c.Close() })
}

// Run executes run and then the cleanup hooks. On an OS interrupt the action's
// context is cancelled and Run waits up to the shutdown timeout for it to
// return before cleaning up, so resources are not closed under it.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case err := <-errCh:
		return errors.Join(err, a.Cleanup(context.Background()))
	case <-ctx.Done():
	}

	timer := time.NewTimer(a.shutdownTimeout)
	defer timer.Stop()
	select {
	case err := <-errCh:
		if err == nil {
			return a.Cleanup(context.Background())
		}
		return errors.Join(ErrInterrupted, err, a.Cleanup(context.Background()))
	case <-timer.C:
		return errors.Join(ErrInterrupted, a.Cleanup(context.Background()))
	}
}

// Cleanup runs and clears the registered hooks.
func (a *App) Cleanup(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
