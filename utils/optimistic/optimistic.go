// Package optimistic applies a speculative change to locally held state, commits it
// remotely and restores the snapshot when the commit fails.
package optimistic

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/ev-admin/utils/logger"
	"go.uber.org/zap"
)

// Mutation describes one optimistic update over a state value S.
type Mutation[S any] struct {
	// Load returns the current state; its result is the snapshot.
	Load func(ctx context.Context) (S, error)
	// Store replaces the state.
	Store func(ctx context.Context, state S) error
	// Apply returns the speculative state. It must not mutate its argument in place.
	Apply func(state S) S
	// Commit performs the remote request.
	Commit func(ctx context.Context) error
}

// Run stores Apply(snapshot), calls Commit and stores the snapshot back if Commit fails.
// A failing Load or Store does not block the commit; local state is best effort.
func Run[S any](ctx context.Context, m Mutation[S]) error {
	snapshot, loadErr := m.Load(ctx)
	if loadErr != nil {
		logger.Warn("[optimistic.Run] err Load", zap.String("error", loadErr.Error()))
	} else if err := m.Store(ctx, m.Apply(snapshot)); err != nil {
		logger.Warn("[optimistic.Run] err Store speculative", zap.String("error", err.Error()))
	}

	if err := m.Commit(ctx); err != nil {
		if loadErr == nil {
			if rerr := m.Store(ctx, snapshot); rerr != nil {
				return fmt.Errorf("commit: %w (restore: %v)", err, rerr)
			}
		}
		return err
	}
	return nil
}
