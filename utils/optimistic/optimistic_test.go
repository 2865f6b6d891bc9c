package optimistic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/ev-admin/utils/logger"
	"github.com/muhammadheryan/ev-admin/utils/optimistic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type store struct {
	state   []string
	history [][]string
	loadErr error
	// storeErr fails the next Store call and is then cleared.
	storeErr error
}

func (s *store) mutation(commitErr error, apply func([]string) []string) optimistic.Mutation[[]string] {
	return optimistic.Mutation[[]string]{
		Load: func(ctx context.Context) ([]string, error) {
			if s.loadErr != nil {
				return nil, s.loadErr
			}
			return s.state, nil
		},
		Store: func(ctx context.Context, state []string) error {
			if err := s.storeErr; err != nil {
				s.storeErr = nil
				return err
			}
			s.state = state
			s.history = append(s.history, state)
			return nil
		},
		Apply:  apply,
		Commit: func(ctx context.Context) error { return commitErr },
	}
}

func appendItem(item string) func([]string) []string {
	return func(in []string) []string {
		out := make([]string, 0, len(in)+1)
		out = append(out, in...)
		return append(out, item)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		loadErr     error
		commitErr   error
		wantState   []string
		wantHistory int
		wantErr     bool
	}{
		{
			name:        "success: speculative state kept",
			wantState:   []string{"a", "b"},
			wantHistory: 1,
		},
		{
			name:        "error: commit fails restores snapshot",
			commitErr:   errors.New("backend down"),
			wantState:   []string{"a"},
			wantHistory: 2,
			wantErr:     true,
		},
		{
			name:        "success: load failure still commits",
			loadErr:     errors.New("cache miss"),
			wantState:   []string{"a"},
			wantHistory: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &store{state: []string{"a"}, loadErr: tt.loadErr}

			err := optimistic.Run(context.Background(), s.mutation(tt.commitErr, appendItem("b")))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, s.state)
			assert.Len(t, s.history, tt.wantHistory)
		})
	}
}

func TestRun_SpeculativeStoreFailureLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Get()
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(prev) })

	s := &store{state: []string{"a"}, storeErr: errors.New("redis down")}

	err := optimistic.Run(context.Background(), s.mutation(nil, appendItem("b")))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, s.state)
	assert.Empty(t, s.history)

	entries := logs.FilterMessage("[optimistic.Run] err Store speculative").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "redis down", entries[0].ContextMap()["error"])
}
