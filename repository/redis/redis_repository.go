package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/ev-admin/cmd/redis"
	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	SaveSnapshot(ctx context.Context, key string, value interface{}) error
	LoadSnapshot(ctx context.Context, key string, out interface{}) (time.Time, bool, error)
	PatchSnapshot(ctx context.Context, key string, out interface{}, patch func() (bool, error)) (bool, error)
	SetSession(ctx context.Context, sessionID string, session *model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// snapshot wraps a cached collection with the moment it was written.
type snapshot struct {
	SavedAt int64           `json:"savedAt"`
	Data    json.RawMessage `json:"data"`
}

const maxPatchAttempts = 5

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis, a missing key yields "".
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live, 0 keeps it forever
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, keys ...string) error {
	client := redisclient.Get()
	if client == nil || len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}

// SaveSnapshot overwrites the snapshot under key and bumps the shared timestamp key.
func (r *redis) SaveSnapshot(ctx context.Context, key string, value interface{}) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	body, err := json.Marshal(snapshot{SavedAt: now, Data: data})
	if err != nil {
		return err
	}

	_, err = client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, key, body, 0)
		pipe.Set(ctx, constant.CacheKeyTimestamp, now, 0)
		return nil
	})
	return err
}

// LoadSnapshot decodes the snapshot under key into out and returns when it was saved.
func (r *redis) LoadSnapshot(ctx context.Context, key string, out interface{}) (time.Time, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return time.Time{}, false, nil
	}

	raw, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return time.Time{}, false, err
	}
	if err := json.Unmarshal(snap.Data, out); err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(snap.SavedAt), true, nil
}

// PatchSnapshot decodes the snapshot under key into out, lets patch modify it and writes it back
// under WATCH, so a concurrent writer forces a retry instead of being overwritten. The original
// savedAt is kept. It reports false when the key is missing or patch changed nothing.
func (r *redis) PatchSnapshot(ctx context.Context, key string, out interface{}, patch func() (bool, error)) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}

	var changed bool
	txf := func(tx *goredis.Tx) error {
		changed = false
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, goredis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		var snap snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return err
		}
		if err := json.Unmarshal(snap.Data, out); err != nil {
			return err
		}
		ok, err := patch()
		if err != nil || !ok {
			return err
		}

		data, err := json.Marshal(out)
		if err != nil {
			return err
		}
		body, err := json.Marshal(snapshot{SavedAt: snap.SavedAt, Data: data})
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, body, 0)
			return nil
		})
		if err == nil {
			changed = true
		}
		return err
	}

	for i := 0; i < maxPatchAttempts; i++ {
		err := client.Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return changed, err
	}
	return false, goredis.TxFailedErr
}

// SetSession stores a session with TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, session *model.Session, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return client.Set(ctx, sessionKey(sessionID), body, ttl).Err()
}

// GetSession retrieves a session, goredis.Nil when it expired
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, goredis.Nil
	}
	raw, err := client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
