package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/codex-timeoff/internal/core/session"
)

type fakeCommander struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeCommander() *fakeCommander {
	return &fakeCommander{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCommander) Get(_ context.Context, key string) *redislib.StringCmd {
	if f.err != nil {
		return redislib.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redislib.NewStringResult("", redislib.Nil)
	}
	return redislib.NewStringResult(v, nil)
}

func (f *fakeCommander) Set(_ context.Context, key string, value any, expiration time.Duration) *redislib.StatusCmd {
	if f.err != nil {
		return redislib.NewStatusResult("", f.err)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration
	return redislib.NewStatusResult("OK", nil)
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	t.Parallel()

	client := newFakeCommander()
	repo := NewSessionRepository(client, time.Hour)
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), &session.Session{ID: "abc", UserID: "user-3", UpdatedAt: now}))

	assert.Contains(t, client.values, "session:abc")
	assert.Equal(t, time.Hour, client.ttls["session:abc"])

	got, err := repo.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "user-3", got.UserID)
	assert.True(t, got.UpdatedAt.Equal(now))
}

func TestSessionRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewSessionRepository(newFakeCommander(), 0)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Equal(t, defaultTTL, repo.ttl)
}

func TestSessionRepository_Errors(t *testing.T) {
	t.Parallel()

	down := errors.New("connection refused")
	client := newFakeCommander()
	client.err = down
	repo := NewSessionRepository(client, time.Minute)

	_, err := repo.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, down)
	assert.ErrorIs(t, repo.Save(context.Background(), &session.Session{ID: "abc"}), down)
	assert.ErrorIs(t, repo.Save(context.Background(), &session.Session{}), session.ErrInvalidSession)

	corrupt := newFakeCommander()
	corrupt.values["session:abc"] = "{not json"
	_, err = NewSessionRepository(corrupt, time.Minute).Get(context.Background(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionRepository_WithService(t *testing.T) {
	t.Parallel()

	svc := session.NewService(NewSessionRepository(newFakeCommander(), time.Minute), "user-1", nil)
	ctx := session.WithID(context.Background(), "browser-1")

	_, err := svc.SwitchUser(ctx, "user-2")
	require.NoError(t, err)

	id, err := svc.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-2", id)
}
