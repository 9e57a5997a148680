package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/ogurasousui/codex-timeoff/internal/core/session"
)

const (
	keyPrefix  = "session:"
	defaultTTL = 24 * time.Hour
)

// Commander は SessionRepository が利用する Redis コマンドです。*redis.Client が満たします。
type Commander interface {
	Get(ctx context.Context, key string) *redislib.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redislib.StatusCmd
}

// SessionRepository は Redis を利用したセッション保存の実装です。
// 保存のたびに有効期限を延長します。
type SessionRepository struct {
	client Commander
	ttl    time.Duration
}

// NewSessionRepository は SessionRepository を生成します。
func NewSessionRepository(client Commander, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &SessionRepository{client: client, ttl: ttl}
}

var _ session.Store = (*SessionRepository)(nil)

type sessionRecord struct {
	UserID    string    `json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get はセッションを取得します。
func (r *SessionRepository) Get(ctx context.Context, id string) (*session.Session, error) {
	result, err := r.client.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, session.ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis: get session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, fmt.Errorf("redis: decode session %s: %w", id, err)
	}

	return &session.Session{ID: id, UserID: record.UserID, UpdatedAt: record.UpdatedAt}, nil
}

// Save はセッションを保存します。
func (r *SessionRepository) Save(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.ID == "" {
		return session.ErrInvalidSession
	}

	payload, err := json.Marshal(sessionRecord{UserID: sess.UserID, UpdatedAt: sess.UpdatedAt})
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key(sess.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis: save session: %w", err)
	}
	return nil
}

func key(id string) string {
	return keyPrefix + id
}
