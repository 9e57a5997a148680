package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/codex-timeoff/internal/core/session"
)

// SessionStore はプロセス内でセッションを保持します。再起動で消えます。
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewSessionStore は SessionStore を生成します。
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*session.Session)}
}

var _ session.Store = (*SessionStore)(nil)

// Get はセッションを取得します。
func (s *SessionStore) Get(_ context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Save はセッションを上書き保存します。
func (s *SessionStore) Save(_ context.Context, sess *session.Session) error {
	if sess == nil || sess.ID == "" {
		return session.ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = sess.Clone()
	return nil
}
