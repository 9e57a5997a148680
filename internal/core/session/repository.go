package session

import "context"

// Store はセッションの保存先です。
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
}
