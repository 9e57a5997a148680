package session

import (
	"context"
	"strings"
	"time"
)

// DefaultID はセッション ID を伴わない呼び出しが共有するセッションです。
const DefaultID = "default"

// Session はブラウザ単位の操作ユーザーを保持します。
type Session struct {
	ID        string
	UserID    string
	UpdatedAt time.Time
}

// Clone はセッションのコピーを返します。
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

type ctxKey struct{}

// WithID はセッション ID をコンテキストに格納します。
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, strings.TrimSpace(id))
}

// IDFromContext はコンテキストのセッション ID を返します。未設定なら DefaultID です。
func IDFromContext(ctx context.Context) string {
	if ctx == nil {
		return DefaultID
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return DefaultID
}
