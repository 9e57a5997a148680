package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Service は「現在操作しているユーザー」を切り替えるデモ用の識別スタブです。
// 認証は行わず、切り替え先のユーザー ID も検証しません。
type Service struct {
	store         Store
	defaultUserID string
	clock         Clock
}

// UseCase はセッションユースケースの公開インターフェースです。
type UseCase interface {
	CurrentUserID(ctx context.Context) (string, error)
	SwitchUser(ctx context.Context, userID string) (*Session, error)
}

// NewService は Service を生成します。
func NewService(store Store, defaultUserID string, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{store: store, defaultUserID: defaultUserID, clock: clock}
}

// NewID は新しいセッション ID を払い出します。
func NewID() string {
	return uuid.NewString()
}

// CurrentUserID はセッションの操作ユーザー ID を返します。切り替え前は既定ユーザーです。
func (s *Service) CurrentUserID(ctx context.Context) (string, error) {
	id := IDFromContext(ctx)

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return s.defaultUserID, nil
		}
		return "", fmt.Errorf("load session %s: %w", id, err)
	}
	return sess.UserID, nil
}

// SwitchUser は操作ユーザーを上書きします。
func (s *Service) SwitchUser(ctx context.Context, userID string) (*Session, error) {
	sess := &Session{
		ID:        IDFromContext(ctx),
		UserID:    userID,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return sess, nil
}
