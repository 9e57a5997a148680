package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

// DefaultLatency はネットワーク越しの API を模した待ち時間です。
const DefaultLatency = 500 * time.Millisecond

var (
	// ErrReadOnlyTransaction は参照トランザクション内で書き込もうとした場合に返されます。
	ErrReadOnlyTransaction = errors.New("memory: write in read-only transaction")
	// ErrDuplicateID は初期データの ID が重複している場合に返されます。
	ErrDuplicateID = errors.New("memory: duplicate id in seed")
)

type lockMode int

const (
	lockRead lockMode = iota + 1
	lockWrite
)

type lockState struct {
	store *Store
	mode  lockMode
}

type lockContextKey struct{}

// Store はユーザーと休暇申請を保持するプロセス内ストアです。
//
// 全ての参照と更新は単一の RWMutex を通ります。読み取り後に書き込む一連の処理は
// WithinReadWrite の中で書き込みロックを保持したまま実行されます。
type Store struct {
	mu sync.RWMutex

	users     []*user.User
	userIndex map[string]int

	requests     []*timeoff.Request
	requestIndex map[string]int

	latency time.Duration
}

// Option は Store の任意設定です。
type Option func(*Store)

// WithLatency は操作ごとの待ち時間を設定します。0 以下で無効になります。
func WithLatency(d time.Duration) Option {
	return func(s *Store) {
		if d < 0 {
			d = 0
		}
		s.latency = d
	}
}

// NewStore は初期データを検証して Store を生成します。
func NewStore(seed Seed, opts ...Option) (*Store, error) {
	if err := user.ValidateDirectory(seed.Users); err != nil {
		return nil, fmt.Errorf("memory: invalid seed users: %w", err)
	}

	s := &Store{
		users:        make([]*user.User, 0, len(seed.Users)),
		userIndex:    make(map[string]int, len(seed.Users)),
		requests:     make([]*timeoff.Request, 0, len(seed.Requests)),
		requestIndex: make(map[string]int, len(seed.Requests)),
		latency:      DefaultLatency,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, u := range seed.Users {
		if _, ok := s.userIndex[u.ID]; ok {
			return nil, fmt.Errorf("user %s: %w", u.ID, ErrDuplicateID)
		}
		s.userIndex[u.ID] = len(s.users)
		s.users = append(s.users, u.Clone())
	}

	for _, r := range seed.Requests {
		if _, ok := s.requestIndex[r.ID]; ok {
			return nil, fmt.Errorf("request %s: %w", r.ID, ErrDuplicateID)
		}
		if _, ok := s.userIndex[r.EmployeeID]; !ok {
			return nil, fmt.Errorf("request %s: %w", r.ID, timeoff.ErrEmployeeNotFound)
		}
		s.requestIndex[r.ID] = len(s.requests)
		s.requests = append(s.requests, r.Clone())
	}

	return s, nil
}

// WithinReadOnly は読み取りロックを保持したまま fn を実行します。
func (s *Store) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return s.within(ctx, lockRead, fn)
}

// WithinReadWrite は書き込みロックを保持したまま fn を実行します。
func (s *Store) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return s.within(ctx, lockWrite, fn)
}

func (s *Store) within(ctx context.Context, mode lockMode, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}

	if held, ok := s.heldLock(ctx); ok {
		if mode == lockWrite && held == lockRead {
			return ErrReadOnlyTransaction
		}
		return fn(ctx)
	}

	if err := s.wait(ctx); err != nil {
		return err
	}

	s.lock(mode)
	defer s.unlock(mode)

	return fn(context.WithValue(ctx, lockContextKey{}, lockState{store: s, mode: mode}))
}

// read は単発の参照を実行します。トランザクション内ではロックと待ち時間を省きます。
func (s *Store) read(ctx context.Context, fn func() error) error {
	if _, ok := s.heldLock(ctx); ok {
		return fn()
	}
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn()
}

func (s *Store) write(ctx context.Context, fn func() error) error {
	if held, ok := s.heldLock(ctx); ok {
		if held != lockWrite {
			return ErrReadOnlyTransaction
		}
		return fn()
	}
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) heldLock(ctx context.Context) (lockMode, bool) {
	if ctx == nil {
		return 0, false
	}
	state, ok := ctx.Value(lockContextKey{}).(lockState)
	if !ok || state.store != s {
		return 0, false
	}
	return state.mode, true
}

func (s *Store) lock(mode lockMode) {
	if mode == lockWrite {
		s.mu.Lock()
		return
	}
	s.mu.RLock()
}

func (s *Store) unlock(mode lockMode) {
	if mode == lockWrite {
		s.mu.Unlock()
		return
	}
	s.mu.RUnlock()
}

// wait はロック取得前に一度だけ待ち時間を挿入します。
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
