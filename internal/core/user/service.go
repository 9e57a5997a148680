package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultCurrentUserID はセッションが解決できない場合に利用する操作ユーザーです。
const DefaultCurrentUserID = "user-1"

// Identity は「現在操作しているユーザー」を解決します。
type Identity interface {
	CurrentUserID(ctx context.Context) (string, error)
}

type staticIdentity string

func (s staticIdentity) CurrentUserID(context.Context) (string, error) {
	return string(s), nil
}

// TransactionManager は参照トランザクションの抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service はユーザーに関するユースケースをまとめます。
type Service struct {
	repo      Repository
	identity  Identity
	tx        TransactionManager
	defaultID string
}

// UseCase はユーザーユースケースの公開インターフェースです。
type UseCase interface {
	GetCurrentUser(ctx context.Context) (*User, error)
	GetUser(ctx context.Context, in GetUserInput) (*User, error)
	ListUsers(ctx context.Context, in ListUsersInput) ([]*User, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithDefaultUserID はセッションのユーザーが見つからないときに返す既定ユーザーを設定します。
func WithDefaultUserID(id string) Option {
	return func(s *Service) {
		if id = strings.TrimSpace(id); id != "" {
			s.defaultID = id
		}
	}
}

// NewService は Service を生成します。identity が nil の場合は既定ユーザーを操作者とみなします。
func NewService(repo Repository, identity Identity, tx TransactionManager, opts ...Option) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{repo: repo, identity: identity, tx: tx, defaultID: DefaultCurrentUserID}
	for _, opt := range opts {
		opt(s)
	}
	if s.identity == nil {
		s.identity = staticIdentity(s.defaultID)
	}
	return s
}

// GetUserInput はユーザー取得時の入力です。
type GetUserInput struct {
	ID string
}

// ListUsersInput は一覧取得時の入力です。
type ListUsersInput struct {
	Role *Role
}

// GetCurrentUser はセッションに紐づく操作ユーザーを取得します。
// セッションが存在しないユーザーを指している場合は既定ユーザーを返します。
func (s *Service) GetCurrentUser(ctx context.Context) (*User, error) {
	id, err := s.identity.CurrentUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve current user: %w", err)
	}

	found, err := s.GetUser(ctx, GetUserInput{ID: id})
	if errors.Is(err, ErrUserNotFound) && strings.TrimSpace(id) != s.defaultID {
		return s.GetUser(ctx, GetUserInput{ID: s.defaultID})
	}
	return found, err
}

// GetUser は ID でユーザーを取得します。
func (s *Service) GetUser(ctx context.Context, in GetUserInput) (*User, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, ErrUserNotFound
	}

	var found *User
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		u, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = u
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListUsers はユーザーの一覧を登録順に取得します。
func (s *Service) ListUsers(ctx context.Context, in ListUsersInput) ([]*User, error) {
	var rolePtr *Role
	if in.Role != nil {
		if !IsValidRole(*in.Role) {
			return nil, ErrInvalidRole
		}
		role := *in.Role
		rolePtr = &role
	}

	var users []*User
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx, ListUsersFilter{Role: rolePtr})
		if err != nil {
			return err
		}
		users = result
		return nil
	}); err != nil {
		return nil, err
	}

	if users == nil {
		users = []*User{}
	}
	return users, nil
}

// ValidateDirectory は社員の承認者が既存のマネージャーを参照していることを検証します。
func ValidateDirectory(users []*User) error {
	managers := make(map[string]struct{}, len(users))
	for _, u := range users {
		if !IsValidRole(u.Role) {
			return fmt.Errorf("user %s: %w", u.ID, ErrInvalidRole)
		}
		if u.IsManager() {
			managers[u.ID] = struct{}{}
		}
	}

	for _, u := range users {
		if !u.HasManager() {
			continue
		}
		if _, ok := managers[u.ManagerID]; !ok {
			return fmt.Errorf("user %s -> %s: %w", u.ID, u.ManagerID, ErrUnknownManager)
		}
	}
	return nil
}
