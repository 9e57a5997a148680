package timeoff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
	"go.uber.org/zap"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// 通知やワイヤ形式の ISO-8601 表現と往復できるようミリ秒に丸めます。
func (realClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// IDGenerator は申請 ID を払い出します。
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc は関数を IDGenerator として扱うアダプタです。
type IDGeneratorFunc func() string

// NewID は f を呼び出します。
func (f IDGeneratorFunc) NewID() string {
	return f()
}

type uuidGenerator struct{}

// UUIDv7 は時刻順に並ぶため、ID は作成順に単調増加します。
func (uuidGenerator) NewID() string {
	return "request-" + uuid.Must(uuid.NewV7()).String()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は休暇申請に関するユースケースをまとめます。
type Service struct {
	repo     Repository
	users    user.Repository
	clock    Clock
	tx       TransactionManager
	ids      IDGenerator
	notifier Notifier
	logger   *zap.Logger

	strictTransitions bool
	requireManager    bool
}

// UseCase は休暇申請ユースケースの公開インターフェースです。
type UseCase interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (*Request, error)
	GetRequest(ctx context.Context, in GetRequestInput) (*Request, error)
	ListEmployeeRequests(ctx context.Context, in ListEmployeeRequestsInput) ([]*Request, error)
	ListManagerRequests(ctx context.Context, in ListManagerRequestsInput) ([]*Request, error)
	UpdateRequestStatus(ctx context.Context, in UpdateRequestStatusInput) (*Request, error)
	GetBoard(ctx context.Context, in GetBoardInput) (*Board, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithIDGenerator は申請 ID の払い出し方法を差し替えます。
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithNotifier は通知の送出先を設定します。
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger は通知失敗などを記録するロガーを設定します。
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrictTransitions は承認・却下済みの申請に対する状態変更を拒否します。
func WithStrictTransitions(strict bool) Option {
	return func(s *Service) {
		s.strictTransitions = strict
	}
}

// WithRequireManager は承認者を決定できない申請の作成を拒否します。
func WithRequireManager(require bool) Option {
	return func(s *Service) {
		s.requireManager = require
	}
}

// NewService は Service を生成します。
func NewService(repo Repository, users user.Repository, clock Clock, tx TransactionManager, opts ...Option) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{
		repo:     repo,
		users:    users,
		clock:    clock,
		tx:       tx,
		ids:      uuidGenerator{},
		notifier: noopNotifier{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequestInput は申請作成時の入力です。期間の前後関係は検証しません。
type CreateRequestInput struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

// GetRequestInput は申請取得時の入力です。
type GetRequestInput struct {
	ID string
}

// ListEmployeeRequestsInput は社員の申請一覧取得時の入力です。
type ListEmployeeRequestsInput struct {
	EmployeeID string
	View       ViewOptions
}

// ListManagerRequestsInput は承認者の申請一覧取得時の入力です。
type ListManagerRequestsInput struct {
	ManagerID string
	View      ViewOptions
}

// UpdateRequestStatusInput は状態更新時の入力です。
type UpdateRequestStatusInput struct {
	ID     string
	Status Status
}

// CreateRequest は新しい申請を pending 状態で作成し、承認者へ通知します。
func (s *Service) CreateRequest(ctx context.Context, in CreateRequestInput) (*Request, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)

	var created *Request
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		employee, err := s.users.FindByID(txCtx, employeeID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		managerID, err := s.resolveManager(txCtx, employee)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		req := &Request{
			ID:           s.ids.NewID(),
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			StartDate:    normalizeDate(in.StartDate),
			EndDate:      normalizeDate(in.EndDate),
			Reason:       in.Reason,
			Status:       StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
			ManagerID:    managerID,
		}

		result, err := s.repo.Create(txCtx, req)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.notify(ctx, Notification{Kind: NotificationSubmitted, RecipientID: created.ManagerID, Request: created.Clone()})
	return created, nil
}

// GetRequest は申請を取得します。
func (s *Service) GetRequest(ctx context.Context, in GetRequestInput) (*Request, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, ErrRequestNotFound
	}

	var found *Request
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListEmployeeRequests は社員の申請を取得します。並び順の指定がなければ登録順を保ちます。
func (s *Service) ListEmployeeRequests(ctx context.Context, in ListEmployeeRequestsInput) ([]*Request, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	return s.list(ctx, ListRequestsFilter{EmployeeID: &employeeID}, in.View)
}

// ListManagerRequests は承認者に割り当てられた申請を取得します。
func (s *Service) ListManagerRequests(ctx context.Context, in ListManagerRequestsInput) ([]*Request, error) {
	managerID := strings.TrimSpace(in.ManagerID)
	return s.list(ctx, ListRequestsFilter{ManagerID: &managerID}, in.View)
}

// UpdateRequestStatus は申請を承認または却下し、申請者へ通知します。
//
// 既定では現在の状態に関わらず上書きします。厳格モードでは決定済みの申請を拒否します。
func (s *Service) UpdateRequestStatus(ctx context.Context, in UpdateRequestStatusInput) (*Request, error) {
	if in.Status != StatusApproved && in.Status != StatusDenied {
		return nil, ErrInvalidStatus
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, ErrRequestNotFound
	}

	var updated *Request
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		if s.strictTransitions && existing.Status.IsTerminal() {
			return fmt.Errorf("%s is %s: %w", existing.ID, existing.Status, ErrInvalidTransition)
		}

		now := s.clock.Now()
		if now.Before(existing.CreatedAt) {
			now = existing.CreatedAt
		}
		existing.Status = in.Status
		existing.UpdatedAt = now

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.notify(ctx, Notification{Kind: NotificationDecided, RecipientID: updated.EmployeeID, Request: updated.Clone()})
	return updated, nil
}

func (s *Service) list(ctx context.Context, filter ListRequestsFilter, view ViewOptions) ([]*Request, error) {
	if err := view.validate(); err != nil {
		return nil, err
	}

	var requests []*Request
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		requests = result
		return nil
	}); err != nil {
		return nil, err
	}

	return ApplyView(requests, view), nil
}

// resolveManager は社員の承認者、なければ最初に登録されたマネージャーを返します。
func (s *Service) resolveManager(ctx context.Context, employee *user.User) (string, error) {
	if employee.HasManager() {
		return employee.ManagerID, nil
	}

	role := user.RoleManager
	managers, err := s.users.List(ctx, user.ListUsersFilter{Role: &role})
	if err != nil {
		return "", err
	}
	if len(managers) > 0 {
		return managers[0].ID, nil
	}

	if s.requireManager {
		return "", ErrNoManagerAvailable
	}
	return "", nil
}

func (s *Service) notify(ctx context.Context, n Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("failed to send notification",
			zap.String("kind", string(n.Kind)),
			zap.String("recipient_id", n.RecipientID),
			zap.String("request_id", n.Request.ID),
			zap.Error(err),
		)
	}
}
