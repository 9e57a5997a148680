package apiservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

var (
	// ErrMissingOwner は一覧の対象 (社員または承認者) が指定されていない場合に返されます。
	ErrMissingOwner = errors.New("apiservice: employee or manager id is required")
	// ErrAmbiguousOwner は社員と承認者が同時に指定された場合に返されます。
	ErrAmbiguousOwner = errors.New("apiservice: employee and manager id are mutually exclusive")
)

const (
	msgFetchCurrentUser = "Failed to fetch current user"
	msgFetchUser        = "Failed to fetch user"
	msgFetchUsers       = "Failed to fetch users"
	msgFetchRequests    = "Failed to fetch time off requests"
	msgFetchRequest     = "Failed to fetch time off request"
	msgCreateRequest    = "Failed to create time off request"
	msgUpdateRequest    = "Failed to update time off request"
	msgSwitchUser       = "Failed to switch user"
	msgFetchSession     = "Failed to fetch session"
)

// Service はユースケースを結果エンベロープで包むファサードです。
// 将来のリモート API と同じ形の結果を返し、呼び出し側は失敗時も例外を扱いません。
type Service struct {
	users    user.UseCase
	requests timeoff.UseCase
	sessions session.UseCase
	logger   *zap.Logger
}

// New は Service を生成します。
func New(users user.UseCase, requests timeoff.UseCase, sessions session.UseCase, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, requests: requests, sessions: sessions, logger: logger.Named("apiservice")}
}

// ListQuery は申請一覧の表示条件です。空文字列は未指定として扱います。
type ListQuery struct {
	Status string
	Search string
	Sort   string
}

// CreateRequestParams は申請作成の入力です。日付は YYYY-MM-DD です。
type CreateRequestParams struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Reason     string
}

// BoardParams はボード取得の入力です。EmployeeID が優先されます。
type BoardParams struct {
	EmployeeID string
	ManagerID  string
	Search     string
	Sort       string
}

// GetCurrentUser はセッションの操作ユーザーを返します。
func (s *Service) GetCurrentUser(ctx context.Context) Response[*User] {
	return call(ctx, s, "GetCurrentUser", http.StatusOK, msgFetchCurrentUser, func(ctx context.Context) (*User, error) {
		u, err := s.users.GetCurrentUser(ctx)
		if err != nil {
			return nil, err
		}
		dto := NewUser(u)
		return &dto, nil
	})
}

// GetUser は ID でユーザーを返します。
func (s *Service) GetUser(ctx context.Context, id string) Response[*User] {
	return call(ctx, s, "GetUser", http.StatusOK, msgFetchUser, func(ctx context.Context) (*User, error) {
		u, err := s.users.GetUser(ctx, user.GetUserInput{ID: id})
		if err != nil {
			return nil, err
		}
		dto := NewUser(u)
		return &dto, nil
	})
}

// ListUsers は全ユーザーを登録順に返します。
func (s *Service) ListUsers(ctx context.Context) Response[[]User] {
	return call(ctx, s, "ListUsers", http.StatusOK, msgFetchUsers, func(ctx context.Context) ([]User, error) {
		users, err := s.users.ListUsers(ctx, user.ListUsersInput{})
		if err != nil {
			return nil, err
		}
		return NewUsers(users), nil
	})
}

// SwitchUser は操作ユーザーを切り替えます。存在しないユーザー ID も受け付けます。
func (s *Service) SwitchUser(ctx context.Context, userID string) Response[*Session] {
	return call(ctx, s, "SwitchUser", http.StatusOK, msgSwitchUser, func(ctx context.Context) (*Session, error) {
		sess, err := s.sessions.SwitchUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		dto := NewSession(sess)
		return &dto, nil
	})
}

// CurrentUserID はセッションの操作ユーザー ID を返します。
func (s *Service) CurrentUserID(ctx context.Context) Response[*Session] {
	return call(ctx, s, "CurrentUserID", http.StatusOK, msgFetchSession, func(ctx context.Context) (*Session, error) {
		id, err := s.sessions.CurrentUserID(ctx)
		if err != nil {
			return nil, err
		}
		return &Session{SessionID: session.IDFromContext(ctx), UserID: id}, nil
	})
}

// ListEmployeeRequests は社員の申請一覧を返します。
func (s *Service) ListEmployeeRequests(ctx context.Context, employeeID string, q ListQuery) Response[[]TimeOffRequest] {
	return call(ctx, s, "ListEmployeeRequests", http.StatusOK, msgFetchRequests, func(ctx context.Context) ([]TimeOffRequest, error) {
		requests, err := s.requests.ListEmployeeRequests(ctx, timeoff.ListEmployeeRequestsInput{EmployeeID: employeeID, View: q.view()})
		if err != nil {
			return nil, err
		}
		return NewTimeOffRequests(requests), nil
	})
}

// ListManagerRequests は承認者に割り当てられた申請一覧を返します。
func (s *Service) ListManagerRequests(ctx context.Context, managerID string, q ListQuery) Response[[]TimeOffRequest] {
	return call(ctx, s, "ListManagerRequests", http.StatusOK, msgFetchRequests, func(ctx context.Context) ([]TimeOffRequest, error) {
		requests, err := s.requests.ListManagerRequests(ctx, timeoff.ListManagerRequestsInput{ManagerID: managerID, View: q.view()})
		if err != nil {
			return nil, err
		}
		return NewTimeOffRequests(requests), nil
	})
}

// GetRequest は申請を返します。
func (s *Service) GetRequest(ctx context.Context, id string) Response[*TimeOffRequest] {
	return call(ctx, s, "GetRequest", http.StatusOK, msgFetchRequest, func(ctx context.Context) (*TimeOffRequest, error) {
		r, err := s.requests.GetRequest(ctx, timeoff.GetRequestInput{ID: id})
		if err != nil {
			return nil, err
		}
		dto := NewTimeOffRequest(r)
		return &dto, nil
	})
}

// CreateRequest は申請を作成し 201 を返します。
func (s *Service) CreateRequest(ctx context.Context, p CreateRequestParams) Response[*TimeOffRequest] {
	return call(ctx, s, "CreateRequest", http.StatusCreated, msgCreateRequest, func(ctx context.Context) (*TimeOffRequest, error) {
		start, err := timeoff.ParseDate(p.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := timeoff.ParseDate(p.EndDate)
		if err != nil {
			return nil, err
		}

		r, err := s.requests.CreateRequest(ctx, timeoff.CreateRequestInput{
			EmployeeID: p.EmployeeID,
			StartDate:  start,
			EndDate:    end,
			Reason:     p.Reason,
		})
		if err != nil {
			return nil, err
		}
		dto := NewTimeOffRequest(r)
		return &dto, nil
	})
}

// UpdateRequestStatus は申請を承認または却下します。
func (s *Service) UpdateRequestStatus(ctx context.Context, id, status string) Response[*TimeOffRequest] {
	return call(ctx, s, "UpdateRequestStatus", http.StatusOK, msgUpdateRequest, func(ctx context.Context) (*TimeOffRequest, error) {
		r, err := s.requests.UpdateRequestStatus(ctx, timeoff.UpdateRequestStatusInput{
			ID:     id,
			Status: timeoff.Status(strings.TrimSpace(status)),
		})
		if err != nil {
			return nil, err
		}
		dto := NewTimeOffRequest(r)
		return &dto, nil
	})
}

// GetBoard は社員または承認者の申請を状態ごとのタブで返します。
func (s *Service) GetBoard(ctx context.Context, p BoardParams) Response[*Board] {
	return call(ctx, s, "GetBoard", http.StatusOK, msgFetchRequests, func(ctx context.Context) (*Board, error) {
		in := timeoff.GetBoardInput{Search: p.Search, Sort: timeoff.SortOrder(p.Sort)}
		switch {
		case p.EmployeeID != "" && p.ManagerID != "":
			return nil, ErrAmbiguousOwner
		case p.EmployeeID != "":
			in.Scope, in.OwnerID = timeoff.ScopeEmployee, p.EmployeeID
		case p.ManagerID != "":
			in.Scope, in.OwnerID = timeoff.ScopeManager, p.ManagerID
		default:
			return nil, ErrMissingOwner
		}

		b, err := s.requests.GetBoard(ctx, in)
		if err != nil {
			return nil, err
		}
		dto := NewBoard(b)
		return &dto, nil
	})
}

func (q ListQuery) view() timeoff.ViewOptions {
	view := timeoff.ViewOptions{
		Search: q.Search,
		Sort:   timeoff.SortOrder(strings.TrimSpace(q.Sort)),
	}
	if raw := strings.TrimSpace(q.Status); raw != "" {
		status := timeoff.Status(raw)
		view.Status = &status
	}
	return view
}

// call は fn を実行して結果をエンベロープに包みます。panic も 500 として返します。
func call[T any](ctx context.Context, s *Service, op string, success int, failure string, fn func(context.Context) (T, error)) (resp Response[T]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered panic",
				zap.String("operation", op),
				zap.String("panic", fmt.Sprint(r)),
				zap.Stack("stack"),
			)
			resp = Response[T]{Error: failure, Status: http.StatusInternalServerError}
		}
	}()

	data, err := fn(ctx)
	if err != nil {
		status, message := classify(err, failure)
		if status >= http.StatusInternalServerError {
			s.logger.Error("operation failed", zap.String("operation", op), zap.Error(err))
		} else {
			s.logger.Debug("operation rejected", zap.String("operation", op), zap.Int("status", status), zap.Error(err))
		}
		return Response[T]{Error: message, Status: status}
	}

	return Response[T]{Data: data, Status: success}
}
