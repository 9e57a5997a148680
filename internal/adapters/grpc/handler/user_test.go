package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	timeoffpb "github.com/ogurasousui/codex-timeoff/internal/adapters/grpc/gen/timeoff/v1"
	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

type stubUserUseCase struct {
	getInput  user.GetUserInput
	getOut    *user.User
	getErr    error
	listInput user.ListUsersInput
	listOut   []*user.User
	listErr   error
	current   *user.User
}

func (s *stubUserUseCase) GetCurrentUser(context.Context) (*user.User, error) {
	if s.current == nil {
		return nil, user.ErrUserNotFound
	}
	return s.current, nil
}

func (s *stubUserUseCase) GetUser(_ context.Context, in user.GetUserInput) (*user.User, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubUserUseCase) ListUsers(_ context.Context, in user.ListUsersInput) ([]*user.User, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

type stubSessionUseCase struct {
	switched string
	err      error
}

func (s *stubSessionUseCase) CurrentUserID(context.Context) (string, error) {
	return s.switched, s.err
}

func (s *stubSessionUseCase) SwitchUser(ctx context.Context, userID string) (*session.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.switched = userID
	return &session.Session{ID: session.IDFromContext(ctx), UserID: userID}, nil
}

func TestUserGrpcHandler_GetUser(t *testing.T) {
	t.Parallel()

	stub := &stubUserUseCase{getOut: &user.User{ID: "user-1", Name: "John Smith", Email: "john@example.com", Role: user.RoleEmployee, ManagerID: "user-3"}}
	handler := NewUserGrpcHandler(stub, &stubSessionUseCase{})

	resp, err := handler.GetUser(context.Background(), &timeoffpb.GetUserRequest{Id: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", stub.getInput.ID)
	assert.Equal(t, "employee", resp.GetUser().GetRole())
	assert.Equal(t, "user-3", resp.GetUser().GetManagerId())
}

func TestUserGrpcHandler_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewUserGrpcHandler(&stubUserUseCase{getErr: user.ErrUserNotFound}, &stubSessionUseCase{})

	_, err := handler.GetUser(context.Background(), &timeoffpb.GetUserRequest{Id: "nonexistent"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUserGrpcHandler_ListUsers_RoleFilter(t *testing.T) {
	t.Parallel()

	stub := &stubUserUseCase{listOut: []*user.User{{ID: "user-3", Role: user.RoleManager}}}
	handler := NewUserGrpcHandler(stub, &stubSessionUseCase{})

	resp, err := handler.ListUsers(context.Background(), &timeoffpb.ListUsersRequest{Role: " manager "})
	require.NoError(t, err)
	require.NotNil(t, stub.listInput.Role)
	assert.Equal(t, user.RoleManager, *stub.listInput.Role)
	require.Len(t, resp.GetUsers(), 1)
	assert.Equal(t, "user-3", resp.GetUsers()[0].GetId())
}

func TestUserGrpcHandler_ListUsers_InvalidRole(t *testing.T) {
	t.Parallel()

	handler := NewUserGrpcHandler(&stubUserUseCase{listErr: user.ErrInvalidRole}, &stubSessionUseCase{})

	_, err := handler.ListUsers(context.Background(), &timeoffpb.ListUsersRequest{Role: "admin"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUserGrpcHandler_SwitchUser(t *testing.T) {
	t.Parallel()

	sessions := &stubSessionUseCase{}
	handler := NewUserGrpcHandler(&stubUserUseCase{}, sessions)

	ctx := session.WithID(context.Background(), "tab-1")
	resp, err := handler.SwitchUser(ctx, &timeoffpb.SwitchUserRequest{UserId: "user-3"})
	require.NoError(t, err)
	assert.Equal(t, "tab-1", resp.GetSessionId())
	assert.Equal(t, "user-3", resp.GetUserId())

	_, err = handler.SwitchUser(ctx, &timeoffpb.SwitchUserRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUserGrpcHandler_ValidatesRequest(t *testing.T) {
	t.Parallel()

	handler := NewUserGrpcHandler(&stubUserUseCase{}, &stubSessionUseCase{})

	_, err := handler.GetUser(context.Background(), nil)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestToStatusError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want codes.Code
	}{
		{err: nil, want: codes.OK},
		{err: timeoff.ErrRequestNotFound, want: codes.NotFound},
		{err: timeoff.ErrEmployeeNotFound, want: codes.NotFound},
		{err: timeoff.ErrInvalidSort, want: codes.InvalidArgument},
		{err: errMissingOwner, want: codes.InvalidArgument},
		{err: errAmbiguousOwner, want: codes.InvalidArgument},
		{err: timeoff.ErrInvalidTransition, want: codes.FailedPrecondition},
		{err: timeoff.ErrNoManagerAvailable, want: codes.FailedPrecondition},
		{err: context.DeadlineExceeded, want: codes.DeadlineExceeded},
		{err: errors.New("unexpected"), want: codes.Internal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, status.Code(toStatusError(tc.err)), "%v", tc.err)
	}
}
