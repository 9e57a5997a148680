package handler

import (
	"context"
	"strings"

	timeoffpb "github.com/ogurasousui/codex-timeoff/internal/adapters/grpc/gen/timeoff/v1"
	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserGrpcHandler は UserService の gRPC 実装です。
type UserGrpcHandler struct {
	svc      user.UseCase
	sessions session.UseCase
	timeoffpb.UnimplementedUserServiceServer
}

// NewUserGrpcHandler は UserGrpcHandler を生成します。
func NewUserGrpcHandler(svc user.UseCase, sessions session.UseCase) *UserGrpcHandler {
	return &UserGrpcHandler{svc: svc, sessions: sessions}
}

// GetUser はユーザーを取得します。
func (h *UserGrpcHandler) GetUser(ctx context.Context, req *timeoffpb.GetUserRequest) (*timeoffpb.GetUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetUser(ctx, user.GetUserInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.GetUserResponse{User: toProtoUser(found)}, nil
}

// ListUsers はユーザーの一覧を取得します。
func (h *UserGrpcHandler) ListUsers(ctx context.Context, req *timeoffpb.ListUsersRequest) (*timeoffpb.ListUsersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var rolePtr *user.Role
	if r := strings.TrimSpace(req.GetRole()); r != "" {
		role := user.Role(r)
		rolePtr = &role
	}

	result, err := h.svc.ListUsers(ctx, user.ListUsersInput{Role: rolePtr})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoUsers := make([]*timeoffpb.User, 0, len(result))
	for _, u := range result {
		protoUsers = append(protoUsers, toProtoUser(u))
	}

	return &timeoffpb.ListUsersResponse{Users: protoUsers}, nil
}

// GetCurrentUser はセッションの操作ユーザーを取得します。
func (h *UserGrpcHandler) GetCurrentUser(ctx context.Context, _ *timeoffpb.GetCurrentUserRequest) (*timeoffpb.GetCurrentUserResponse, error) {
	found, err := h.svc.GetCurrentUser(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.GetCurrentUserResponse{User: toProtoUser(found)}, nil
}

// SwitchUser はセッションの操作ユーザーを切り替えます。
func (h *UserGrpcHandler) SwitchUser(ctx context.Context, req *timeoffpb.SwitchUserRequest) (*timeoffpb.SwitchUserResponse, error) {
	if req == nil || strings.TrimSpace(req.GetUserId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "userId is required")
	}

	sess, err := h.sessions.SwitchUser(ctx, strings.TrimSpace(req.GetUserId()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.SwitchUserResponse{SessionId: sess.ID, UserId: sess.UserID}, nil
}

func toProtoUser(u *user.User) *timeoffpb.User {
	if u == nil {
		return nil
	}

	return &timeoffpb.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		ManagerId: u.ManagerID,
	}
}
