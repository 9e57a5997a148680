package handler

import (
	"context"
	"strings"

	timeoffpb "github.com/ogurasousui/codex-timeoff/internal/adapters/grpc/gen/timeoff/v1"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TimeOffGrpcHandler は TimeOffService の gRPC 実装です。
type TimeOffGrpcHandler struct {
	svc timeoff.UseCase
	timeoffpb.UnimplementedTimeOffServiceServer
}

// NewTimeOffGrpcHandler は TimeOffGrpcHandler を生成します。
func NewTimeOffGrpcHandler(svc timeoff.UseCase) *TimeOffGrpcHandler {
	return &TimeOffGrpcHandler{svc: svc}
}

// ListEmployeeRequests は社員の申請一覧を取得します。
func (h *TimeOffGrpcHandler) ListEmployeeRequests(ctx context.Context, req *timeoffpb.ListEmployeeRequestsRequest) (*timeoffpb.ListRequestsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListEmployeeRequests(ctx, timeoff.ListEmployeeRequestsInput{
		EmployeeID: req.GetEmployeeId(),
		View:       toView(req.GetStatus(), req.GetQuery(), req.GetSort()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.ListRequestsResponse{Requests: toProtoRequests(result)}, nil
}

// ListManagerRequests は承認者に割り当てられた申請一覧を取得します。
func (h *TimeOffGrpcHandler) ListManagerRequests(ctx context.Context, req *timeoffpb.ListManagerRequestsRequest) (*timeoffpb.ListRequestsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListManagerRequests(ctx, timeoff.ListManagerRequestsInput{
		ManagerID: req.GetManagerId(),
		View:      toView(req.GetStatus(), req.GetQuery(), req.GetSort()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.ListRequestsResponse{Requests: toProtoRequests(result)}, nil
}

// GetRequest は申請を取得します。
func (h *TimeOffGrpcHandler) GetRequest(ctx context.Context, req *timeoffpb.GetRequestRequest) (*timeoffpb.GetRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetRequest(ctx, timeoff.GetRequestInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.GetRequestResponse{Request: toProtoRequest(found)}, nil
}

// CreateRequest は申請を作成します。
func (h *TimeOffGrpcHandler) CreateRequest(ctx context.Context, req *timeoffpb.CreateRequestRequest) (*timeoffpb.CreateRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	start, err := timeoff.ParseDate(req.GetStartDate())
	if err != nil {
		return nil, toStatusError(err)
	}
	end, err := timeoff.ParseDate(req.GetEndDate())
	if err != nil {
		return nil, toStatusError(err)
	}
	if strings.TrimSpace(req.GetReason()) == "" {
		return nil, status.Error(codes.InvalidArgument, "reason is required")
	}

	created, err := h.svc.CreateRequest(ctx, timeoff.CreateRequestInput{
		EmployeeID: req.GetEmployeeId(),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.GetReason(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.CreateRequestResponse{Request: toProtoRequest(created)}, nil
}

// UpdateRequestStatus は申請を承認または却下します。
func (h *TimeOffGrpcHandler) UpdateRequestStatus(ctx context.Context, req *timeoffpb.UpdateRequestStatusRequest) (*timeoffpb.UpdateRequestStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateRequestStatus(ctx, timeoff.UpdateRequestStatusInput{
		ID:     req.GetId(),
		Status: timeoff.Status(strings.TrimSpace(req.GetStatus())),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.UpdateRequestStatusResponse{Request: toProtoRequest(updated)}, nil
}

// GetBoard は状態ごとのタブに振り分けた申請を取得します。
func (h *TimeOffGrpcHandler) GetBoard(ctx context.Context, req *timeoffpb.GetBoardRequest) (*timeoffpb.GetBoardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := timeoff.GetBoardInput{Search: req.GetQuery(), Sort: timeoff.SortOrder(req.GetSort())}
	switch {
	case req.GetEmployeeId() != "" && req.GetManagerId() != "":
		return nil, toStatusError(errAmbiguousOwner)
	case req.GetEmployeeId() != "":
		in.Scope, in.OwnerID = timeoff.ScopeEmployee, req.GetEmployeeId()
	case req.GetManagerId() != "":
		in.Scope, in.OwnerID = timeoff.ScopeManager, req.GetManagerId()
	default:
		return nil, toStatusError(errMissingOwner)
	}

	board, err := h.svc.GetBoard(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &timeoffpb.GetBoardResponse{
		Pending:  toProtoRequests(board.Pending),
		Approved: toProtoRequests(board.Approved),
		Denied:   toProtoRequests(board.Denied),
	}, nil
}

func toView(rawStatus, query, sort string) timeoff.ViewOptions {
	view := timeoff.ViewOptions{Search: query, Sort: timeoff.SortOrder(strings.TrimSpace(sort))}
	if s := strings.TrimSpace(rawStatus); s != "" {
		st := timeoff.Status(s)
		view.Status = &st
	}
	return view
}

func toProtoRequests(requests []*timeoff.Request) []*timeoffpb.TimeOffRequest {
	out := make([]*timeoffpb.TimeOffRequest, 0, len(requests))
	for _, r := range requests {
		out = append(out, toProtoRequest(r))
	}
	return out
}

func toProtoRequest(r *timeoff.Request) *timeoffpb.TimeOffRequest {
	if r == nil {
		return nil
	}

	return &timeoffpb.TimeOffRequest{
		Id:           r.ID,
		EmployeeId:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		StartDate:    timeoff.FormatDate(r.StartDate),
		EndDate:      timeoff.FormatDate(r.EndDate),
		Days:         int32(r.Days()),
		Reason:       r.Reason,
		Status:       string(r.Status),
		CreatedAt:    timestamppb.New(r.CreatedAt),
		UpdatedAt:    timestamppb.New(r.UpdatedAt),
		ManagerId:    r.ManagerID,
	}
}
