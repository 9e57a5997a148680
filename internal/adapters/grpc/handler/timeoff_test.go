package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	timeoffpb "github.com/ogurasousui/codex-timeoff/internal/adapters/grpc/gen/timeoff/v1"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
)

type stubTimeOffUseCase struct {
	createInput timeoff.CreateRequestInput
	createErr   error
	updateInput timeoff.UpdateRequestStatusInput
	updateErr   error
	listEmp     timeoff.ListEmployeeRequestsInput
	boardInput  timeoff.GetBoardInput
	out         *timeoff.Request
}

func (s *stubTimeOffUseCase) CreateRequest(_ context.Context, in timeoff.CreateRequestInput) (*timeoff.Request, error) {
	s.createInput = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.out, nil
}

func (s *stubTimeOffUseCase) GetRequest(_ context.Context, in timeoff.GetRequestInput) (*timeoff.Request, error) {
	if s.out == nil || s.out.ID != in.ID {
		return nil, timeoff.ErrRequestNotFound
	}
	return s.out, nil
}

func (s *stubTimeOffUseCase) ListEmployeeRequests(_ context.Context, in timeoff.ListEmployeeRequestsInput) ([]*timeoff.Request, error) {
	s.listEmp = in
	return []*timeoff.Request{s.out}, nil
}

func (s *stubTimeOffUseCase) ListManagerRequests(context.Context, timeoff.ListManagerRequestsInput) ([]*timeoff.Request, error) {
	return []*timeoff.Request{}, nil
}

func (s *stubTimeOffUseCase) UpdateRequestStatus(_ context.Context, in timeoff.UpdateRequestStatusInput) (*timeoff.Request, error) {
	s.updateInput = in
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	out := s.out.Clone()
	out.Status = in.Status
	return out, nil
}

func (s *stubTimeOffUseCase) GetBoard(_ context.Context, in timeoff.GetBoardInput) (*timeoff.Board, error) {
	s.boardInput = in
	return &timeoff.Board{Pending: []*timeoff.Request{s.out}}, nil
}

func sampleRequest() *timeoff.Request {
	return &timeoff.Request{
		ID:           "request-1",
		EmployeeID:   "user-1",
		EmployeeName: "John Smith",
		StartDate:    time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
		Reason:       "Annual vacation",
		Status:       timeoff.StatusPending,
		CreatedAt:    time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		ManagerID:    "user-3",
	}
}

func TestTimeOffGrpcHandler_CreateRequest(t *testing.T) {
	t.Parallel()

	stub := &stubTimeOffUseCase{out: sampleRequest()}
	handler := NewTimeOffGrpcHandler(stub)

	resp, err := handler.CreateRequest(context.Background(), &timeoffpb.CreateRequestRequest{
		EmployeeId: "user-1",
		StartDate:  "2024-07-15",
		EndDate:    "2024-07-20",
		Reason:     "Annual vacation",
	})
	require.NoError(t, err)

	assert.True(t, stub.createInput.StartDate.Equal(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)), "start date %v", stub.createInput.StartDate)
	got := resp.GetRequest()
	assert.Equal(t, "2024-07-15", got.GetStartDate())
	assert.Equal(t, "2024-07-20", got.GetEndDate())
	assert.Equal(t, int32(6), got.GetDays())
	assert.True(t, got.GetCreatedAt().AsTime().Equal(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "user-3", got.GetManagerId())
}

func TestTimeOffGrpcHandler_CreateRequest_InvalidInput(t *testing.T) {
	t.Parallel()

	handler := NewTimeOffGrpcHandler(&stubTimeOffUseCase{out: sampleRequest()})

	cases := map[string]*timeoffpb.CreateRequestRequest{
		"nil request":    nil,
		"bad start date": {EmployeeId: "user-1", StartDate: "15/07/2024", EndDate: "2024-07-20", Reason: "x"},
		"empty end date": {EmployeeId: "user-1", StartDate: "2024-07-15", EndDate: "", Reason: "x"},
		"blank reason":   {EmployeeId: "user-1", StartDate: "2024-07-15", EndDate: "2024-07-20", Reason: "  "},
	}
	for name, req := range cases {
		_, err := handler.CreateRequest(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), name)
	}
}

func TestTimeOffGrpcHandler_CreateRequest_ErrorMapping(t *testing.T) {
	t.Parallel()

	handler := NewTimeOffGrpcHandler(&stubTimeOffUseCase{createErr: timeoff.ErrEmployeeNotFound})

	_, err := handler.CreateRequest(context.Background(), &timeoffpb.CreateRequestRequest{
		EmployeeId: "user-404", StartDate: "2024-07-15", EndDate: "2024-07-20", Reason: "x",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTimeOffGrpcHandler_UpdateRequestStatus(t *testing.T) {
	t.Parallel()

	stub := &stubTimeOffUseCase{out: sampleRequest()}
	handler := NewTimeOffGrpcHandler(stub)

	resp, err := handler.UpdateRequestStatus(context.Background(), &timeoffpb.UpdateRequestStatusRequest{Id: "request-1", Status: " approved "})
	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusApproved, stub.updateInput.Status)
	assert.Equal(t, "approved", resp.GetRequest().GetStatus())

	stub.updateErr = timeoff.ErrInvalidTransition
	_, err = handler.UpdateRequestStatus(context.Background(), &timeoffpb.UpdateRequestStatusRequest{Id: "request-1", Status: "denied"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestTimeOffGrpcHandler_ListEmployeeRequests_View(t *testing.T) {
	t.Parallel()

	stub := &stubTimeOffUseCase{out: sampleRequest()}
	handler := NewTimeOffGrpcHandler(stub)

	resp, err := handler.ListEmployeeRequests(context.Background(), &timeoffpb.ListEmployeeRequestsRequest{
		EmployeeId: "user-1", Status: "pending", Query: "vacation", Sort: "oldest",
	})
	require.NoError(t, err)
	require.Len(t, resp.GetRequests(), 1)

	view := stub.listEmp.View
	require.NotNil(t, view.Status)
	assert.Equal(t, timeoff.StatusPending, *view.Status)
	assert.Equal(t, "vacation", view.Search)
	assert.Equal(t, timeoff.SortOldest, view.Sort)
}

func TestTimeOffGrpcHandler_GetBoard(t *testing.T) {
	t.Parallel()

	stub := &stubTimeOffUseCase{out: sampleRequest()}
	handler := NewTimeOffGrpcHandler(stub)

	resp, err := handler.GetBoard(context.Background(), &timeoffpb.GetBoardRequest{ManagerId: "user-3"})
	require.NoError(t, err)
	assert.Equal(t, timeoff.ScopeManager, stub.boardInput.Scope)
	assert.Equal(t, "user-3", stub.boardInput.OwnerID)
	assert.Len(t, resp.GetPending(), 1)
	assert.Empty(t, resp.GetApproved())

	_, err = handler.GetBoard(context.Background(), &timeoffpb.GetBoardRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTimeOffGrpcHandler_GetBoard_RejectsBothOwners(t *testing.T) {
	t.Parallel()

	stub := &stubTimeOffUseCase{out: sampleRequest()}
	handler := NewTimeOffGrpcHandler(stub)

	_, err := handler.GetBoard(context.Background(), &timeoffpb.GetBoardRequest{EmployeeId: "user-1", ManagerId: "user-3"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, stub.boardInput.OwnerID)
}
