package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errMissingOwner   = errors.New("employeeId or managerId is required")
	errAmbiguousOwner = errors.New("employeeId and managerId are mutually exclusive")
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, timeoff.ErrInvalidStatus),
		errors.Is(err, timeoff.ErrInvalidSort),
		errors.Is(err, timeoff.ErrInvalidScope),
		errors.Is(err, timeoff.ErrInvalidDate),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, session.ErrInvalidSession),
		errors.Is(err, errMissingOwner),
		errors.Is(err, errAmbiguousOwner):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, timeoff.ErrInvalidTransition), errors.Is(err, timeoff.ErrNoManagerAvailable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, timeoff.ErrRequestExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, timeoff.ErrEmployeeNotFound),
		errors.Is(err, timeoff.ErrRequestNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
