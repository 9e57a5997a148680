package timeoff

import "errors"

var (
	ErrRequestNotFound    = errors.New("timeoff: request not found")
	ErrEmployeeNotFound   = errors.New("timeoff: employee not found")
	ErrInvalidStatus      = errors.New("timeoff: invalid status")
	ErrInvalidSort        = errors.New("timeoff: invalid sort order")
	ErrInvalidScope       = errors.New("timeoff: invalid board scope")
	ErrInvalidDate        = errors.New("timeoff: invalid date")
	ErrRequestExists      = errors.New("timeoff: request already exists")
	ErrInvalidTransition  = errors.New("timeoff: request already decided")
	ErrNoManagerAvailable = errors.New("timeoff: no manager available")
)
