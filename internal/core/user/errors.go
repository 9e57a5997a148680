package user

import "errors"

var (
	// ErrUserNotFound はユーザーが存在しない場合に返却されます。
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRole は役割が不正な場合に返却されます。
	ErrInvalidRole = errors.New("invalid role")
	// ErrUnknownManager は社員の承認者が既存のマネージャーを指していない場合に返却されます。
	ErrUnknownManager = errors.New("manager reference does not point to a manager")
)
