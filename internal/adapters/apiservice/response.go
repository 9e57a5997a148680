package apiservice

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

// Response は全操作に共通の結果エンベロープです。Data と Error のどちらか一方だけが設定されます。
type Response[T any] struct {
	Data   T      `json:"data"`
	Error  string `json:"error,omitempty"`
	Status int    `json:"status"`
}

// OK は成功かどうかを返します。
func (r Response[T]) OK() bool {
	return r.Error == "" && r.Status < http.StatusBadRequest
}

// MarshalJSON は失敗時に data を出力しません。成功時は空の一覧も data として出力します。
func (r Response[T]) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(struct {
			Error  string `json:"error"`
			Status int    `json:"status"`
		}{Error: r.Error, Status: r.Status})
	}
	return json.Marshal(struct {
		Data   T   `json:"data"`
		Status int `json:"status"`
	}{Data: r.Data, Status: r.Status})
}

// classify はドメインエラーをステータスコードと利用者向けメッセージに変換します。
// 想定外のエラーは fallback メッセージの 500 になります。
func classify(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, timeoff.ErrEmployeeNotFound):
		return http.StatusNotFound, "Employee not found"
	case errors.Is(err, timeoff.ErrRequestNotFound):
		return http.StatusNotFound, "Request not found"
	case errors.Is(err, timeoff.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid status"
	case errors.Is(err, timeoff.ErrInvalidSort):
		return http.StatusBadRequest, "Invalid sort order"
	case errors.Is(err, timeoff.ErrInvalidScope):
		return http.StatusBadRequest, "Invalid board scope"
	case errors.Is(err, timeoff.ErrInvalidDate):
		return http.StatusBadRequest, "Invalid date"
	case errors.Is(err, user.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, ErrMissingOwner):
		return http.StatusBadRequest, "employeeId or managerId is required"
	case errors.Is(err, ErrAmbiguousOwner):
		return http.StatusBadRequest, "employeeId and managerId are mutually exclusive"
	case errors.Is(err, timeoff.ErrInvalidTransition):
		return http.StatusConflict, "Request has already been decided"
	case errors.Is(err, timeoff.ErrNoManagerAvailable):
		return http.StatusConflict, "No manager available"
	case errors.Is(err, session.ErrInvalidSession):
		return http.StatusBadRequest, "Invalid session"
	default:
		return http.StatusInternalServerError, fallback
	}
}
