package apiservice

import (
	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

// User はワイヤ形式のユーザーです。
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ManagerID string `json:"managerId,omitempty"`
}

// TimeOffRequest はワイヤ形式の休暇申請です。日付は YYYY-MM-DD、日時は RFC 3339 です。
type TimeOffRequest struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
	ManagerID    string `json:"managerId"`
	Days         int    `json:"days"`
}

// Session は操作ユーザーの切り替え状態です。
type Session struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// Board は状態ごとのタブです。
type Board struct {
	Pending  []TimeOffRequest `json:"pending"`
	Approved []TimeOffRequest `json:"approved"`
	Denied   []TimeOffRequest `json:"denied"`
}

// NewUser はドメインのユーザーをワイヤ形式に変換します。
func NewUser(u *user.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		ManagerID: u.ManagerID,
	}
}

// NewUsers は一覧を変換します。空でも nil は返しません。
func NewUsers(users []*user.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, NewUser(u))
	}
	return out
}

// NewTimeOffRequest はドメインの申請をワイヤ形式に変換します。
func NewTimeOffRequest(r *timeoff.Request) TimeOffRequest {
	return TimeOffRequest{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		StartDate:    timeoff.FormatDate(r.StartDate),
		EndDate:      timeoff.FormatDate(r.EndDate),
		Reason:       r.Reason,
		Status:       string(r.Status),
		CreatedAt:    timeoff.FormatInstant(r.CreatedAt),
		UpdatedAt:    timeoff.FormatInstant(r.UpdatedAt),
		ManagerID:    r.ManagerID,
		Days:         r.Days(),
	}
}

// NewTimeOffRequests は一覧を変換します。空でも nil は返しません。
func NewTimeOffRequests(requests []*timeoff.Request) []TimeOffRequest {
	out := make([]TimeOffRequest, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewTimeOffRequest(r))
	}
	return out
}

// NewBoard はボードを変換します。
func NewBoard(b *timeoff.Board) Board {
	return Board{
		Pending:  NewTimeOffRequests(b.Pending),
		Approved: NewTimeOffRequests(b.Approved),
		Denied:   NewTimeOffRequests(b.Denied),
	}
}

// NewSession はセッションを変換します。
func NewSession(s *session.Session) Session {
	return Session{SessionID: s.ID, UserID: s.UserID}
}
