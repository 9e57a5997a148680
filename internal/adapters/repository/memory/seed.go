package memory

import (
	"time"

	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

// Seed はストア起動時に投入する初期データです。
type Seed struct {
	Users    []*user.User
	Requests []*timeoff.Request
}

// DefaultSeed はデモ用の社員・マネージャーと申請を返します。呼び出しごとに新しい値を返します。
func DefaultSeed() Seed {
	return Seed{
		Users: []*user.User{
			{ID: "user-1", Name: "John Smith", Email: "john@example.com", Role: user.RoleEmployee, ManagerID: "user-3"},
			{ID: "user-2", Name: "Emily Johnson", Email: "emily@example.com", Role: user.RoleEmployee, ManagerID: "user-3"},
			{ID: "user-3", Name: "Michael Davis", Email: "michael@example.com", Role: user.RoleManager},
			{ID: "user-4", Name: "Sarah Wilson", Email: "sarah@example.com", Role: user.RoleManager},
		},
		Requests: []*timeoff.Request{
			{
				ID:           "request-1",
				EmployeeID:   "user-1",
				EmployeeName: "John Smith",
				StartDate:    day(2024, time.July, 15),
				EndDate:      day(2024, time.July, 20),
				Reason:       "Annual vacation",
				Status:       timeoff.StatusPending,
				CreatedAt:    instant(2024, time.June, 15, 10, 30),
				UpdatedAt:    instant(2024, time.June, 15, 10, 30),
				ManagerID:    "user-3",
			},
			{
				ID:           "request-2",
				EmployeeID:   "user-2",
				EmployeeName: "Emily Johnson",
				StartDate:    day(2024, time.July, 5),
				EndDate:      day(2024, time.July, 10),
				Reason:       "Family event",
				Status:       timeoff.StatusApproved,
				CreatedAt:    instant(2024, time.June, 10, 8, 45),
				UpdatedAt:    instant(2024, time.June, 12, 14, 20),
				ManagerID:    "user-3",
			},
			{
				ID:           "request-3",
				EmployeeID:   "user-1",
				EmployeeName: "John Smith",
				StartDate:    day(2024, time.August, 1),
				EndDate:      day(2024, time.August, 5),
				Reason:       "Personal time",
				Status:       timeoff.StatusDenied,
				CreatedAt:    instant(2024, time.June, 5, 16, 10),
				UpdatedAt:    instant(2024, time.June, 7, 9, 30),
				ManagerID:    "user-3",
			},
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func instant(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}
