package timeoff

import "time"

// Status は休暇申請の状態を表します。
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// IsTerminal は承認・却下済みかどうかを返します。
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// Request は休暇申請エンティティです。
//
// EmployeeName は申請時点の社員名のスナップショットであり、以降の名前変更には追随しません。
// ManagerID は承認者で、割り当て可能なマネージャーがいない場合は空文字列になります。
type Request struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ManagerID    string
}

// Days は開始日と終了日を含む暦日数を返します。
func (r *Request) Days() int {
	start := normalizeDate(r.StartDate)
	end := normalizeDate(r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// Clone は申請のコピーを返します。
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}
