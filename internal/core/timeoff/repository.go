package timeoff

import "context"

// Repository は休暇申請永続化の抽象です。申請は削除されません。
type Repository interface {
	Create(ctx context.Context, request *Request) (*Request, error)
	Update(ctx context.Context, request *Request) (*Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context, filter ListRequestsFilter) ([]*Request, error)
}

// ListRequestsFilter は一覧取得用フィルタです。nil のフィールドは条件に含めません。
// ManagerID に空文字列を指定すると承認者未割り当ての申請に一致します。
type ListRequestsFilter struct {
	EmployeeID *string
	ManagerID  *string
}

// Matches は申請がフィルタ条件を満たすかどうかを返します。
func (f ListRequestsFilter) Matches(r *Request) bool {
	if f.EmployeeID != nil && r.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.ManagerID != nil && r.ManagerID != *f.ManagerID {
		return false
	}
	return true
}
