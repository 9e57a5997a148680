package user

import "context"

// Repository はユーザーエンティティの参照を行うインターフェースです。
// ユーザーは起動時に投入され、以降は更新されません。
type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*User, error)
}

// ListUsersFilter は一覧取得用フィルタです。
type ListUsersFilter struct {
	Role *Role
}
