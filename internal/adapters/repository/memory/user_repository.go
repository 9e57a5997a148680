package memory

import (
	"context"

	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

// UserRepository は Store 上の user.Repository 実装です。
type UserRepository struct {
	store *Store
}

// NewUserRepository は UserRepository を生成します。
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ user.Repository = (*UserRepository)(nil)

// FindByID は ID でユーザーを取得します。
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var found *user.User
	err := r.store.read(ctx, func() error {
		idx, ok := r.store.userIndex[id]
		if !ok {
			return user.ErrUserNotFound
		}
		found = r.store.users[idx].Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List は登録順にユーザーを返します。
func (r *UserRepository) List(ctx context.Context, filter user.ListUsersFilter) ([]*user.User, error) {
	var result []*user.User
	err := r.store.read(ctx, func() error {
		result = make([]*user.User, 0, len(r.store.users))
		for _, u := range r.store.users {
			if filter.Role != nil && u.Role != *filter.Role {
				continue
			}
			result = append(result, u.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
