package memory

import (
	"context"

	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
)

// RequestRepository は Store 上の timeoff.Repository 実装です。
type RequestRepository struct {
	store *Store
}

// NewRequestRepository は RequestRepository を生成します。
func NewRequestRepository(store *Store) *RequestRepository {
	return &RequestRepository{store: store}
}

var _ timeoff.Repository = (*RequestRepository)(nil)

// Create は申請を末尾に追加します。
func (r *RequestRepository) Create(ctx context.Context, req *timeoff.Request) (*timeoff.Request, error) {
	err := r.store.write(ctx, func() error {
		if _, ok := r.store.requestIndex[req.ID]; ok {
			return timeoff.ErrRequestExists
		}
		if _, ok := r.store.userIndex[req.EmployeeID]; !ok {
			return timeoff.ErrEmployeeNotFound
		}
		r.store.requestIndex[req.ID] = len(r.store.requests)
		r.store.requests = append(r.store.requests, req.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req.Clone(), nil
}

// Update は ID が一致する申請を置き換えます。並び位置は変わりません。
func (r *RequestRepository) Update(ctx context.Context, req *timeoff.Request) (*timeoff.Request, error) {
	err := r.store.write(ctx, func() error {
		idx, ok := r.store.requestIndex[req.ID]
		if !ok {
			return timeoff.ErrRequestNotFound
		}
		r.store.requests[idx] = req.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req.Clone(), nil
}

// FindByID は ID で申請を取得します。
func (r *RequestRepository) FindByID(ctx context.Context, id string) (*timeoff.Request, error) {
	var found *timeoff.Request
	err := r.store.read(ctx, func() error {
		idx, ok := r.store.requestIndex[id]
		if !ok {
			return timeoff.ErrRequestNotFound
		}
		found = r.store.requests[idx].Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List はフィルタに一致する申請を登録順に返します。
func (r *RequestRepository) List(ctx context.Context, filter timeoff.ListRequestsFilter) ([]*timeoff.Request, error) {
	var result []*timeoff.Request
	err := r.store.read(ctx, func() error {
		result = make([]*timeoff.Request, 0)
		for _, req := range r.store.requests {
			if filter.Matches(req) {
				result = append(result, req.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
