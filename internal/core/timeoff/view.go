package timeoff

import (
	"context"
	"slices"
	"strings"
)

// SortOrder は一覧の並び順です。空の場合は登録順のままです。
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortStartDate SortOrder = "start_date"
)

// ViewOptions はダッシュボード表示用の絞り込み条件です。
type ViewOptions struct {
	Status *Status
	Search string
	Sort   SortOrder
}

func (o ViewOptions) validate() error {
	if o.Status != nil {
		switch *o.Status {
		case StatusPending, StatusApproved, StatusDenied:
		default:
			return ErrInvalidStatus
		}
	}
	switch o.Sort {
	case "", SortNewest, SortOldest, SortStartDate:
		return nil
	default:
		return ErrInvalidSort
	}
}

// ApplyView は状態と検索語で絞り込み、指定順に並べた新しいスライスを返します。
// 検索語は社員名と理由に対して大文字小文字を区別せず部分一致します。
func ApplyView(requests []*Request, opts ViewOptions) []*Request {
	term := strings.ToLower(strings.TrimSpace(opts.Search))

	result := make([]*Request, 0, len(requests))
	for _, r := range requests {
		if opts.Status != nil && r.Status != *opts.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.EmployeeName), term) &&
			!strings.Contains(strings.ToLower(r.Reason), term) {
			continue
		}
		result = append(result, r)
	}

	switch opts.Sort {
	case SortNewest:
		slices.SortStableFunc(result, func(a, b *Request) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortOldest:
		slices.SortStableFunc(result, func(a, b *Request) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortStartDate:
		slices.SortStableFunc(result, func(a, b *Request) int {
			return a.StartDate.Compare(b.StartDate)
		})
	}

	return result
}

// BoardScope はボードの対象となる一覧の種類です。
type BoardScope string

const (
	ScopeEmployee BoardScope = "employee"
	ScopeManager  BoardScope = "manager"
)

// Board は状態ごとのタブに振り分けた申請一覧です。
type Board struct {
	Pending  []*Request
	Approved []*Request
	Denied   []*Request
}

// GetBoardInput はボード取得時の入力です。Sort の既定は新しい順です。
type GetBoardInput struct {
	Scope   BoardScope
	OwnerID string
	Search  string
	Sort    SortOrder
}

// BuildBoard は申請を状態ごとのタブに振り分けます。
func BuildBoard(requests []*Request, search string, sort SortOrder) *Board {
	if sort == "" {
		sort = SortNewest
	}
	tab := func(status Status) []*Request {
		return ApplyView(requests, ViewOptions{Status: &status, Search: search, Sort: sort})
	}
	return &Board{
		Pending:  tab(StatusPending),
		Approved: tab(StatusApproved),
		Denied:   tab(StatusDenied),
	}
}

// GetBoard は社員または承認者の申請をタブごとに取得します。
func (s *Service) GetBoard(ctx context.Context, in GetBoardInput) (*Board, error) {
	view := ViewOptions{Sort: in.Sort}
	if err := view.validate(); err != nil {
		return nil, err
	}

	ownerID := strings.TrimSpace(in.OwnerID)
	var filter ListRequestsFilter
	switch in.Scope {
	case ScopeEmployee:
		filter.EmployeeID = &ownerID
	case ScopeManager:
		filter.ManagerID = &ownerID
	default:
		return nil, ErrInvalidScope
	}

	requests, err := s.list(ctx, filter, ViewOptions{})
	if err != nil {
		return nil, err
	}
	return BuildBoard(requests, in.Search, in.Sort), nil
}
