package timeoff

import (
	"errors"
	"testing"
	"time"
)

func ids(requests []*Request) []string {
	out := make([]string, 0, len(requests))
	for _, r := range requests {
		out = append(out, r.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyView_Sort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		sort SortOrder
		want []string
	}{
		{name: "insertion", sort: "", want: []string{"request-1", "request-2", "request-3"}},
		{name: "newest", sort: SortNewest, want: []string{"request-1", "request-2", "request-3"}},
		{name: "oldest", sort: SortOldest, want: []string{"request-3", "request-2", "request-1"}},
		{name: "start date", sort: SortStartDate, want: []string{"request-2", "request-1", "request-3"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ids(ApplyView(seedRequests(), ViewOptions{Sort: tc.sort}))
			if !equalIDs(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestApplyView_SearchMatchesNameOrReason(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"family":   {"request-2"},
		"  SMITH ": {"request-1", "request-3"},
		"time":     {"request-3"},
		"nobody":   {},
		"":         {"request-1", "request-2", "request-3"},
	}

	for term, want := range cases {
		got := ids(ApplyView(seedRequests(), ViewOptions{Search: term}))
		if !equalIDs(got, want) {
			t.Fatalf("search %q: expected %v, got %v", term, want, got)
		}
	}
}

func TestApplyView_EmptyInputIsNotNil(t *testing.T) {
	t.Parallel()

	got := ApplyView(nil, ViewOptions{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestViewOptions_Validate(t *testing.T) {
	t.Parallel()

	bogus := Status("archived")
	if err := (ViewOptions{Status: &bogus}).validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := (ViewOptions{Sort: "alphabetical"}).validate(); !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
	pending := StatusPending
	if err := (ViewOptions{Status: &pending, Sort: SortOldest}).validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildBoard_DefaultsToNewest(t *testing.T) {
	t.Parallel()

	requests := seedRequests()
	requests = append(requests, &Request{
		ID: "request-4", EmployeeID: "user-2", EmployeeName: "Emily Johnson",
		Status:    StatusPending,
		CreatedAt: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
	})

	board := BuildBoard(requests, "", "")
	if got := ids(board.Pending); !equalIDs(got, []string{"request-4", "request-1"}) {
		t.Fatalf("unexpected pending tab %v", got)
	}
	if got := ids(board.Approved); !equalIDs(got, []string{"request-2"}) {
		t.Fatalf("unexpected approved tab %v", got)
	}
	if got := ids(board.Denied); !equalIDs(got, []string{"request-3"}) {
		t.Fatalf("unexpected denied tab %v", got)
	}
}

func TestRequest_Days(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end time.Time
		want       int
	}{
		{start: date(2024, 7, 15), end: date(2024, 7, 20), want: 6},
		{start: date(2024, 7, 15), end: date(2024, 7, 15), want: 1},
		{start: date(2024, 2, 28), end: date(2024, 3, 1), want: 3},
		{start: date(2024, 12, 30), end: date(2025, 1, 2), want: 4},
	}

	for _, tc := range cases {
		r := &Request{StartDate: tc.start, EndDate: tc.end}
		if got := r.Days(); got != tc.want {
			t.Fatalf("%s..%s: expected %d, got %d", FormatDate(tc.start), FormatDate(tc.end), tc.want, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate(" 2024-07-15 ")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if !got.Equal(date(2024, 7, 15)) {
		t.Fatalf("unexpected date %v", got)
	}
	if FormatDate(got) != "2024-07-15" {
		t.Fatalf("unexpected format %s", FormatDate(got))
	}

	for _, raw := range []string{"", "2024/07/15", "2024-13-01", "July 15"} {
		if _, err := ParseDate(raw); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q: expected ErrInvalidDate, got %v", raw, err)
		}
	}
}

func TestFormatInstant(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	cases := []struct {
		in   time.Time
		want string
	}{
		{in: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC), want: "2024-06-20T09:00:00.000Z"},
		{in: time.Date(2024, 6, 20, 9, 0, 0, 0, tokyo), want: "2024-06-20T00:00:00.000Z"},
		{in: time.Date(2024, 6, 20, 9, 0, 0, 123456789, time.UTC), want: "2024-06-20T09:00:00.123Z"},
	}
	for _, tc := range cases {
		if got := FormatInstant(tc.in); got != tc.want {
			t.Fatalf("FormatInstant(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestListRequestsFilter_Matches(t *testing.T) {
	t.Parallel()

	unassigned := &Request{ID: "r", EmployeeID: "user-1", ManagerID: ""}
	empty := ""
	user3 := "user-3"

	if !(ListRequestsFilter{ManagerID: &empty}).Matches(unassigned) {
		t.Fatal("empty manager filter should match unassigned requests")
	}
	if (ListRequestsFilter{ManagerID: &user3}).Matches(unassigned) {
		t.Fatal("user-3 filter should not match unassigned request")
	}
	if !(ListRequestsFilter{}).Matches(unassigned) {
		t.Fatal("zero filter should match everything")
	}
}
