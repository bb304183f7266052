package paginator

import "testing"

func TestAdjust(t *testing.T) {
	testCases := []struct {
		name      string
		query     PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{
			name:      "zero values get defaults",
			query:     PaginateQuery{},
			wantPage:  DefaultPage,
			wantLimit: DefaultLimit,
		},
		{
			name:      "negative values get defaults",
			query:     PaginateQuery{Page: -3, Limit: -10},
			wantPage:  DefaultPage,
			wantLimit: DefaultLimit,
		},
		{
			name:      "valid values pass through",
			query:     PaginateQuery{Page: 4, Limit: 50},
			wantPage:  4,
			wantLimit: 50,
		},
		{
			name:      "limit is capped",
			query:     PaginateQuery{Page: 1, Limit: 500},
			wantPage:  1,
			wantLimit: MaxLimit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.query.Adjust()
			if tc.query.Page != tc.wantPage {
				t.Errorf("Page = %d, want %d", tc.query.Page, tc.wantPage)
			}
			if tc.query.Limit != tc.wantLimit {
				t.Errorf("Limit = %d, want %d", tc.query.Limit, tc.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 20}
	if got := q.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}

	q = PaginateQuery{Page: 1, Limit: 20}
	if got := q.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}

func TestPaginator(t *testing.T) {
	t.Run("partial last page rounds up", func(t *testing.T) {
		p := Paginator{Total: 45, Count: 5, PerPage: 20, CurrentPage: 3}
		if got := p.TotalPages(); got != 3 {
			t.Errorf("TotalPages() = %d, want 3", got)
		}
		if p.HasNextPage() {
			t.Error("HasNextPage() = true, want false")
		}
		if !p.HasPreviousPage() {
			t.Error("HasPreviousPage() = false, want true")
		}
	})

	t.Run("empty result has no pages", func(t *testing.T) {
		p := Paginator{PerPage: 20, CurrentPage: 1}
		if got := p.TotalPages(); got != 0 {
			t.Errorf("TotalPages() = %d, want 0", got)
		}
		if p.HasNextPage() {
			t.Error("HasNextPage() = true, want false")
		}
	})

	t.Run("response carries derived fields", func(t *testing.T) {
		p := Paginator{Total: 45, Count: 20, PerPage: 20, CurrentPage: 1}
		resp := p.ToResponse()
		if resp.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
		}
		if !resp.HasNext {
			t.Error("HasNext = false, want true")
		}
		if resp.HasPrev {
			t.Error("HasPrev = true, want false")
		}
	})
}
