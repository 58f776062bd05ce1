package kernel_test

import (
	"testing"

	"github.com/portalhq/jobboard/pkg/kernel"
)

func TestNewPaginated(t *testing.T) {
	tests := []struct {
		name        string
		totalItems  int
		page        int
		pageSize    int
		wantPages   int
		wantHasPrev bool
		wantHasNext bool
	}{
		{"exact multiple", 100, 1, 10, 10, false, true},
		{"partial last page", 95, 10, 10, 10, true, false},
		{"rounds up", 11, 1, 10, 2, false, true},
		{"middle page", 50, 3, 10, 5, true, true},
		{"single page", 7, 1, 10, 1, false, false},
		{"empty result", 0, 1, 10, 0, false, false},
		{"page past the end", 10, 5, 10, 1, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, 0)
			got := kernel.NewPaginated(items, tt.totalItems, tt.page, tt.pageSize)
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.HasPrevious != tt.wantHasPrev {
				t.Errorf("HasPrevious = %v, want %v", got.HasPrevious, tt.wantHasPrev)
			}
			if got.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", got.HasNext, tt.wantHasNext)
			}
		})
	}
}

func TestNewPaginatedNilItems(t *testing.T) {
	got := kernel.NewPaginated[string](nil, 0, 1, 10)
	if got.Items == nil {
		t.Fatal("Items should never be nil")
	}
	if len(got.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(got.Items))
	}
}

func TestPaginationOptionsNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           kernel.PaginationOptions
		wantPage     int
		wantPageSize int
	}{
		{"defaults", kernel.PaginationOptions{}, 1, 10},
		{"negative page", kernel.PaginationOptions{Page: -3, PageSize: 20}, 1, 20},
		{"zero page size", kernel.PaginationOptions{Page: 2, PageSize: 0}, 2, 10},
		{"over the cap", kernel.PaginationOptions{Page: 1, PageSize: 500}, 1, 50},
		{"at the cap", kernel.PaginationOptions{Page: 4, PageSize: 50}, 4, 50},
		{"untouched", kernel.PaginationOptions{Page: 2, PageSize: 25}, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.PageSize != tt.wantPageSize {
				t.Errorf("Normalize() = {%d %d}, want {%d %d}",
					got.Page, got.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestPaginationOptionsOffset(t *testing.T) {
	opts := kernel.PaginationOptions{Page: 3, PageSize: 25}
	if got := opts.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
	first := kernel.PaginationOptions{Page: 1, PageSize: 10}
	if got := first.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}
