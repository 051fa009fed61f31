package search_test

import (
	"hotelmanager/internal/domains/search"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_ConcatenationReconstructsSequence(t *testing.T) {
	for total := 0; total <= 13; total++ {
		items := make([]int, total)
		for i := range items {
			items[i] = i
		}

		for _, size := range []int{1, 2, 3, 6, 10} {
			first, err := search.Paginate(items, 1, size)
			require.NoError(t, err)

			var joined []int
			for number := 1; number <= first.TotalPages; number++ {
				page, err := search.Paginate(items, number, size)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(page.Items), size)

				joined = append(joined, page.Items...)
			}

			if total == 0 {
				assert.Empty(t, joined)

				continue
			}

			assert.Equal(t, items, joined, "total %d size %d", total, size)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	tests := []struct {
		name      string
		number    int
		size      int
		want      []string
		wantPages int
		wantErr   error
	}{
		{name: "first page", number: 1, size: 3, want: []string{"a", "b", "c"}, wantPages: 3},
		{name: "last partial page", number: 3, size: 3, want: []string{"g"}, wantPages: 3},
		{name: "zero page means first", number: 0, size: 3, want: []string{"a", "b", "c"}, wantPages: 3},
		{name: "zero size keeps everything", number: 1, size: 0, want: items, wantPages: 1},
		{name: "past the end is rejected", number: 4, size: 3, want: []string{"a", "b", "c"}, wantPages: 3, wantErr: search.ErrPageOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := search.Paginate(items, tt.number, tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1, page.Number, "rejected requests are not clamped")
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, page.Items)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, len(items), page.TotalItems)
		})
	}
}

func TestApply_PageOutOfRange(t *testing.T) {
	res, err := search.Apply(rooms(), search.Criteria{Page: 9, PageSize: 6}, today)

	assert.ErrorIs(t, err, search.ErrPageOutOfRange)
	assert.Equal(t, 1, res.Page.Number)
	assert.Len(t, res.Items, 7)
}
