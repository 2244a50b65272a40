package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 1, 99},
		{100, 100, 1},
		{101, 100, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestNewPaginated(t *testing.T) {
	t.Run("empty result has empty data, not null", func(t *testing.T) {
		p := NewPaginated[string](nil, 1, 10, 0)
		assert.NotNil(t, p.Data)
		assert.Len(t, p.Data, 0)
		assert.Equal(t, 0, p.Meta.TotalPages)
	})

	t.Run("page past the end keeps the real total", func(t *testing.T) {
		p := NewPaginated([]int{}, 5, 10, 23)
		assert.Empty(t, p.Data)
		assert.Equal(t, int64(23), p.Meta.Total)
		assert.Equal(t, 3, p.Meta.TotalPages)
		assert.Equal(t, 5, p.Meta.Page)
	})

	t.Run("data length never exceeds limit for a full page", func(t *testing.T) {
		p := NewPaginated([]int{1, 2, 3}, 1, 3, 7)
		assert.LessOrEqual(t, len(p.Data), p.Meta.Limit)
		assert.Equal(t, 3, p.Meta.TotalPages)
	})
}

func TestPaginationQueryNormalize(t *testing.T) {
	q := PaginationQuery{Page: 0, Limit: 1000}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxLimit, q.Limit)

	q = PaginationQuery{Page: 3, Limit: 0}
	q.Normalize()
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, 20, q.Offset())
}
