package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	p := New(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, 0, p.Offset())

	p = New(3, 500)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, 200, p.Offset())
	assert.Equal(t, MaxPerPage, p.Limit())
}

func TestNewResult(t *testing.T) {
	res := NewResult[string](nil, 41, New(2, 20))
	assert.NotNil(t, res.Data)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 2, res.Page)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		page    int
		perPage int
		want    Window
	}{
		{
			name: "first page", total: 17, page: 1, perPage: 7,
			want: Window{Page: 1, PerPage: 7, TotalPages: 3, Total: 17, Offset: 0, Start: 1, End: 7},
		},
		{
			name: "last partial page", total: 17, page: 3, perPage: 7,
			want: Window{Page: 3, PerPage: 7, TotalPages: 3, Total: 17, Offset: 14, Start: 15, End: 17},
		},
		{
			name: "page past the end is clamped", total: 17, page: 9, perPage: 7,
			want: Window{Page: 3, PerPage: 7, TotalPages: 3, Total: 17, Offset: 14, Start: 15, End: 17},
		},
		{
			name: "page below one is clamped", total: 5, page: -2, perPage: 7,
			want: Window{Page: 1, PerPage: 7, TotalPages: 1, Total: 5, Offset: 0, Start: 1, End: 5},
		},
		{
			name: "empty list keeps one page", total: 0, page: 4, perPage: 7,
			want: Window{Page: 1, PerPage: 7, TotalPages: 1, Total: 0, Offset: 0, Start: 0, End: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.total, tt.page, tt.perPage))
		})
	}
}
