package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/agentdesk/internal/catalog"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "defaults", params: *NewParams()},
		{name: "page zero", params: Params{Page: 0, PageSize: 10}, wantErr: ErrInvalidPage},
		{name: "page size zero", params: Params{Page: 1}, wantErr: ErrInvalidPageSize},
		{name: "page size too big", params: Params{Page: 1, PageSize: MaxPageSize + 1}, wantErr: ErrInvalidPageSize},
		{name: "bad sort order", params: Params{Page: 1, PageSize: 5, Sort: "name:up"}, wantErr: ErrInvalidSortOrder},
		{name: "good sort", params: Params{Page: 3, PageSize: 5, Sort: "name:desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParams_FetchParams(t *testing.T) {
	p := Params{Page: 2, PageSize: 10, Search: "  sales "}
	assert.Equal(t, catalog.FetchParams{Page: 1, PageSize: 10, Search: "sales"}, p.FetchParams())

	p.Search = "   "
	assert.Empty(t, p.FetchParams().Search)
}

func TestParseSort(t *testing.T) {
	field, order, err := ParseSort("name")
	require.NoError(t, err)
	assert.Equal(t, "name", field)
	assert.Equal(t, SortOrderAsc, order)

	field, order, err = ParseSort(" id : DESC ")
	require.NoError(t, err)
	assert.Equal(t, "id", field)
	assert.Equal(t, SortOrderDesc, order)

	_, _, err = ParseSort(":asc")
	require.ErrorIs(t, err, ErrEmptySortField)
	_, _, err = ParseSort("a:b:c")
	require.ErrorIs(t, err, ErrInvalidSortFormat)
}

func TestItemSorter(t *testing.T) {
	items := []catalog.ListItem{
		{ID: "2", Name: "bravo"},
		{ID: "1", Name: "Alpha"},
		{ID: "3", Name: "charlie"},
	}
	s := NewItemSorter()
	assert.Equal(t, []string{"id", "name", "number"}, s.GetValidFields())
	assert.True(t, s.IsValidField("name"))
	assert.False(t, s.IsValidField("savings"))

	sorted, err := s.Apply(items, "name")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", sorted[0].Name)
	assert.Equal(t, "bravo", items[0].Name, "input must not be modified")

	sorted, err = s.Apply(items, "id:desc")
	require.NoError(t, err)
	assert.Equal(t, "3", sorted[0].ID)

	same, err := s.Apply(items, "")
	require.NoError(t, err)
	assert.Equal(t, items, same)

	_, err = s.Apply(items, "savings")
	require.ErrorIs(t, err, ErrInvalidSortField)
}

func TestNewMeta(t *testing.T) {
	params := Params{Page: 2, PageSize: 10}

	m := NewMeta(params, &catalog.PaginationMeta{Page: 1, TotalPages: 3}, 10)
	assert.Equal(t, Meta{CurrentPage: 2, PageSize: 10, TotalPages: 3, Count: 10, HasPrevious: true, HasNext: true}, m)

	m = NewMeta(params, &catalog.PaginationMeta{Page: 2, TotalPages: 3}, 4)
	assert.False(t, m.HasNext)
	assert.Equal(t, 3, m.CurrentPage)

	m = NewMeta(Params{Page: 1, PageSize: 10}, nil, 7)
	assert.Equal(t, 1, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrevious)
}
