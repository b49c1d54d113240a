package query

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcamper/internal/apperror"
)

func testSchema() *Schema {
	return NewSchema(
		[]SortKey{{Field: "createdAt", Desc: true}},
		Field{Name: "id", Columns: []string{"id"}, Type: ID, Filter: true, Select: true},
		Field{Name: "name", Columns: []string{"name"}, Type: Text, Filter: true, Sort: true, Select: true},
		Field{Name: "price", Columns: []string{"price"}, Type: Number, Filter: true, Sort: true, Select: true},
		Field{Name: "weeks", Columns: []string{"weeks"}, Type: Integer, Filter: true, Sort: true, Select: true},
		Field{Name: "housing", Columns: []string{"housing"}, Type: Bool, Filter: true, Select: true},
		Field{Name: "careers", Columns: []string{"careers"}, Type: List, Filter: true, Select: true},
		Field{Name: "createdAt", Columns: []string{"created_at"}, Type: Time, Filter: true, Sort: true, Select: true},
		Field{Name: "location", Columns: []string{"lng", "lat"}, Select: true},
		Field{Name: "location.city", Columns: []string{"city"}, Type: Text, Filter: true},
	)
}

func TestParse_Defaults(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, d.Page)
	assert.Equal(t, DefaultLimit, d.Limit)
	assert.Empty(t, d.Filters)
	assert.Empty(t, d.Select)
	assert.Equal(t, []SortKey{{Field: "createdAt", Desc: true}}, d.Sort)
	assert.Equal(t, 0, d.Offset())
}

func TestParse_PageAndLimitFallback(t *testing.T) {
	tests := []struct {
		page, limit       string
		wantPage, wantLim int
	}{
		{"2", "5", 2, 5},
		{"abc", "xyz", 1, 100},
		{"0", "-3", 1, 100},
		{" 3 ", "10", 3, 10},
	}
	for _, tt := range tests {
		d, err := testSchema().Parse(map[string]string{"page": tt.page, "limit": tt.limit})
		require.NoError(t, err)
		assert.Equal(t, tt.wantPage, d.Page, "page=%q", tt.page)
		assert.Equal(t, tt.wantLim, d.Limit, "limit=%q", tt.limit)
	}
}

func TestParse_ReservedKeysAreNotFilters(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{
		"select": "name",
		"sort":   "name",
		"page":   "1",
		"limit":  "10",
	})
	require.NoError(t, err)
	assert.Empty(t, d.Filters)
}

func TestParse_ComparisonOperatorIsTyped(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{"price[gte]": "100"})
	require.NoError(t, err)
	require.Len(t, d.Filters, 1)

	p := d.Filters[0]
	assert.Equal(t, "price", p.Field.Name)
	assert.Equal(t, Gte, p.Op)
	assert.Equal(t, []any{100.0}, p.Values)
}

func TestParse_AllOperators(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{
		"price[gt]":  "1",
		"price[lt]":  "9",
		"price[lte]": "8",
		"price[in]":  "1, 2,3",
	})
	require.NoError(t, err)
	require.Len(t, d.Filters, 4)

	// keys are processed in sorted order
	assert.Equal(t, Gt, d.Filters[0].Op)
	assert.Equal(t, In, d.Filters[1].Op)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, d.Filters[1].Values)
	assert.Equal(t, Lt, d.Filters[2].Op)
	assert.Equal(t, Lte, d.Filters[3].Op)
}

func TestParse_TypedValues(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{
		"housing":        "true",
		"createdAt[gte]": "2024-01-02",
		"location.city":  "Boston",
		"id":             "6F9619FF-8B86-D011-B42D-00CF4FC964FF",
		"careers[in]":    "UI/UX,Business",
	})
	require.NoError(t, err)
	require.Len(t, d.Filters, 5)

	byName := map[string]Predicate{}
	for _, p := range d.Filters {
		byName[p.Field.Name] = p
	}
	assert.Equal(t, []any{true}, byName["housing"].Values)
	assert.Equal(t, []any{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, byName["createdAt"].Values)
	assert.Equal(t, "city", byName["location.city"].Field.Column())
	assert.Equal(t, []any{"6f9619ff-8b86-d011-b42d-00cf4fc964ff"}, byName["id"].Values)
	assert.Equal(t, []any{"UI/UX", "Business"}, byName["careers"].Values)
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{"unknown field", map[string]string{"color": "red"}},
		{"unknown operator", map[string]string{"price[ne]": "1"}},
		{"operator not valid for bool", map[string]string{"housing[gt]": "true"}},
		{"operator not valid for text", map[string]string{"name[lte]": "x"}},
		{"number does not parse", map[string]string{"price[gte]": "cheap"}},
		{"bool does not parse", map[string]string{"housing": "maybe"}},
		{"malformed key", map[string]string{"price[gte": "1"}},
		{"empty in list", map[string]string{"price[in]": " , "}},
		{"invalid id", map[string]string{"id": "not-a-uuid"}},
		{"nan", map[string]string{"price": "NaN"}},
		{"fractional integer", map[string]string{"weeks[lte]": "2.5"}},
		{"integer out of range", map[string]string{"weeks": "1e10"}},
		{"integer overflows int4", map[string]string{"weeks[gte]": "2147483648"}},
		{"select unknown", map[string]string{"select": "name,secret"}},
		{"select filter-only field", map[string]string{"select": "location.city"}},
		{"sort unknown", map[string]string{"sort": "-secret"}},
		{"sort unsortable", map[string]string{"sort": "housing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testSchema().Parse(tt.params)
			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindBadRequest), "got %v", err)
		})
	}
}

func TestParse_SelectAndSort(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{
		"select": "name, housing,name",
		"sort":   "-name,price",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "housing"}, d.Select)
	assert.Equal(t, []SortKey{{Field: "name", Desc: true}, {Field: "price"}}, d.Sort)
}

func TestDescriptor_Offset(t *testing.T) {
	for page := 1; page <= 5; page++ {
		for limit := 1; limit <= 5; limit++ {
			d := Descriptor{Page: page, Limit: limit}
			assert.Equal(t, (page-1)*limit, d.Offset())
		}
	}
}

func TestSchema_Selectable(t *testing.T) {
	assert.Equal(t,
		[]string{"careers", "createdAt", "housing", "id", "location", "name", "price", "weeks"},
		testSchema().Selectable(),
	)
}

func TestParse_HugePageHasNonNegativeOffset(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{"page": "9223372036854775807", "limit": "2"})
	require.NoError(t, err)

	assert.Equal(t, math.MaxInt, d.Page)
	assert.Equal(t, math.MaxInt, d.Offset())

	p := Paginate(d.Page, d.Limit, 5)
	assert.Nil(t, p.Next)
	require.NotNil(t, p.Prev)
	assert.Positive(t, p.Prev.Page)
}

func TestParse_IntegerValues(t *testing.T) {
	d, err := testSchema().Parse(map[string]string{"weeks[in]": "4, 8"})
	require.NoError(t, err)
	require.Len(t, d.Filters, 1)
	assert.Equal(t, []any{int64(4), int64(8)}, d.Filters[0].Values)
}

func TestParse_SelectErrorListsSelectableFields(t *testing.T) {
	_, err := testSchema().Parse(map[string]string{"select": "secret"})
	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, `Cannot select field "secret", selectable fields: careers, createdAt, housing, id, location, name, price, weeks`, ae.Message)
}
