package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcamper/internal/apperror"
	"devcamper/internal/query"
)

func TestBootcampSchema_NestedLocationFilters(t *testing.T) {
	d, err := BootcampSchema.Parse(map[string]string{
		"location.state":   "MA",
		"averageCost[lte]": "10000",
	})
	require.NoError(t, err)
	require.Len(t, d.Filters, 2)

	assert.Equal(t, "average_cost", d.Filters[0].Field.Column())
	assert.Equal(t, query.Lte, d.Filters[0].Op)
	assert.Equal(t, "state", d.Filters[1].Field.Column())
}

func TestBootcampSchema_SelectAndDefaultSort(t *testing.T) {
	d, err := BootcampSchema.Parse(map[string]string{"select": "name,housing,location"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "housing", "location"}, d.Select)
	assert.Equal(t, []query.SortKey{{Field: "createdAt", Desc: true}}, d.Sort)
}

func TestCourseSchema_RejectsBootcampFields(t *testing.T) {
	_, err := CourseSchema.Parse(map[string]string{"housing": "true"})
	assert.Error(t, err)
}

func TestCourseSchema_WeeksIsInteger(t *testing.T) {
	d, err := CourseSchema.Parse(map[string]string{"weeks[gte]": "8"})
	require.NoError(t, err)
	require.Len(t, d.Filters, 1)
	assert.Equal(t, []any{int64(8)}, d.Filters[0].Values)

	for _, raw := range []string{"2.5", "1e10", "99999999999"} {
		_, err := CourseSchema.Parse(map[string]string{"weeks[lte]": raw})
		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest), "weeks[lte]=%s: %v", raw, err)
	}
}
