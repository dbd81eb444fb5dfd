package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario: merging drained batches keeps one row per container; re-merged
// containers keep their position but take the new abbreviation.
func TestReviewTableMerge(t *testing.T) {
	table := NewReviewTable()

	table.Merge([]UnmappedEntry{
		{Container: "MSCU1234567", Label: "2Z99"},
		{Container: "TCLU7654321", Label: "ZZZZ"},
	})
	table.Merge([]UnmappedEntry{
		{Container: "MSCU1234567", Label: "2Y88"},
	})

	require.Equal(t, 2, table.Len())

	rows := table.Rows(NewResolver())
	assert.Equal(t, "MSCU1234567", rows[0].Container)
	assert.Equal(t, "2Y88", rows[0].Original)
	assert.Equal(t, "TCLU7654321", rows[1].Container)
}

// Scenario: row status follows the resolver's override store.
func TestReviewTableStatus(t *testing.T) {
	table := NewReviewTable()
	table.Merge([]UnmappedEntry{
		{Container: "MSCU1234567", Label: "2Z99"},
		{Container: "TCLU7654321", Label: "ZZZZ"},
	})

	resolver := NewResolver()
	resolver.SetOverride("MSCU1234567", "20DV")

	rows := table.Rows(resolver)
	assert.Equal(t, StatusMapped, rows[0].Status)
	assert.Equal(t, "20DV", rows[0].New)
	assert.Equal(t, StatusNeedsMapping, rows[1].Status)
	assert.Equal(t, "", rows[1].New)

	assert.Equal(t, 1, table.NeedsMapping(resolver))
}

// Scenario: cleanup after a manifest reload drops rows for containers no
// longer present.
func TestReviewTableCleanup(t *testing.T) {
	table := NewReviewTable()
	table.Merge([]UnmappedEntry{
		{Container: "MSCU1234567", Label: "2Z99"},
		{Container: "TCLU7654321", Label: "ZZZZ"},
	})

	table.Cleanup(map[string]bool{"TCLU7654321": true})

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "TCLU7654321", table.Rows(NewResolver())[0].Container)
}

// Scenario: recommendations match case-insensitively on code, description,
// and target type; an empty query returns the whole catalog.
func TestRecommend(t *testing.T) {
	all := Recommend("")
	assert.NotEmpty(t, all)

	reefers := Recommend("reefer")
	require.NotEmpty(t, reefers)
	for _, rec := range reefers {
		assert.Contains(t, rec.Description, "REEFER")
	}

	byCode := Recommend("2210")
	require.Len(t, byCode, 1)
	assert.Equal(t, "20DV", byCode[0].Type)

	assert.Empty(t, Recommend("no such equipment"))
}
