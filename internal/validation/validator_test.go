package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

func mscDischarge(number, pod string) *types.ContainerRecord {
	return &types.ContainerRecord{
		Number:       types.ContainerNumber(number),
		Origin:       types.OriginDischarge,
		OperatorCode: "MSC",
		POD:          pod,
	}
}

func mscLoad(number, pol string) *types.ContainerRecord {
	return &types.ContainerRecord{
		Number:       types.ContainerNumber(number),
		Origin:       types.OriginLoad,
		OperatorCode: "MSC",
		POL:          pol,
	}
}

// Scenario: manifest set {A,B,C} against external set {B,C,D} yields A as
// manifest-only, D as external-only, and an overall failure.
func TestValidateSymmetricDifference(t *testing.T) {
	discharge := types.Registry{
		"AAAA1111111": mscDischarge("AAAA1111111", "KRPUS"),
		"BBBB2222222": mscDischarge("BBBB2222222", "KRPUS"),
		"CCCC3333333": mscDischarge("CCCC3333333", "KRPUS"),
	}
	lists := types.AssignmentLists{
		DIS: []types.ContainerNumber{"BBBB2222222", "CCCC3333333"},
		TSD: []types.ContainerNumber{"DDDD4444444"},
	}

	report := Validate(discharge, types.Registry{}, lists, "KRPUS", nil)

	assert.False(t, report.Passed)
	require.Len(t, report.Discharge, 2)
	assert.Empty(t, report.Load)

	// External-only issues sort first.
	assert.Equal(t, StatusOnlyExternal, report.Discharge[0].Status)
	assert.Equal(t, types.ContainerNumber("DDDD4444444"), report.Discharge[0].Container)
	assert.Equal(t, StatusOnlyManifest, report.Discharge[1].Status)
	assert.Equal(t, types.ContainerNumber("AAAA1111111"), report.Discharge[1].Container)

	assert.Contains(t, report.Summary, "Result: FAIL")
}

// Scenario: non-MSC containers and other ports are excluded from the
// manifest side before comparison.
func TestValidateFiltersManifest(t *testing.T) {
	partner := mscDischarge("TCLU9999999", "KRPUS")
	partner.OperatorCode = "HLC"

	discharge := types.Registry{
		"AAAA1111111": mscDischarge("AAAA1111111", "KRPUS"),
		"TCLU9999999": partner,
		"CCCC3333333": mscDischarge("CCCC3333333", "CNSHA"),
	}
	lists := types.AssignmentLists{DIS: []types.ContainerNumber{"AAAA1111111"}}

	report := Validate(discharge, types.Registry{}, lists, "KRPUS", nil)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Discharge)
}

// Scenario: the load side compares against LOD∪TSL, with alias-normalized
// POL matching.
func TestValidateLoadSide(t *testing.T) {
	load := types.Registry{
		"AAAA1111111": mscLoad("AAAA1111111", "KRBUS"),
		"BBBB2222222": mscLoad("BBBB2222222", "KRPUS"),
	}
	lists := types.AssignmentLists{
		LOD: []types.ContainerNumber{"AAAA1111111"},
		TSL: []types.ContainerNumber{"BBBB2222222"},
	}

	report := Validate(types.Registry{}, load, lists, "KRPUS", map[string]string{"KRBUS": "KRPUS"})

	assert.True(t, report.Passed)
	assert.Contains(t, report.Summary, "Result: PASS")
}

// Scenario: issues within a status group sort by container ascending.
func TestValidateIssueOrdering(t *testing.T) {
	discharge := types.Registry{
		"ZZZZ9999999": mscDischarge("ZZZZ9999999", "KRPUS"),
		"AAAA1111111": mscDischarge("AAAA1111111", "KRPUS"),
	}

	report := Validate(discharge, types.Registry{}, types.AssignmentLists{}, "KRPUS", nil)

	require.Len(t, report.Discharge, 2)
	assert.Equal(t, types.ContainerNumber("AAAA1111111"), report.Discharge[0].Container)
	assert.Equal(t, types.ContainerNumber("ZZZZ9999999"), report.Discharge[1].Container)
}
