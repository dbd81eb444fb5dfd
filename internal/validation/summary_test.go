package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// Scenario: the special cargo summary lists only MSC containers, split by
// flag and origin, each list sorted.
func TestSummarizeSpecialCargo(t *testing.T) {
	dg := mscDischarge("ZZZZ9999999", "KRPUS")
	dg.IMO = 1
	dgToo := mscDischarge("AAAA1111111", "KRPUS")
	dgToo.IMO = 1
	partner := mscDischarge("TCLU5555555", "KRPUS")
	partner.OperatorCode = "HLC"
	partner.IMO = 1

	oog := mscLoad("BBBB2222222", "KRPUS")
	oog.OOGCargo = 1

	discharge := types.Registry{"ZZZZ9999999": dg, "AAAA1111111": dgToo, "TCLU5555555": partner}
	load := types.Registry{"BBBB2222222": oog}

	cargo := SummarizeSpecialCargo(discharge, load)

	require.Len(t, cargo.DischargeDG, 2)
	assert.Equal(t, types.ContainerNumber("AAAA1111111"), cargo.DischargeDG[0])
	assert.Equal(t, types.ContainerNumber("ZZZZ9999999"), cargo.DischargeDG[1])
	assert.Empty(t, cargo.DischargeOOG)
	assert.Empty(t, cargo.LoadDG)
	assert.Equal(t, []types.ContainerNumber{"BBBB2222222"}, cargo.LoadOOG)
}

// Scenario: partner cargo means any non-MSC operator on either side;
// foreign account means any assigned account other than MSC.
func TestCargoChecks(t *testing.T) {
	msc := mscDischarge("AAAA1111111", "KRPUS")
	partner := mscLoad("BBBB2222222", "KRPUS")
	partner.OperatorCode = "ONE"

	assert.False(t, HasPartnerCargo(types.Registry{"AAAA1111111": msc}, types.Registry{}))
	assert.True(t, HasPartnerCargo(types.Registry{"AAAA1111111": msc}, types.Registry{"BBBB2222222": partner}))

	assert.False(t, HasForeignAccount(types.Registry{"AAAA1111111": msc}, types.Registry{}))
	msc.Account = "MSC"
	assert.False(t, HasForeignAccount(types.Registry{"AAAA1111111": msc}, types.Registry{}))
	msc.Account = "HPNT"
	assert.True(t, HasForeignAccount(types.Registry{"AAAA1111111": msc}, types.Registry{}))
}
