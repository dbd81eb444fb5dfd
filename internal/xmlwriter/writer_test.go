package xmlwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

func noCurated() CuratedFlags {
	return CuratedFlags{
		DG:  map[types.ContainerNumber]bool{},
		OOG: map[types.ContainerNumber]bool{},
	}
}

// Scenario: one fully populated record renders the complete fixed field
// list in order, with empty fields self-closed.
func TestGenerateSingleContainer(t *testing.T) {
	registry := types.Registry{
		"MSCU1234567": &types.ContainerRecord{
			Number:       "MSCU1234567",
			OperatorCode: "MSC",
			TypeAbrev:    "20DV",
			ISOCode:      2210,
			GrossWeight:  "21500",
			FullEmpty:    "F",
			POL:          "CNSHA",
			POD:          "KRPUS",
			IMO:          1,
			Type:         "DIS",
			Account:      "MSC",
			Line:         "010482 MSCU1234567",
		},
	}

	expected := `<?xml version="1.0" encoding="UTF-8"?>
<vcidata>
  <containers>
    <container>
      <pod>KRPUS</pod>
      <pol>CNSHA</pol>
      <grossweight>21500</grossweight>
      <coastalcargo>0</coastalcargo>
      <soc>0</soc>
      <imo>1</imo>
      <damagedcargo>0</damagedcargo>
      <oogcargo>0</oogcargo>
      <operatorcode>MSC</operatorcode>
      <fullempty>F</fullempty>
      <typeabrev>20DV</typeabrev>
      <isocode>2210</isocode>
      <type>DIS</type>
      <number>MSCU1234567</number>
      <OOG_Handling>0</OOG_Handling>
      <Account>MSC</Account>
      <fromtorail>0</fromtorail>
      <fromtobarge>0</fromtobarge>
      <fromtotpf>0</fromtotpf>
      <fromtotruck>0</fromtotruck>
      <transdischargelocal>0</transdischargelocal>
      <transloadlocal>0</transloadlocal>
      <transdischargeservicecode/>
      <transloadservicecode/>
      <transdischargeoverseas>0</transdischargeoverseas>
      <transloadoverseas>0</transloadoverseas>
      <transdischargecoastalflag>0</transdischargecoastalflag>
      <transloadcoastalflag>0</transloadcoastalflag>
      <Terminal>0</Terminal>
      <stowposition>010482</stowposition>
    </container>
  </containers>
</vcidata>
`

	assert.Equal(t, expected, string(Generate(registry, noCurated())))
}

// Scenario: repeated generation over the same registry is byte-identical,
// and containers appear in ascending number order.
func TestGenerateDeterministic(t *testing.T) {
	registry := types.Registry{
		"TCLU9999999": &types.ContainerRecord{Number: "TCLU9999999", OperatorCode: "MSC"},
		"AAAA1111111": &types.ContainerRecord{Number: "AAAA1111111", OperatorCode: "MSC"},
		"MSCU5555555": &types.ContainerRecord{Number: "MSCU5555555", OperatorCode: "MSC"},
	}

	first := Generate(registry, noCurated())
	second := Generate(registry, noCurated())
	assert.Equal(t, first, second)

	output := string(first)
	posA := strings.Index(output, "AAAA1111111")
	posM := strings.Index(output, "MSCU5555555")
	posT := strings.Index(output, "TCLU9999999")
	require.True(t, posA >= 0 && posM >= 0 && posT >= 0)
	assert.Less(t, posA, posM)
	assert.Less(t, posM, posT)
}

// Scenario: curated DG/OOG membership upgrades the flags to 1 but never
// downgrades a parsed 1.
func TestGenerateCuratedUpgrades(t *testing.T) {
	registry := types.Registry{
		"MSCU1111111": &types.ContainerRecord{Number: "MSCU1111111", OperatorCode: "MSC"},
		"MSCU2222222": &types.ContainerRecord{Number: "MSCU2222222", OperatorCode: "MSC", IMO: 1, OOGCargo: 1},
	}
	curated := CuratedFlags{
		DG:  map[types.ContainerNumber]bool{"MSCU1111111": true},
		OOG: map[types.ContainerNumber]bool{"MSCU1111111": true},
	}

	output := string(Generate(registry, curated))

	blocks := strings.Split(output, "<container>")
	require.Len(t, blocks, 3)

	// Upgraded by curation.
	assert.Contains(t, blocks[1], "<imo>1</imo>")
	assert.Contains(t, blocks[1], "<oogcargo>1</oogcargo>")

	// Parsed flags survive without curation.
	assert.Contains(t, blocks[2], "<imo>1</imo>")
	assert.Contains(t, blocks[2], "<oogcargo>1</oogcargo>")
}

// Scenario: the type code is recomputed from the abbreviation when mapped,
// falls back to the stored code, then to 1; a missing weight serializes as
// zero.
func TestGenerateDefaults(t *testing.T) {
	registry := types.Registry{
		// Abbreviation mapped: table wins over the stored code.
		"AAAA1111111": &types.ContainerRecord{Number: "AAAA1111111", TypeAbrev: "40HC", ISOCode: 9999},
		// Abbreviation unknown: stored code kept.
		"BBBB2222222": &types.ContainerRecord{Number: "BBBB2222222", TypeAbrev: "XXXX", ISOCode: 4310},
		// Nothing at all: default 1.
		"CCCC3333333": &types.ContainerRecord{Number: "CCCC3333333"},
	}

	output := string(Generate(registry, noCurated()))
	blocks := strings.Split(output, "<container>")
	require.Len(t, blocks, 4)

	assert.Contains(t, blocks[1], "<isocode>4510</isocode>")
	assert.Contains(t, blocks[2], "<isocode>4310</isocode>")
	assert.Contains(t, blocks[3], "<isocode>1</isocode>")

	assert.Contains(t, blocks[3], "<grossweight>0</grossweight>")
	assert.Contains(t, blocks[3], "<stowposition/>")
}
