package ascparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/typemap"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

func newTestIngestor() *Ingestor {
	return NewIngestor(typemap.NewResolver(), map[string]string{"KRBUS": "KRPUS"}, nil)
}

// Scenario: a small manifest yields one record per container with all
// parsed fields populated, plus the header metadata.
func TestIngestBuildsRegistry(t *testing.T) {
	text := strings.Join([]string{
		"$MANIFEST/MSC AURIGA*/FA432R/20260830",
		fullLine(),
		manifestLine(map[int]string{
			0:   "140268",
			7:   "TCLU7654321",
			19:  "HLC",
			44:  "45RT   E",
			110: "KRBUSCNSHA",
		}),
	}, "\n")

	registry, header := newTestIngestor().Ingest(text, types.OriginDischarge)

	require.Len(t, registry, 2)
	assert.Equal(t, "MSC AURIGA", header.Vessel)
	assert.Equal(t, "FA432R", header.Voyage)

	record := registry[types.ContainerNumber("MSCU1234567")]
	require.NotNil(t, record)
	assert.Equal(t, types.OriginDischarge, record.Origin)
	assert.Equal(t, "MSC", record.OperatorCode)
	assert.Equal(t, "20DV", record.TypeAbrev)
	assert.Equal(t, 2210, record.ISOCode)
	assert.Equal(t, "215", record.GrossWeight)
	assert.Equal(t, "F", record.FullEmpty)
	assert.Equal(t, "CNSHA", record.POL)
	assert.Equal(t, "KRPUS", record.POD)
	assert.Equal(t, 1, record.IMO)
	assert.Equal(t, 0, record.OOGCargo)

	other := registry[types.ContainerNumber("TCLU7654321")]
	require.NotNil(t, other)
	assert.Equal(t, "HLC", other.OperatorCode)
	assert.Equal(t, "45RT", other.TypeAbrev)
	assert.Equal(t, "0", other.GrossWeight)
	assert.Equal(t, "E", other.FullEmpty)
	assert.Equal(t, "KRPUS", other.POL)
	assert.Equal(t, "CNSHA", other.POD)
}

// Scenario: the *** terminator stops the scan; containers after it are
// never ingested.
func TestIngestStopsAtTerminator(t *testing.T) {
	text := strings.Join([]string{
		fullLine(),
		"*** END OF REPORT ***",
		manifestLine(map[int]string{7: "TCLU7654321", 19: "MSC", 110: "CNSHAKRBUS"}),
	}, "\n")

	registry, _ := newTestIngestor().Ingest(text, types.OriginLoad)

	assert.Len(t, registry, 1)
	assert.Contains(t, registry, types.ContainerNumber("MSCU1234567"))
}

// Scenario: when one container spans several lines, scalar fields keep the
// first value seen while the port pair keeps the last.
func TestIngestFirstWriterScalarsLastWriterPorts(t *testing.T) {
	first := manifestLine(map[int]string{
		7:   "MSCU1234567",
		19:  "MSC",
		44:  "20DV215F",
		110: "CNSHAKRBUS",
	})
	second := manifestLine(map[int]string{
		7:   "MSCU1234567",
		19:  "HLC",
		44:  "45RT999E",
		110: "SGSINNLRTM",
	})

	registry, _ := newTestIngestor().Ingest(first+"\n"+second, types.OriginLoad)

	record := registry[types.ContainerNumber("MSCU1234567")]
	require.NotNil(t, record)
	assert.Equal(t, "MSC", record.OperatorCode)
	assert.Equal(t, "20DV", record.TypeAbrev)
	assert.Equal(t, "215", record.GrossWeight)
	assert.Equal(t, "F", record.FullEmpty)
	assert.Equal(t, "SGSIN", record.POL)
	assert.Equal(t, "NLRTM", record.POD)
}

// Scenario: a parsed weight of zero still counts as a first write; a later
// line cannot replace it.
func TestIngestZeroWeightIsSet(t *testing.T) {
	first := manifestLine(map[int]string{7: "MSCU1234567", 19: "MSC", 44: "20DV   F", 110: "CNSHAKRBUS"})
	second := manifestLine(map[int]string{7: "MSCU1234567", 19: "MSC", 44: "20DV215F", 110: "CNSHAKRBUS"})

	registry, _ := newTestIngestor().Ingest(first+"\n"+second, types.OriginDischarge)

	assert.Equal(t, "0", registry[types.ContainerNumber("MSCU1234567")].GrossWeight)
}

// Scenario: hazard and out-of-gauge flags are monotonic across lines; a
// later line without the marker never clears them.
func TestIngestMonotonicFlags(t *testing.T) {
	flagged := manifestLine(map[int]string{7: "MSCU1234567", 19: "MSC", 61: "D", 103: "5", 110: "CNSHAKRBUS"})
	plain := manifestLine(map[int]string{7: "MSCU1234567", 19: "MSC", 110: "CNSHAKRBUS"})

	registry, _ := newTestIngestor().Ingest(flagged+"\n"+plain, types.OriginDischarge)

	record := registry[types.ContainerNumber("MSCU1234567")]
	assert.Equal(t, 1, record.IMO)
	assert.Equal(t, 1, record.OOGCargo)
	assert.Equal(t, 1, record.OOGHandling)
}

// Scenario: ingesting the same text twice produces identical registries.
func TestIngestIdempotent(t *testing.T) {
	text := fullLine() + "\n" + manifestLine(map[int]string{
		7: "TCLU7654321", 19: "HLC", 44: "42G1180F", 110: "KRBUSCNSHA",
	})

	a, _ := newTestIngestor().Ingest(text, types.OriginLoad)
	b, _ := newTestIngestor().Ingest(text, types.OriginLoad)

	assert.Equal(t, a, b)
}

// Scenario: the header line must appear within the first ten lines and
// carry at least three "/" segments; otherwise the placeholders remain.
func TestExtractHeader(t *testing.T) {
	header := ExtractHeader([]string{"$ASC/MSC LORETO!/FR512A-2/extra"})
	assert.Equal(t, "MSC LORETO", header.Vessel)
	assert.Equal(t, "FR512A-2", header.Voyage)

	header = ExtractHeader([]string{"no header at all", fullLine()})
	assert.Equal(t, "UNKNOWNVSL", header.Vessel)
	assert.Equal(t, "UNKNOWNVOY", header.Voyage)

	// Too few segments.
	header = ExtractHeader([]string{"$ASC/MSC LORETO"})
	assert.Equal(t, "UNKNOWNVSL", header.Vessel)
}
