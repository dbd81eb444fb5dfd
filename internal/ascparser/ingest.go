// =============================================================================
// ASC to VCI Converter - Manifest Ingestor
// =============================================================================
//
// This file scans a complete ASC manifest and builds the container registry.
// The scan stops at the first line containing the "***" terminator; every
// other line either contributes fields to a container record or is skipped
// because it carries no container number.
//
// MERGE RULES (one container on multiple lines):
//   - Operator code, equipment abbreviation, weight, full/empty: the first
//     line to supply the field wins.
//   - Dangerous-goods and out-of-gauge flags: monotonic OR, never reset.
//   - POL and POD: the last line to supply them wins.
//
// The asymmetry between scalar fields and port fields reproduces the
// behavior the downstream terminal systems were built against; changing it
// would change the exported data.
//
// =============================================================================

package ascparser

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/typemap"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// stopSentinel terminates the manifest scan; everything after it is ignored.
const stopSentinel = "***"

// headerSentinel prefixes the vessel/voyage header line.
const headerSentinel = "$"

// headerScanLimit is how many leading lines are searched for the header.
const headerScanLimit = 10

var (
	vesselStripRE = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
	voyageStripRE = regexp.MustCompile(`[^A-Za-z0-9\-]+`)
)

// =============================================================================
// INGESTOR
// =============================================================================

// Ingestor scans manifests into container registries. It owns no state of
// its own; the type resolver it consults persists across ingests so that
// unmapped abbreviations accumulate for review.
type Ingestor struct {
	resolver *typemap.Resolver
	aliases  map[string]string
	logger   *zap.Logger
}

// NewIngestor creates an Ingestor. The resolver is required; aliases may be
// nil to disable legacy port normalization; a nil logger is replaced with a
// no-op logger.
func NewIngestor(resolver *typemap.Resolver, aliases map[string]string, logger *zap.Logger) *Ingestor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{resolver: resolver, aliases: aliases, logger: logger}
}

// Ingest scans manifest text and returns the container registry plus the
// header metadata. Malformed lines never fail the scan: lines without a
// container number are skipped, and absent fields simply stay unset.
func (in *Ingestor) Ingest(text string, origin types.Origin) (types.Registry, types.ManifestHeader) {
	lines := splitLines(text)
	registry := make(types.Registry)

	skipped := 0
	for i, line := range lines {
		if strings.Contains(strings.ToUpper(line), stopSentinel) {
			in.logger.Debug("manifest terminator found",
				zap.Int("line", i+1),
				zap.String("origin", string(origin)))
			break
		}

		number, ok := ExtractContainerNumber(line)
		if !ok {
			skipped++
			continue
		}

		record, exists := registry[number]
		if !exists {
			record = &types.ContainerRecord{Number: number}
			registry[number] = record
		}
		in.applyLine(record, line, number, origin)
	}

	header := ExtractHeader(lines)

	in.logger.Info("manifest ingested",
		zap.String("origin", string(origin)),
		zap.Int("containers", len(registry)),
		zap.Int("skipped_lines", skipped),
		zap.String("vessel", header.Vessel),
		zap.String("voyage", header.Voyage))

	return registry, header
}

// applyLine merges one line's fields into the record using the precedence
// rules documented on ContainerRecord.
func (in *Ingestor) applyLine(record *types.ContainerRecord, line string, number types.ContainerNumber, origin types.Origin) {
	record.Origin = origin
	record.Line = line

	if record.OperatorCode == "" {
		record.OperatorCode = ExtractOperatorCode(line)
	}

	if eq, ok := ExtractEquipmentFields(line); ok {
		if record.TypeAbrev == "" {
			record.TypeAbrev = eq.TypeAbrev
		}
		if record.GrossWeight == "" {
			record.GrossWeight = strconv.Itoa(eq.Gross)
		}
		if record.FullEmpty == "" {
			record.FullEmpty = eq.FullEmpty
		}

		// Resolve immediately so unmapped abbreviations surface during the
		// scan, not at export time.
		if record.TypeAbrev != "" {
			code, _ := in.resolver.Resolve(record.TypeAbrev, number.String())
			record.ISOCode = code
		}
	}

	if ExtractDangerousGoods(line) {
		record.IMO = 1
	}

	if ExtractOutOfGauge(line) {
		record.OOGCargo = 1
		record.OOGHandling = 1
	}

	if ports, ok := ExtractLastPolPod(line, in.aliases); ok {
		record.POL = ports.POL
		record.POD = ports.POD
	}
}

// =============================================================================
// HEADER EXTRACTION
// =============================================================================

// ExtractHeader derives the vessel name and voyage code from the first
// sentinel-prefixed line among the manifest's first ten lines. Segments two
// and three of the "/"-separated line become vessel and voyage; both are
// stripped of special characters and default to the UNKNOWN placeholders
// when absent or empty after stripping.
func ExtractHeader(lines []string) types.ManifestHeader {
	header := types.ManifestHeader{Vessel: "UNKNOWNVSL", Voyage: "UNKNOWNVOY"}

	limit := headerScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, headerSentinel) {
			continue
		}

		parts := strings.Split(trimmed, "/")
		if len(parts) < 3 {
			continue
		}

		vessel := strings.TrimSpace(vesselStripRE.ReplaceAllString(parts[1], ""))
		voyage := strings.TrimSpace(voyageStripRE.ReplaceAllString(parts[2], ""))

		if vessel != "" {
			header.Vessel = vessel
		}
		if voyage != "" {
			header.Voyage = voyage
		}
		return header
	}

	return header
}

// splitLines splits manifest text on LF or CRLF line endings.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
