// =============================================================================
// ASC to VCI Converter - Container Merger
// =============================================================================
//
// This module combines the discharge and load registries for the selected
// port call and applies the externally supplied assignment data:
//
//   1. Discharge records whose normalized POD matches the port are
//      inserted; non-MSC operators are auto-typed "DIS".
//   2. Load records whose normalized POL matches are inserted or, when the
//      container already arrived from the discharge side, overlaid onto the
//      existing entry without disturbing an already-assigned type; non-MSC
//      inserts are auto-typed "LOD".
//   3. Assignment lists overwrite the type in fixed order LOD, DIS, TSL,
//      TSD, so later lists win for a container named in several.
//   4. Account codes and TPF/truck flags are applied per origin; flags are
//      set-only and never cleared.
//
// The merge is deterministic and idempotent for fixed inputs.
//
// =============================================================================

package merger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// =============================================================================
// INPUT STRUCTURES
// =============================================================================

// AccountAssignments carries the per-origin account configuration: the code
// to apply and the containers it applies to.
type AccountAssignments struct {
	// DischargeCode and LoadCode default to "MSC" when left empty.
	DischargeCode string
	LoadCode      string

	// Lists names the containers each code applies to.
	Lists types.OriginLists
}

// Inputs bundles everything the merge consumes besides the two registries.
type Inputs struct {
	// Port is the selected port call code.
	Port string

	// Aliases maps legacy port codes to canonical ones for the port
	// comparison; nil disables normalization.
	Aliases map[string]string

	// Assignments are the four externally curated type lists.
	Assignments types.AssignmentLists

	// Accounts is the per-origin account configuration.
	Accounts AccountAssignments

	// TPF and Truck name the containers to flag per origin.
	TPF   types.OriginLists
	Truck types.OriginLists
}

// =============================================================================
// MERGE
// =============================================================================

// Merge combines the discharge and load registries by port filter and
// applies the assignment lists, account codes, and transfer flags. The
// input registries are not modified.
func Merge(discharge, load types.Registry, in Inputs, logger *zap.Logger) types.Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	merged := make(types.Registry)

	// Discharge side: match on port-of-discharge.
	for number, record := range discharge {
		if !matchesPort(record.POD, in.Port, in.Aliases) {
			continue
		}
		entry := record.Clone()
		if entry.OperatorCode != "MSC" {
			entry.Type = "DIS"
		} else {
			entry.Type = ""
		}
		merged[number] = entry
	}

	// Load side: match on port-of-load, overlaying containers the
	// discharge side already contributed.
	for number, record := range load {
		if !matchesPort(record.POL, in.Port, in.Aliases) {
			continue
		}
		if existing, ok := merged[number]; ok {
			overlay(existing, record)
			continue
		}
		entry := record.Clone()
		if entry.OperatorCode != "MSC" {
			entry.Type = "LOD"
		} else {
			entry.Type = ""
		}
		merged[number] = entry
	}

	// Explicit assignments, in fixed precedence order.
	assign(merged, in.Assignments.LOD, "LOD")
	assign(merged, in.Assignments.DIS, "DIS")
	assign(merged, in.Assignments.TSL, "TSL")
	assign(merged, in.Assignments.TSD, "TSD")

	// Account codes per origin.
	applyAccount(merged, in.Accounts.Lists.Discharge, in.Accounts.DischargeCode)
	applyAccount(merged, in.Accounts.Lists.Load, in.Accounts.LoadCode)

	// Transfer flags per origin; set-only.
	applyFlag(merged, in.TPF.Discharge, setTPF)
	applyFlag(merged, in.TPF.Load, setTPF)
	applyFlag(merged, in.Truck.Discharge, setTruck)
	applyFlag(merged, in.Truck.Load, setTruck)

	logger.Info("registries merged",
		zap.String("port", in.Port),
		zap.Int("discharge", len(discharge)),
		zap.Int("load", len(load)),
		zap.Int("merged", len(merged)))

	return merged
}

// matchesPort normalizes a record's port code and compares it against the
// selected port: prefix match or exact match.
func matchesPort(code, port string, aliases map[string]string) bool {
	if canonical, ok := aliases[code]; ok {
		code = canonical
	}
	return code == port || strings.HasPrefix(code, port)
}

// overlay copies the load record's parsed fields onto an entry the
// discharge side created. The assignment type is deliberately left alone:
// a discharge-assigned type survives until an explicit list reassigns it.
func overlay(dst, src *types.ContainerRecord) {
	dst.Origin = src.Origin
	dst.Line = src.Line
	dst.OperatorCode = src.OperatorCode

	if src.TypeAbrev != "" {
		dst.TypeAbrev = src.TypeAbrev
		dst.ISOCode = src.ISOCode
	}
	if src.GrossWeight != "" {
		dst.GrossWeight = src.GrossWeight
	}
	if src.FullEmpty != "" {
		dst.FullEmpty = src.FullEmpty
	}
	if src.POL != "" {
		dst.POL = src.POL
	}
	if src.POD != "" {
		dst.POD = src.POD
	}
	if src.IMO == 1 {
		dst.IMO = 1
	}
	if src.OOGCargo == 1 {
		dst.OOGCargo = 1
	}
	if src.OOGHandling == 1 {
		dst.OOGHandling = 1
	}
}

// assign overwrites the type for every listed container present in the
// merged registry; absent containers are silently ignored.
func assign(merged types.Registry, list []types.ContainerNumber, typeValue string) {
	for _, number := range list {
		if record, ok := merged[number]; ok {
			record.Type = typeValue
		}
	}
}

// applyAccount sets the account code for every listed container present in
// the merged registry.
func applyAccount(merged types.Registry, list []types.ContainerNumber, code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = "MSC"
	}
	for _, number := range list {
		if record, ok := merged[number]; ok {
			record.Account = code
		}
	}
}

func setTPF(record *types.ContainerRecord)   { record.FromToTPF = 1 }
func setTruck(record *types.ContainerRecord) { record.FromToTruck = 1 }

// applyFlag sets a transfer flag for every listed container present in the
// merged registry. Absence from a list never clears a flag already set.
func applyFlag(merged types.Registry, list []types.ContainerNumber, set func(*types.ContainerRecord)) {
	for _, number := range list {
		if record, ok := merged[number]; ok {
			set(record)
		}
	}
}
