// =============================================================================
// ASC to VCI Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - ascparser
//   - merger
//   - validation
//   - xmlwriter
//
// =============================================================================

package types

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// =============================================================================
// CONTAINER NUMBER
// =============================================================================

// containerNumberRE is the shape every registry key must satisfy: four
// uppercase letters followed by seven digits.
var containerNumberRE = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)

// ContainerNumber is a validated container identifier. Construct values with
// ParseContainerNumber so that registry keys are well-formed by construction.
type ContainerNumber string

// ParseContainerNumber validates and normalizes a raw container number.
// Input is trimmed and uppercased before validation.
func ParseContainerNumber(raw string) (ContainerNumber, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !containerNumberRE.MatchString(normalized) {
		return "", fmt.Errorf("invalid container number %q", raw)
	}
	return ContainerNumber(normalized), nil
}

// IsContainerNumber reports whether a string already has the container
// number shape, without constructing a ContainerNumber.
func IsContainerNumber(s string) bool {
	return containerNumberRE.MatchString(s)
}

func (n ContainerNumber) String() string { return string(n) }

// =============================================================================
// ORIGIN
// =============================================================================

// Origin identifies which manifest a container record came from.
type Origin string

const (
	// OriginDischarge marks records from the discharge manifest.
	OriginDischarge Origin = "discharge"

	// OriginLoad marks records from the load manifest.
	OriginLoad Origin = "load"
)

// =============================================================================
// CONTAINER RECORD
// =============================================================================

// ContainerRecord holds everything extracted for one container across all of
// its manifest lines, plus the assignment data applied during merge.
//
// Field semantics while scanning one manifest:
//   - OperatorCode, TypeAbrev, GrossWeight, FullEmpty: first-writer-wins.
//   - IMO, OOGCargo, OOGHandling: monotonic, only ever transition 0 -> 1.
//   - POL, POD: last-writer-wins.
type ContainerRecord struct {
	// Number is the validated container number keying this record.
	Number ContainerNumber

	// Origin records which manifest created the record.
	Origin Origin

	// OperatorCode is the 3-letter vessel operator code ("MSC" when the
	// manifest line carries none).
	OperatorCode string

	// TypeAbrev is the equipment abbreviation (e.g. "40HC").
	TypeAbrev string

	// ISOCode is the resolved numeric equipment type code; 0 means no code
	// could be resolved.
	ISOCode int

	// GrossWeight is the parsed weight as decimal text; empty means the
	// weight field never appeared for this container.
	GrossWeight string

	// FullEmpty is "F" or "E"; empty when unknown.
	FullEmpty string

	// POL and POD are 5-character port codes, normalized from legacy aliases.
	POL string
	POD string

	// IMO is 1 once a dangerous-goods indicator was seen on any line.
	IMO int

	// OOGCargo and OOGHandling are 1 once out-of-gauge cargo was detected.
	OOGCargo    int
	OOGHandling int

	// Type is the assignment type: "LOD", "DIS", "TSL", "TSD", or empty
	// when no assignment applies yet.
	Type string

	// Account is the account code applied during merge.
	Account string

	// Transshipment transfer flags, set during merge.
	FromToRail  int
	FromToBarge int
	FromToTPF   int
	FromToTruck int

	// Line is the verbatim manifest line the record was last updated from.
	// Derived extractions (stow position) read from it at export time.
	Line string
}

// Clone returns a copy of the record, for inserting one registry's record
// into another without sharing mutation.
func (r *ContainerRecord) Clone() *ContainerRecord {
	clone := *r
	return &clone
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry maps container numbers to their records for one manifest (or for
// the merged result of two manifests).
type Registry map[ContainerNumber]*ContainerRecord

// Numbers returns all container numbers in ascending order.
func (reg Registry) Numbers() []ContainerNumber {
	numbers := make([]ContainerNumber, 0, len(reg))
	for number := range reg {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers
}

// =============================================================================
// MANIFEST HEADER
// =============================================================================

// ManifestHeader carries the vessel/voyage metadata derived once per manifest.
type ManifestHeader struct {
	// Vessel is the vessel name, "UNKNOWNVSL" when the header line is
	// absent or empty after stripping.
	Vessel string

	// Voyage is the voyage code, "UNKNOWNVOY" when absent.
	Voyage string
}

// =============================================================================
// ASSIGNMENT LISTS
// =============================================================================

// AssignmentLists holds the four externally curated container lists that
// drive type assignment. Application order during merge is fixed:
// LOD, DIS, TSL, TSD.
type AssignmentLists struct {
	LOD []ContainerNumber
	DIS []ContainerNumber
	TSL []ContainerNumber
	TSD []ContainerNumber
}

// OriginLists pairs a discharge-side and a load-side container list, used
// for account, TPF, truck, DG, and OOG inputs.
type OriginLists struct {
	Discharge []ContainerNumber
	Load      []ContainerNumber
}

// Union returns the combined membership of both sides.
func (l OriginLists) Union() map[ContainerNumber]bool {
	union := make(map[ContainerNumber]bool, len(l.Discharge)+len(l.Load))
	for _, number := range l.Discharge {
		union[number] = true
	}
	for _, number := range l.Load {
		union[number] = true
	}
	return union
}
