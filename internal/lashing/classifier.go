// =============================================================================
// ASC to VCI Converter - Lashing Classifier
// =============================================================================
//
// Lashing eligibility is a pure function of the raw manifest line:
//
//   1. Only MSC-operated containers are lashed.
//   2. Odd bay (a 20-foot slot): always eligible.
//   3. Even bay (a 40-foot slot): eligible only from tier 69 upward.
//
// Bay and tier come from the 6-digit stow position at the start of the
// line (bay = first two digits, tier = last two). Any missing or malformed
// piece makes the container ineligible rather than failing.
//
// =============================================================================

package lashing

import (
	"strconv"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/ascparser"
)

// minLashingTier is the lowest tier at which a 40-foot slot needs lashing.
const minLashingTier = 69

// IsLashing reports whether the container on this manifest line counts
// toward the lashing operation.
func IsLashing(line string) bool {
	if ascparser.ExtractOperatorCode(line) != "MSC" {
		return false
	}

	stow, ok := ascparser.ExtractStowPosition(line)
	if !ok {
		return false
	}

	bay, err := strconv.Atoi(stow[0:2])
	if err != nil {
		return false
	}
	tier, err := strconv.Atoi(stow[4:6])
	if err != nil {
		return false
	}

	if bay%2 == 1 {
		return true
	}
	return tier >= minLashingTier
}
