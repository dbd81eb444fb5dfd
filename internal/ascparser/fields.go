// =============================================================================
// ASC to VCI Converter - Line Field Extractors
// =============================================================================
//
// This file extracts typed fields from a single ASC manifest line. The ASC
// layout is fixed-column, so every field is described either by an anchored
// pattern or by a column region (0-based, inclusive-exclusive):
//
//   | Field             | Location                                           |
//   |-------------------|----------------------------------------------------|
//   | Container number  | first [A-Z]{4}[0-9]{7} anywhere in the line        |
//   | Operator code     | 3 uppercase letters at column 19                   |
//   | Equipment fields  | column 44: 2 digits + 2 letters, 3-char weight, E/F|
//   | POL / POD         | last 10 characters of the trimmed line (5 + 5)     |
//   | Dangerous goods   | any non-blank content in columns 60-63             |
//   | Out of gauge      | digit in columns 100-107, or "AK" in columns 52-55 |
//   | Stow position     | columns 0-6, accepted only if exactly six digits   |
//
// Every extractor reports "field absent" instead of failing: a malformed
// line degrades to missing fields, never to an error.
//
// =============================================================================

package ascparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// =============================================================================
// ANCHORED PATTERNS
// =============================================================================

var (
	// containerRE matches a container number anywhere in the line.
	containerRE = regexp.MustCompile(`\b([A-Z]{4}[0-9]{7})\b`)

	// operatorRE anchors the 3-letter operator code at column 19.
	operatorRE = regexp.MustCompile(`^.{19}([A-Z]{3})`)

	// equipmentRE anchors the equipment block at column 44: abbreviation,
	// 3-character weight (digits or blanks), full/empty indicator.
	equipmentRE = regexp.MustCompile(`^.{44}([0-9]{2}[A-Za-z]{2})([\s0-9]{3})([EF])`)

	// lastTokenRE matches the trailing 10-character POL+POD token.
	lastTokenRE = regexp.MustCompile(`([A-Z0-9]{10})$`)

	// stowRE accepts only a full 6-digit stow position.
	stowRE = regexp.MustCompile(`^[0-9]{6}$`)

	// digitRE finds any digit inside a column region.
	digitRE = regexp.MustCompile(`[0-9]`)
)

// =============================================================================
// COLUMN REGIONS
// =============================================================================

// region describes a fixed column span of a manifest line.
type region struct {
	start int
	end   int
}

var (
	regionDangerousGoods = region{60, 63}
	regionOOGNumeric     = region{100, 107}
	regionOOGFrame       = region{52, 55}
	regionStowPosition   = region{0, 6}
)

// slice returns the region's content, clipped to the line length. ok is
// false when the line does not reach the region at all.
func (r region) slice(line string) (string, bool) {
	if len(line) <= r.start {
		return "", false
	}
	end := r.end
	if end > len(line) {
		end = len(line)
	}
	return line[r.start:end], true
}

// =============================================================================
// EXTRACTORS
// =============================================================================

// ExtractContainerNumber returns the first container number in the line.
// A line without one is not a container line.
func ExtractContainerNumber(line string) (types.ContainerNumber, bool) {
	match := containerRE.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	number, err := types.ParseContainerNumber(match[1])
	if err != nil {
		return "", false
	}
	return number, true
}

// ExtractOperatorCode returns the operator code at column 19, or "MSC" when
// the pattern does not match.
func ExtractOperatorCode(line string) string {
	match := operatorRE.FindStringSubmatch(line)
	if match == nil {
		return "MSC"
	}
	return match[1]
}

// EquipmentFields is the column-44 block of a manifest line.
type EquipmentFields struct {
	// TypeAbrev is the equipment abbreviation (2 digits + 2 letters).
	TypeAbrev string

	// Gross is the parsed weight with leading zeros stripped; a blank
	// weight field parses to 0.
	Gross int

	// FullEmpty is "E" or "F".
	FullEmpty string
}

// ExtractEquipmentFields returns the equipment abbreviation, gross weight,
// and full/empty indicator starting at column 44.
func ExtractEquipmentFields(line string) (EquipmentFields, bool) {
	match := equipmentRE.FindStringSubmatch(line)
	if match == nil {
		return EquipmentFields{}, false
	}

	gross := 0
	if trimmed := strings.TrimLeft(strings.TrimSpace(match[2]), "0"); trimmed != "" {
		// The weight field is all digits and blanks by construction, so a
		// parse failure cannot occur after trimming.
		gross, _ = strconv.Atoi(trimmed)
	}

	return EquipmentFields{
		TypeAbrev: match[1],
		Gross:     gross,
		FullEmpty: match[3],
	}, true
}

// PolPod is the trailing port pair of a manifest line.
type PolPod struct {
	POL string
	POD string
}

// ExtractLastPolPod splits the trailing 10-character token of the trimmed
// line into port-of-load and port-of-discharge, normalizing legacy aliases
// through the supplied table. A nil table applies no normalization.
func ExtractLastPolPod(line string, aliases map[string]string) (PolPod, bool) {
	match := lastTokenRE.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return PolPod{}, false
	}

	token := match[1]
	pol := token[0:5]
	pod := token[5:10]

	if canonical, ok := aliases[pol]; ok {
		pol = canonical
	}
	if canonical, ok := aliases[pod]; ok {
		pod = canonical
	}

	return PolPod{POL: pol, POD: pod}, true
}

// ExtractDangerousGoods reports whether the dangerous-goods columns carry
// any non-blank content.
func ExtractDangerousGoods(line string) bool {
	segment, ok := regionDangerousGoods.slice(line)
	if !ok {
		return false
	}
	return strings.TrimSpace(segment) != ""
}

// ExtractOutOfGauge reports whether the line marks out-of-gauge cargo:
// a digit in the dimension columns, or an "AK" frame code.
func ExtractOutOfGauge(line string) bool {
	if segment, ok := regionOOGNumeric.slice(line); ok && digitRE.MatchString(segment) {
		return true
	}
	if segment, ok := regionOOGFrame.slice(line); ok {
		return strings.Contains(strings.ToUpper(segment), "AK")
	}
	return false
}

// ExtractStowPosition returns the leading stow position, accepted only when
// the first six characters are exactly six ASCII digits.
func ExtractStowPosition(line string) (string, bool) {
	segment, ok := regionStowPosition.slice(line)
	if !ok {
		return "", false
	}
	stow := strings.TrimSpace(segment)
	if !stowRE.MatchString(stow) {
		return "", false
	}
	return stow, true
}
