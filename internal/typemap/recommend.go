// =============================================================================
// ASC to VCI Converter - Type Recommendations
// =============================================================================
//
// A small curated catalog of common equipment codes, used when the operator
// is deciding what to map an unknown abbreviation to. Entries cover both
// the internal abbreviations and the raw ISO codes that tend to show up in
// manifests from other lines.
//
// =============================================================================

package typemap

import "strings"

// Recommendation suggests an equipment type for a code seen in the wild.
type Recommendation struct {
	// Code is the abbreviation or ISO code as it may appear in input.
	Code string

	// Description is the human-readable equipment description.
	Description string

	// Type is the abbreviation to map the code to.
	Type string
}

var recommendations = []Recommendation{
	{"20DV", "20' DRY VAN", "20DV"},
	{"2210", "20' DRY VAN", "20DV"},
	{"22G1", "20' DRY VAN", "20DV"},
	{"40DV", "40' DRY VAN", "40DV"},
	{"4210", "40' DRY VAN", "40DV"},
	{"42G1", "40' DRY VAN", "40DV"},
	{"40HC", "40' HIGH CUBE", "40HC"},
	{"4510", "40' HIGH CUBE", "40HC"},
	{"45G1", "40' HIGH CUBE", "40HC"},
	{"45HC", "45' HIGH CUBE", "45HC"},
	{"9510", "45' HIGH CUBE", "45HC"},
	{"20RE", "20' REEFER", "20RE"},
	{"2232", "20' REEFER", "20RE"},
	{"22R1", "20' REEFER", "20RE"},
	{"40RE", "40' REEFER", "40RE"},
	{"4232", "40' REEFER", "40RE"},
	{"40HR", "40' HIGH CUBE REEFER", "40HR"},
	{"4532", "40' HIGH CUBE REEFER", "40HR"},
	{"45R1", "40' HIGH CUBE REEFER", "40HR"},
	{"20OT", "20' OPEN TOP", "20OT"},
	{"2251", "20' OPEN TOP", "20OT"},
	{"22U1", "20' OPEN TOP", "20OT"},
	{"40OT", "40' OPEN TOP", "40OT"},
	{"4251", "40' OPEN TOP", "40OT"},
	{"42U1", "40' OPEN TOP", "40OT"},
	{"40HO", "40' HIGH CUBE OPEN TOP", "40HO"},
	{"20FR", "20' FLAT RACK", "20FL"},
	{"2261", "20' FLAT RACK", "20FL"},
	{"22P1", "20' FLAT RACK", "20FL"},
	{"40FR", "40' FLAT RACK", "40FL"},
	{"4261", "40' FLAT RACK", "40FL"},
	{"42P1", "40' FLAT RACK", "40FL"},
	{"40HF", "40' HIGH CUBE FLAT RACK", "40HF"},
	{"20TK", "20' TANK", "20TK"},
	{"2270", "20' TANK", "20TK"},
	{"22T1", "20' TANK", "20TK"},
	{"20OS", "20' OPEN SIDE", "20OS"},
	{"2201", "20' OPEN SIDE", "20OS"},
	{"40OS", "40' OPEN SIDE", "40OS"},
	{"4201", "40' OPEN SIDE", "40OS"},
	{"L5G1", "45' HIGH CUBE", "45HC"},
	{"9551", "45' OPEN TOP", "45HO"},
}

// Recommend returns catalog entries whose code, description, or target type
// contains the query, case-insensitively. An empty query returns the whole
// catalog.
func Recommend(query string) []Recommendation {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Recommendation, len(recommendations))
		copy(out, recommendations)
		return out
	}

	var matches []Recommendation
	for _, rec := range recommendations {
		if strings.Contains(strings.ToLower(rec.Code), query) ||
			strings.Contains(strings.ToLower(rec.Description), query) ||
			strings.Contains(strings.ToLower(rec.Type), query) {
			matches = append(matches, rec)
		}
	}
	return matches
}
