// =============================================================================
// ASC to VCI Converter - Reconciliation Validator
// =============================================================================
//
// Cross-checks the manifest against the externally curated assignment lists
// before export. Each side of the call is compared independently:
//
//   discharge: MSC containers discharging at the port  vs  DIS ∪ TSD
//   load:      MSC containers loading at the port      vs  LOD ∪ TSL
//
// Every container present on exactly one side of a comparison becomes an
// issue. The run passes only when both comparisons come back empty.
//
// =============================================================================

package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// =============================================================================
// ISSUE TYPES
// =============================================================================

const (
	// StatusOnlyManifest marks a container the manifest names but no
	// assignment list covers.
	StatusOnlyManifest = "Only in manifest"

	// StatusOnlyExternal marks a container an assignment list names but
	// the manifest never mentions.
	StatusOnlyExternal = "Only in external list"
)

// Issue is a single reconciliation discrepancy.
type Issue struct {
	Status    string
	Container types.ContainerNumber
	Source    string
}

// Report is the outcome of a full reconciliation run.
type Report struct {
	Passed    bool
	Discharge []Issue
	Load      []Issue
	Summary   string
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate compares the MSC containers of each manifest side against the
// assignment lists for that side and reports every discrepancy.
//
// PARAMETERS:
//   - discharge, load: the parsed manifest registries
//   - lists: the externally supplied assignment lists
//   - port: the selected port call code
//   - aliases: legacy-to-canonical port code mapping, may be nil
//
// RETURNS:
//   - Report: sorted issues per side, overall pass flag, and summary text
func Validate(discharge, load types.Registry, lists types.AssignmentLists, port string, aliases map[string]string) Report {
	dischargeSet := manifestSet(discharge, port, aliases, func(r *types.ContainerRecord) string { return r.POD })
	loadSet := manifestSet(load, port, aliases, func(r *types.ContainerRecord) string { return r.POL })

	dischargeLists := listSet(lists.DIS, lists.TSD)
	loadLists := listSet(lists.LOD, lists.TSL)

	report := Report{
		Discharge: compareSets(dischargeSet, dischargeLists),
		Load:      compareSets(loadSet, loadLists),
	}
	report.Passed = len(report.Discharge) == 0 && len(report.Load) == 0
	report.Summary = summarize(dischargeSet, dischargeLists, loadSet, loadLists, report)
	return report
}

// manifestSet collects the MSC containers whose relevant port code matches
// the selected port.
func manifestSet(registry types.Registry, port string, aliases map[string]string, portOf func(*types.ContainerRecord) string) map[types.ContainerNumber]bool {
	set := make(map[types.ContainerNumber]bool)
	for number, record := range registry {
		if record.OperatorCode != "MSC" {
			continue
		}
		code := portOf(record)
		if canonical, ok := aliases[code]; ok {
			code = canonical
		}
		if code == port || strings.HasPrefix(code, port) {
			set[number] = true
		}
	}
	return set
}

// listSet unions assignment lists into a membership set.
func listSet(lists ...[]types.ContainerNumber) map[types.ContainerNumber]bool {
	set := make(map[types.ContainerNumber]bool)
	for _, list := range lists {
		for _, number := range list {
			set[number] = true
		}
	}
	return set
}

// compareSets reports the symmetric difference of the manifest set and the
// external set, external-only issues first, containers ascending.
func compareSets(manifest, external map[types.ContainerNumber]bool) []Issue {
	var issues []Issue
	for number := range manifest {
		if !external[number] {
			issues = append(issues, Issue{Status: StatusOnlyManifest, Container: number, Source: "ASC manifest"})
		}
	}
	for number := range external {
		if !manifest[number] {
			issues = append(issues, Issue{Status: StatusOnlyExternal, Container: number, Source: "Assignment list"})
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Status != issues[j].Status {
			return issues[i].Status == StatusOnlyExternal
		}
		return issues[i].Container < issues[j].Container
	})
	return issues
}

// =============================================================================
// SUMMARY
// =============================================================================

func summarize(dischargeSet, dischargeLists, loadSet, loadLists map[types.ContainerNumber]bool, report Report) string {
	var sb strings.Builder

	sb.WriteString("Reconciliation summary\n")
	sb.WriteString("======================\n")
	writeSide(&sb, "Discharge", dischargeSet, dischargeLists, report.Discharge)
	writeSide(&sb, "Load", loadSet, loadLists, report.Load)

	if report.Passed {
		sb.WriteString("Result: PASS\n")
	} else {
		sb.WriteString(fmt.Sprintf("Result: FAIL (%d issue(s))\n", len(report.Discharge)+len(report.Load)))
	}
	return sb.String()
}

func writeSide(sb *strings.Builder, label string, manifest, external map[types.ContainerNumber]bool, issues []Issue) {
	matched := 0
	for number := range manifest {
		if external[number] {
			matched++
		}
	}
	fmt.Fprintf(sb, "%s: manifest %d, external %d, matched %d, issues %d\n",
		label, len(manifest), len(external), matched, len(issues))
	for _, issue := range issues {
		fmt.Fprintf(sb, "  %-22s %s\n", issue.Status, issue.Container)
	}
}
