// =============================================================================
// ASC to VCI Converter - Lashing Report
// =============================================================================
//
// Builds the lashing worksheet: every ingested container split into
// lashing and non-lashing groups, sorted by stow position, with per-origin
// counts for the port summary. The report renders to TSV (for pasting into
// a spreadsheet) and CSV (for export).
//
// =============================================================================

package lashing

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/ascparser"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// =============================================================================
// REPORT STRUCTURES
// =============================================================================

// Row is one container in the lashing worksheet.
type Row struct {
	Seq       int
	Container string
	TypeAbrev string
	POL       string
	POD       string
	Stow      string
	Gross     string

	// Eligible mirrors the group the row landed in.
	Eligible bool
}

// Summary carries the per-origin lashing counts shown in the port section.
type Summary struct {
	Discharge int
	Load      int
	Total     int
}

// Report is the complete lashing worksheet for one pair of registries.
type Report struct {
	Lashing    []Row
	NonLashing []Row
	Summary    Summary
}

var rowHeader = []string{"Seq", "Container No", "Type", "POL", "POD", "Stowage", "Weight"}

// =============================================================================
// REPORT CONSTRUCTION
// =============================================================================

// Build assembles the lashing report from the discharge and load registries.
// filter, when non-nil, restricts the worksheet (but not the summary) to the
// listed containers.
func Build(discharge, load types.Registry, filter map[types.ContainerNumber]bool) Report {
	var report Report
	report.Summary = summarize(discharge, load)

	records := make([]*types.ContainerRecord, 0, len(discharge)+len(load))
	for _, reg := range []types.Registry{discharge, load} {
		for _, record := range reg {
			if filter != nil && !filter[record.Number] {
				continue
			}
			records = append(records, record)
		}
	}

	var eligible, rest []*types.ContainerRecord
	for _, record := range records {
		if record.Line == "" {
			continue
		}
		if IsLashing(record.Line) {
			eligible = append(eligible, record)
		} else {
			rest = append(rest, record)
		}
	}

	report.Lashing = buildRows(eligible, true)
	report.NonLashing = buildRows(rest, false)
	return report
}

// summarize counts lashing containers per origin across both registries.
func summarize(discharge, load types.Registry) Summary {
	var summary Summary
	for _, record := range discharge {
		if record.Line != "" && IsLashing(record.Line) {
			summary.Discharge++
		}
	}
	for _, record := range load {
		if record.Line != "" && IsLashing(record.Line) {
			summary.Load++
		}
	}
	summary.Total = summary.Discharge + summary.Load
	return summary
}

// buildRows sorts records by stow position and derives the worksheet
// columns from each record's verbatim line.
func buildRows(records []*types.ContainerRecord, eligible bool) []Row {
	sort.Slice(records, func(i, j int) bool {
		si, _ := ascparser.ExtractStowPosition(records[i].Line)
		sj, _ := ascparser.ExtractStowPosition(records[j].Line)
		return si < sj
	})

	rows := make([]Row, 0, len(records))
	for i, record := range records {
		row := Row{
			Seq:       i + 1,
			Container: record.Number.String(),
			Eligible:  eligible,
		}
		if stow, ok := ascparser.ExtractStowPosition(record.Line); ok {
			row.Stow = stow
		}
		if eq, ok := ascparser.ExtractEquipmentFields(record.Line); ok {
			row.TypeAbrev = eq.TypeAbrev
			row.Gross = strconv.Itoa(eq.Gross)
		}
		if ports, ok := ascparser.ExtractLastPolPod(record.Line, nil); ok {
			row.POL = ports.POL
			row.POD = ports.POD
		}
		rows = append(rows, row)
	}
	return rows
}

// =============================================================================
// RENDERING
// =============================================================================

// TSV renders rows with a header line, tab-separated, for clipboard-style
// consumers.
func TSV(rows []Row) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(rowHeader, "\t"))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(strings.Join(row.fields(), "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// CSV renders rows with a header line as RFC 4180 CSV.
func CSV(rows []Row) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(rowHeader); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write(row.fields()); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r Row) fields() []string {
	return []string{
		strconv.Itoa(r.Seq),
		r.Container,
		r.TypeAbrev,
		r.POL,
		r.POD,
		r.Stow,
		r.Gross,
	}
}
