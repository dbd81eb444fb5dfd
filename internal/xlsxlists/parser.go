// =============================================================================
// ASC to VCI Converter - Assignment List Parser
// =============================================================================
//
// This module reads the planner-maintained workbook that accompanies each
// port call. The workbook carries the assignment lists as plain columns of
// container numbers; anything in a mapped column that does not look like a
// container number (headers, totals, remarks) is ignored.
//
// WORKBOOK STRUCTURE (Expected Columns, first sheet):
//
//   | Column H | Column I | Column J      | Column K    | Column L | Column M | Column N  | Column O |
//   |----------|----------|---------------|-------------|----------|----------|-----------|----------|
//   | DIS      | TSD      | Truck (disch) | TPF (disch) | LOD      | TSL      | Truck (ld)| TPF (ld) |
//
//   The first three rows are headers and are always skipped.
//
// CUSTOMIZATION:
//   - Modify the ListColumns struct if the workbook layout changes.
//
// =============================================================================

package xlsxlists

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// =============================================================================
// COLUMN LAYOUT
// =============================================================================

// ListColumns maps each list to its zero-based workbook column.
type ListColumns struct {
	DIS            int
	TSD            int
	DischargeTruck int
	DischargeTPF   int
	LOD            int
	TSL            int
	LoadTruck      int
	LoadTPF        int

	// HeaderRows is the number of leading rows to skip.
	HeaderRows int
}

// DefaultListColumns returns the layout of the standard planning workbook.
func DefaultListColumns() ListColumns {
	return ListColumns{
		DIS:            7,
		TSD:            8,
		DischargeTruck: 9,
		DischargeTPF:   10,
		LOD:            11,
		TSL:            12,
		LoadTruck:      13,
		LoadTPF:        14,
		HeaderRows:     3,
	}
}

// WorkbookLists holds everything extracted from one workbook.
type WorkbookLists struct {
	Assignments types.AssignmentLists
	Truck       types.OriginLists
	TPF         types.OriginLists
}

// =============================================================================
// WORKBOOK PARSING
// =============================================================================

// ParseWorkbook reads the assignment lists from the workbook at path using
// the default column layout.
func ParseWorkbook(path string) (*WorkbookLists, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseFile(f, DefaultListColumns())
}

// ParseWorkbookReader reads the assignment lists from workbook data supplied
// as a stream.
func ParseWorkbookReader(r io.Reader) (*WorkbookLists, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseFile(f, DefaultListColumns())
}

func parseFile(f *excelize.File, columns ListColumns) (*WorkbookLists, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	lists := &WorkbookLists{}
	for index, row := range rows {
		if index < columns.HeaderRows {
			continue
		}
		appendCell(&lists.Assignments.DIS, row, columns.DIS)
		appendCell(&lists.Assignments.TSD, row, columns.TSD)
		appendCell(&lists.Truck.Discharge, row, columns.DischargeTruck)
		appendCell(&lists.TPF.Discharge, row, columns.DischargeTPF)
		appendCell(&lists.Assignments.LOD, row, columns.LOD)
		appendCell(&lists.Assignments.TSL, row, columns.TSL)
		appendCell(&lists.Truck.Load, row, columns.LoadTruck)
		appendCell(&lists.TPF.Load, row, columns.LoadTPF)
	}

	return lists, nil
}

// appendCell appends the cell at the given column when it holds a valid
// container number. Short rows are tolerated.
func appendCell(list *[]types.ContainerNumber, row []string, column int) {
	if column >= len(row) {
		return
	}
	number, err := types.ParseContainerNumber(row[column])
	if err != nil {
		return
	}
	*list = append(*list, number)
}

// =============================================================================
// FREE-TEXT LISTS
// =============================================================================

var listSeparatorRE = regexp.MustCompile(`[\s,;]+`)

// ParseContainerList extracts container numbers from free text. Tokens are
// split on whitespace, commas, and semicolons; non-container tokens are
// dropped and duplicates removed, preserving first-seen order.
func ParseContainerList(text string) []types.ContainerNumber {
	var numbers []types.ContainerNumber
	seen := make(map[types.ContainerNumber]bool)

	for _, token := range listSeparatorRE.Split(strings.TrimSpace(text), -1) {
		number, err := types.ParseContainerNumber(token)
		if err != nil {
			continue
		}
		if seen[number] {
			continue
		}
		seen[number] = true
		numbers = append(numbers, number)
	}
	return numbers
}
