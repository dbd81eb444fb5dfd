// =============================================================================
// ASC to VCI Converter - Unmapped Type Review
// =============================================================================
//
// DrainUnmapped is a consuming read, so anything that wants to show the
// operator a stable list of unmapped types across repeated ingests has to
// re-merge the drained batches. ReviewTable is that persistent view: it
// keeps one row per container (latest abbreviation wins) and derives each
// row's status from the resolver's override store.
//
// =============================================================================

package typemap

// ReviewStatus describes whether an unmapped container has been given an
// override yet.
type ReviewStatus string

const (
	// StatusMapped means the user has chosen a replacement type.
	StatusMapped ReviewStatus = "Mapped"

	// StatusNeedsMapping means the container still awaits a decision.
	StatusNeedsMapping ReviewStatus = "Needs Mapping"
)

// ReviewRow is one line of the unmapped review view.
type ReviewRow struct {
	// Container is the container number.
	Container string

	// Original is the abbreviation the manifest carried.
	Original string

	// New is the user's override, empty while undecided.
	New string

	// Status is Mapped or Needs Mapping.
	Status ReviewStatus
}

// ReviewTable accumulates drained unmapped batches into a persistent,
// insertion-ordered view keyed by container.
type ReviewTable struct {
	entries []UnmappedEntry
	index   map[string]int
}

// NewReviewTable returns an empty review table.
func NewReviewTable() *ReviewTable {
	return &ReviewTable{index: make(map[string]int)}
}

// Merge folds a drained batch into the table. A container already present
// keeps its position but takes the batch's abbreviation.
func (t *ReviewTable) Merge(batch []UnmappedEntry) {
	for _, entry := range batch {
		if i, ok := t.index[entry.Container]; ok {
			t.entries[i] = entry
			continue
		}
		t.index[entry.Container] = len(t.entries)
		t.entries = append(t.entries, entry)
	}
}

// Cleanup drops rows for containers absent from the valid set, keeping the
// table in step with Resolver.Cleanup after a manifest reload.
func (t *ReviewTable) Cleanup(valid map[string]bool) {
	kept := t.entries[:0]
	for _, entry := range t.entries {
		if valid[entry.Container] {
			kept = append(kept, entry)
		}
	}
	t.entries = kept

	t.index = make(map[string]int, len(t.entries))
	for i, entry := range t.entries {
		t.index[entry.Container] = i
	}
}

// Rows renders the table against the resolver's current override state.
func (t *ReviewTable) Rows(resolver *Resolver) []ReviewRow {
	rows := make([]ReviewRow, 0, len(t.entries))
	for _, entry := range t.entries {
		row := ReviewRow{
			Container: entry.Container,
			Original:  entry.Label,
			Status:    StatusNeedsMapping,
		}
		if label, ok := resolver.Override(entry.Container); ok {
			row.New = label
			row.Status = StatusMapped
		}
		rows = append(rows, row)
	}
	return rows
}

// NeedsMapping counts rows that still have no override.
func (t *ReviewTable) NeedsMapping(resolver *Resolver) int {
	count := 0
	for _, entry := range t.entries {
		if _, ok := resolver.Override(entry.Container); !ok {
			count++
		}
	}
	return count
}

// Len returns the number of rows in the table.
func (t *ReviewTable) Len() int { return len(t.entries) }
