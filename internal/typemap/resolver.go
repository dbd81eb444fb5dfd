// =============================================================================
// ASC to VCI Converter - Equipment Type Resolver
// =============================================================================
//
// This module resolves 4-character equipment abbreviations (e.g. "40HC") to
// the numeric type codes the VCI consumer expects, tracks abbreviations it
// could not resolve, and holds the user's overrides for them.
//
// RESOLUTION RULES:
//   - Blank abbreviation        -> recorded unmapped (empty label), no code.
//   - Present in the table      -> the mapped code, nothing recorded.
//   - Unknown starting with "2" -> recorded unmapped, fallback 2210.
//   - Unknown starting with "4" -> recorded unmapped, fallback 4310.
//   - Any other unknown         -> recorded unmapped, no code.
//
// The resolver is owned by the caller and threaded through ingestion and
// merge; it is not process-wide state. Its mutating operations are
// serialized internally so one resolver can back several ingests in a
// session, but the drain-and-review cycle assumes a single logical owner.
//
// =============================================================================

package typemap

import (
	"strconv"
	"strings"
	"sync"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// =============================================================================
// STATIC CODE TABLE
// =============================================================================

// tableEntry pairs an equipment abbreviation with its numeric type code.
// Declaration order matters: ResolveFreeform's reverse lookup returns the
// first abbreviation mapping to a given code.
type tableEntry struct {
	abrev string
	code  int
}

// codeTable is the static abbreviation -> code mapping covering the
// standard equipment classes.
var codeTable = []tableEntry{
	{"20DV", 2210}, {"20DC", 2210}, {"20RE", 2232}, {"20RF", 2232},
	{"20OT", 2251}, {"20HT", 2256}, {"20FL", 2261}, {"20TK", 2270},
	{"20PW", 2209}, {"20OS", 2201}, {"20IS", 2220}, {"20HR", 2532},
	{"20HO", 2551}, {"20PL", 2960}, {"20PP", 2299}, {"20HH", 2651},
	{"40DV", 4310}, {"40DC", 4310}, {"40RE", 4332}, {"40RF", 4332},
	{"40OT", 4351}, {"40HT", 4256}, {"40FL", 4361}, {"40BV", 4380},
	{"40PW", 4209}, {"40OS", 4301}, {"40IS", 4320}, {"40HC", 4510},
	{"40HP", 4519}, {"40HR", 4532}, {"40HO", 4551}, {"40HF", 4563},
	{"40PL", 4960}, {"40PP", 4399}, {"40XG", 4999},
	{"45DV", 9000}, {"45PW", 9200}, {"45HC", 9400}, {"45HR", 4632},
	{"45HO", 9451}, {"45HP", 9500}, {"48OS", 9452}, {"53OS", 5501}, {"53HC", 5511},
}

// Fallback codes substituted for unknown 20-foot and 40-foot abbreviations.
const (
	fallback20ft = 2210
	fallback40ft = 4310
)

// codeByAbrev indexes codeTable for O(1) forward lookups.
var codeByAbrev = func() map[string]int {
	index := make(map[string]int, len(codeTable))
	for _, entry := range codeTable {
		index[entry.abrev] = entry.code
	}
	return index
}()

// Code looks up the static table directly. It is used by the exporter to
// recompute codes from possibly overridden abbreviations.
func Code(abrev string) (int, bool) {
	code, ok := codeByAbrev[strings.ToUpper(strings.TrimSpace(abrev))]
	return code, ok
}

// =============================================================================
// UNMAPPED ENTRIES
// =============================================================================

// UnmappedEntry is one (container, abbreviation) pair queued for human
// review because the abbreviation had no exact table match.
type UnmappedEntry struct {
	// Container is the container number the abbreviation was seen on.
	Container string

	// Label is the original abbreviation, uppercased; empty when the
	// manifest line carried a blank abbreviation.
	Label string
}

// =============================================================================
// RESOLVER
// =============================================================================

// Resolver maps abbreviations to codes while accumulating unmapped entries
// and user overrides. Create one per session with NewResolver.
type Resolver struct {
	mu        sync.Mutex
	queue     []UnmappedEntry
	seen      map[string]struct{}
	overrides map[string]string
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		seen:      make(map[string]struct{}),
		overrides: make(map[string]string),
	}
}

// Resolve maps an equipment abbreviation to its numeric type code for the
// given container. ok is false when no code (not even a fallback) applies.
// Unknown and blank abbreviations are recorded for review; exact table hits
// are not.
func (r *Resolver) Resolve(abrev, container string) (code int, ok bool) {
	raw := strings.TrimSpace(abrev)
	if raw == "" {
		r.recordUnmapped(container, "")
		return 0, false
	}

	key := strings.ToUpper(raw)
	if code, ok := codeByAbrev[key]; ok {
		return code, true
	}

	r.recordUnmapped(container, key)

	switch {
	case strings.HasPrefix(key, "2"):
		return fallback20ft, true
	case strings.HasPrefix(key, "4"):
		return fallback40ft, true
	default:
		return 0, false
	}
}

// recordUnmapped queues an entry unless the same (container, label) pair
// was already seen. Insertion order is preserved for review.
func (r *Resolver) recordUnmapped(container, label string) {
	cnum := strings.ToUpper(strings.TrimSpace(container))
	if cnum == "" {
		cnum = "-"
	}

	key := cnum + ":" + label

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.queue = append(r.queue, UnmappedEntry{Container: cnum, Label: label})
}

// DrainUnmapped returns the queued unmapped entries in first-seen order and
// clears the queue. This is a consuming read: callers that need a persistent
// view merge drained batches into a ReviewTable themselves.
func (r *Resolver) DrainUnmapped() []UnmappedEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	drained := r.queue
	r.queue = nil
	r.seen = make(map[string]struct{})
	return drained
}

// =============================================================================
// OVERRIDES
// =============================================================================

// SetOverride stores the user's chosen abbreviation for a container. A
// blank label clears the override.
func (r *Resolver) SetOverride(container, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label = strings.TrimSpace(label)
	if label == "" {
		delete(r.overrides, container)
		return
	}
	r.overrides[container] = strings.ToUpper(label)
}

// Override returns the override for a container, if any.
func (r *Resolver) Override(container string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label, ok := r.overrides[container]
	return label, ok
}

// FillDown copies the first container's override state onto the rest of the
// group. Copy semantics, not merge: when the first container has no
// override, the others' overrides are cleared. Groups of fewer than two
// containers are a no-op.
func (r *Resolver) FillDown(containers []string) {
	if len(containers) < 2 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	top, hasTop := r.overrides[containers[0]]
	for _, container := range containers[1:] {
		if hasTop {
			r.overrides[container] = top
		} else {
			delete(r.overrides, container)
		}
	}
}

// Cleanup removes queued unmapped entries and overrides for containers the
// valid set no longer contains (i.e. absent from both current registries).
func (r *Resolver) Cleanup(valid map[string]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.queue[:0]
	for _, entry := range r.queue {
		if valid[entry.Container] {
			kept = append(kept, entry)
			continue
		}
		delete(r.seen, entry.Container+":"+entry.Label)
	}
	r.queue = kept

	for container := range r.overrides {
		if !valid[container] {
			delete(r.overrides, container)
		}
	}
}

// ApplyOverrides rewrites the equipment abbreviation of every overridden
// container present in the registry.
func (r *Resolver) ApplyOverrides(registry types.Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for container, label := range r.overrides {
		if record, ok := registry[types.ContainerNumber(container)]; ok {
			record.TypeAbrev = label
		}
	}
}

// Overrides returns a copy of the current override map.
func (r *Resolver) Overrides() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make(map[string]string, len(r.overrides))
	for container, label := range r.overrides {
		copied[container] = label
	}
	return copied
}

// =============================================================================
// FREE-FORM RESOLUTION
// =============================================================================

// ResolveFreeform normalizes a user-entered type, which may be either an
// abbreviation or a numeric code. An abbreviation matching the table comes
// back as-is; a numeric code maps back to the first abbreviation declaring
// it; anything else is accepted unchanged as a new free-form label.
func ResolveFreeform(input string) string {
	clean := strings.ToUpper(strings.TrimSpace(input))
	if clean == "" {
		return ""
	}

	if _, ok := codeByAbrev[clean]; ok {
		return clean
	}

	if code, err := strconv.Atoi(clean); err == nil {
		for _, entry := range codeTable {
			if entry.code == code {
				return entry.abrev
			}
		}
	}

	return clean
}
