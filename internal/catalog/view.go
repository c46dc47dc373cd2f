package catalog

import (
	"sort"
	"strings"
)

// FilterState is the interaction state of a catalog view: the active
// category, the search text, and the multi-selection set. The zero value is
// an empty state (no category filter, no search, nothing selected).
//
// FilterState has value semantics. Transition functions return a new state
// and never mutate the selection set of their input.
type FilterState struct {
	ActiveCategory *Category // nil = match all categories
	SearchText     string    // "" = match all records
	selection      map[string]struct{}
}

// NewFilterState returns an empty filter state.
func NewFilterState() FilterState {
	return FilterState{}
}

// IsSelected reports whether id is in the selection set.
func (s FilterState) IsSelected(id string) bool {
	_, ok := s.selection[id]
	return ok
}

// SelectionSize returns the number of selected ids.
func (s FilterState) SelectionSize() int {
	return len(s.selection)
}

// SelectedIDs returns the selected ids sorted for stable display.
func (s FilterState) SelectedIDs() []string {
	ids := make([]string, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WithCategory returns a state filtered to c. A nil c clears the filter.
func WithCategory(s FilterState, c *Category) FilterState {
	if c != nil {
		v := *c
		c = &v
	}
	s.ActiveCategory = c
	return s
}

// WithSearch returns a state with the given search text.
func WithSearch(s FilterState, text string) FilterState {
	s.SearchText = text
	return s
}

// ToggleSelection adds id to the selection set if absent, removes it if
// present. Unknown ids are legal and simply never rendered.
func ToggleSelection(s FilterState, id string) FilterState {
	next := make(map[string]struct{}, len(s.selection)+1)
	for k := range s.selection {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	s.selection = next
	return s
}

// ClearSelection returns s with an empty selection set.
func ClearSelection(s FilterState) FilterState {
	s.selection = nil
	return s
}

// FilteredRecords returns the records matching both the category filter and
// the search text, in their original relative order.
func FilteredRecords(rs []Record, s FilterState) []Record {
	query := strings.ToLower(s.SearchText)
	out := make([]Record, 0, len(rs))
	for _, r := range rs {
		if s.ActiveCategory != nil && r.Category != *s.ActiveCategory {
			continue
		}
		if query != "" && !matchesText(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesText checks name, then description, then features. query must
// already be lower-cased.
func matchesText(r Record, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	for _, f := range r.Features {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// CategoryCounts counts records per category over the whole table,
// independent of any filter. Every key in keys is present in the result.
func CategoryCounts(rs []Record, keys []Category) map[Category]int {
	counts := make(map[Category]int, len(keys))
	for _, k := range keys {
		counts[k] = 0
	}
	for _, r := range rs {
		if _, ok := counts[r.Category]; ok {
			counts[r.Category]++
		}
	}
	return counts
}

// TotalCount sums per-category counts (the "All" badge).
func TotalCount(counts map[Category]int) int {
	n := 0
	for _, v := range counts {
		n += v
	}
	return n
}
