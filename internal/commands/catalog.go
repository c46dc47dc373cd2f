package commands

import (
	"fmt"
	"strings"

	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/deploy"
)

// ListOptions filters the catalog listing. Empty fields mean "no filter".
type ListOptions struct {
	Category string
	Search   string
}

// ListResult is a filtered view of the catalog plus the global badge counts.
type ListResult struct {
	Records []catalog.Record
	Counts  map[catalog.Category]int
	Total   int
	State   catalog.FilterState
}

// List applies opts to the compiled-in catalog.
func List(opts ListOptions) (*ListResult, error) {
	state := catalog.NewFilterState()
	if opts.Category != "" {
		c, ok := catalog.ParseCategory(opts.Category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q (want one of %s)", opts.Category, categoryKeys())
		}
		state = catalog.WithCategory(state, &c)
	}
	state = catalog.WithSearch(state, opts.Search)

	all := catalog.Records()
	counts := catalog.CategoryCounts(all, catalog.Categories())
	return &ListResult{
		Records: catalog.FilteredRecords(all, state),
		Counts:  counts,
		Total:   catalog.TotalCount(counts),
		State:   state,
	}, nil
}

// ShowResult is the detail view of one contract.
type ShowResult struct {
	Record       catalog.Record
	Meta         catalog.CategoryMeta
	Instructions deploy.Instructions
}

// Show looks up a contract and builds its deployment instructions.
func Show(cfg config.Config, id string) (*ShowResult, error) {
	rec, ok := catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("contract %q: %w", id, catalog.ErrNotFound)
	}
	meta, _ := catalog.Meta(rec.Category)
	return &ShowResult{
		Record:       rec,
		Meta:         meta,
		Instructions: deploy.For(cfg, rec),
	}, nil
}

// Deploy builds instructions for each id in order. Unknown ids are reported
// together.
func Deploy(cfg config.Config, ids []string) ([]deploy.Instructions, error) {
	var out []deploy.Instructions
	var missing []string
	for _, id := range ids {
		rec, ok := catalog.Lookup(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		out = append(out, deploy.For(cfg, rec))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("contracts %s: %w", strings.Join(missing, ", "), catalog.ErrNotFound)
	}
	return out, nil
}

// CategoryCount is one row of the categories listing.
type CategoryCount struct {
	Category catalog.Category
	Meta     catalog.CategoryMeta
	Count    int
}

// Categories returns every category with its record count, in display order.
func Categories() []CategoryCount {
	keys := catalog.Categories()
	counts := catalog.CategoryCounts(catalog.Records(), keys)
	out := make([]CategoryCount, 0, len(keys))
	for _, k := range keys {
		meta, _ := catalog.Meta(k)
		out = append(out, CategoryCount{Category: k, Meta: meta, Count: counts[k]})
	}
	return out
}

// Stats returns the catalog headline figures.
func Stats() []catalog.Stat {
	return catalog.Summary(catalog.Records())
}

func categoryKeys() string {
	keys := catalog.Categories()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
