// Package query implements the in-memory roster pipeline: free-text and
// categorical filtering, locale-aware sorting and pagination over a
// snapshot of records. One engine is instantiated per screen with its
// own searchable-field and sort configuration.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll is the sentinel value that disables a categorical filter.
const FilterAll = "all"

// DefaultPageSize matches the smallest rows-per-page option of the UI.
const DefaultPageSize = 10

// Row is a single record the engine can inspect. Employees and flattened
// qualification rows both satisfy it.
type Row interface {
	Field(key string) string
}

// Config parameterizes an engine for one screen.
type Config struct {
	// SearchFields are the attributes the free-text term is matched against.
	SearchFields []string
	// SortFields define the default ordering, applied after filtering.
	// Empty means the input order is preserved.
	SortFields []string
}

// Params is one query over a record snapshot.
type Params struct {
	Search   string
	Filters  map[string]string
	Page     int
	PageSize int
}

// Result is the paginated view produced by Query.
type Result struct {
	Rows       []Row
	Total      int
	Page       int
	TotalPages int
}

// Engine is a pure, synchronous transform over a record snapshot. It
// holds no mutable state and needs no locking.
type Engine struct {
	cfg      Config
	collator *collate.Collator
}

// NewEngine creates an engine for the given screen configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:      cfg,
		collator: collate.New(language.Italian),
	}
}

// Query filters, sorts and paginates rows. Page is 1-indexed; an
// out-of-range page clamps to the nearest valid one and never wraps.
func (e *Engine) Query(rows []Row, p Params) Result {
	filtered := e.filter(rows, p)
	e.sortRows(filtered)

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Rows:       filtered[start:end],
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}
}

// filter combines the free-text term and each categorical predicate
// with logical AND.
func (e *Engine) filter(rows []Row, p Params) []Row {
	words := strings.Fields(strings.ToLower(p.Search))

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if len(words) > 0 && !e.matchesSearch(row, words) {
			continue
		}
		if !matchesFilters(row, p.Filters) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// matchesSearch reports whether any word is a case-insensitive substring
// of any searchable field.
func (e *Engine) matchesSearch(row Row, words []string) bool {
	for _, word := range words {
		for _, field := range e.cfg.SearchFields {
			if strings.Contains(strings.ToLower(row.Field(field)), word) {
				return true
			}
		}
	}
	return false
}

func matchesFilters(row Row, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" || want == FilterAll {
			continue
		}
		if row.Field(field) != want {
			return false
		}
	}
	return true
}

// sortRows applies the configured default ordering. The sort is stable
// so rows that compare equal keep their snapshot order.
func (e *Engine) sortRows(rows []Row) {
	if len(e.cfg.SortFields) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, field := range e.cfg.SortFields {
			if c := e.collator.CompareString(rows[i].Field(field), rows[j].Field(field)); c != 0 {
				return c < 0
			}
		}
		return false
	})
}
