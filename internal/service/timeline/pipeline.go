package timeline

import (
	"sort"
	"strings"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

// PageResult is one page of the filtered timeline.
type PageResult struct {
	Items        []timeline.Entry
	TotalRecords int64
	TotalPages   int
}

// FilterAndPaginate sorts entries by date descending (input order breaking
// ties), applies the filter criteria, then slices out the requested page.
// Filtering is pure and order-independent: unset criteria are no-ops, and
// pagination can never surface an entry a filter excluded.
func FilterAndPaginate(entries []timeline.Entry, filter timeline.Filter, page, limit int) PageResult {
	sorted := sortByDateDesc(entries)
	filtered := applyFilters(sorted, filter)

	total := int64(len(filtered))
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return PageResult{
		Items:        filtered[start:end],
		TotalRecords: total,
		TotalPages:   totalPages,
	}
}

// sortByDateDesc returns a new slice sorted newest first. Entries whose date
// does not parse sort as oldest, so bad data sinks to the end instead of
// breaking the overview.
func sortByDateDesc(entries []timeline.Entry) []timeline.Entry {
	out := append([]timeline.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		di, _ := parseEntryDate(out[i].Date)
		dj, _ := parseEntryDate(out[j].Date)
		return di.After(dj)
	})
	return out
}

func applyFilters(entries []timeline.Entry, filter timeline.Filter) []timeline.Entry {
	out := entries
	out = filterByName(out, filter.EmployeeName)
	out = filterByName(out, filter.Name)
	out = filterByDateRange(out, filter.DateFrom, filter.DateTo)
	out = filterByStatus(out, filter.Status)
	return out
}

// filterByName keeps entries whose "first last" name contains the query,
// case-insensitively.
func filterByName(entries []timeline.Entry, query *string) []timeline.Entry {
	if query == nil || strings.TrimSpace(*query) == "" {
		return entries
	}
	q := strings.ToLower(strings.TrimSpace(*query))
	out := make([]timeline.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Employee.FullName()), q) {
			out = append(out, entry)
		}
	}
	return out
}

// filterByDateRange keeps entries within the inclusive [from, to] range.
// Entries with unparsable dates cannot be placed in the range and are
// excluded once either bound is set.
func filterByDateRange(entries []timeline.Entry, from, to *string) []timeline.Entry {
	hasFrom := from != nil && *from != ""
	hasTo := to != nil && *to != ""
	if !hasFrom && !hasTo {
		return entries
	}

	out := make([]timeline.Entry, 0, len(entries))
	for _, entry := range entries {
		date, ok := parseEntryDate(entry.Date)
		if !ok {
			continue
		}
		if hasFrom {
			if lower, ok := parseEntryDate(*from); ok && date.Before(lower) {
				continue
			}
		}
		if hasTo {
			if upper, ok := parseEntryDate(*to); ok && date.After(upper) {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

// filterByStatus canonicalizes both sides before comparing, so filtering by
// "ontime" matches rows stored as "on_time".
func filterByStatus(entries []timeline.Entry, status *string) []timeline.Entry {
	if status == nil || strings.TrimSpace(*status) == "" {
		return entries
	}
	want, _ := timeline.Canonicalize(*status)
	out := make([]timeline.Entry, 0, len(entries))
	for _, entry := range entries {
		got, _ := timeline.Canonicalize(string(entry.Status))
		if got == want {
			out = append(out, entry)
		}
	}
	return out
}
