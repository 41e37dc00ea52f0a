package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

func strPtr(s string) *string { return &s }

func makeEntry(id, name, date string, status timeline.Status) timeline.Entry {
	return timeline.Entry{
		ID:         id,
		EmployeeID: "emp-" + id,
		Employee:   timeline.EmployeeSnapshot{ID: "emp-" + id, FirstName: name},
		Kind:       timeline.EntryKindAttendance,
		Date:       date,
		Status:     status,
	}
}

func TestFilterAndPaginateSortsNewestFirst(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("a", "Alice", "2025-03-01", timeline.StatusOnTime),
		makeEntry("b", "Bob", "2025-03-10", timeline.StatusLate),
		makeEntry("c", "Carol", "2025-03-05", timeline.StatusOnTime),
	}

	result := FilterAndPaginate(entries, timeline.Filter{}, 1, 10)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "b", result.Items[0].ID)
	assert.Equal(t, "c", result.Items[1].ID)
	assert.Equal(t, "a", result.Items[2].ID)
}

func TestFilterAndPaginateUnparsableDateSortsOldest(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("bad", "Alice", "not-a-date", timeline.StatusOnTime),
		makeEntry("ok", "Bob", "2025-03-10", timeline.StatusOnTime),
	}

	result := FilterAndPaginate(entries, timeline.Filter{}, 1, 10)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "ok", result.Items[0].ID)
	assert.Equal(t, "bad", result.Items[1].ID)
}

func TestFilterByNameIsCaseInsensitiveSubstring(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("a", "Alice", "2025-03-01", timeline.StatusOnTime),
		makeEntry("b", "Bob", "2025-03-02", timeline.StatusOnTime),
	}

	filter := timeline.Filter{EmployeeName: strPtr("aLi")}
	result := FilterAndPaginate(entries, filter, 1, 10)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "a", result.Items[0].ID)
}

func TestFilterByNameMatchesFullName(t *testing.T) {
	entry := makeEntry("a", "Alice", "2025-03-01", timeline.StatusOnTime)
	entry.Employee.LastName = "Smith"

	filter := timeline.Filter{EmployeeName: strPtr("ce sm")}
	result := FilterAndPaginate([]timeline.Entry{entry}, filter, 1, 10)

	assert.Len(t, result.Items, 1)
}

func TestFilterByStatusCanonicalizesBothSides(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("a", "Alice", "2025-03-01", "on_time"),
		makeEntry("b", "Bob", "2025-03-02", timeline.StatusLate),
	}

	// Query spelling differs from the stored spelling.
	filter := timeline.Filter{Status: strPtr("ONTIME")}
	result := FilterAndPaginate(entries, filter, 1, 10)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "a", result.Items[0].ID)
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("a", "Alice", "2025-03-01", timeline.StatusOnTime),
		makeEntry("b", "Bob", "2025-03-05", timeline.StatusOnTime),
		makeEntry("c", "Carol", "2025-03-09", timeline.StatusOnTime),
	}

	filter := timeline.Filter{DateFrom: strPtr("2025-03-01"), DateTo: strPtr("2025-03-05")}
	result := FilterAndPaginate(entries, filter, 1, 10)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "b", result.Items[0].ID)
	assert.Equal(t, "a", result.Items[1].ID)
}

func TestFilterByDateRangeExcludesUnparsableDates(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("bad", "Alice", "garbage", timeline.StatusOnTime),
		makeEntry("ok", "Bob", "2025-03-05", timeline.StatusOnTime),
	}

	filter := timeline.Filter{DateFrom: strPtr("2025-01-01")}
	result := FilterAndPaginate(entries, filter, 1, 10)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "ok", result.Items[0].ID)
}

func TestFiltersAreOrderIndependent(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("a", "Alice", "2025-03-01", timeline.StatusOnTime),
		makeEntry("b", "Alice", "2025-03-02", timeline.StatusLate),
		makeEntry("c", "Bob", "2025-03-03", timeline.StatusLate),
	}

	filter := timeline.Filter{EmployeeName: strPtr("alice"), Status: strPtr("late")}
	result := FilterAndPaginate(entries, filter, 1, 10)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "b", result.Items[0].ID)
	assert.Equal(t, int64(1), result.TotalRecords)
}

func TestPaginationSlicesExactly(t *testing.T) {
	var entries []timeline.Entry
	days := []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05"}
	for i, d := range days {
		entries = append(entries, makeEntry(string(rune('a'+i)), "Alice", d, timeline.StatusOnTime))
	}

	page1 := FilterAndPaginate(entries, timeline.Filter{}, 1, 2)
	page2 := FilterAndPaginate(entries, timeline.Filter{}, 2, 2)
	page3 := FilterAndPaginate(entries, timeline.Filter{}, 3, 2)

	assert.Len(t, page1.Items, 2)
	assert.Len(t, page2.Items, 2)
	assert.Len(t, page3.Items, 1)
	assert.Equal(t, int64(5), page1.TotalRecords)
	assert.Equal(t, 3, page1.TotalPages)

	// No entry appears on two pages.
	seen := map[string]bool{}
	for _, p := range [][]timeline.Entry{page1.Items, page2.Items, page3.Items} {
		for _, e := range p {
			assert.False(t, seen[e.ID], "entry %s appeared twice", e.ID)
			seen[e.ID] = true
		}
	}
}

func TestPaginationBeyondLastPageIsEmpty(t *testing.T) {
	entries := []timeline.Entry{
		makeEntry("a", "Alice", "2025-03-01", timeline.StatusOnTime),
	}

	result := FilterAndPaginate(entries, timeline.Filter{}, 5, 10)

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(1), result.TotalRecords)
	assert.Equal(t, 1, result.TotalPages)
}
