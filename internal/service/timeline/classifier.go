package timeline

import (
	"log/slog"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

// Classify assigns the entry its canonical status and, for leave-classified
// entries, attaches every approved leave request covering its date. A
// leave-classified entry with no covering request is kept and rendered with
// a placeholder; it is a data-integrity warning, not an error.
func Classify(entry timeline.Entry, leaveRequests []leave.LeaveRequest) timeline.Entry {
	status, known := timeline.Canonicalize(string(entry.Status))
	entry.Status = status

	if !known && entry.Kind == timeline.EntryKindAttendance {
		// Deliberate pass-through for forward compatibility; flagged so the
		// unrecognized vocabulary shows up in telemetry.
		slog.Warn("unrecognized attendance status passed through",
			"status", string(entry.Status),
			"attendance_id", entry.ID,
		)
	}

	if status != timeline.StatusLeave {
		return entry
	}

	date, ok := parseEntryDate(entry.Date)
	if !ok {
		slog.Warn("leave-classified entry has unparsable date",
			"date", entry.Date,
			"entry_id", entry.ID,
		)
		return entry
	}

	// A single day may be covered by more than one overlapping approved
	// request; all of them are attached, with no precedence between them.
	var matches []leave.LeaveRequest
	for _, req := range leaveRequests {
		if req.EmployeeID == entry.EmployeeID && req.IsApproved() && req.Covers(date) {
			matches = append(matches, req)
		}
	}
	if len(matches) == 0 {
		slog.Warn("no approved leave request found for leave-classified entry",
			"entry_id", entry.ID,
			"employee_id", entry.EmployeeID,
			"date", entry.Date,
		)
	}
	entry.LeaveRequests = matches

	return entry
}

// ClassifyAll classifies every entry against the full leave request set.
func ClassifyAll(entries []timeline.Entry, leaveRequests []leave.LeaveRequest) []timeline.Entry {
	out := make([]timeline.Entry, len(entries))
	for i, entry := range entries {
		out[i] = Classify(entry, leaveRequests)
	}
	return out
}
