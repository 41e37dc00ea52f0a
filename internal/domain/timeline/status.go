package timeline

import "strings"

// Status is the canonical attendance status vocabulary used uniformly by
// classification, filtering and display.
type Status string

const (
	StatusOnTime     Status = "on_time"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusAbsent     Status = "absent"
	StatusLeave      Status = "leave"
)

// statusAliases maps every backend spelling (lowercased) to its canonical
// value. This is the single place the mapping lives; classification and
// filtering both go through Canonicalize.
var statusAliases = map[string]Status{
	"on_time":     StatusOnTime,
	"ontime":      StatusOnTime,
	"on time":     StatusOnTime,
	"late":        StatusLate,
	"early_leave": StatusEarlyLeave,
	"early leave": StatusEarlyLeave,
	"absent":      StatusAbsent,
	"leave":       StatusLeave,

	// Leave type names double as status labels on rows the backend marked
	// with the concrete leave kind instead of the generic status.
	"sick":          StatusLeave,
	"compassionate": StatusLeave,
	"maternity":     StatusLeave,
	"annual":        StatusLeave,
	"marriage":      StatusLeave,
}

// Canonicalize maps a raw backend status to its canonical value,
// case-insensitively. An unrecognized status passes through unchanged with
// ok=false so callers can surface it as telemetry instead of guessing a
// mapping.
func Canonicalize(raw string) (Status, bool) {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s, true
	}
	return Status(raw), false
}
