package timeline

import "context"

// TimelineService builds the merged attendance/leave overview.
type TimelineService interface {
	// GetOverview fetches the reporting-window collections, runs the
	// normalize → classify → filter/paginate pipeline and returns one page.
	GetOverview(ctx context.Context, filter Filter) (ListEntryResponse, error)
}
