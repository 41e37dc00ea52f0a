package http

import (
	"net/http"
	"strconv"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
	"github.com/SukaMajuu/hris2-sub001/internal/handler/http/response"
)

type TimelineHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type timelineHandlerImpl struct {
	timelineService timeline.TimelineService
}

func NewTimelineHandler(timelineService timeline.TimelineService) TimelineHandler {
	return &timelineHandlerImpl{
		timelineService: timelineService,
	}
}

// Overview implements TimelineHandler. Serves the merged attendance and
// leave timeline the admin dashboard renders.
func (h *timelineHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := timeline.Filter{
		EmployeeName: queryParam(query.Get("employee_name")),
		Name:         queryParam(query.Get("name")),
		DateFrom:     queryParam(query.Get("date_from")),
		DateTo:       queryParam(query.Get("date_to")),
		Status:       queryParam(query.Get("status")),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.timelineService.GetOverview(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
