package get_schedule

import (
	"net/http"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service      ScheduleService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service ScheduleService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSchedule(r.Context(), h.timeProvider.Now())
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved: hours=%d, blocked=%d",
		len(result.BusinessHours), len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
