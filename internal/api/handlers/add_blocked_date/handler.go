package add_blocked_date

import (
	"errors"
	"net/http"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidDates = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон блокировки"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/schedule/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedule/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/schedule/blocked-dates - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.AddBlockedDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/schedule/blocked-dates - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /admin/schedule/blocked-dates - Failed to add blocked date: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/schedule/blocked-dates - Blocked date added: id=%d, %s..%s",
		result.ID, result.StartDate, result.EndDate)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
