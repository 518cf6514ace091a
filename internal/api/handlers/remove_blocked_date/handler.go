package remove_blocked_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidBlockedDateID = "некорректный ID блокировки"
	msgBlockedDateNotFound  = "блокировка не найдена"
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

// Handle DELETE /api/v1/admin/schedule/blocked-dates/{blockedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockedDateID, err := strconv.ParseInt(mux.Vars(r)["blockedDateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/schedule/blocked-dates/{id} - Invalid blocked date ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedDateID)
		return
	}

	if err := h.service.RemoveBlockedDate(r.Context(), blockedDateID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /admin/schedule/blocked-dates/{id} - Blocked date not found: id=%d", blockedDateID)
			handlers.RespondNotFound(w, msgBlockedDateNotFound)

		default:
			h.logger.Error("DELETE /admin/schedule/blocked-dates/{id} - Failed to remove blocked date: id=%d, error=%v",
				blockedDateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/schedule/blocked-dates/{id} - Blocked date removed: id=%d", blockedDateID)
	w.WriteHeader(http.StatusNoContent)
}
