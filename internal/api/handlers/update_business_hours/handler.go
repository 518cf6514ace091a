package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule"
	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule/models"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidHours      = "некорректное расписание рабочих часов"
	msgOverlappingShifts = "смены одного дня не должны пересекаться"
)

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	Hours []models.BusinessHoursEntry `json:"hours"`
}

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

// Handle PUT /api/v1/admin/schedule/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err := h.service.ReplaceBusinessHours(r.Context(), &models.UpdateBusinessHoursRequest{Hours: req.Hours})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrOverlappingShifts):
			h.logger.Warn("PUT /admin/schedule/business-hours - Overlapping shifts: %v", err)
			handlers.RespondBadRequest(w, msgOverlappingShifts)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/schedule/business-hours - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /admin/schedule/business-hours - Failed to replace hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule/business-hours - Business hours replaced: records=%d", len(req.Hours))
	w.WriteHeader(http.StatusNoContent)
}
