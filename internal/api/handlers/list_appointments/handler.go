package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments"
	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
)

const (
	msgMissingPeriod = "параметры from и to обязательны"
	msgInvalidPeriod = "некорректный формат периода, ожидается YYYY-MM-DD"
	msgInvalidInput  = "некорректные параметры периода"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: from, to (required, YYYY-MM-DD), includeCancelled (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /admin/appointments - Missing period bounds")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	req := &models.ListAppointmentsRequest{
		From: from,
		// Верхняя граница дня включительно
		To:               to.Add(24*time.Hour - time.Nanosecond),
		IncludeCancelled: r.URL.Query().Get("includeCancelled") == "true",
	}

	result, err := h.service.GetByRange(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: from=%s, to=%s, error=%v",
				fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: from=%s, to=%s, count=%d",
		fromStr, toStr, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
