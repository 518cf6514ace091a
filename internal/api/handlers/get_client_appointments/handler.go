package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
	"github.com/sharpcut/SC-AppointmentService/internal/api/middleware"
	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments"
	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgInvalidStatus = "некорректный статус записи"
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

// Handle GET /api/v1/appointments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing client ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.GetClientAppointmentsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetClientAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed to get appointments: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: client_id=%s, count=%d", clientID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
