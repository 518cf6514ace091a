package create_appointment

import (
	"errors"
	"net/http"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
	"github.com/sharpcut/SC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/sharpcut/SC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidBody          = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные записи"
	msgServiceNotFound      = "услуга не найдена"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgDayBlocked           = "запись на выбранную дату недоступна"
	msgOutsideBusinessHours = "выбранное время вне рабочих часов"
	msgTimeInPast           = "нельзя записаться на прошедшее время"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing client ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid request data: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", useCaseReq.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: service_id=%s, date=%s, start=%s",
				useCaseReq.ServiceID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrDayBlocked):
			h.logger.Warn("POST /appointments - Day blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayBlocked)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrTimeInPast):
			h.logger.Warn("POST /appointments - Time in past: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%s, client_id=%s", response.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
