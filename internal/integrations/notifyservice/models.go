package notifyservice

import (
	"time"

	"github.com/google/uuid"
)

// Типы событий уведомлений
const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentCancelled = "appointment.cancelled"
)

// AppointmentEvent событие по записи для NotifyService
type AppointmentEvent struct {
	Event         string    `json:"event"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	ClientID      uuid.UUID `json:"clientId"`
	ServiceName   string    `json:"serviceName"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
