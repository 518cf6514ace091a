package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, filter domain.ClientAppointmentsFilter) ([]*domain.Appointment, error)
	GetByDateRange(ctx context.Context, filter domain.AppointmentsRangeFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
