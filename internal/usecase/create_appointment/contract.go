package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByDateRange получает записи дня; в транзакции блокирует строки (FOR UPDATE)
	GetByDateRange(ctx context.Context, filter domain.AppointmentsRangeFilter) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetBusinessHoursByDay(ctx context.Context, dayOfWeek int) ([]domain.BusinessHours, error)
	GetBlockedDatesCovering(ctx context.Context, day time.Time) ([]domain.BlockedDate, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
