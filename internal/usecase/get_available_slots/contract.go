package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	// GetByID получает услугу по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	// GetBusinessHoursByDay получает все смены для дня недели (0-6, 0 = воскресенье)
	GetBusinessHoursByDay(ctx context.Context, dayOfWeek int) ([]domain.BusinessHours, error)
	// GetBlockedDatesCovering получает диапазоны блокировки, накрывающие день
	GetBlockedDatesCovering(ctx context.Context, day time.Time) ([]domain.BlockedDate, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDateRange получает записи с началом в [from, to], без отменённых
	GetByDateRange(ctx context.Context, filter domain.AppointmentsRangeFilter) ([]*domain.Appointment, error)
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

// MetricsCollector интерфейс для метрик движка доступности
type MetricsCollector interface {
	ObserveAvailableSlots(count int)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
