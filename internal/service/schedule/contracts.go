package schedule

import (
	"context"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetBusinessHours(ctx context.Context) ([]domain.BusinessHours, error)
	ReplaceBusinessHours(ctx context.Context, hours []domain.BusinessHours) error
	GetBlockedDates(ctx context.Context, from time.Time) ([]domain.BlockedDate, error)
	CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, id int64) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
