package domain

import (
	"time"

	"github.com/sharpcut/SC-AppointmentService/pkg/types"
)

// BusinessHours represents one working interval for a day of week
// Для одного дня недели может быть несколько записей (смены),
// интервалы смен не должны пересекаться
type BusinessHours struct {
	ID        int64
	DayOfWeek int // 0 = Sunday ... 6 = Saturday, как в исходных данных
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid returns true if the record satisfies the start < end invariant
func (h *BusinessHours) IsValid() bool {
	return h.DayOfWeek >= 0 && h.DayOfWeek <= 6 &&
		!h.StartTime.IsZero() && !h.EndTime.IsZero() &&
		h.StartTime.IsBefore(h.EndTime)
}

// BlockedDate represents an inclusive date range with no bookings allowed
// (отпуск, праздники, санитарный день)
type BlockedDate struct {
	ID        int64
	StartDate time.Time // Только дата, время игнорируется
	EndDate   time.Time // Включительно
	Reason    *string
	CreatedAt time.Time
}

// Covers returns true if the given day falls inside the blocked range
func (b *BlockedDate) Covers(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate))
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
