package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// generateTimeSlots генерирует все кандидатные слоты на день для смен hours
// Для каждой смены слоты идут от открытия с фиксированным шагом stepMinutes;
// слот [cursor, cursor+duration) попадает в результат, пока его конец не
// позже закрытия (слот, заканчивающийся ровно в закрытие, включается).
// Несколько записей на один день недели трактуются как несколько смен:
// результат объединяется и сортируется по времени начала.
// Если записей расписания нет - день не рабочий, возвращается пустой список.
func generateTimeSlots(
	day time.Time,
	hours []domain.BusinessHours,
	durationMinutes int,
	stepMinutes int,
) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidDuration, durationMinutes)
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot step must be positive, got %d", ErrInvalidDuration, stepMinutes)
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0)

	for _, h := range hours {
		if !h.IsValid() {
			return nil, fmt.Errorf("%w: day_of_week=%d start=%s end=%s",
				ErrInvalidSchedule, h.DayOfWeek, h.StartTime, h.EndTime)
		}

		opening, err := h.StartTime.OnDate(day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		closing, err := h.EndTime.OnDate(day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}

		for cursor := opening; !cursor.Add(duration).After(closing); cursor = cursor.Add(step) {
			slots = append(slots, domain.TimeSlot{
				StartsAt:  cursor,
				EndsAt:    cursor.Add(duration),
				Available: true,
			})
		}
	}

	// Смены могут прийти в произвольном порядке
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartsAt.Before(slots[j].StartsAt)
	})

	return dedupeByStart(slots), nil
}

// dedupeByStart убирает слоты с одинаковым временем начала
// (возможно при пересекающихся сменах в расписании)
func dedupeByStart(slots []domain.TimeSlot) []domain.TimeSlot {
	result := slots[:0]
	for i, slot := range slots {
		if i > 0 && slot.StartsAt.Equal(slots[i-1].StartsAt) {
			continue
		}
		result = append(result, slot)
	}
	return result
}

// filterAvailableSlots отбирает из кандидатов реально доступные слоты
// Слот отбрасывается, если его начало уже в прошлом (строго раньше now)
// или если он пересекается с любой из занятых записей.
// Отброшенные слоты в результат не попадают вовсе - available=false не бывает.
func filterAvailableSlots(
	candidates []domain.TimeSlot,
	booked []domain.BookedInterval,
	now time.Time,
) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(candidates))

	for _, slot := range candidates {
		if slot.StartsAt.Before(now) {
			continue
		}

		overlapping := false
		for _, interval := range booked {
			if intervalsOverlap(slot.StartsAt, slot.EndsAt, interval.StartsAt, interval.EndsAt) {
				overlapping = true
				break
			}
		}

		if !overlapping {
			available = append(available, slot)
		}
	}

	return available
}

// intervalsOverlap проверяет пересечение слота [s, e) с записью [bs, be)
// Интервалы полуоткрытые: касание границами (e == bs или s == be)
// пересечением НЕ считается - слот вплотную к записи можно бронировать.
//
// Проверки на точное равенство границ убирать нельзя: при s == bs или
// e == be строгие неравенства не срабатывают, и слот, в точности
// совпадающий с записью, проскочил бы как свободный.
func intervalsOverlap(s, e, bs, be time.Time) bool {
	// Начало слота строго внутри записи
	if bs.Before(s) && s.Before(be) {
		return true
	}
	// Конец слота строго внутри записи
	if bs.Before(e) && e.Before(be) {
		return true
	}
	// Слот целиком накрывает запись
	if s.Before(bs) && e.After(be) {
		return true
	}
	// Совпадение начала или конца
	if s.Equal(bs) || e.Equal(be) {
		return true
	}
	return false
}

// isDayBlocked проверяет, попадает ли день в любой из заблокированных диапазонов
// Границы диапазонов включительные
func isDayBlocked(day time.Time, blocked []domain.BlockedDate) bool {
	for i := range blocked {
		if blocked[i].Covers(day) {
			return true
		}
	}
	return false
}
