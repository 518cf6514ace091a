package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// fitsBusinessHours проверяет, что интервал [startsAt, endsAt] целиком
// попадает в одну из смен рабочего дня
func fitsBusinessHours(day time.Time, hours []domain.BusinessHours, startsAt, endsAt time.Time) (bool, error) {
	for _, h := range hours {
		opening, err := h.StartTime.OnDate(day)
		if err != nil {
			return false, err
		}
		closing, err := h.EndTime.OnDate(day)
		if err != nil {
			return false, err
		}

		if !startsAt.Before(opening) && !endsAt.After(closing) {
			return true, nil
		}
	}
	return false, nil
}

// intervalConflicts проверяет пересечение запрошенного интервала [s, e)
// с существующей записью [bs, be). Те же полуоткрытые правила, что и в
// движке доступности: касание границами конфликтом не считается,
// совпадение начала или конца - считается.
func intervalConflicts(s, e, bs, be time.Time) bool {
	if bs.Before(s) && s.Before(be) {
		return true
	}
	if bs.Before(e) && e.Before(be) {
		return true
	}
	if s.Before(bs) && e.After(be) {
		return true
	}
	if s.Equal(bs) || e.Equal(be) {
		return true
	}
	return false
}

// isDayBlocked проверяет, попадает ли день в любой из заблокированных диапазонов
func isDayBlocked(day time.Time, blocked []domain.BlockedDate) bool {
	for i := range blocked {
		if blocked[i].Covers(day) {
			return true
		}
	}
	return false
}
