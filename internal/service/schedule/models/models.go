package models

import (
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/pkg/types"
)

// Request модели

// BusinessHoursEntry один рабочий интервал дня недели
type BusinessHoursEntry struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// UpdateBusinessHoursRequest полная замена расписания
type UpdateBusinessHoursRequest struct {
	Hours []BusinessHoursEntry
}

// ToDomainHours конвертирует request в domain модели
func (r *UpdateBusinessHoursRequest) ToDomainHours() ([]domain.BusinessHours, error) {
	result := make([]domain.BusinessHours, 0, len(r.Hours))
	for _, entry := range r.Hours {
		start, err := types.NewTimeStringFromString(entry.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(entry.EndTime)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.BusinessHours{
			DayOfWeek: entry.DayOfWeek,
			StartTime: start,
			EndTime:   end,
		})
	}
	return result, nil
}

// AddBlockedDateRequest запрос на блокировку диапазона дат
type AddBlockedDateRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

// ToDomainBlockedDate конвертирует request в domain модель
func (r *AddBlockedDateRequest) ToDomainBlockedDate() *domain.BlockedDate {
	return &domain.BlockedDate{
		StartDate: domain.DateOnly(r.StartDate),
		EndDate:   domain.DateOnly(r.EndDate),
		Reason:    r.Reason,
	}
}

// Response модели

// BusinessHoursResponse один рабочий интервал в ответе
type BusinessHoursResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BlockedDateResponse диапазон блокировки в ответе
type BlockedDateResponse struct {
	ID        int64   `json:"id"`
	StartDate string  `json:"startDate"` // YYYY-MM-DD
	EndDate   string  `json:"endDate"`   // YYYY-MM-DD, включительно
	Reason    *string `json:"reason,omitempty"`
}

// ScheduleResponse полное расписание: рабочие часы и блокировки
type ScheduleResponse struct {
	BusinessHours []BusinessHoursResponse `json:"businessHours"`
	BlockedDates  []BlockedDateResponse   `json:"blockedDates"`
}

// Методы конвертации

// FromDomainBusinessHours конвертирует domain модели в DTO
func FromDomainBusinessHours(hours []domain.BusinessHours) []BusinessHoursResponse {
	result := make([]BusinessHoursResponse, 0, len(hours))
	for _, h := range hours {
		result = append(result, BusinessHoursResponse{
			ID:        h.ID,
			DayOfWeek: h.DayOfWeek,
			StartTime: h.StartTime.String(),
			EndTime:   h.EndTime.String(),
		})
	}
	return result
}

// FromDomainBlockedDates конвертирует domain модели в DTO
func FromDomainBlockedDates(blocked []domain.BlockedDate) []BlockedDateResponse {
	result := make([]BlockedDateResponse, 0, len(blocked))
	for _, b := range blocked {
		result = append(result, BlockedDateResponse{
			ID:        b.ID,
			StartDate: b.StartDate.Format(domain.DateFormat),
			EndDate:   b.EndDate.Format(domain.DateFormat),
			Reason:    b.Reason,
		})
	}
	return result
}

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:        b.ID,
		StartDate: b.StartDate.Format(domain.DateFormat),
		EndDate:   b.EndDate.Format(domain.DateFormat),
		Reason:    b.Reason,
	}
}
