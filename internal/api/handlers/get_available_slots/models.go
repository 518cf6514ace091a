package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/sharpcut/SC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	ServiceID uuid.UUID       `json:"serviceId"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
// Границы слота отдаются как RFC 3339 моменты времени
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartsAt.Format(time.RFC3339),
			EndTime:   slot.EndsAt.Format(time.RFC3339),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(serviceID uuid.UUID, dateStr string) (*getAvailableSlots.Request, error) {
	// Дата парсится в локации сервера: фильтр прошедших слотов
	// сравнивает границы слотов с time.Now, обе стороны должны
	// жить в одной локации
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
