package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID uuid.UUID // ID услуги
	Date      time.Time // Дата для получения слотов (время игнорируется)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time         // Дата, на которую запрашивались слоты
	ServiceID uuid.UUID         // ID услуги
	Slots     []domain.TimeSlot // Доступные слоты по возрастанию времени начала
}
