package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  uuid.UUID        // ID клиента (из заголовка аутентификации)
	ServiceID uuid.UUID        // ID услуги
	Date      time.Time        // Дата записи (время игнорируется)
	StartTime types.TimeString // Время начала, HH:MM
	Notes     *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
