package add_blocked_date

import (
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule/models"
)

// AddBlockedDateRequest HTTP request model
type AddBlockedDateRequest struct {
	StartDate string  `json:"startDate"` // YYYY-MM-DD
	EndDate   string  `json:"endDate"`   // YYYY-MM-DD, включительно
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *AddBlockedDateRequest) ToServiceRequest() (*models.AddBlockedDateRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.AddBlockedDateRequest{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    r.Reason,
	}, nil
}
