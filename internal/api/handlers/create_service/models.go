package create_service

import (
	"github.com/sharpcut/SC-AppointmentService/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceCents      int64   `json:"priceCents"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Active          *bool   `json:"active,omitempty"` // По умолчанию услуга активна
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *CreateServiceRequest) ToServiceRequest() *models.CreateServiceRequest {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &models.CreateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		ImageURL:        r.ImageURL,
		Active:          active,
	}
}
