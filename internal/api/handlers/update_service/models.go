package update_service

import (
	"github.com/sharpcut/SC-AppointmentService/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model, nil-поля не меняются
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	PriceCents      *int64  `json:"priceCents,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *UpdateServiceRequest) ToServiceRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		ImageURL:        r.ImageURL,
		Active:          r.Active,
	}
}
