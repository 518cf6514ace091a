package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	PriceCents      int64
	ImageURL        *string
	Active          bool
}

// ToDomainService конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		ImageURL:        r.ImageURL,
		Active:          r.Active,
	}
}

// UpdateServiceRequest частичное обновление услуги, nil-поля не меняются
type UpdateServiceRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	PriceCents      *int64
	ImageURL        *string
	Active          *bool
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		ImageURL:        r.ImageURL,
		Active:          r.Active,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price(),
		ImageURL:        s.ImageURL,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, *FromDomainService(s))
	}
	return &ServiceListResponse{Services: result}
}
