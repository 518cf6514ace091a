package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	ClientID           uuid.UUID
	CancellationReason string
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string
}

// GetClientAppointmentsRequest запрос истории записей клиента
type GetClientAppointmentsRequest struct {
	ClientID uuid.UUID
	Status   *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetClientAppointmentsRequest) ToDomainFilter() (domain.ClientAppointmentsFilter, error) {
	filter := domain.ClientAppointmentsFilter{ClientID: r.ClientID}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ListAppointmentsRequest запрос записей за период
type ListAppointmentsRequest struct {
	From             time.Time
	To               time.Time
	IncludeCancelled bool
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	ServiceID uuid.UUID `json:"serviceId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Status    string    `json:"status"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		StartsAt:           a.StartsAt,
		EndsAt:             a.EndsAt,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       float64(a.ServicePriceCents) / 100,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result}
}

// ToDomainStatus конвертирует строку в domain статус с валидацией
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
