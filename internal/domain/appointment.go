package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a booked appointment in the system
type Appointment struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	Status    AppointmentStatus

	// Denormalized data for history
	ServiceName       string
	ServicePriceCents int64
	Notes             *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the occupied time interval of the appointment
func (a *Appointment) Interval() BookedInterval {
	return BookedInterval{StartsAt: a.StartsAt, EndsAt: a.EndsAt}
}

// BlocksSlots returns true if the appointment still occupies its time interval
// Отменённые записи слот не занимают
func (a *Appointment) BlocksSlots() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsFinished returns true if the appointment is completed or was a no-show
func (a *Appointment) IsFinished() bool {
	return a.Status == StatusCompleted || a.Status == StatusNoShow
}

// ClientAppointmentsFilter фильтр для получения записей клиента
type ClientAppointmentsFilter struct {
	ClientID uuid.UUID          // Обязательный параметр
	Status   *AppointmentStatus // Фильтр по статусу (опционально)
}

// AppointmentsRangeFilter фильтр для получения записей за период
type AppointmentsRangeFilter struct {
	From             time.Time // Начало периода (включительно)
	To               time.Time // Конец периода (включительно)
	IncludeCancelled bool      // Включать ли отменённые записи
}
