package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a bookable service in the catalog (haircut, shave, etc.)
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	PriceCents      int64
	ImageURL        *string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable returns true if the service can be booked by clients
func (s *Service) IsBookable() bool {
	return s.Active && s.DurationMinutes > 0
}

// Price returns the price in major currency units
func (s *Service) Price() float64 {
	return float64(s.PriceCents) / 100
}

// ServiceUpdate частичное обновление услуги, nil-поля не меняются
type ServiceUpdate struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	PriceCents      *int64
	ImageURL        *string
	Active          *bool
}

// IsEmpty returns true if the update does not change anything
func (u *ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.DurationMinutes == nil &&
		u.PriceCents == nil && u.ImageURL == nil && u.Active == nil
}
