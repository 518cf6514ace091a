package domain

import "time"

// TimeSlot represents a candidate bookable time interval [StartsAt, EndsAt)
// Длина слота всегда равна длительности услуги
type TimeSlot struct {
	StartsAt  time.Time
	EndsAt    time.Time
	Available bool
}

// Duration returns the slot length
func (s *TimeSlot) Duration() time.Duration {
	return s.EndsAt.Sub(s.StartsAt)
}

// BookedInterval represents the occupied interval [StartsAt, EndsAt)
// of an existing, non-cancelled appointment
type BookedInterval struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// IsValid returns true if the interval satisfies the start < end invariant
func (i *BookedInterval) IsValid() bool {
	return i.StartsAt.Before(i.EndsAt)
}
