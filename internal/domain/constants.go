package domain

// Slot generation constants
const (
	// SlotStepMinutes фиксированный шаг между началами соседних слотов
	SlotStepMinutes = 15
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxServiceNameLength        = 200
	MaxBlockedReasonLength      = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValidStatus проверяет, что статус является допустимым
func IsValidStatus(s AppointmentStatus) bool {
	for _, status := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
