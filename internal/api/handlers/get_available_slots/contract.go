package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/sharpcut/SC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailabilityFinder вычисляет свободные слоты услуги на дату
type AvailabilityFinder interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
