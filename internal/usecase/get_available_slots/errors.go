package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается при некорректной длительности или шаге слота
	ErrInvalidDuration = errors.New("invalid slot duration")

	// ErrInvalidSchedule возвращается при некорректной записи расписания
	// (нарушен инвариант start < end или битый формат времени)
	ErrInvalidSchedule = errors.New("invalid business hours record")

	// ErrInternal возвращается при сбое внешних lookup'ов
	// Отличим от пустого результата: "не смогли определить доступность"
	// никогда не маскируется под "всё занято"
	ErrInternal = errors.New("usecase: internal error")
)
