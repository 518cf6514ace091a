package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот уже занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrDayBlocked возвращается, когда день закрыт для записи
	ErrDayBlocked = errors.New("day is blocked for appointments")

	// ErrOutsideBusinessHours возвращается, когда интервал не попадает в рабочие часы
	ErrOutsideBusinessHours = errors.New("requested time is outside business hours")

	// ErrTimeInPast возвращается при попытке записаться на прошедшее время
	ErrTimeInPast = errors.New("requested time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
