package schedule

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда диапазон блокировки не найден
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOverlappingShifts возвращается при пересекающихся сменах одного дня
	ErrOverlappingShifts = errors.New("overlapping shifts for the same day")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
