package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case получения доступных слотов для записи
// Вся арифметика интервалов вынесена в чистые функции (slots.go),
// use case только собирает входные данные и отдаёт результат
type UseCase struct {
	serviceRepo     ServiceRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	metrics         MetricsCollector
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Пустой список слотов - нормальное состояние ("всё занято" или выходной),
// ошибка возвращается только при сбое lookup'ов или некорректных данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	day := domain.DateOnly(req.Date)

	// 3. Получаем услугу и её длительность
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%s is not bookable", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Проверяем блокировку дня - если день заблокирован,
	// генерацию не запускаем вовсе
	blocked, err := uc.scheduleRepo.GetBlockedDatesCovering(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	if isDayBlocked(day, blocked) {
		uc.logger.Info("GetAvailableSlots: date %s is blocked", day.Format(domain.DateFormat))
		return uc.emptyResponse(req, day), nil
	}

	// 5. Получаем рабочие часы на день недели
	hours, err := uc.scheduleRepo.GetBusinessHoursByDay(ctx, int(day.Weekday()))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 6. Генерируем кандидатные слоты
	candidates, err := generateTimeSlots(day, hours, service.DurationMinutes, domain.SlotStepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: no working hours on %s", day.Format(domain.DateFormat))
		return uc.emptyResponse(req, day), nil
	}

	// 7. Получаем записи на этот день (без отменённых)
	appointments, err := uc.appointmentRepo.GetByDateRange(ctx, domain.AppointmentsRangeFilter{
		From:             day,
		To:               day.AddDate(0, 0, 1).Add(-1),
		IncludeCancelled: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	booked := make([]domain.BookedInterval, 0, len(appointments))
	for _, appt := range appointments {
		if appt.BlocksSlots() {
			booked = append(booked, appt.Interval())
		}
	}

	// 8. Фильтруем кандидатов по занятости и прошедшему времени
	slots := filterAvailableSlots(candidates, booked, now)

	if uc.metrics != nil {
		uc.metrics.ObserveAvailableSlots(len(slots))
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for service=%s, date=%s",
		len(slots), len(candidates), req.ServiceID, day.Format(domain.DateFormat))

	return &Response{
		Date:      day,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, day time.Time) *Response {
	return &Response{
		Date:      day,
		ServiceID: req.ServiceID,
		Slots:     []domain.TimeSlot{},
	}
}
