package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case создания записи
// Проверка доступности слота и вставка выполняются в сериализуемой
// транзакции с блокировкой записей дня - иначе два клиента могут
// одновременно занять один слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	scheduleRepo    ScheduleRepository
	notifyClient    NotifyClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// notifyClient может быть nil, если уведомления выключены
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		scheduleRepo:    scheduleRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, service=%s, date=%s, time=%s",
		req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	day := domain.DateOnly(req.Date)

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("CreateAppointment: service id=%s is not bookable", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Вычисляем интервал записи
	startsAt, err := req.StartTime.OnDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endsAt := startsAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// 5. Нельзя записаться в прошлое
	if startsAt.Before(now) {
		uc.logger.Warn("CreateAppointment: requested time %s is in the past", startsAt)
		return nil, ErrTimeInPast
	}

	// 6. Проверяем блокировку дня
	blocked, err := uc.scheduleRepo.GetBlockedDatesCovering(ctx, day)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}
	if isDayBlocked(day, blocked) {
		uc.logger.Warn("CreateAppointment: date %s is blocked", day.Format(domain.DateFormat))
		return nil, ErrDayBlocked
	}

	// 7. Интервал должен попадать в рабочие часы
	hours, err := uc.scheduleRepo.GetBusinessHoursByDay(ctx, int(day.Weekday()))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	fits, err := fitsBusinessHours(day, hours, startsAt, endsAt)
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid business hours record: %v", err)
		return nil, fmt.Errorf("%w: invalid business hours: %v", ErrInternal, err)
	}
	if !fits {
		uc.logger.Warn("CreateAppointment: interval %s-%s is outside business hours",
			startsAt.Format(domain.TimeFormat), endsAt.Format(domain.TimeFormat))
		return nil, ErrOutsideBusinessHours
	}

	// 8. Проверка занятости и вставка в сериализуемой транзакции
	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Берём записи дня с блокировкой строк
		existing, err := uc.appointmentRepo.GetByDateRange(txCtx, domain.AppointmentsRangeFilter{
			From:             day,
			To:               day.AddDate(0, 0, 1).Add(-1),
			IncludeCancelled: false,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.2. Запрошенный интервал не должен конфликтовать ни с одной записью
		for _, appt := range existing {
			if !appt.BlocksSlots() {
				continue
			}
			if intervalConflicts(startsAt, endsAt, appt.StartsAt, appt.EndsAt) {
				return ErrSlotNotAvailable
			}
		}

		// 8.3. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:          req.ClientID,
			ServiceID:         req.ServiceID,
			StartsAt:          startsAt,
			EndsAt:            endsAt,
			Status:            domain.StatusPending,
			ServiceName:       service.Name,
			ServicePriceCents: service.PriceCents,
			Notes:             req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateAppointment: slot %s is not available for client=%s",
				req.StartTime, req.ClientID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s for client=%s, service=%s, starts_at=%s",
		result.ID, req.ClientID, req.ServiceID, result.StartsAt)

	// 9. Отправляем уведомление; сбой доставки не отменяет созданную запись
	if uc.notifyClient != nil {
		if err := uc.notifyClient.AppointmentCreated(ctx, result); err != nil {
			uc.logger.Error("CreateAppointment: failed to notify about appointment id=%s: %v", result.ID, err)
		}
	}

	return &Response{Appointment: result}, nil
}
