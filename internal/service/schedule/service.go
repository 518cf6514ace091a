package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	storage "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/schedule"
	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule/models"
)

type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TxManager
	logger       Logger
}

func NewService(scheduleRepo ScheduleRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetSchedule возвращает рабочие часы и актуальные блокировки
func (s *Service) GetSchedule(ctx context.Context, now time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("[ScheduleService] GetSchedule: fetching schedule")

	hours, err := s.scheduleRepo.GetBusinessHours(ctx)
	if err != nil {
		s.logger.Error("[ScheduleService] GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	// Показываем блокировки, которые ещё не закончились
	blocked, err := s.scheduleRepo.GetBlockedDates(ctx, domain.DateOnly(now))
	if err != nil {
		s.logger.Error("[ScheduleService] GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return &models.ScheduleResponse{
		BusinessHours: models.FromDomainBusinessHours(hours),
		BlockedDates:  models.FromDomainBlockedDates(blocked),
	}, nil
}

// ReplaceBusinessHours атомарно заменяет всё расписание рабочих часов
func (s *Service) ReplaceBusinessHours(ctx context.Context, req *models.UpdateBusinessHoursRequest) error {
	hours, err := req.ToDomainHours()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - %v", ErrInvalidInput, err)
	}

	if err := validateBusinessHours(hours); err != nil {
		return err
	}

	s.logger.Info("[ScheduleService] ReplaceBusinessHours: replacing schedule, %d records", len(hours))

	// Удаление и вставка должны быть атомарными
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.ReplaceBusinessHours(ctx, hours)
	})
	if err != nil {
		s.logger.Error("[ScheduleService] ReplaceBusinessHours: repository error: %v", err)
		return fmt.Errorf("%w: ReplaceBusinessHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

// AddBlockedDate добавляет диапазон блокировки
func (s *Service) AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: AddBlockedDate - date range is required", ErrInvalidInput)
	}

	blocked := req.ToDomainBlockedDate()
	if blocked.EndDate.Before(blocked.StartDate) {
		return nil, fmt.Errorf("%w: AddBlockedDate - end date before start date", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockedReasonLength {
		return nil, fmt.Errorf("%w: AddBlockedDate - reason too long", ErrInvalidInput)
	}

	s.logger.Info("[ScheduleService] AddBlockedDate: blocking %s..%s",
		blocked.StartDate.Format(domain.DateFormat), blocked.EndDate.Format(domain.DateFormat))

	created, err := s.scheduleRepo.CreateBlockedDate(ctx, blocked)
	if err != nil {
		s.logger.Error("[ScheduleService] AddBlockedDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDate(created), nil
}

// RemoveBlockedDate удаляет диапазон блокировки
func (s *Service) RemoveBlockedDate(ctx context.Context, id int64) error {
	s.logger.Info("[ScheduleService] RemoveBlockedDate: removing blocked date id=%d", id)

	if err := s.scheduleRepo.DeleteBlockedDate(ctx, id); err != nil {
		if errors.Is(err, storage.ErrBlockedDateNotFound) {
			return fmt.Errorf("%w: RemoveBlockedDate - blocked date %d", ErrBlockedDateNotFound, id)
		}
		s.logger.Error("[ScheduleService] RemoveBlockedDate: repository error: %v", err)
		return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// validateBusinessHours проверяет каждый интервал и пересечения смен внутри дня
func validateBusinessHours(hours []domain.BusinessHours) error {
	for i := range hours {
		if !hours[i].IsValid() {
			return fmt.Errorf("%w: invalid business hours record for day %d", ErrInvalidInput, hours[i].DayOfWeek)
		}
	}

	byDay := make(map[int][]domain.BusinessHours)
	for _, h := range hours {
		byDay[h.DayOfWeek] = append(byDay[h.DayOfWeek], h)
	}

	for day, shifts := range byDay {
		sort.Slice(shifts, func(i, j int) bool {
			return shifts[i].StartTime.IsBefore(shifts[j].StartTime)
		})
		for i := 1; i < len(shifts); i++ {
			// Смены могут соприкасаться, но не пересекаться
			if shifts[i].StartTime.IsBefore(shifts[i-1].EndTime) {
				return fmt.Errorf("%w: day %d", ErrOverlappingShifts, day)
			}
		}
	}

	return nil
}
