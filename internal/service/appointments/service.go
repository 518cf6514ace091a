package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/internal/infra/storage/appointment"
	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
)

type Service struct {
	appointmentRepo AppointmentRepository
	notifyClient    NotifyClient
	logger          Logger
}

func NewService(appointmentRepo AppointmentRepository, notifyClient NotifyClient, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifyClient:    notifyClient,
		logger:          logger,
	}
}

// GetByID возвращает запись по ID с проверкой прав доступа
func (s *Service) GetByID(ctx context.Context, id, clientID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("[AppointmentsService] GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			s.logger.Warn("[AppointmentsService] GetByID: appointment id=%s not found", id)
			return nil, fmt.Errorf("%w: GetByID - appointment %s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("[AppointmentsService] GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Запись доступна только её владельцу
	if appt.ClientID != clientID {
		s.logger.Warn("[AppointmentsService] GetByID: client %s attempted to access appointment %s owned by %s",
			clientID, id, appt.ClientID)
		return nil, fmt.Errorf("%w: GetByID - appointment %s", ErrAccessDenied, id)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments возвращает историю записей клиента
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.ClientID == uuid.Nil {
		return nil, fmt.Errorf("%w: GetClientAppointments - client id is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: GetClientAppointments - %v", ErrInvalidInput, err)
	}

	s.logger.Info("[AppointmentsService] GetClientAppointments: fetching appointments for client=%s", req.ClientID)

	appts, err := s.appointmentRepo.GetByClientID(ctx, filter)
	if err != nil {
		s.logger.Error("[AppointmentsService] GetClientAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appts), nil
}

// GetByRange возвращает записи за период (для панели администратора)
func (s *Service) GetByRange(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: GetByRange - period bounds are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: GetByRange - period end before start", ErrInvalidInput)
	}

	s.logger.Info("[AppointmentsService] GetByRange: fetching appointments from=%s to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	appts, err := s.appointmentRepo.GetByDateRange(ctx, domain.AppointmentsRangeFilter{
		From:             req.From,
		To:               req.To,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("[AppointmentsService] GetByRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByRange - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись клиента
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.CancelAppointmentRequest) error {
	s.logger.Info("[AppointmentsService] Cancel: cancelling appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return fmt.Errorf("%w: Cancel - appointment %s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("[AppointmentsService] Cancel: repository error: %v", err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.ClientID != req.ClientID {
		s.logger.Warn("[AppointmentsService] Cancel: client %s attempted to cancel appointment %s owned by %s",
			req.ClientID, id, appt.ClientID)
		return fmt.Errorf("%w: Cancel - appointment %s", ErrAccessDenied, id)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("[AppointmentsService] Cancel: appointment %s in status %s cannot be cancelled", id, appt.Status)
		return fmt.Errorf("%w: Cancel - appointment %s in status %s", ErrCannotCancel, id, appt.Status)
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		s.logger.Error("[AppointmentsService] Cancel: repository error: %v", err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Уведомление не критично: при ошибке отмена уже выполнена
	if err := s.notifyClient.AppointmentCancelled(ctx, appt); err != nil {
		s.logger.Warn("[AppointmentsService] Cancel: notify failed for appointment %s: %v", id, err)
	}

	s.logger.Info("[AppointmentsService] Cancel: appointment id=%s cancelled", id)
	return nil
}

// UpdateStatus обновляет статус записи (для панели администратора)
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error {
	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - %v", ErrInvalidInput, err)
	}

	s.logger.Info("[AppointmentsService] UpdateStatus: appointment id=%s -> %s", id, status)

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return fmt.Errorf("%w: UpdateStatus - appointment %s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("[AppointmentsService] UpdateStatus: repository error: %v", err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}
