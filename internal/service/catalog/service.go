package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	storage "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/service"
	"github.com/sharpcut/SC-AppointmentService/internal/service/catalog/models"
)

type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает список услуг
// activeOnly=true для клиентской витрины, false для панели администратора
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	s.logger.Info("[CatalogService] List: fetching services, activeOnly=%v", activeOnly)

	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("[CatalogService] List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	s.logger.Info("[CatalogService] GetByID: fetching service id=%s", id)

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			s.logger.Warn("[CatalogService] GetByID: service id=%s not found", id)
			return nil, fmt.Errorf("%w: GetByID - service %s", ErrServiceNotFound, id)
		}
		s.logger.Error("[CatalogService] GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Create создаёт новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	s.logger.Info("[CatalogService] Create: creating service name=%q", req.Name)

	created, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("[CatalogService] Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("[CatalogService] Create: service created id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: Update - nothing to update", ErrInvalidInput)
	}
	if err := validateUpdateRequest(req); err != nil {
		return nil, err
	}

	s.logger.Info("[CatalogService] Update: updating service id=%s", id)

	updated, err := s.serviceRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: Update - service %s", ErrServiceNotFound, id)
		}
		s.logger.Error("[CatalogService] Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу из каталога
// Существующие записи сохраняют денормализованные данные услуги
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("[CatalogService] Delete: deleting service id=%s", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return fmt.Errorf("%w: Delete - service %s", ErrServiceNotFound, id)
		}
		s.logger.Error("[CatalogService] Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateCreateRequest(req *models.CreateServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: service name too long", ErrInvalidInput)
	}
	if err := validateDuration(req.DurationMinutes); err != nil {
		return err
	}
	if req.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateUpdateRequest(req *models.UpdateServiceRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: service name must not be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxServiceNameLength {
			return fmt.Errorf("%w: service name too long", ErrInvalidInput)
		}
	}
	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return err
		}
	}
	if req.PriceCents != nil && *req.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinServiceDurationMinutes || minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
