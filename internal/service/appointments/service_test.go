package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/internal/infra/storage/appointment"
	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*domain.Appointment
	cancelled    map[uuid.UUID]string
	statuses     map[uuid.UUID]domain.AppointmentStatus
	err          error
}

func newFakeRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{
		appointments: make(map[uuid.UUID]*domain.Appointment),
		cancelled:    make(map[uuid.UUID]string),
		statuses:     make(map[uuid.UUID]domain.AppointmentStatus),
	}
	for _, a := range appts {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByClientID(_ context.Context, filter domain.ClientAppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if a.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetByDateRange(_ context.Context, filter domain.AppointmentsRangeFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if a.StartsAt.Before(filter.From) || a.StartsAt.After(filter.To) {
			continue
		}
		if !filter.IncludeCancelled && a.IsCancelled() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.appointments[id]; !ok {
		return appointment.ErrAppointmentNotFound
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id uuid.UUID, reason string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.appointments[id]; !ok {
		return appointment.ErrAppointmentNotFound
	}
	f.cancelled[id] = reason
	return nil
}

type fakeNotifyClient struct {
	cancelledCalls int
	err            error
}

func (f *fakeNotifyClient) AppointmentCancelled(_ context.Context, _ *domain.Appointment) error {
	f.cancelledCalls++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(clientID uuid.UUID, status domain.AppointmentStatus) *domain.Appointment {
	starts := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:                uuid.New(),
		ClientID:          clientID,
		ServiceID:         uuid.New(),
		StartsAt:          starts,
		EndsAt:            starts.Add(30 * time.Minute),
		Status:            status,
		ServiceName:       "Мужская стрижка",
		ServicePriceCents: 150000,
	}
}

func TestService_GetByID(t *testing.T) {
	clientID := uuid.New()

	t.Run("владелец получает свою запись", func(t *testing.T) {
		appt := testAppointment(clientID, domain.StatusConfirmed)
		svc := NewService(newFakeRepo(appt), &fakeNotifyClient{}, nopLogger{})

		got, err := svc.GetByID(context.Background(), appt.ID, clientID)
		require.NoError(t, err)
		assert.Equal(t, appt.ID, got.ID)
		assert.Equal(t, 1500.0, got.ServicePrice)
	})

	t.Run("чужая запись недоступна", func(t *testing.T) {
		appt := testAppointment(clientID, domain.StatusConfirmed)
		svc := NewService(newFakeRepo(appt), &fakeNotifyClient{}, nopLogger{})

		got, err := svc.GetByID(context.Background(), appt.ID, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, got)
	})

	t.Run("запись не найдена", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeNotifyClient{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), uuid.New(), clientID)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("ошибка репозитория оборачивается в ErrInternal", func(t *testing.T) {
		repo := newFakeRepo()
		repo.err = errors.New("connection refused")
		svc := NewService(repo, &fakeNotifyClient{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), uuid.New(), clientID)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_Cancel(t *testing.T) {
	clientID := uuid.New()

	t.Run("успешная отмена с уведомлением", func(t *testing.T) {
		appt := testAppointment(clientID, domain.StatusPending)
		repo := newFakeRepo(appt)
		notify := &fakeNotifyClient{}
		svc := NewService(repo, notify, nopLogger{})

		err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{
			ClientID:           clientID,
			CancellationReason: "передумал",
		})
		require.NoError(t, err)
		assert.Equal(t, "передумал", repo.cancelled[appt.ID])
		assert.Equal(t, 1, notify.cancelledCalls)
	})

	t.Run("сбой уведомления не ломает отмену", func(t *testing.T) {
		appt := testAppointment(clientID, domain.StatusConfirmed)
		repo := newFakeRepo(appt)
		notify := &fakeNotifyClient{err: errors.New("notify service down")}
		svc := NewService(repo, notify, nopLogger{})

		err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{ClientID: clientID})
		require.NoError(t, err)
		assert.Contains(t, repo.cancelled, appt.ID)
	})

	t.Run("завершённую запись отменить нельзя", func(t *testing.T) {
		appt := testAppointment(clientID, domain.StatusCompleted)
		repo := newFakeRepo(appt)
		svc := NewService(repo, &fakeNotifyClient{}, nopLogger{})

		err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{ClientID: clientID})
		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.NotContains(t, repo.cancelled, appt.ID)
	})

	t.Run("чужую запись отменить нельзя", func(t *testing.T) {
		appt := testAppointment(clientID, domain.StatusPending)
		repo := newFakeRepo(appt)
		svc := NewService(repo, &fakeNotifyClient{}, nopLogger{})

		err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{ClientID: uuid.New()})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("допустимый статус", func(t *testing.T) {
		appt := testAppointment(uuid.New(), domain.StatusPending)
		repo := newFakeRepo(appt)
		svc := NewService(repo, &fakeNotifyClient{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), appt.ID, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.statuses[appt.ID])
	})

	t.Run("недопустимый статус", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeNotifyClient{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "rescheduled"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("запись не найдена", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeNotifyClient{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_GetClientAppointments(t *testing.T) {
	clientID := uuid.New()

	t.Run("фильтр по статусу", func(t *testing.T) {
		pending := testAppointment(clientID, domain.StatusPending)
		confirmed := testAppointment(clientID, domain.StatusConfirmed)
		svc := NewService(newFakeRepo(pending, confirmed), &fakeNotifyClient{}, nopLogger{})

		status := "confirmed"
		got, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			ClientID: clientID,
			Status:   &status,
		})
		require.NoError(t, err)
		require.Len(t, got.Appointments, 1)
		assert.Equal(t, confirmed.ID, got.Appointments[0].ID)
	})

	t.Run("некорректный статус в фильтре", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeNotifyClient{}, nopLogger{})

		status := "bogus"
		_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			ClientID: clientID,
			Status:   &status,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("clientID обязателен", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeNotifyClient{}, nopLogger{})

		_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
