package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/pkg/types"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // понедельник

func at(hour, minute int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), hour, minute, 0, 0, time.UTC)
}

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = uuid.New()
	appt.CreatedAt = time.Now()
	f.created = appt
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByDateRange(_ context.Context, _ domain.AppointmentsRangeFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Service, error) {
	return f.service, f.err
}

type fakeScheduleRepo struct {
	hours   []domain.BusinessHours
	blocked []domain.BlockedDate
}

func (f *fakeScheduleRepo) GetBusinessHoursByDay(_ context.Context, _ int) ([]domain.BusinessHours, error) {
	return f.hours, nil
}

func (f *fakeScheduleRepo) GetBlockedDatesCovering(_ context.Context, _ time.Time) ([]domain.BlockedDate, error) {
	return f.blocked, nil
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeNotifyClient struct {
	notified int
	err      error
}

func (f *fakeNotifyClient) AppointmentCreated(_ context.Context, _ *domain.Appointment) error {
	f.notified++
	return f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mondayHours(start, end string) []domain.BusinessHours {
	return []domain.BusinessHours{{
		DayOfWeek: int(testDay.Weekday()),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              uuid.New(),
		Name:            "Стрижка машинкой",
		DurationMinutes: 30,
		PriceCents:      1500_00,
		Active:          true,
	}
}

func validRequest(svc *domain.Service) *Request {
	return &Request{
		ClientID:  uuid.New(),
		ServiceID: svc.ID,
		Date:      testDay,
		StartTime: types.TimeString("10:00"),
	}
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	services *fakeServiceRepo,
	schedule *fakeScheduleRepo,
	notify NotifyClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, services, schedule, notify, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	svc := testService()

	t.Run("создание записи happy path", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		notify := &fakeNotifyClient{}
		uc := newTestUseCase(repo, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{hours: mondayHours("09:00", "18:00")}, notify, at(8, 0))

		resp, err := uc.Execute(context.Background(), validRequest(svc))
		require.NoError(t, err)

		appt := resp.Appointment
		assert.Equal(t, at(10, 0), appt.StartsAt)
		assert.Equal(t, at(10, 30), appt.EndsAt)
		assert.Equal(t, domain.StatusPending, appt.Status)
		assert.Equal(t, svc.Name, appt.ServiceName)
		assert.Equal(t, svc.PriceCents, appt.ServicePriceCents)
		assert.Equal(t, 1, notify.notified)
	})

	t.Run("пересечение с существующей записью", func(t *testing.T) {
		existing := &domain.Appointment{
			ID:       uuid.New(),
			StartsAt: at(10, 15),
			EndsAt:   at(10, 45),
			Status:   domain.StatusConfirmed,
		}
		repo := &fakeAppointmentRepo{existing: []*domain.Appointment{existing}}
		uc := newTestUseCase(repo, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{hours: mondayHours("09:00", "18:00")}, nil, at(8, 0))

		_, err := uc.Execute(context.Background(), validRequest(svc))
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, repo.created)
	})

	t.Run("запись вплотную к существующей проходит", func(t *testing.T) {
		existing := &domain.Appointment{
			ID:       uuid.New(),
			StartsAt: at(10, 30), // наша запись 10:00-10:30 касается её начала
			EndsAt:   at(11, 0),
			Status:   domain.StatusConfirmed,
		}
		repo := &fakeAppointmentRepo{existing: []*domain.Appointment{existing}}
		uc := newTestUseCase(repo, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{hours: mondayHours("09:00", "18:00")}, nil, at(8, 0))

		_, err := uc.Execute(context.Background(), validRequest(svc))
		require.NoError(t, err)
	})

	t.Run("время в прошлом", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{hours: mondayHours("09:00", "18:00")}, nil, at(12, 0))

		_, err := uc.Execute(context.Background(), validRequest(svc))
		assert.ErrorIs(t, err, ErrTimeInPast)
	})

	t.Run("заблокированный день", func(t *testing.T) {
		schedule := &fakeScheduleRepo{
			hours:   mondayHours("09:00", "18:00"),
			blocked: []domain.BlockedDate{{StartDate: testDay, EndDate: testDay}},
		}
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeServiceRepo{service: svc}, schedule, nil, at(8, 0))

		_, err := uc.Execute(context.Background(), validRequest(svc))
		assert.ErrorIs(t, err, ErrDayBlocked)
	})

	t.Run("вне рабочих часов", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{hours: mondayHours("11:00", "18:00")}, nil, at(8, 0))

		_, err := uc.Execute(context.Background(), validRequest(svc))
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("запись до самого закрытия проходит", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{hours: mondayHours("09:00", "10:30")}, nil, at(8, 0))

		_, err := uc.Execute(context.Background(), validRequest(svc))
		require.NoError(t, err)
	})

	t.Run("сбой уведомления не отменяет запись", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		notify := &fakeNotifyClient{err: errors.New("notify service down")}
		uc := newTestUseCase(repo, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{hours: mondayHours("09:00", "18:00")}, notify, at(8, 0))

		resp, err := uc.Execute(context.Background(), validRequest(svc))
		require.NoError(t, err)
		assert.NotNil(t, resp.Appointment)
	})

	t.Run("валидация входных данных", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeServiceRepo{service: svc},
			&fakeScheduleRepo{}, nil, at(8, 0))

		cases := []struct {
			name string
			req  *Request
		}{
			{"нет clientID", &Request{ServiceID: svc.ID, Date: testDay, StartTime: "10:00"}},
			{"нет serviceID", &Request{ClientID: uuid.New(), Date: testDay, StartTime: "10:00"}},
			{"нет даты", &Request{ClientID: uuid.New(), ServiceID: svc.ID, StartTime: "10:00"}},
			{"нет времени", &Request{ClientID: uuid.New(), ServiceID: svc.ID, Date: testDay}},
			{"битое время", &Request{ClientID: uuid.New(), ServiceID: svc.ID, Date: testDay, StartTime: "25:99"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tc.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
