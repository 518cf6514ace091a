package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	storage "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/schedule"
	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	hours    []domain.BusinessHours
	blocked  []domain.BlockedDate
	replaced []domain.BusinessHours
	deleted  []int64
	err      error
}

func (f *fakeScheduleRepo) GetBusinessHours(_ context.Context) ([]domain.BusinessHours, error) {
	return f.hours, f.err
}

func (f *fakeScheduleRepo) ReplaceBusinessHours(_ context.Context, hours []domain.BusinessHours) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = hours
	return nil
}

func (f *fakeScheduleRepo) GetBlockedDates(_ context.Context, _ time.Time) ([]domain.BlockedDate, error) {
	return f.blocked, f.err
}

func (f *fakeScheduleRepo) CreateBlockedDate(_ context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	if f.err != nil {
		return nil, f.err
	}
	blocked.ID = 1
	return blocked, nil
}

func (f *fakeScheduleRepo) DeleteBlockedDate(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.blocked {
		if b.ID == id {
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return storage.ErrBlockedDateNotFound
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func entry(day int, start, end string) models.BusinessHoursEntry {
	return models.BusinessHoursEntry{DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestService_ReplaceBusinessHours(t *testing.T) {
	t.Run("замена выполняется в транзакции", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		txMgr := &fakeTxManager{}
		svc := NewService(repo, txMgr, nopLogger{})

		err := svc.ReplaceBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
			Hours: []models.BusinessHoursEntry{
				entry(1, "09:00", "13:00"),
				entry(1, "14:00", "18:00"),
				entry(2, "09:00", "18:00"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, txMgr.calls)
		assert.Len(t, repo.replaced, 3)
	})

	t.Run("смены могут соприкасаться", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		err := svc.ReplaceBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
			Hours: []models.BusinessHoursEntry{
				entry(1, "09:00", "13:00"),
				entry(1, "13:00", "18:00"),
			},
		})
		assert.NoError(t, err)
	})

	t.Run("пересекающиеся смены отклоняются", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		err := svc.ReplaceBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
			Hours: []models.BusinessHoursEntry{
				entry(1, "09:00", "14:00"),
				entry(1, "13:00", "18:00"),
			},
		})
		assert.ErrorIs(t, err, ErrOverlappingShifts)
		assert.Nil(t, repo.replaced)
	})

	t.Run("начало не раньше конца", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		err := svc.ReplaceBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
			Hours: []models.BusinessHoursEntry{entry(1, "18:00", "09:00")},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("некорректный формат времени", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		err := svc.ReplaceBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
			Hours: []models.BusinessHoursEntry{entry(1, "9am", "18:00")},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("некорректный день недели", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		err := svc.ReplaceBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
			Hours: []models.BusinessHoursEntry{entry(7, "09:00", "18:00")},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_AddBlockedDate(t *testing.T) {
	t.Run("успешное добавление", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		got, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
			StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-07-01", got.StartDate)
		assert.Equal(t, "2025-07-14", got.EndDate)
	})

	t.Run("один день допустим", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
			StartDate: day,
			EndDate:   day,
		})
		assert.NoError(t, err)
	})

	t.Run("конец раньше начала", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
			StartDate: time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_RemoveBlockedDate(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo := &fakeScheduleRepo{blocked: []domain.BlockedDate{{ID: 42}}}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		err := svc.RemoveBlockedDate(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, []int64{42}, repo.deleted)
	})

	t.Run("блокировка не найдена", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

		err := svc.RemoveBlockedDate(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBlockedDateNotFound)
	})
}
