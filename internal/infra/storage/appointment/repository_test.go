package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	return NewRepository(db), mock, func() { db.Close() }
}

func appointmentRows(appts ...*domain.Appointment) *sqlmock.Rows {
	rows := sqlmock.NewRows(appointmentColumns)
	for _, a := range appts {
		rows.AddRow(
			a.ID, a.ClientID, a.ServiceID, a.StartsAt, a.EndsAt, string(a.Status),
			a.ServiceName, a.ServicePriceCents, a.Notes,
			a.CancellationReason, a.CancelledAt, a.CreatedAt, a.UpdatedAt,
		)
	}
	return rows
}

func testAppointment() *domain.Appointment {
	starts := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:                uuid.New(),
		ClientID:          uuid.New(),
		ServiceID:         uuid.New(),
		StartsAt:          starts,
		EndsAt:            starts.Add(30 * time.Minute),
		Status:            domain.StatusConfirmed,
		ServiceName:       "Мужская стрижка",
		ServicePriceCents: 150000,
		CreatedAt:         starts.Add(-24 * time.Hour),
		UpdatedAt:         starts.Add(-24 * time.Hour),
	}
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("запись найдена", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		want := testAppointment()
		mock.ExpectQuery("SELECT .+ FROM appointments WHERE id = \\$1").
			WithArgs(want.ID).
			WillReturnRows(appointmentRows(want))

		got, err := repo.GetByID(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.ClientID, got.ClientID)
		assert.Equal(t, domain.StatusConfirmed, got.Status)
		assert.Equal(t, want.ServiceName, got.ServiceName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("запись не найдена", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		id := uuid.New()
		mock.ExpectQuery("SELECT .+ FROM appointments WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(appointmentRows())

		got, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.Nil(t, got)
	})
}

func TestRepository_GetByClientID(t *testing.T) {
	t.Run("история без фильтра", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		first := testAppointment()
		second := testAppointment()
		second.ClientID = first.ClientID

		mock.ExpectQuery("SELECT .+ FROM appointments WHERE client_id = \\$1 ORDER BY starts_at DESC").
			WithArgs(first.ClientID).
			WillReturnRows(appointmentRows(first, second))

		got, err := repo.GetByClientID(context.Background(), domain.ClientAppointmentsFilter{ClientID: first.ClientID})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("фильтр по статусу попадает в запрос", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		appt := testAppointment()
		status := domain.StatusConfirmed

		mock.ExpectQuery("SELECT .+ FROM appointments WHERE client_id = \\$1 AND status = \\$2").
			WithArgs(appt.ClientID, status).
			WillReturnRows(appointmentRows(appt))

		got, err := repo.GetByClientID(context.Background(), domain.ClientAppointmentsFilter{
			ClientID: appt.ClientID,
			Status:   &status,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, domain.StatusConfirmed, got[0].Status)
	})
}

func TestRepository_GetByDateRange(t *testing.T) {
	t.Run("отменённые записи исключаются по умолчанию", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		appt := testAppointment()
		from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		to := from.Add(24*time.Hour - time.Nanosecond)

		mock.ExpectQuery("SELECT .+ FROM appointments WHERE starts_at >= \\$1 AND starts_at <= \\$2 AND status <> \\$3").
			WithArgs(from, to, domain.StatusCancelled).
			WillReturnRows(appointmentRows(appt))

		got, err := repo.GetByDateRange(context.Background(), domain.AppointmentsRangeFilter{From: from, To: to})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("includeCancelled убирает фильтр по статусу", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		appt := testAppointment()
		from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		to := from.Add(24 * time.Hour)

		mock.ExpectQuery("SELECT .+ FROM appointments WHERE starts_at >= \\$1 AND starts_at <= \\$2 ORDER BY starts_at ASC").
			WithArgs(from, to).
			WillReturnRows(appointmentRows(appt))

		got, err := repo.GetByDateRange(context.Background(), domain.AppointmentsRangeFilter{
			From:             from,
			To:               to,
			IncludeCancelled: true,
		})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("успешное обновление", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		id := uuid.New()
		mock.ExpectExec("UPDATE appointments SET status = \\$1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), id, domain.StatusCompleted)
		assert.NoError(t, err)
	})

	t.Run("недопустимый статус отклоняется без запроса", func(t *testing.T) {
		repo, _, closeDB := newMockRepository(t)
		defer closeDB()

		err := repo.UpdateStatus(context.Background(), uuid.New(), domain.AppointmentStatus("rescheduled"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("запись не найдена", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		mock.ExpectExec("UPDATE appointments SET status = \\$1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestRepository_Cancel(t *testing.T) {
	t.Run("успешная отмена", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		mock.ExpectExec("UPDATE appointments SET status = \\$1, cancellation_reason = \\$2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Cancel(context.Background(), uuid.New(), "клиент заболел")
		assert.NoError(t, err)
	})

	t.Run("запись не найдена", func(t *testing.T) {
		repo, mock, closeDB := newMockRepository(t)
		defer closeDB()

		mock.ExpectExec("UPDATE appointments SET status = \\$1, cancellation_reason = \\$2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(context.Background(), uuid.New(), "")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
