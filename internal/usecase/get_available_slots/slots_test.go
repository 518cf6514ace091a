package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	"github.com/sharpcut/SC-AppointmentService/pkg/ptr"
	"github.com/sharpcut/SC-AppointmentService/pkg/types"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // понедельник

func hoursRecord(start, end string) domain.BusinessHours {
	return domain.BusinessHours{
		DayOfWeek: int(testDay.Weekday()),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func at(hour, minute int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), hour, minute, 0, 0, time.UTC)
}

func slot(startHour, startMin, endHour, endMin int) domain.TimeSlot {
	return domain.TimeSlot{
		StartsAt:  at(startHour, startMin),
		EndsAt:    at(endHour, endMin),
		Available: true,
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("базовый сценарий: 09:00-10:00, услуга 30 минут, шаг 15", func(t *testing.T) {
		slots, err := generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("09:00", "10:00")}, 30, 15)
		require.NoError(t, err)

		expected := []domain.TimeSlot{
			slot(9, 0, 9, 30),
			slot(9, 15, 9, 45),
			slot(9, 30, 10, 0), // конец ровно в закрытие - включается
		}
		assert.Equal(t, expected, slots)
	})

	t.Run("нет записей расписания - пустой результат без ошибки", func(t *testing.T) {
		slots, err := generateTimeSlots(testDay, nil, 30, 15)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("окно короче длительности услуги - ноль слотов", func(t *testing.T) {
		slots, err := generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("09:00", "09:20")}, 30, 15)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("количество слотов: floor((close-open-d)/step)+1", func(t *testing.T) {
		cases := []struct {
			start, end string
			duration   int
			want       int
		}{
			{"09:00", "17:00", 60, 29}, // (480-60)/15+1
			{"09:00", "12:00", 30, 11}, // (180-30)/15+1
			{"09:00", "09:30", 30, 1},
			{"09:00", "09:45", 45, 1},
			{"10:00", "11:00", 90, 0},
		}

		for _, tc := range cases {
			slots, err := generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord(tc.start, tc.end)}, tc.duration, 15)
			require.NoError(t, err)
			assert.Len(t, slots, tc.want, "окно %s-%s, услуга %d мин", tc.start, tc.end, tc.duration)
		}
	})

	t.Run("слоты строго возрастают по началу, без дублей", func(t *testing.T) {
		slots, err := generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("09:00", "18:00")}, 45, 15)
		require.NoError(t, err)
		require.NotEmpty(t, slots)

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].StartsAt.Before(slots[i].StartsAt))
		}
	})

	t.Run("несколько смен объединяются по возрастанию", func(t *testing.T) {
		// Вечерняя смена передана первой - порядок входа не важен
		shifts := []domain.BusinessHours{
			hoursRecord("14:00", "15:00"),
			hoursRecord("09:00", "10:00"),
		}
		slots, err := generateTimeSlots(testDay, shifts, 30, 15)
		require.NoError(t, err)

		expected := []domain.TimeSlot{
			slot(9, 0, 9, 30),
			slot(9, 15, 9, 45),
			slot(9, 30, 10, 0),
			slot(14, 0, 14, 30),
			slot(14, 15, 14, 45),
			slot(14, 30, 15, 0),
		}
		assert.Equal(t, expected, slots)
	})

	t.Run("пересекающиеся смены не дают дублей слотов", func(t *testing.T) {
		shifts := []domain.BusinessHours{
			hoursRecord("09:00", "10:00"),
			hoursRecord("09:00", "10:00"),
		}
		slots, err := generateTimeSlots(testDay, shifts, 30, 15)
		require.NoError(t, err)
		assert.Len(t, slots, 3)
	})

	t.Run("некорректная длительность - ошибка", func(t *testing.T) {
		_, err := generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("09:00", "10:00")}, 0, 15)
		assert.ErrorIs(t, err, ErrInvalidDuration)

		_, err = generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("09:00", "10:00")}, -30, 15)
		assert.ErrorIs(t, err, ErrInvalidDuration)

		_, err = generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("09:00", "10:00")}, 30, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("смена с start >= end - ошибка расписания", func(t *testing.T) {
		_, err := generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("18:00", "09:00")}, 30, 15)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestFilterAvailableSlots(t *testing.T) {
	candidates := []domain.TimeSlot{
		slot(9, 0, 9, 30),
		slot(9, 15, 9, 45),
		slot(9, 30, 10, 0),
	}
	beforeOpen := at(8, 0)

	t.Run("без записей и в будущем - все кандидаты доступны", func(t *testing.T) {
		got := filterAvailableSlots(candidates, nil, beforeOpen)
		assert.Equal(t, candidates, got)
	})

	t.Run("запись 09:20-09:50 выбивает все три слота", func(t *testing.T) {
		booked := []domain.BookedInterval{{StartsAt: at(9, 20), EndsAt: at(9, 50)}}
		got := filterAvailableSlots(candidates, booked, beforeOpen)
		assert.Empty(t, got)
	})

	t.Run("запись ровно 09:00-09:30: совпадающий слот выбит, соседний вплотную остаётся", func(t *testing.T) {
		booked := []domain.BookedInterval{{StartsAt: at(9, 0), EndsAt: at(9, 30)}}
		got := filterAvailableSlots(candidates, booked, beforeOpen)

		// 09:00-09:30 совпадает началом и концом, 09:15-09:45 пересекается,
		// 09:30-10:00 лишь касается конца записи - он свободен
		assert.Equal(t, []domain.TimeSlot{slot(9, 30, 10, 0)}, got)
	})

	t.Run("now=09:10 выбивает только слот из прошлого", func(t *testing.T) {
		got := filterAvailableSlots(candidates, nil, at(9, 10))
		assert.Equal(t, []domain.TimeSlot{slot(9, 15, 9, 45), slot(9, 30, 10, 0)}, got)
	})

	t.Run("слот, начинающийся ровно в now, остаётся", func(t *testing.T) {
		got := filterAvailableSlots(candidates, nil, at(9, 0))
		assert.Equal(t, candidates, got)
	})

	t.Run("у всех выживших слотов start >= now и нет пересечений", func(t *testing.T) {
		booked := []domain.BookedInterval{
			{StartsAt: at(9, 20), EndsAt: at(9, 40)},
			{StartsAt: at(11, 0), EndsAt: at(11, 30)},
		}
		now := at(9, 5)

		wide, err := generateTimeSlots(testDay, []domain.BusinessHours{hoursRecord("09:00", "12:00")}, 30, 15)
		require.NoError(t, err)

		got := filterAvailableSlots(wide, booked, now)
		for _, s := range got {
			assert.False(t, s.StartsAt.Before(now))
			for _, b := range booked {
				assert.False(t, intervalsOverlap(s.StartsAt, s.EndsAt, b.StartsAt, b.EndsAt),
					"слот %s пересекается с записью %s", s.StartsAt, b.StartsAt)
			}
		}
	})
}

func TestIntervalsOverlap(t *testing.T) {
	cases := []struct {
		name           string
		s, e, bs, be   time.Time
		wantOverlap    bool
	}{
		{"начало слота внутри записи", at(9, 30), at(10, 0), at(9, 20), at(9, 40), true},
		{"конец слота внутри записи", at(9, 0), at(9, 30), at(9, 20), at(9, 50), true},
		{"слот целиком накрывает запись", at(9, 0), at(10, 0), at(9, 15), at(9, 45), true},
		{"запись целиком накрывает слот", at(9, 15), at(9, 30), at(9, 0), at(10, 0), true},
		{"одинаковое начало", at(9, 0), at(9, 30), at(9, 0), at(10, 0), true},
		{"одинаковый конец", at(9, 30), at(10, 0), at(9, 0), at(10, 0), true},
		{"полное совпадение", at(9, 0), at(9, 30), at(9, 0), at(9, 30), true},
		{"слот заканчивается в начале записи - не пересечение", at(9, 0), at(9, 30), at(9, 30), at(10, 0), false},
		{"слот начинается в конце записи - не пересечение", at(9, 30), at(10, 0), at(9, 0), at(9, 30), false},
		{"интервалы далеко друг от друга", at(9, 0), at(9, 30), at(12, 0), at(13, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOverlap, intervalsOverlap(tc.s, tc.e, tc.bs, tc.be))
		})
	}
}

func TestIsDayBlocked(t *testing.T) {
	blocked := []domain.BlockedDate{
		{
			StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			Reason:    ptr.Ptr("отпуск"),
		},
	}

	t.Run("день внутри диапазона", func(t *testing.T) {
		assert.True(t, isDayBlocked(testDay, blocked))
	})

	t.Run("границы включительные", func(t *testing.T) {
		assert.True(t, isDayBlocked(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), blocked))
		assert.True(t, isDayBlocked(time.Date(2025, 6, 3, 23, 50, 0, 0, time.UTC), blocked))
	})

	t.Run("день вне диапазона", func(t *testing.T) {
		assert.False(t, isDayBlocked(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), blocked))
		assert.False(t, isDayBlocked(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), blocked))
	})

	t.Run("пустой список блокировок", func(t *testing.T) {
		assert.False(t, isDayBlocked(testDay, nil))
	})
}
