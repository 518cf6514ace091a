package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "корректное время", input: "09:30", want: TimeString("09:30")},
		{name: "полночь", input: "00:00", want: TimeString("00:00")},
		{name: "конец дня", input: "23:59", want: TimeString("23:59")},
		{name: "некорректный час", input: "25:00", wantErr: true},
		{name: "некорректные минуты", input: "10:75", wantErr: true},
		{name: "без ведущего нуля", input: "9:30", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
		{name: "мусор", input: "abcde", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC)

	got, err := TimeString("09:15").OnDate(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC), got)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:30").IsAfter("09:00"))
	// Лексикографическое сравнение корректно только для формата с ведущими нулями
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("внутри часа", func(t *testing.T) {
		got, err := TimeString("09:00").AddMinutes(15)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:15"), got)
	})

	t.Run("через границу часа", func(t *testing.T) {
		got, err := TimeString("09:50").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:20"), got)
	})

	t.Run("отрицательные минуты", func(t *testing.T) {
		_, err := TimeString("09:00").AddMinutes(-5)
		assert.ErrorIs(t, err, ErrInvalidMinutes)
	})
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("строка HH:MM", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:30"))
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("строка HH:MM:SS из Postgres", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:30:00"))
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 14, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:45"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		ts := TimeString("09:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("валидное время", func(t *testing.T) {
		v, err := TimeString("09:30").Value()
		require.NoError(t, err)
		assert.Equal(t, "09:30", v)
	})

	t.Run("пустое время пишется как NULL", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("некорректное время", func(t *testing.T) {
		_, err := TimeString("99:99").Value()
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}
