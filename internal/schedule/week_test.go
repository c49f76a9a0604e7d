package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestComputeWeek_SevenConsecutiveDates(t *testing.T) {
	// Среда 14 января 2026
	week := ComputeWeek(datetime(2026, 1, 14, 15, 45), time.Sunday)

	require.Len(t, week.Dates, 7)
	assert.Equal(t, time.Sunday, week.Dates[0].Weekday())
	assert.Equal(t, datetime(2026, 1, 11, 0, 0), week.Dates[0])

	for i := 1; i < 7; i++ {
		assert.Equal(t, 24*time.Hour, week.Dates[i].Sub(week.Dates[i-1]),
			"dates must increase by exactly 24 hours")
	}
}

func TestComputeWeek_ReferenceOnWeekStartDay(t *testing.T) {
	// Воскресенье остаётся началом своей же недели
	week := ComputeWeek(datetime(2026, 1, 11, 9, 30), time.Sunday)

	assert.Equal(t, datetime(2026, 1, 11, 0, 0), week.Dates[0])
	assert.Equal(t, datetime(2026, 1, 17, 0, 0), week.Dates[6])
}

func TestComputeWeek_MondayStart(t *testing.T) {
	week := ComputeWeek(datetime(2026, 1, 14, 8, 0), time.Monday)

	assert.Equal(t, time.Monday, week.Dates[0].Weekday())
	assert.Equal(t, datetime(2026, 1, 12, 0, 0), week.Dates[0])
}

func TestComputeWeek_KeyMatchesStart(t *testing.T) {
	week := ComputeWeek(datetime(2026, 1, 14, 15, 45), time.Sunday)

	assert.Equal(t, TimeKey(week.Dates[0]), week.Key)
	assert.Equal(t, week.Dates[0], week.Start())

	parsed, err := ParseWeekKey(week.Key)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(week.Dates[0]))
}

func TestComputeWeek_CrossesMonthBoundary(t *testing.T) {
	// 1 февраля 2026 - воскресенье; ссылка на понедельник 2 февраля
	week := ComputeWeek(datetime(2026, 2, 2, 12, 0), time.Sunday)

	assert.Equal(t, datetime(2026, 2, 1, 0, 0), week.Dates[0])
	assert.Equal(t, datetime(2026, 2, 7, 0, 0), week.Dates[6])
}

func TestShiftWeek_RoundTrip(t *testing.T) {
	week := ComputeWeek(datetime(2026, 1, 14, 0, 0), time.Sunday)

	for _, delta := range []int{1, 4, 52, -3} {
		shifted, err := ShiftWeek(week.Key, delta)
		require.NoError(t, err)

		back, err := ShiftWeek(shifted, -delta)
		require.NoError(t, err)
		assert.Equal(t, week.Key, back, "shift by %d then back must be identity", delta)
	}
}

func TestShiftWeek_NextWeek(t *testing.T) {
	week := ComputeWeek(datetime(2026, 1, 14, 0, 0), time.Sunday)

	next, err := ShiftWeek(week.Key, 1)
	require.NoError(t, err)

	start, err := ParseWeekKey(next)
	require.NoError(t, err)
	assert.Equal(t, datetime(2026, 1, 18, 0, 0), start)
}

func TestShiftWeek_InvalidKey(t *testing.T) {
	_, err := ShiftWeek("not-a-week-key", 1)
	assert.Error(t, err)
}
