package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_FullDay(t *testing.T) {
	// Комната работает 06:30-20:00, шаг 30 минут -> 27 слотов
	open := datetime(2020, 5, 5, 6, 30)   // дата открытия не имеет значения
	close := datetime(2021, 9, 9, 20, 0)  // только время суток
	anchor := datetime(2026, 1, 12, 0, 0) // понедельник

	slots := Slots(open, close, anchor, 30)

	require.Len(t, slots, 27)
	assert.Equal(t, datetime(2026, 1, 12, 6, 30), slots[0])
	assert.Equal(t, datetime(2026, 1, 12, 19, 30), slots[26])

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30*time.Minute, slots[i].Sub(slots[i-1]))
	}
}

func TestSlots_CountMatchesRange(t *testing.T) {
	// (close-open)/step слотов, последний строго раньше времени закрытия
	open := datetime(2026, 1, 12, 9, 0)
	close := datetime(2026, 1, 12, 17, 0)

	slots := Slots(open, close, open, 60)

	require.Len(t, slots, 8)
	assert.True(t, slots[len(slots)-1].Before(close))
}

func TestSlots_OpenEqualsClose(t *testing.T) {
	open := datetime(2026, 1, 12, 9, 0)

	assert.Empty(t, Slots(open, open, open, 30))
}

func TestSlots_OpenAfterClose(t *testing.T) {
	open := datetime(2026, 1, 12, 20, 0)
	close := datetime(2026, 1, 12, 6, 0)

	assert.Empty(t, Slots(open, close, open, 30))
}

func TestSlots_NonPositiveStep(t *testing.T) {
	open := datetime(2026, 1, 12, 9, 0)
	close := datetime(2026, 1, 12, 17, 0)

	assert.Empty(t, Slots(open, close, open, 0))
	assert.Empty(t, Slots(open, close, open, -30))
}

func TestSlots_ReanchoredOntoEachDate(t *testing.T) {
	// Одна и та же конфигурация часов даёт одинаковую сетку на каждый
	// день недели, отличающуюся только датой
	open := datetime(2020, 1, 1, 10, 0)
	close := datetime(2020, 1, 1, 12, 0)
	week := ComputeWeek(datetime(2026, 1, 14, 0, 0), time.Sunday)

	for _, date := range week.Dates {
		slots := Slots(open, close, date, 30)
		require.Len(t, slots, 4)
		assert.Equal(t, SetTimeOfDay(date, open), slots[0])
	}
}

func TestSlots_Deterministic(t *testing.T) {
	open := datetime(2026, 1, 12, 6, 30)
	close := datetime(2026, 1, 12, 20, 0)
	anchor := datetime(2026, 1, 12, 0, 0)

	assert.Equal(t, Slots(open, close, anchor, 30), Slots(open, close, anchor, 30))
}

func TestTimeKey_NormalizesSeconds(t *testing.T) {
	withSeconds := time.Date(2026, 1, 12, 10, 30, 59, 123456, time.UTC)

	assert.Equal(t, TimeKey(datetime(2026, 1, 12, 10, 30)), TimeKey(withSeconds))
}

func TestSetTimeOfDay(t *testing.T) {
	date := datetime(2026, 1, 15, 23, 59)
	tod := time.Date(1999, 3, 7, 14, 45, 33, 500, time.UTC)

	assert.Equal(t, datetime(2026, 1, 15, 14, 45), SetTimeOfDay(date, tod))
}
