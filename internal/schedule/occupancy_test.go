package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stevenluongo/bna-wellness/internal/domain"
	"github.com/stevenluongo/bna-wellness/pkg/ptr"
)

func check(trainerID string, start, end time.Time) domain.Check {
	return domain.Check{
		ID:        "check-" + trainerID + start.Format("150405"),
		TrainerID: trainerID,
		StartTime: start,
		EndTime:   end,
	}
}

func TestBuildOccupancy_NinetyMinuteCheck(t *testing.T) {
	// Чек ровно 90 минут с границы слота: span 3, заблокированы три
	// получасовых слота, четвёртый свободен
	c := check("trainer-a", datetime(2026, 1, 12, 10, 0), datetime(2026, 1, 12, 11, 30))

	occ := BuildOccupancy([]domain.Check{c}, nil, 30)

	assert.Equal(t, 3, occ.SpanOf(c))
	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 0)))
	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 30)))
	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 11, 0)))
	assert.False(t, occ.IsBlocked(datetime(2026, 1, 12, 11, 30)))
}

func TestBuildOccupancy_ResidualMinutesTruncated(t *testing.T) {
	// Чек 10:00-10:45 при шаге 30: span 1, остаток в 15 минут не
	// блокируется и не отображается
	c := check("trainer-a", datetime(2026, 1, 12, 10, 0), datetime(2026, 1, 12, 10, 45))

	occ := BuildOccupancy([]domain.Check{c}, nil, 30)

	assert.Equal(t, 1, occ.SpanOf(c))
	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 0)))
	assert.False(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 30)))
}

func TestBuildOccupancy_BlockedSetMatchesSpan(t *testing.T) {
	// Конечная метка с чужой датой: заблокированы ровно span слотов от
	// начала, хвост за пределами span свободен
	c := check("trainer-a", datetime(2026, 1, 12, 10, 0), datetime(2026, 1, 19, 11, 0))

	occ := BuildOccupancy([]domain.Check{c}, nil, 30)

	assert.Equal(t, 2, occ.SpanOf(c))
	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 0)))
	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 30)))
	assert.False(t, occ.IsBlocked(datetime(2026, 1, 12, 11, 0)))
	assert.False(t, occ.IsBlocked(datetime(2026, 1, 13, 10, 0)))
}

func TestBuildOccupancy_ViewerSeesOnlyOwnChecks(t *testing.T) {
	checks := []domain.Check{
		check("trainer-a", datetime(2026, 1, 12, 10, 0), datetime(2026, 1, 12, 10, 30)),
		check("trainer-b", datetime(2026, 1, 12, 14, 0), datetime(2026, 1, 12, 14, 30)),
	}

	occ := BuildOccupancy(checks, ptr.Ptr("trainer-a"), 30)

	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 0)))
	assert.False(t, occ.IsBlocked(datetime(2026, 1, 12, 14, 0)),
		"another trainer's check must not block this viewer's grid")
}

func TestBuildOccupancy_NilViewerBlocksAll(t *testing.T) {
	checks := []domain.Check{
		check("trainer-a", datetime(2026, 1, 12, 10, 0), datetime(2026, 1, 12, 10, 30)),
		check("trainer-b", datetime(2026, 1, 12, 14, 0), datetime(2026, 1, 12, 14, 30)),
	}

	occ := BuildOccupancy(checks, nil, 30)

	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 0)))
	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 14, 0)))
}

func TestBuildOccupancy_MalformedCheckDegrades(t *testing.T) {
	// end <= start: один заблокированный слот и span 1, не ошибка
	c := check("trainer-a", datetime(2026, 1, 12, 10, 0), datetime(2026, 1, 12, 10, 0))

	occ := BuildOccupancy([]domain.Check{c}, nil, 30)

	assert.True(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 0)))
	assert.False(t, occ.IsBlocked(datetime(2026, 1, 12, 10, 30)))
	assert.Equal(t, 1, occ.SpanOf(c))
}

func TestSpanOf_ReanchorsEndOntoStartDate(t *testing.T) {
	// Конечная метка случайно несёт другую дату: читается только её
	// время суток, применённое к дате начала
	c := check("trainer-a", datetime(2026, 1, 12, 10, 0), datetime(2026, 1, 19, 11, 0))

	occ := BuildOccupancy(nil, nil, 30)

	assert.Equal(t, 2, occ.SpanOf(c))
}

func TestBuildOccupancy_BlockedKeysMatchGridKeys(t *testing.T) {
	// Ключи blocked-набора - это в точности ключи слотовой сетки:
	// поиск по слоту, произведённому Slots, всегда попадает чисто
	open := datetime(2020, 1, 1, 9, 0)
	close := datetime(2020, 1, 1, 12, 0)
	anchor := datetime(2026, 1, 12, 0, 0)

	c := check("trainer-a", datetime(2026, 1, 12, 9, 30), datetime(2026, 1, 12, 11, 0))
	occ := BuildOccupancy([]domain.Check{c}, nil, 30)

	var blockedCount int
	for _, slot := range Slots(open, close, anchor, 30) {
		if occ.IsBlocked(slot) {
			blockedCount++
		}
	}
	assert.Equal(t, 3, blockedCount)
}

func TestBuildOccupancy_DefaultStep(t *testing.T) {
	occ := BuildOccupancy(nil, nil, 0)
	assert.Equal(t, domain.DefaultStepMinutes, occ.Step())
}
