package get_week_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	roomRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/room"
	"github.com/stevenluongo/bna-wellness/internal/schedule"
	"github.com/stevenluongo/bna-wellness/pkg/ptr"
)

type fakeCheckRepo struct {
	checks []domain.Check
	err    error
}

func (f *fakeCheckRepo) GetByRoomAndWeek(_ context.Context, _ domain.WeekChecksFilter) ([]domain.Check, error) {
	return f.checks, f.err
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ string) (*domain.Room, error) {
	return f.room, f.err
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

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:        "room-1",
		Location:  "Weights",
		OpenTime:  datetime(2020, 1, 1, 6, 30),
		CloseTime: datetime(2020, 1, 1, 20, 0),
	}
}

func newTestUseCase(checks []domain.Check, room *domain.Room) *UseCase {
	uc := NewUseCase(
		&fakeCheckRepo{checks: checks},
		&fakeRoomRepo{room: room},
		nil, nil,
		30, time.Sunday,
		nopLogger{},
	)
	// Среда 14 января 2026 -> неделя с воскресенья 11 января
	uc.timeProvider = &fixedTimeProvider{now: datetime(2026, 1, 14, 12, 0)}
	return uc
}

func TestExecute_GridShape(t *testing.T) {
	uc := newTestUseCase(nil, testRoom())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "room-1"})
	require.NoError(t, err)

	// 06:30-20:00 с шагом 30 минут -> 27 строк, 7 колонок
	assert.Len(t, resp.Times, 27)
	require.Len(t, resp.Days, 7)
	require.Len(t, resp.Dates, 7)

	assert.Equal(t, datetime(2026, 1, 11, 0, 0), resp.Dates[0])
	assert.Equal(t, schedule.TimeKey(datetime(2026, 1, 11, 0, 0)), resp.WeekKey)

	for _, day := range resp.Days {
		assert.Len(t, day.Cells, 27)
		// Пустая неделя: все ячейки свободны
		for _, cell := range day.Cells {
			assert.Equal(t, CellEmpty, cell.State)
		}
	}
}

func TestExecute_ClassifiesOccupiedAndBlocked(t *testing.T) {
	// Чек на 90 минут в понедельник 12 января с 10:00
	checks := []domain.Check{{
		ID:        "check-1",
		RoomID:    "room-1",
		TrainerID: "trainer-a",
		StartTime: datetime(2026, 1, 12, 10, 0),
		EndTime:   datetime(2026, 1, 12, 11, 30),
	}}

	uc := newTestUseCase(checks, testRoom())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "room-1"})
	require.NoError(t, err)

	monday := resp.Days[1]
	byKey := make(map[string]Cell)
	for _, cell := range monday.Cells {
		byKey[cell.Key] = cell
	}

	start := byKey[schedule.TimeKey(datetime(2026, 1, 12, 10, 0))]
	require.Equal(t, CellOccupied, start.State)
	assert.Equal(t, 3, start.Span)
	require.NotNil(t, start.Check)
	assert.Equal(t, "check-1", start.Check.ID)

	// Накрытые продолжением слоты гасятся, следующий за чеком свободен
	assert.Equal(t, CellBlocked, byKey[schedule.TimeKey(datetime(2026, 1, 12, 10, 30))].State)
	assert.Equal(t, CellBlocked, byKey[schedule.TimeKey(datetime(2026, 1, 12, 11, 0))].State)
	assert.Equal(t, CellEmpty, byKey[schedule.TimeKey(datetime(2026, 1, 12, 11, 30))].State)
}

func TestExecute_ViewerSeesOnlyOwnChecks(t *testing.T) {
	checks := []domain.Check{
		{
			ID:        "check-a",
			TrainerID: "trainer-a",
			StartTime: datetime(2026, 1, 12, 10, 0),
			EndTime:   datetime(2026, 1, 12, 10, 30),
		},
		{
			ID:        "check-b",
			TrainerID: "trainer-b",
			StartTime: datetime(2026, 1, 12, 14, 0),
			EndTime:   datetime(2026, 1, 12, 14, 30),
		},
	}

	uc := newTestUseCase(checks, testRoom())

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   "room-1",
		ViewerID: ptr.Ptr("trainer-a"),
	})
	require.NoError(t, err)

	byKey := make(map[string]Cell)
	for _, cell := range resp.Days[1].Cells {
		byKey[cell.Key] = cell
	}

	assert.Equal(t, CellOccupied, byKey[schedule.TimeKey(datetime(2026, 1, 12, 10, 0))].State)
	// Чек другого тренера невидим: его слот остаётся свободным
	assert.Equal(t, CellEmpty, byKey[schedule.TimeKey(datetime(2026, 1, 12, 14, 0))].State)
}

func TestExecute_ExplicitWeekKey(t *testing.T) {
	uc := newTestUseCase(nil, testRoom())

	weekKey := schedule.TimeKey(datetime(2026, 2, 1, 0, 0))
	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:  "room-1",
		WeekKey: ptr.Ptr(weekKey),
	})
	require.NoError(t, err)

	assert.Equal(t, weekKey, resp.WeekKey)
	assert.Equal(t, datetime(2026, 2, 1, 0, 0), resp.Dates[0])
}

func TestExecute_WeekNavigationKeys(t *testing.T) {
	uc := newTestUseCase(nil, testRoom())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "room-1"})
	require.NoError(t, err)

	prev, err := schedule.ParseWeekKey(resp.PrevWeekKey)
	require.NoError(t, err)
	next, err := schedule.ParseWeekKey(resp.NextWeekKey)
	require.NoError(t, err)

	assert.Equal(t, datetime(2026, 1, 4, 0, 0), prev)
	assert.Equal(t, datetime(2026, 1, 18, 0, 0), next)
}

func TestExecute_InvalidWeekKey(t *testing.T) {
	uc := newTestUseCase(nil, testRoom())

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:  "room-1",
		WeekKey: ptr.Ptr("garbage"),
	})
	assert.ErrorIs(t, err, ErrInvalidWeekKey)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeCheckRepo{},
		&fakeRoomRepo{err: roomRepo.ErrRoomNotFound},
		nil, nil,
		30, time.Sunday,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{RoomID: "missing"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_RoomWithoutHours(t *testing.T) {
	room := testRoom()
	room.OpenTime = datetime(2020, 1, 1, 9, 0)
	room.CloseTime = datetime(2020, 1, 1, 9, 0)

	uc := newTestUseCase(nil, room)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: "room-1"})
	require.NoError(t, err)

	// Комната без часов работы: валидный ответ с пустой сеткой
	assert.Empty(t, resp.Times)
	for _, day := range resp.Days {
		assert.Empty(t, day.Cells)
	}
}
