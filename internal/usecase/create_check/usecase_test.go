package create_check

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	roomRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/room"
	"github.com/stevenluongo/bna-wellness/internal/integrations/memberservice"
)

type fakeCheckRepo struct {
	checks  []domain.Check
	created *domain.Check
}

func (f *fakeCheckRepo) Create(_ context.Context, check *domain.Check) (*domain.Check, error) {
	check.ID = "check-new"
	f.created = check
	return check, nil
}

func (f *fakeCheckRepo) GetByRoomAndWeek(_ context.Context, _ domain.WeekChecksFilter) ([]domain.Check, error) {
	return f.checks, nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ string) (*domain.Room, error) {
	return f.room, f.err
}

type fakeMemberClient struct {
	trainerErr error
	clientErr  error
}

func (f *fakeMemberClient) GetTrainer(_ context.Context, id string) (*memberservice.Trainer, error) {
	if f.trainerErr != nil {
		return nil, f.trainerErr
	}
	return &memberservice.Trainer{ID: id, FirstName: "Steven", LastName: "Luongo"}, nil
}

func (f *fakeMemberClient) GetClient(_ context.Context, id string) (*memberservice.StudioClient, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return &memberservice.StudioClient{ID: id, FirstName: "Jane", LastName: "Doe"}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func validRequest() *Request {
	return &Request{
		TrainerID:  "trainer-a",
		ClientID:   "client-1",
		TerminalID: "terminal-1",
		RoomID:     "room-1",
		StartTime:  datetime(2026, 1, 12, 10, 0),
		EndTime:    datetime(2026, 1, 12, 11, 30),
	}
}

func newTestUseCase(repo *fakeCheckRepo, rooms *fakeRoomRepo, members MemberServiceClient) *UseCase {
	return NewUseCase(repo, rooms, members, nil, fakeTxManager{}, 30, time.Sunday, nopLogger{})
}

func TestExecute_CreatesCheck(t *testing.T) {
	repo := &fakeCheckRepo{}
	uc := newTestUseCase(repo, &fakeRoomRepo{room: testRoom()}, &fakeMemberClient{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "check-new", resp.ID)
	require.NotNil(t, repo.created)

	// Неделя выводится из начала интервала: понедельник 12 января
	// принадлежит неделе с воскресенья 11 января
	assert.Equal(t, datetime(2026, 1, 11, 0, 0), repo.created.WeekStart)
	require.NotNil(t, resp.TrainerName)
	assert.Equal(t, "Steven Luongo", *resp.TrainerName)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Jane Doe", *resp.ClientName)
}

func TestExecute_RejectsBlockedSlot(t *testing.T) {
	// Существующий чек того же тренера пересекается с новым интервалом
	repo := &fakeCheckRepo{checks: []domain.Check{{
		ID:        "existing",
		TrainerID: "trainer-a",
		StartTime: datetime(2026, 1, 12, 11, 0),
		EndTime:   datetime(2026, 1, 12, 12, 0),
	}}}
	uc := newTestUseCase(repo, &fakeRoomRepo{room: testRoom()}, &fakeMemberClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBlocked)
	assert.Nil(t, repo.created)
}

func TestExecute_ResidualTailDoesNotConflict(t *testing.T) {
	// Чек 10:00-10:45 занимает только слот 10:00: неполный хвост в 15
	// минут не конфликтует с чеком того же тренера на 10:30
	repo := &fakeCheckRepo{checks: []domain.Check{{
		ID:        "existing",
		TrainerID: "trainer-a",
		StartTime: datetime(2026, 1, 12, 10, 30),
		EndTime:   datetime(2026, 1, 12, 11, 0),
	}}}
	uc := newTestUseCase(repo, &fakeRoomRepo{room: testRoom()}, &fakeMemberClient{})

	req := validRequest()
	req.EndTime = datetime(2026, 1, 12, 10, 45)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestExecute_OtherTrainersChecksDoNotConflict(t *testing.T) {
	// Чек другого тренера на то же время не блокирует запись
	repo := &fakeCheckRepo{checks: []domain.Check{{
		ID:        "existing",
		TrainerID: "trainer-b",
		StartTime: datetime(2026, 1, 12, 10, 0),
		EndTime:   datetime(2026, 1, 12, 11, 0),
	}}}
	uc := newTestUseCase(repo, &fakeRoomRepo{room: testRoom()}, &fakeMemberClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestExecute_RejectsOutsideOperatingHours(t *testing.T) {
	req := validRequest()
	req.StartTime = datetime(2026, 1, 12, 5, 0)
	req.EndTime = datetime(2026, 1, 12, 6, 0)

	uc := newTestUseCase(&fakeCheckRepo{}, &fakeRoomRepo{room: testRoom()}, &fakeMemberClient{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_RejectsMisalignedStart(t *testing.T) {
	req := validRequest()
	req.StartTime = datetime(2026, 1, 12, 10, 15)
	req.EndTime = datetime(2026, 1, 12, 11, 15)

	uc := newTestUseCase(&fakeCheckRepo{}, &fakeRoomRepo{room: testRoom()}, &fakeMemberClient{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_RejectsInvertedInterval(t *testing.T) {
	req := validRequest()
	req.StartTime = datetime(2026, 1, 12, 11, 0)
	req.EndTime = datetime(2026, 1, 12, 10, 0)

	uc := newTestUseCase(&fakeCheckRepo{}, &fakeRoomRepo{room: testRoom()}, &fakeMemberClient{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeCheckRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, &fakeMemberClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_TrainerNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeCheckRepo{}, &fakeRoomRepo{room: testRoom()},
		&fakeMemberClient{trainerErr: memberservice.ErrTrainerNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_MemberServiceDownDegradesToNilNames(t *testing.T) {
	// Недоступность сервиса участников не блокирует запись
	uc := newTestUseCase(&fakeCheckRepo{}, &fakeRoomRepo{room: testRoom()},
		&fakeMemberClient{trainerErr: memberservice.ErrInternal, clientErr: memberservice.ErrInternal})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.TrainerName)
	assert.Nil(t, resp.ClientName)
}
