package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	"github.com/stevenluongo/bna-wellness/internal/schedule"
	"github.com/stevenluongo/bna-wellness/pkg/psqlbuilder"
	"github.com/stevenluongo/bna-wellness/pkg/txmanager"
)

const roomColumns = "id, location, open_time, close_time, created_at, updated_at"

// Repository репозиторий для работы с комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую комнату
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	// Для часов работы значимо только время суток, но храним полную метку
	// как в исходной записи (сетка переякоривает её на каждую дату недели)
	room.OpenTime = schedule.Normalize(room.OpenTime)
	room.CloseTime = schedule.Normalize(room.CloseTime)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("id", "location", "open_time", "close_time").
		Values(room.ID, room.Location, room.OpenTime, room.CloseTime).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Location,
		&room.OpenTime,
		&room.CloseTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// List получает все комнаты студии в порядке создания
func (r *Repository) List(ctx context.Context) ([]domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns).
		From("rooms").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.Location,
			&room.OpenTime,
			&room.CloseTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Update обновляет указанные поля комнаты (nil-поля не трогаются)
func (r *Repository) Update(ctx context.Context, id string, update domain.RoomUpdate) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rooms").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Location != nil {
		updateBuilder = updateBuilder.Set("location", *update.Location)
	}
	if update.OpenTime != nil {
		updateBuilder = updateBuilder.Set("open_time", schedule.Normalize(*update.OpenTime))
	}
	if update.CloseTime != nil {
		updateBuilder = updateBuilder.Set("close_time", schedule.Normalize(*update.CloseTime))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete удаляет комнату вместе с её чеками (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}
