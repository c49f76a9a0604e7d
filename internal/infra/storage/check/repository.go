package check

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

const checkColumns = "id, room_id, trainer_id, client_id, terminal_id, week_start, start_time, end_time, trainer_name, client_name, created_at, updated_at"

// Repository репозиторий для работы с чеками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория чеков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый чек.
// Если в контексте передана активная транзакция, использует её - это
// обязательно при создании с проверкой занятости слота (защита от race
// condition между проверкой и вставкой).
func (r *Repository) Create(ctx context.Context, check *domain.Check) (*domain.Check, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if check.ID == "" {
		check.ID = uuid.NewString()
	}

	// Временные метки нормализуются до минутной точности - ключи слотов
	// строятся из того, что лежит в базе
	check.StartTime = schedule.Normalize(check.StartTime)
	check.EndTime = schedule.Normalize(check.EndTime)

	query, args, err := psqlbuilder.Insert("checks").
		Columns(
			"id",
			"room_id",
			"trainer_id",
			"client_id",
			"terminal_id",
			"week_start",
			"start_time",
			"end_time",
			"trainer_name",
			"client_name",
		).
		Values(
			check.ID,
			check.RoomID,
			check.TrainerID,
			check.ClientID,
			check.TerminalID,
			check.WeekStart,
			check.StartTime,
			check.EndTime,
			check.TrainerName,
			check.ClientName,
		).
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

	check.CreatedAt = createdAt.Time
	check.UpdatedAt = updatedAt.Time

	return check, nil
}

// GetByID получает чек по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Check, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(checkColumns).
		From("checks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	check, err := scanCheck(row)
	if err == sql.ErrNoRows {
		return nil, ErrCheckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan check: %v", ErrScanRow, err)
	}

	return check, nil
}

// GetByRoomAndWeek получает чеки комнаты за неделю, отсортированные по
// времени начала. Опционально фильтрует по тренеру.
//
// Внутри транзакции добавляет FOR UPDATE - выборка недели при создании
// чека блокирует конкурентные вставки в ту же неделю.
func (r *Repository) GetByRoomAndWeek(ctx context.Context, filter domain.WeekChecksFilter) ([]domain.Check, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(checkColumns).
		From("checks").
		Where(squirrel.Eq{"room_id": filter.RoomID}).
		Where(squirrel.Eq{"week_start": filter.WeekStart}).
		OrderBy("start_time ASC")

	// Фильтрация по тренеру (если указан)
	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanChecks(rows)
}

// Delete удаляет чек (физическое удаление - оригинальный продукт не ведёт
// историю отменённых сессий)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("checks").
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
		return ErrCheckNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCheck(row rowScanner) (*domain.Check, error) {
	var check domain.Check
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&check.ID,
		&check.RoomID,
		&check.TrainerID,
		&check.ClientID,
		&check.TerminalID,
		&check.WeekStart,
		&check.StartTime,
		&check.EndTime,
		&check.TrainerName,
		&check.ClientName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	check.CreatedAt = createdAt.Time
	check.UpdatedAt = updatedAt.Time

	return &check, nil
}

// scanChecks сканирует результаты запроса в слайс чеков
func scanChecks(rows *sql.Rows) ([]domain.Check, error) {
	checks := make([]domain.Check, 0)

	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanChecks - scan row: %v", ErrScanRow, err)
		}
		checks = append(checks, *check)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanChecks - rows error: %v", ErrScanRow, err)
	}

	return checks, nil
}
