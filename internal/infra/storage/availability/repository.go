package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/pkg/dbmetrics"
	"github.com/avdmv/DTL-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов (переиспользуем из dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

var windowColumns = []string{
	"id",
	"detailer_id",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с еженедельными окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDayOfWeek получает окна всех исполнителей на указанный день недели.
// Порядок детерминирован: по исполнителю, затем по времени начала.
// Именно этот порядок определяет порядок слотов в ответе и выбор исполнителя
// при назначении бронирования.
func (r *Repository) GetByDayOfWeek(ctx context.Context, dayOfWeek int) ([]*domain.WeeklyWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("detailer_availability").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy("detailer_id ASC, start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayOfWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayOfWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// GetByDetailer получает все окна исполнителя (недельное расписание)
func (r *Repository) GetByDetailer(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("detailer_availability").
		Where(squirrel.Eq{"detailer_id": detailerID}).
		OrderBy("day_of_week ASC, start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDetailer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDetailer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// ReplaceForDetailer целиком заменяет недельное расписание исполнителя.
// Выполняется как delete + insert; вызывающая сторона оборачивает вызов
// в транзакцию, чтобы расписание не оказалось пустым между шагами.
func (r *Repository) ReplaceForDetailer(ctx context.Context, detailerID int64, windows []*domain.WeeklyWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("detailer_availability").
		Where(squirrel.Eq{"detailer_id": detailerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDetailer - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDetailer - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("detailer_availability").
		Columns("detailer_id", "day_of_week", "start_time", "end_time")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(detailerID, w.DayOfWeek, w.StartTime, w.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDetailer - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDetailer - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс окон
func scanWindows(rows *sql.Rows) ([]*domain.WeeklyWindow, error) {
	windows := make([]*domain.WeeklyWindow, 0)

	for rows.Next() {
		var window domain.WeeklyWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.DetailerID,
			&window.DayOfWeek,
			&window.StartTime,
			&window.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		window.CreatedAt = createdAt.Time
		window.UpdatedAt = updatedAt.Time

		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
