package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// scheduleColumns колонки таблицы weekday_config
var scheduleColumns = []string{
	"weekday",
	"open_time",
	"close_time",
	"closed",
	"slot_interval_minutes",
	"updated_at",
}

// Repository репозиторий конфигурации рабочей недели
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday получает конфигурацию одного дня недели
func (r *Repository) GetByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.WeekdayConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekday_config").
		Where(squirrel.Eq{"weekday": weekday.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	cfg, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		// ошибка драйвера остаётся в цепочке: 40001 внутри сериализуемой
		// транзакции должен дойти до менеджера транзакций для повтора
		return nil, fmt.Errorf("%w: GetByWeekday - scan config: %w", ErrScanRow, err)
	}

	return cfg, nil
}

// GetWeek получает конфигурацию всех семи дней, с понедельника
func (r *Repository) GetWeek(ctx context.Context) (*domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekday_config").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var week domain.WeekSchedule
	seen := 0

	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		week[cfg.Weekday] = *cfg
		seen++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	if seen != len(week) {
		return nil, fmt.Errorf("%w: got %d of %d weekdays", ErrIncompleteWeek, seen, len(week))
	}

	return &week, nil
}

// UpdateWeek записывает конфигурацию всех семи дней
// Вызывается только внутри транзакции (менеджер транзакций кладет её в ctx):
// частичная запись при ошибке откатывается целиком
func (r *Repository) UpdateWeek(ctx context.Context, week *domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, cfg := range week {
		query, args, err := psqlbuilder.Update("weekday_config").
			Set("open_time", timeToNullable(cfg.OpenTime)).
			Set("close_time", timeToNullable(cfg.CloseTime)).
			Set("closed", cfg.Closed).
			Set("slot_interval_minutes", cfg.SlotIntervalMinutes).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"weekday": cfg.Weekday.String()}).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: UpdateWeek - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: UpdateWeek - execute update for %s: %v", ErrExecQuery, cfg.Weekday, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: UpdateWeek - get rows affected: %v", ErrExecQuery, err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, cfg.Weekday)
		}
	}

	return nil
}

// SeedDefaults заполняет таблицу дефолтной рабочей неделей, если она пуста
// (09:00-18:00 с интервалом 30 минут, воскресенье выходной)
func (r *Repository) SeedDefaults(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("weekday_config").ToSql()
	if err != nil {
		return fmt.Errorf("%w: SeedDefaults - build count query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("%w: SeedDefaults - count rows: %v", ErrExecQuery, err)
	}
	if count > 0 {
		return nil
	}

	insert := psqlbuilder.Insert("weekday_config").
		Columns("weekday", "open_time", "close_time", "closed", "slot_interval_minutes")

	for _, weekday := range domain.Weekdays {
		if weekday == domain.Sunday {
			insert = insert.Values(weekday.String(), nil, nil, true, domain.DefaultSlotIntervalMinutes)
			continue
		}
		insert = insert.Values(
			weekday.String(),
			domain.DefaultOpenTime,
			domain.DefaultCloseTime,
			false,
			domain.DefaultSlotIntervalMinutes,
		)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SeedDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SeedDefaults - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner объединяет *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanConfig сканирует одну строку конфигурации
func scanConfig(row rowScanner) (*domain.WeekdayConfig, error) {
	var (
		weekdayName        string
		openTime, closeTime sql.NullString
		cfg                domain.WeekdayConfig
		updatedAt          sql.NullTime
	)

	err := row.Scan(
		&weekdayName,
		&openTime,
		&closeTime,
		&cfg.Closed,
		&cfg.SlotIntervalMinutes,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	weekday, ok := domain.WeekdayFromName(weekdayName)
	if !ok {
		return nil, fmt.Errorf("unknown weekday %q", weekdayName)
	}
	cfg.Weekday = weekday
	cfg.UpdatedAt = updatedAt.Time

	if openTime.Valid {
		t := types.TimeString(openTime.String)
		cfg.OpenTime = &t
	}
	if closeTime.Valid {
		t := types.TimeString(closeTime.String)
		cfg.CloseTime = &t
	}

	return &cfg, nil
}

// timeToNullable конвертирует опциональное время в значение колонки
func timeToNullable(t *types.TimeString) interface{} {
	if t == nil {
		return nil
	}
	return t.String()
}
