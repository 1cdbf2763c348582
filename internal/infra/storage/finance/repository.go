package finance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий ручного финансового журнала (год/месяц)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория финансов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByYear получает записи журнала за год, по месяцам по возрастанию
func (r *Repository) GetByYear(ctx context.Context, year int) ([]*domain.FinancialRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("year", "month", "revenue", "expense", "updated_at").
		From("financial_records").
		Where(squirrel.Eq{"year": year}).
		OrderBy("month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByYear - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByYear - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.FinancialRecord, 0)
	for rows.Next() {
		var rec domain.FinancialRecord
		var month int
		var updatedAt sql.NullTime

		if err := rows.Scan(&rec.Year, &month, &rec.Revenue, &rec.Expense, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByYear - scan row: %v", ErrScanRow, err)
		}
		rec.Month = time.Month(month)
		rec.UpdatedAt = updatedAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByYear - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// Upsert вставляет или обновляет запись журнала за месяц
func (r *Repository) Upsert(ctx context.Context, record *domain.FinancialRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("financial_records").
		Columns("year", "month", "revenue", "expense").
		Values(record.Year, int(record.Month), record.Revenue, record.Expense).
		Suffix("ON CONFLICT (year, month) DO UPDATE SET revenue = EXCLUDED.revenue, expense = EXCLUDED.expense, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
