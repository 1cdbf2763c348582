package finance

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// FinanceRepository интерфейс репозитория финансовых записей
type FinanceRepository interface {
	GetByYear(ctx context.Context, year int) ([]*domain.FinancialRecord, error)
	Upsert(ctx context.Context, record *domain.FinancialRecord) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
