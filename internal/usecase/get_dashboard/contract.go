package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetOpenByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	GetRecentArchived(ctx context.Context, limit uint64) ([]*domain.Booking, error)
	GetCompleted(ctx context.Context) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.WeekdayConfig, error)
}

// FinanceProvider отдаёт финансовые записи года, при необходимости
// инициализируя их
type FinanceProvider interface {
	GetYear(ctx context.Context, year int) ([]*domain.FinancialRecord, error)
}

// TimeProvider источник текущего времени, выделен для тестируемости
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
