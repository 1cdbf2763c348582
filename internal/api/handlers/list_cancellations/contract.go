package list_cancellations

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/internal/service/bookings/models"
)

type BookingsService interface {
	GetMonthCancellations(ctx context.Context, actor domain.Actor) (*models.CancellationsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
