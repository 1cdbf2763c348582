package get_schedule

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
