package update_schedule

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
