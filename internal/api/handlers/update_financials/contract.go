package update_financials

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/service/finance/models"
)

type FinanceService interface {
	UpdateYear(ctx context.Context, req *models.UpdateYearRequest) (*models.YearResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
