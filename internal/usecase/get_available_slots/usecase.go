package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// UseCase use case получения свободных и занятых слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат не кэшируется: два вызова подряд без изменений состояния
// возвращают одинаковый ответ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	weekday := domain.WeekdayFromDate(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s, weekday=%s", req.Date.Format(domain.DateFormat), weekday)

	cfg, err := uc.scheduleRepo.GetByWeekday(ctx, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			// день без конфигурации трактуется как закрытый
			uc.logger.Warn("GetAvailableSlots: no config for %s, treating as closed", weekday)
			return uc.emptyResponse(req, domain.DefaultSlotIntervalMinutes), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get config for %s: %v", weekday, err)
		return nil, fmt.Errorf("%w: failed to get weekday config: %v", ErrInternal, err)
	}

	candidates, err := generateSlots(cfg)
	if err != nil {
		// некорректное время в конфигурации деградирует в пустой список,
		// а не в ошибку запроса
		uc.logger.Warn("GetAvailableSlots: malformed config for %s: %v", weekday, err)
		return uc.emptyResponse(req, cfg.EffectiveInterval()), nil
	}

	active, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	free, occupied := splitSlots(candidates, active)

	uc.logger.Info("GetAvailableSlots: date=%s, free=%d, occupied=%d",
		req.Date.Format(domain.DateFormat), len(free), len(occupied))

	return &Response{
		Date:            req.Date,
		IntervalMinutes: cfg.EffectiveInterval(),
		Free:            free,
		Occupied:        occupied,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, interval int) *Response {
	return &Response{
		Date:            req.Date,
		IntervalMinutes: interval,
		Free:            []types.TimeString{},
		Occupied:        []types.TimeString{},
	}
}
