package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/schedule"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalog      *domain.ServiceCatalog
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalog *domain.ServiceCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		catalog:      catalog,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка идут в одной сериализуемой транзакции:
// активные бронирования даты блокируются FOR UPDATE, а частичный
// уникальный индекс на (booking_date, time_slot) WHERE status = 'active'
// гарантирует, что из конкурентных запросов на один слот выигрывает
// ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, date=%s, slot=%s, service=%s",
		req.CustomerID, req.Date.Format(domain.DateFormat), req.TimeSlot, req.ServiceType)

	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		weekday := domain.WeekdayFromDate(req.Date)

		cfg, err := uc.scheduleRepo.GetByWeekday(txCtx, weekday)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
				uc.logger.Warn("CreateBooking: no config for %s, treating as closed", weekday)
				return ErrClosedDay
			}
			uc.logger.Error("CreateBooking: failed to get config for %s: %v", weekday, err)
			return fmt.Errorf("%w: failed to get weekday config: %w", ErrInternal, err)
		}

		if !cfg.CanGenerateSlots() {
			uc.logger.Warn("CreateBooking: closed on %s (%s)", req.Date.Format(domain.DateFormat), weekday)
			return ErrClosedDay
		}

		candidates, err := generateSlots(cfg)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate slots for %s: %v", weekday, err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		if !slotExists(req.TimeSlot, candidates) {
			uc.logger.Warn("CreateBooking: slot %s is not in the %s schedule", req.TimeSlot, weekday)
			return ErrInvalidTimeSlot
		}

		active, err := uc.bookingRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get active bookings: %v", err)
			// ошибка репозитория оборачивается через %w: конфликт сериализации
			// (40001) должен дойти до менеджера транзакций для повтора
			return fmt.Errorf("%w: failed to get active bookings: %w", ErrInternal, err)
		}

		if slotOccupied(req.TimeSlot, active) {
			uc.logger.Warn("CreateBooking: slot %s on %s already taken",
				req.TimeSlot, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		booking := &domain.Booking{
			CustomerID:  req.CustomerID,
			BookingDate: req.Date,
			TimeSlot:    req.TimeSlot,
			ServiceType: req.ServiceType,
			Status:      domain.StatusActive,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// конкурирующая транзакция успела вставить первой
				uc.logger.Warn("CreateBooking: lost slot %s on %s to a concurrent request",
					req.TimeSlot, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		CustomerID:  result.CustomerID,
		Date:        result.BookingDate,
		TimeSlot:    result.TimeSlot,
		ServiceType: result.ServiceType,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
