package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/BRB-ScheduleService/internal/service/bookings/models"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo BookingRepository
	catalog     *domain.ServiceCatalog
	txManager   TransactionManager
	clock       TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog *domain.ServiceCatalog,
	txManager TransactionManager,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		txManager:   txManager,
		clock:       clock,
		logger:      logger,
	}
}

// Cancel отменяет активное бронирование.
// Клиент может отменить только своё бронирование, администратор - любое.
// Пустая причина при отмене администратором заменяется стандартной.
// Бронирование не в статусе active неотличимо для вызывающего от
// несуществующего
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking id=%d, actor=%d role=%s", req.BookingID, req.Actor.UserID, req.Actor.Role)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !req.Actor.IsAdmin() && !req.Actor.Owns(booking) {
			s.logger.Warn("Cancel: access denied for actor=%d to booking id=%d", req.Actor.UserID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d is %s, not cancellable", req.BookingID, booking.Status)
			return ErrBookingNotFound
		}

		reason := req.CancellationReason
		if reason == "" && req.Actor.IsAdmin() {
			reason = domain.AdminCancellationReason
		}

		if err := s.bookingRepo.Cancel(txCtx, req.BookingID, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: failed to cancel booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled, err = s.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			s.logger.Error("Cancel: failed to re-read booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", req.BookingID)
	return models.FromDomainBooking(cancelled), nil
}

// Complete переводит активное бронирование в завершённые.
// Доступно только администратору
func (s *Service) Complete(ctx context.Context, req *models.CompleteBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Complete: booking id=%d, actor=%d role=%s", req.BookingID, req.Actor.UserID, req.Actor.Role)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("Complete: access denied for actor=%d", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	var completed *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		err := s.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusActive, domain.StatusCompleted)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Complete: booking id=%d not found or not active", req.BookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Complete: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		completed, err = s.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			s.logger.Error("Complete: failed to re-read booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: successfully completed booking id=%d", req.BookingID)
	return models.FromDomainBooking(completed), nil
}

// ArchiveCompletedToday массово переводит сегодняшние завершённые
// бронирования в архив. Доступно только администратору. Повторный запуск
// в тот же день находит ноль записей и возвращает ноль
func (s *Service) ArchiveCompletedToday(ctx context.Context, actor domain.Actor) (*models.ArchiveResponse, error) {
	s.logger.Info("ArchiveCompletedToday: actor=%d role=%s", actor.UserID, actor.Role)

	if !actor.IsAdmin() {
		s.logger.Warn("ArchiveCompletedToday: access denied for actor=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	today := s.clock.Now()

	var archived int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.bookingRepo.ArchiveCompleted(txCtx, today)
		if err != nil {
			s.logger.Error("ArchiveCompletedToday: repository error: %v", err)
			return fmt.Errorf("%w: ArchiveCompletedToday - repository error: %v", ErrInternal, err)
		}
		archived = count
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ArchiveCompletedToday: archived %d bookings", archived)
	return &models.ArchiveResponse{Archived: archived}, nil
}

// GetUserBookings возвращает историю бронирований клиента, разбитую на
// предстоящие и прошедшие. Клиент видит только свою историю,
// администратор - любую
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.UserBookingsResponse, error) {
	s.logger.Info("GetUserBookings: customer=%d, actor=%d role=%s", req.CustomerID, req.Actor.UserID, req.Actor.Role)

	if !req.Actor.IsAdmin() && req.Actor.UserID != req.CustomerID {
		s.logger.Warn("GetUserBookings: access denied for actor=%d to customer=%d", req.Actor.UserID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.clock.Now()
	upcoming, past := splitByTime(bookings, now)

	s.logger.Info("GetUserBookings: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return &models.UserBookingsResponse{
		Upcoming: models.FromDomainBookingList(upcoming),
		Past:     models.FromDomainBookingList(past),
	}, nil
}

// GetMonthCancellations возвращает отменённые бронирования текущего
// месяца. Доступно только администратору
func (s *Service) GetMonthCancellations(ctx context.Context, actor domain.Actor) (*models.CancellationsResponse, error) {
	s.logger.Info("GetMonthCancellations: actor=%d role=%s", actor.UserID, actor.Role)

	if !actor.IsAdmin() {
		s.logger.Warn("GetMonthCancellations: access denied for actor=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	now := s.clock.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	status := domain.StatusCancelled

	cancelled, err := s.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: &monthStart,
		EndDate:   &monthEnd,
		Status:    &status,
	})
	if err != nil {
		s.logger.Error("GetMonthCancellations: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetMonthCancellations - repository error: %v", ErrInternal, err)
	}

	return &models.CancellationsResponse{
		Bookings: models.FromDomainBookingList(cancelled),
		Count:    len(cancelled),
	}, nil
}

// GetTransactions возвращает все завершённые бронирования с ценами из
// каталога услуг и общей суммой. Доступно только администратору
func (s *Service) GetTransactions(ctx context.Context, actor domain.Actor) (*models.TransactionsResponse, error) {
	s.logger.Info("GetTransactions: actor=%d role=%s", actor.UserID, actor.Role)

	if !actor.IsAdmin() {
		s.logger.Warn("GetTransactions: access denied for actor=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	completed, err := s.bookingRepo.GetCompleted(ctx)
	if err != nil {
		s.logger.Error("GetTransactions: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTransactions - repository error: %v", ErrInternal, err)
	}

	transactions := make([]models.TransactionResponse, 0, len(completed))
	var total float64
	for _, b := range completed {
		price := s.catalog.Price(b.ServiceType)
		total += price
		transactions = append(transactions, models.TransactionResponse{
			BookingID:   b.ID,
			CustomerID:  b.CustomerID,
			Date:        b.BookingDate.Format(domain.DateFormat),
			TimeSlot:    b.TimeSlot.String(),
			ServiceType: b.ServiceType,
			Price:       price,
		})
	}

	s.logger.Info("GetTransactions: fetched %d transactions, total=%.2f", len(transactions), total)
	return &models.TransactionsResponse{
		Transactions: transactions,
		Total:        total,
	}, nil
}

// splitByTime делит бронирования на предстоящие и прошедшие.
// Предстоящее - активное бронирование, чьё время ещё не наступило
func splitByTime(bookings []*domain.Booking, now time.Time) (upcoming, past []*domain.Booking) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nowSlot := types.NewTimeString(now)

	upcoming = make([]*domain.Booking, 0)
	past = make([]*domain.Booking, 0)

	for _, b := range bookings {
		if b.IsActive() && isUpcoming(b, today, nowSlot) {
			upcoming = append(upcoming, b)
			continue
		}
		past = append(past, b)
	}
	return upcoming, past
}

func isUpcoming(b *domain.Booking, today time.Time, nowSlot types.TimeString) bool {
	if b.BookingDate.After(today) {
		return true
	}
	if !b.BookingDate.Equal(today) {
		return false
	}
	return !b.TimeSlot.IsBefore(nowSlot)
}
