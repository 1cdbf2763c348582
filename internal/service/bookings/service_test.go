package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/BRB-ScheduleService/internal/service/bookings/models"
)

// mockBookingRepo implements BookingRepository over an in-memory map.
type mockBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newMockBookingRepo(bookings ...*domain.Booking) *mockBookingRepo {
	m := &mockBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copy := *b
	return &copy, nil
}

func (m *mockBookingRepo) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = to
	return nil
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	b, ok := m.bookings[id]
	if !ok || b.Status != domain.StatusActive {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	return nil
}

func (m *mockBookingRepo) ArchiveCompleted(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	for _, b := range m.bookings {
		if b.Status == domain.StatusCompleted && sameDay(b.BookingDate, date) {
			b.Status = domain.StatusArchived
			count++
		}
	}
	return count, nil
}

func (m *mockBookingRepo) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && b.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.BookingDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) GetCompleted(ctx context.Context) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.Status == domain.StatusCompleted {
			result = append(result, b)
		}
	}
	return result, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// fakeTxManager runs the callback without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedClock implements TimeProvider with a constant moment.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// noopLogger implements Logger for testing.
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// 2026-08-31 10:00 is a Monday morning
var testNow = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
var testDay = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

var (
	customer = domain.Actor{UserID: 7, Role: domain.RoleCustomer}
	stranger = domain.Actor{UserID: 8, Role: domain.RoleCustomer}
	admin    = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

func newService(repo *mockBookingRepo) *Service {
	return NewService(repo, domain.DefaultServiceCatalog(), fakeTxManager{}, fixedClock{now: testNow}, noopLogger{})
}

func activeBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  customer.UserID,
		BookingDate: testDay,
		TimeSlot:    "11:00",
		ServiceType: "Classic Cut",
		Status:      domain.StatusActive,
	}
}

func TestCancel_OwnerCancelsOwnBooking(t *testing.T) {
	repo := newMockBookingRepo(activeBooking(1))
	svc := newService(repo)

	resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:          1,
		Actor:              customer,
		CancellationReason: "running late",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "running late", *resp.CancellationReason)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := newMockBookingRepo(activeBooking(1))
	svc := newService(repo)

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID: 1,
		Actor:     stranger,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusActive, repo.bookings[1].Status)
}

func TestCancel_AdminGetsDefaultReason(t *testing.T) {
	repo := newMockBookingRepo(activeBooking(1))
	svc := newService(repo)

	resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID: 1,
		Actor:     admin,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, domain.AdminCancellationReason, *resp.CancellationReason)
}

func TestCancel_NonActiveLooksLikeNotFound(t *testing.T) {
	completed := activeBooking(1)
	completed.Status = domain.StatusCompleted

	cancelled := activeBooking(2)
	cancelled.Status = domain.StatusCancelled

	svc := newService(newMockBookingRepo(completed, cancelled))

	for _, id := range []int64{1, 2, 99} {
		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
			BookingID: id,
			Actor:     admin,
		})
		assert.ErrorIs(t, err, ErrBookingNotFound, "booking id=%d", id)
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := newService(newMockBookingRepo(activeBooking(1)))

	longReason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range longReason {
		longReason[i] = 'x'
	}

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:          1,
		Actor:              customer,
		CancellationReason: string(longReason),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComplete_AdminOnly(t *testing.T) {
	repo := newMockBookingRepo(activeBooking(1))
	svc := newService(repo)

	_, err := svc.Complete(context.Background(), &models.CompleteBookingRequest{
		BookingID: 1,
		Actor:     customer,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Complete(context.Background(), &models.CompleteBookingRequest{
		BookingID: 1,
		Actor:     admin,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
}

func TestComplete_OnlyFromActive(t *testing.T) {
	cancelled := activeBooking(1)
	cancelled.Status = domain.StatusCancelled
	svc := newService(newMockBookingRepo(cancelled))

	_, err := svc.Complete(context.Background(), &models.CompleteBookingRequest{
		BookingID: 1,
		Actor:     admin,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestArchiveCompletedToday_Idempotent(t *testing.T) {
	first := activeBooking(1)
	first.Status = domain.StatusCompleted
	second := activeBooking(2)
	second.Status = domain.StatusCompleted
	// an active booking is untouched by archiving
	third := activeBooking(3)

	repo := newMockBookingRepo(first, second, third)
	svc := newService(repo)

	resp, err := svc.ArchiveCompletedToday(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Archived)

	resp, err = svc.ArchiveCompletedToday(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Archived)

	assert.Equal(t, domain.StatusArchived, repo.bookings[1].Status)
	assert.Equal(t, domain.StatusActive, repo.bookings[3].Status)
}

func TestArchiveCompletedToday_AdminOnly(t *testing.T) {
	svc := newService(newMockBookingRepo())

	_, err := svc.ArchiveCompletedToday(context.Background(), customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_SplitsUpcomingAndPast(t *testing.T) {
	later := activeBooking(1)
	later.TimeSlot = "15:00"

	tomorrow := activeBooking(2)
	tomorrow.BookingDate = testDay.AddDate(0, 0, 1)

	earlier := activeBooking(3)
	earlier.TimeSlot = "09:00"

	done := activeBooking(4)
	done.Status = domain.StatusCompleted

	svc := newService(newMockBookingRepo(later, tomorrow, earlier, done))

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		CustomerID: customer.UserID,
		Actor:      customer,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Upcoming, 2)
	assert.Len(t, resp.Past, 2)
}

func TestGetUserBookings_AccessControl(t *testing.T) {
	svc := newService(newMockBookingRepo(activeBooking(1)))

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		CustomerID: customer.UserID,
		Actor:      stranger,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// admin reads any customer's history
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		CustomerID: customer.UserID,
		Actor:      admin,
	})
	assert.NoError(t, err)
}

func TestGetMonthCancellations(t *testing.T) {
	cancelled := activeBooking(1)
	cancelled.Status = domain.StatusCancelled

	lastMonth := activeBooking(2)
	lastMonth.Status = domain.StatusCancelled
	lastMonth.BookingDate = testDay.AddDate(0, -1, 0)

	svc := newService(newMockBookingRepo(cancelled, lastMonth, activeBooking(3)))

	resp, err := svc.GetMonthCancellations(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)

	_, err = svc.GetMonthCancellations(context.Background(), customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetTransactions(t *testing.T) {
	done := activeBooking(1)
	done.Status = domain.StatusCompleted
	done.ServiceType = "Cut + Beard"

	svc := newService(newMockBookingRepo(done, activeBooking(2)))

	resp, err := svc.GetTransactions(context.Background(), admin)
	require.NoError(t, err)

	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, 65.0, resp.Transactions[0].Price)
	assert.Equal(t, 65.0, resp.Total)

	_, err = svc.GetTransactions(context.Background(), customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
