package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/BRB-ScheduleService/pkg/ptr"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// mockBookingRepo implements BookingRepository for testing.
type mockBookingRepo struct {
	active    []*domain.Booking
	activeErr error

	created   *domain.Booking
	createErr error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.created = booking
	return booking, nil
}

func (m *mockBookingRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return m.active, m.activeErr
}

// mockScheduleRepo implements ScheduleRepository for testing.
type mockScheduleRepo struct {
	cfg *domain.WeekdayConfig
	err error
}

func (m *mockScheduleRepo) GetByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.WeekdayConfig, error) {
	return m.cfg, m.err
}

// fakeTxManager runs the callback without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// noopLogger implements Logger for testing.
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// 2026-08-31 is a Monday
var testDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func openConfig() *domain.WeekdayConfig {
	return &domain.WeekdayConfig{
		Weekday:             domain.Monday,
		OpenTime:            ptr.Ptr(types.TimeString("09:00")),
		CloseTime:           ptr.Ptr(types.TimeString("12:00")),
		SlotIntervalMinutes: 30,
	}
}

func validRequest() *Request {
	return &Request{
		CustomerID:  7,
		Date:        testDate,
		TimeSlot:    "09:30",
		ServiceType: "Classic Cut",
	}
}

func newUseCase(bookings *mockBookingRepo, schedule *mockScheduleRepo) *UseCase {
	return NewUseCase(bookings, schedule, domain.DefaultServiceCatalog(), fakeTxManager{}, noopLogger{})
}

func TestExecute_CreatesActiveBooking(t *testing.T) {
	bookings := &mockBookingRepo{}
	uc := newUseCase(bookings, &mockScheduleRepo{cfg: openConfig()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusActive, bookings.created.Status)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newUseCase(&mockBookingRepo{}, &mockScheduleRepo{cfg: openConfig()})

	t.Run("missing customer", func(t *testing.T) {
		req := validRequest()
		req.CustomerID = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Time{}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown service", func(t *testing.T) {
		req := validRequest()
		req.ServiceType = "Perm"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrUnknownService)
	})
}

func TestExecute_ClosedDay(t *testing.T) {
	cfg := openConfig()
	cfg.Closed = true
	uc := newUseCase(&mockBookingRepo{}, &mockScheduleRepo{cfg: cfg})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_MissingConfigMeansClosed(t *testing.T) {
	uc := newUseCase(&mockBookingRepo{}, &mockScheduleRepo{err: scheduleRepo.ErrConfigNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_SlotOffTheGrid(t *testing.T) {
	uc := newUseCase(&mockBookingRepo{}, &mockScheduleRepo{cfg: openConfig()})

	req := validRequest()
	req.TimeSlot = "09:15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	bookings := &mockBookingRepo{active: []*domain.Booking{
		{TimeSlot: "09:30", Status: domain.StatusActive},
	}}
	uc := newUseCase(bookings, &mockScheduleRepo{cfg: openConfig()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, bookings.created)
}

func TestExecute_LosesInsertRaceToConcurrentRequest(t *testing.T) {
	// the availability check passed, but another transaction inserted
	// first and the unique index rejected ours
	bookings := &mockBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newUseCase(bookings, &mockScheduleRepo{cfg: openConfig()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}
