package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// mockBookingRepo implements BookingRepository for testing.
type mockBookingRepo struct {
	active []*domain.Booking
	err    error
}

func (m *mockBookingRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return m.active, m.err
}

// mockScheduleRepo implements ScheduleRepository for testing.
type mockScheduleRepo struct {
	cfg *domain.WeekdayConfig
	err error
}

func (m *mockScheduleRepo) GetByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.WeekdayConfig, error) {
	return m.cfg, m.err
}

// noopLogger implements Logger for testing.
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// 2026-08-31 is a Monday
var testDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestExecute_SplitsFreeAndOccupied(t *testing.T) {
	bookings := &mockBookingRepo{active: []*domain.Booking{
		{TimeSlot: "09:30", Status: domain.StatusActive},
	}}
	schedule := &mockScheduleRepo{cfg: dayConfig("09:00", "11:00", 30)}

	uc := NewUseCase(bookings, schedule, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.IntervalMinutes)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30"}, resp.Free)
	assert.Equal(t, []types.TimeString{"09:30"}, resp.Occupied)
}

func TestExecute_MissingConfigMeansClosed(t *testing.T) {
	bookings := &mockBookingRepo{}
	schedule := &mockScheduleRepo{err: scheduleRepo.ErrConfigNotFound}

	uc := NewUseCase(bookings, schedule, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Free)
	assert.Empty(t, resp.Occupied)
}

func TestExecute_MalformedConfigDegradesToEmpty(t *testing.T) {
	bookings := &mockBookingRepo{}
	schedule := &mockScheduleRepo{cfg: dayConfig("open", "12:00", 30)}

	uc := NewUseCase(bookings, schedule, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Free)
	assert.Empty(t, resp.Occupied)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Idempotent(t *testing.T) {
	bookings := &mockBookingRepo{active: []*domain.Booking{
		{TimeSlot: "10:00", Status: domain.StatusActive},
	}}
	schedule := &mockScheduleRepo{cfg: dayConfig("09:00", "12:00", 60)}

	uc := NewUseCase(bookings, schedule, noopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
