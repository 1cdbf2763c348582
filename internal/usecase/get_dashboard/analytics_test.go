package get_dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

func booking(date time.Time, slot types.TimeString, service string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		BookingDate: date,
		TimeSlot:    slot,
		ServiceType: service,
		Status:      status,
	}
}

// 2026-08-31 is a Monday
var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestCompletedRevenue(t *testing.T) {
	catalog := domain.NewServiceCatalog([]domain.CatalogEntry{
		{ServiceType: "ServiceA", Price: 40},
		{ServiceType: "ServiceB", Price: 45},
	})

	bookings := []*domain.Booking{
		booking(monday, "09:00", "ServiceA", domain.StatusCompleted),
		booking(monday, "10:00", "ServiceB", domain.StatusCompleted),
		booking(monday, "11:00", "ServiceA", domain.StatusCancelled),
	}

	// the cancelled ServiceA booking contributes nothing
	assert.Equal(t, 85.0, completedRevenue(bookings, catalog))
}

func TestCompletedRevenue_UnknownServiceCountsAsZero(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	bookings := []*domain.Booking{
		booking(monday, "09:00", "Time Travel", domain.StatusCompleted),
	}

	assert.Equal(t, 0.0, completedRevenue(bookings, catalog))
}

func TestTopServices(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	bookings := []*domain.Booking{
		booking(monday, "09:00", "Fade Cut", domain.StatusCompleted),
		booking(monday, "10:00", "Fade Cut", domain.StatusCompleted),
		booking(monday, "11:00", "Classic Cut", domain.StatusCompleted),
		booking(monday, "12:00", "Full Beard", domain.StatusCompleted),
		booking(monday, "13:00", "Eyebrows", domain.StatusCompleted),
		// non-completed bookings are ignored
		booking(monday, "14:00", "Eyebrows", domain.StatusActive),
	}

	stats := topServices(bookings, catalog, 3)

	require.Len(t, stats, 3)
	assert.Equal(t, "Fade Cut", stats[0].ServiceType)
	assert.Equal(t, 2, stats[0].Count)
	// Classic Cut and Full Beard tie at 1, catalog order breaks the tie
	assert.Equal(t, "Classic Cut", stats[1].ServiceType)
	assert.Equal(t, "Full Beard", stats[2].ServiceType)
}

func TestPeakHours(t *testing.T) {
	bookings := []*domain.Booking{
		booking(monday, "10:00", "Classic Cut", domain.StatusCompleted),
		booking(monday, "10:30", "Classic Cut", domain.StatusCompleted),
		booking(monday, "15:00", "Fade Cut", domain.StatusCompleted),
		booking(monday, "09:00", "Fade Cut", domain.StatusCompleted),
		booking(monday, "15:30", "Fade Cut", domain.StatusCompleted),
	}

	peak := peakHours(bookings)
	require.NotNil(t, peak)

	// hours 10 and 15 both have two bookings, shown chronologically
	assert.Equal(t, 10, peak.FirstHour)
	assert.Equal(t, 15, peak.SecondHour)
	assert.InDelta(t, 80.0, peak.Percentage, 0.001)
}

func TestPeakHours_NeedsTwoDistinctBuckets(t *testing.T) {
	bookings := []*domain.Booking{
		booking(monday, "10:00", "Classic Cut", domain.StatusCompleted),
		booking(monday, "10:30", "Classic Cut", domain.StatusCompleted),
	}

	assert.Nil(t, peakHours(bookings))
	assert.Nil(t, peakHours(nil))
}

func TestBusiestWeekday(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	bookings := []*domain.Booking{
		booking(monday, "09:00", "Classic Cut", domain.StatusCompleted),
		booking(tuesday, "09:00", "Classic Cut", domain.StatusCompleted),
		booking(tuesday, "10:00", "Classic Cut", domain.StatusCompleted),
	}

	name := busiestWeekday(bookings)
	require.NotNil(t, name)
	assert.Equal(t, "Tuesday", *name)
}

func TestBusiestWeekday_TieGoesToEarlierWeekday(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	bookings := []*domain.Booking{
		booking(tuesday, "09:00", "Classic Cut", domain.StatusCompleted),
		booking(monday, "09:00", "Classic Cut", domain.StatusCompleted),
	}

	name := busiestWeekday(bookings)
	require.NotNil(t, name)
	assert.Equal(t, "Monday", *name)
}

func TestBusiestWeekday_NoData(t *testing.T) {
	bookings := []*domain.Booking{
		booking(monday, "09:00", "Classic Cut", domain.StatusCancelled),
	}

	assert.Nil(t, busiestWeekday(bookings))
}

func TestIdleGaps(t *testing.T) {
	open := []*domain.Booking{
		booking(monday, "09:00", "Classic Cut", domain.StatusActive),
		booking(monday, "09:30", "Classic Cut", domain.StatusActive),
		booking(monday, "11:00", "Fade Cut", domain.StatusActive),
		booking(monday, "12:30", "Fade Cut", domain.StatusActive),
	}

	gaps := idleGaps(open, 30)

	require.Len(t, gaps, 2)
	assert.Equal(t, types.TimeString("09:30"), gaps[0].From)
	assert.Equal(t, types.TimeString("11:00"), gaps[0].To)
	assert.Equal(t, 90, gaps[0].Minutes)
	assert.Equal(t, 90, gaps[1].Minutes)
}

func TestIdleGaps_BackToBackIsNotAGap(t *testing.T) {
	open := []*domain.Booking{
		booking(monday, "09:00", "Classic Cut", domain.StatusActive),
		booking(monday, "09:30", "Classic Cut", domain.StatusActive),
	}

	assert.Empty(t, idleGaps(open, 30))
	assert.Empty(t, idleGaps(nil, 30))
}

func TestNextBooking(t *testing.T) {
	open := []*domain.Booking{
		{ID: 1, CustomerID: 5, BookingDate: monday, TimeSlot: "09:00", ServiceType: "Classic Cut", Status: domain.StatusActive},
		{ID: 2, CustomerID: 6, BookingDate: monday, TimeSlot: "11:30", ServiceType: "Fade Cut", Status: domain.StatusActive},
	}

	next := nextBooking(open, "10:00")
	require.NotNil(t, next)
	assert.Equal(t, int64(2), next.BookingID)
	assert.Equal(t, 90, next.MinutesUntil)

	assert.Nil(t, nextBooking(open, "12:00"))
}

func TestUpcomingAndLateClients(t *testing.T) {
	active := []*domain.Booking{
		{ID: 1, CustomerID: 5, TimeSlot: "09:00", ServiceType: "Classic Cut", Status: domain.StatusActive},
		{ID: 2, CustomerID: 6, TimeSlot: "10:30", ServiceType: "Fade Cut", Status: domain.StatusActive},
		{ID: 3, CustomerID: 7, TimeSlot: "11:00", ServiceType: "Eyebrows", Status: domain.StatusActive},
	}

	upcoming := upcomingClients(active, "10:00", 5)
	require.Len(t, upcoming, 2)
	assert.Equal(t, int64(2), upcoming[0].BookingID)

	limited := upcomingClients(active, "10:00", 1)
	require.Len(t, limited, 1)

	late := lateClients(active, "10:00")
	require.Len(t, late, 1)
	assert.Equal(t, int64(1), late[0].BookingID)
	assert.Equal(t, 60, late[0].MinutesLate)
}

func TestRemainingToday_ExcludesLateClients(t *testing.T) {
	active := []*domain.Booking{
		{ID: 1, TimeSlot: "09:00", Status: domain.StatusActive},
		{ID: 2, TimeSlot: "10:00", Status: domain.StatusActive},
		{ID: 3, TimeSlot: "11:30", Status: domain.StatusActive},
	}

	// the 09:00 client is late and no longer counted as remaining
	assert.Equal(t, 2, remainingToday(active, "10:00"))
	assert.Equal(t, 0, remainingToday(active, "12:00"))
	assert.Equal(t, 0, remainingToday(nil, "10:00"))
}

func TestPriceTransactions(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()

	completed := []*domain.Booking{
		{ID: 1, BookingDate: monday, TimeSlot: "09:00", ServiceType: "Classic Cut", Status: domain.StatusCompleted},
		{ID: 2, BookingDate: monday, TimeSlot: "10:00", ServiceType: "Fade Cut", Status: domain.StatusCompleted},
		{ID: 3, BookingDate: monday, TimeSlot: "11:00", ServiceType: "Cut + Beard", Status: domain.StatusCompleted},
	}

	all := priceTransactions(completed, catalog, 0)
	require.Len(t, all, 3)
	assert.Equal(t, 40.0, all[0].Price)
	assert.Equal(t, 45.0, all[1].Price)
	assert.Equal(t, 65.0, all[2].Price)

	recent := priceTransactions(completed, catalog, 2)
	assert.Len(t, recent, 2)
}

func TestWeekAndMonthBounds(t *testing.T) {
	// 2026-09-02 is a Wednesday
	wednesday := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	weekStart, weekEnd := weekBounds(wednesday)
	assert.Equal(t, monday, weekStart)
	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), weekEnd)

	monthStart, monthEnd := monthBounds(wednesday)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), monthStart)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), monthEnd)
}
