package domain

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusArchived  BookingStatus = "archived"
)

// Booking represents a customer appointment occupying one time slot
type Booking struct {
	ID          int64
	CustomerID  int64
	BookingDate time.Time
	TimeSlot    types.TimeString
	ServiceType string
	Status      BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking currently holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsTerminal returns true if no further transition is allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusArchived
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusActive
}

// CanBeArchived returns true if the booking can be moved to the archive
func (b *Booking) CanBeArchived() bool {
	return b.Status == StatusCompleted
}

// CountsForSchedule returns true if the booking still occupies operational
// time: completed and archived bookings no longer block the working day
func (b *Booking) CountsForSchedule() bool {
	return b.Status != StatusCompleted && b.Status != StatusArchived
}

// BookingsFilter filters bookings by period and status
type BookingsFilter struct {
	StartDate *time.Time     // period start, inclusive (nil = unbounded)
	EndDate   *time.Time     // period end, inclusive (nil = unbounded)
	Status    *BookingStatus // nil = any status
}
