package domain

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Weekday identifies a day of the week, Monday first
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// weekdayNames canonical storage/display names, Monday first
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Weekdays lists all weekdays in canonical order (Monday..Sunday)
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// String returns the canonical weekday name
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "unknown"
	}
	return weekdayNames[w]
}

// IsValid reports whether the value is one of the seven weekdays
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// WeekdayFromDate maps a calendar date to its weekday
func WeekdayFromDate(date time.Time) Weekday {
	// time.Weekday counts from Sunday; our enumeration starts at Monday
	return Weekday((int(date.Weekday()) + 6) % 7)
}

// WeekdayFromName resolves a canonical weekday name, case-sensitive
func WeekdayFromName(name string) (Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), true
		}
	}
	return 0, false
}

// WeekdayConfig holds the business hours for one weekday.
// When Closed is false, OpenTime and CloseTime are both set and
// OpenTime strictly precedes CloseTime.
type WeekdayConfig struct {
	Weekday             Weekday
	OpenTime            *types.TimeString // nil when closed
	CloseTime           *types.TimeString // nil when closed
	Closed              bool
	SlotIntervalMinutes int

	UpdatedAt time.Time
}

// EffectiveInterval returns the slot interval, falling back to the
// process-wide default when the stored value is non-positive
func (c *WeekdayConfig) EffectiveInterval() int {
	if c.SlotIntervalMinutes <= 0 {
		return DefaultSlotIntervalMinutes
	}
	return c.SlotIntervalMinutes
}

// CanGenerateSlots reports whether the configuration yields any slots
func (c *WeekdayConfig) CanGenerateSlots() bool {
	return !c.Closed && c.OpenTime != nil && c.CloseTime != nil
}

// WeekSchedule is the full seven-day configuration, Monday first
type WeekSchedule [7]WeekdayConfig
