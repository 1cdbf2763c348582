package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "18:00"
)

// Business validation constants
const (
	MinSlotIntervalMinutes      = 5
	MaxSlotIntervalMinutes      = 480 // 8 hours
	MaxCancellationReasonLength = 500
)

// Dashboard constants carried over from the operational playbook
const (
	MonthlyBudgetGoal         = 5000.0
	AverageServiceTimeMinutes = 30
	AverageWaitTimeMinutes    = 15
	UpcomingClientsLimit      = 5
	TopServicesLimit          = 3
	RecentHistoryLimit        = 3
)

// AdminCancellationReason подставляется, когда администратор отменяет
// бронирование без указания причины
const AdminCancellationReason = "cancelled by administrator"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список статусов, из которых нет переходов
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusArchived,
}

// FinishedStatuses статусы, при которых бронирование больше не занимает
// операционное время дня. Пауза и "ближайший клиент" считаются по всем
// остальным записям
var FinishedStatuses = []BookingStatus{
	StatusCompleted,
	StatusArchived,
}
