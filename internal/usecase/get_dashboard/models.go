package get_dashboard

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// ServiceStat статистика по одной услуге за месяц
type ServiceStat struct {
	ServiceType string
	Count       int
	Price       float64
}

// PeakHours пара самых загруженных часов месяца в хронологическом порядке
type PeakHours struct {
	FirstHour  int
	SecondHour int
	// Percentage - доля завершённых бронирований месяца, приходящаяся
	// на эти два часа
	Percentage float64
}

// IdleGap окно простоя между двумя соседними бронированиями дня
type IdleGap struct {
	From    types.TimeString
	To      types.TimeString
	Minutes int
}

// NextBooking ближайшее бронирование сегодня, начиная с текущего момента
type NextBooking struct {
	BookingID    int64
	CustomerID   int64
	TimeSlot     types.TimeString
	ServiceType  string
	MinutesUntil int
}

// ClientEntry клиент в списке ожидаемых сегодня
type ClientEntry struct {
	BookingID   int64
	CustomerID  int64
	TimeSlot    types.TimeString
	ServiceType string
}

// LateClient клиент, чьё время уже прошло, а бронирование всё ещё активно
type LateClient struct {
	BookingID   int64
	CustomerID  int64
	TimeSlot    types.TimeString
	ServiceType string
	MinutesLate int
}

// Transaction завершённое бронирование с ценой из каталога
type Transaction struct {
	BookingID   int64
	CustomerID  int64
	Date        time.Time
	TimeSlot    types.TimeString
	ServiceType string
	Price       float64
}

// HistoryEntry запись архивной истории
type HistoryEntry struct {
	BookingID   int64
	CustomerID  int64
	Date        time.Time
	TimeSlot    types.TimeString
	ServiceType string
}

// BudgetProgress прогресс по месячной цели выручки
type BudgetProgress struct {
	Goal       float64
	Revenue    float64
	Percentage float64
}

// MonthlyFinance строка финансового графика за месяц
type MonthlyFinance struct {
	Month   time.Month
	Revenue float64
	Expense float64
}

// Response агрегированные данные панели управления
type Response struct {
	GeneratedAt time.Time

	RevenueToday      float64
	RevenueWeek       float64
	RevenueMonth      float64
	DailyAverageMonth float64

	TopServices []ServiceStat
	// PeakHours равен nil, когда в месяце меньше двух различных
	// часовых корзин
	PeakHours *PeakHours
	// BusiestWeekday равен nil при отсутствии завершённых бронирований
	BusiestWeekday *string

	CancellationsMonth int

	IdleGaps    []IdleGap
	NextBooking *NextBooking

	RemainingToday int
	CompletedToday int

	UpcomingClients []ClientEntry
	LateClients     []LateClient

	RecentArchived     []HistoryEntry
	RecentTransactions []Transaction

	Budget BudgetProgress

	AverageServiceMinutes int
	AverageWaitMinutes    int

	FinancialYear []MonthlyFinance
}
