package get_dashboard

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	getDashboard "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_dashboard"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	GeneratedAt string `json:"generatedAt"`

	Revenue RevenueResponse `json:"revenue"`

	TopServices    []ServiceStatResponse `json:"topServices"`
	PeakHours      *PeakHoursResponse    `json:"peakHours,omitempty"`
	BusiestWeekday *string               `json:"busiestWeekday,omitempty"`

	CancellationsMonth int `json:"cancellationsMonth"`

	IdleGaps    []IdleGapResponse    `json:"idleGaps"`
	NextBooking *NextBookingResponse `json:"nextBooking,omitempty"`

	RemainingToday int `json:"remainingToday"`
	CompletedToday int `json:"completedToday"`

	UpcomingClients []ClientResponse     `json:"upcomingClients"`
	LateClients     []LateClientResponse `json:"lateClients"`

	RecentArchived     []HistoryResponse     `json:"recentArchived"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`

	Budget BudgetResponse `json:"budget"`

	AverageServiceMinutes int `json:"averageServiceMinutes"`
	AverageWaitMinutes    int `json:"averageWaitMinutes"`

	FinancialYear []MonthlyFinanceResponse `json:"financialYear"`
}

type RevenueResponse struct {
	Today        float64 `json:"today"`
	Week         float64 `json:"week"`
	Month        float64 `json:"month"`
	DailyAverage float64 `json:"dailyAverage"`
}

type ServiceStatResponse struct {
	ServiceType string  `json:"serviceType"`
	Count       int     `json:"count"`
	Price       float64 `json:"price"`
}

type PeakHoursResponse struct {
	FirstHour  int     `json:"firstHour"`
	SecondHour int     `json:"secondHour"`
	Percentage float64 `json:"percentage"`
}

type IdleGapResponse struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Minutes int    `json:"minutes"`
}

type NextBookingResponse struct {
	BookingID    int64  `json:"bookingId"`
	CustomerID   int64  `json:"customerId"`
	TimeSlot     string `json:"timeSlot"`
	ServiceType  string `json:"serviceType"`
	MinutesUntil int    `json:"minutesUntil"`
}

type ClientResponse struct {
	BookingID   int64  `json:"bookingId"`
	CustomerID  int64  `json:"customerId"`
	TimeSlot    string `json:"timeSlot"`
	ServiceType string `json:"serviceType"`
}

type LateClientResponse struct {
	BookingID   int64  `json:"bookingId"`
	CustomerID  int64  `json:"customerId"`
	TimeSlot    string `json:"timeSlot"`
	ServiceType string `json:"serviceType"`
	MinutesLate int    `json:"minutesLate"`
}

type HistoryResponse struct {
	BookingID   int64  `json:"bookingId"`
	CustomerID  int64  `json:"customerId"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	ServiceType string `json:"serviceType"`
}

type TransactionResponse struct {
	BookingID   int64   `json:"bookingId"`
	CustomerID  int64   `json:"customerId"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	ServiceType string  `json:"serviceType"`
	Price       float64 `json:"price"`
}

type BudgetResponse struct {
	Goal       float64 `json:"goal"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type MonthlyFinanceResponse struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getDashboard.Response) *DashboardResponse {
	resp := &DashboardResponse{
		GeneratedAt: result.GeneratedAt.Format(time.RFC3339),
		Revenue: RevenueResponse{
			Today:        result.RevenueToday,
			Week:         result.RevenueWeek,
			Month:        result.RevenueMonth,
			DailyAverage: result.DailyAverageMonth,
		},
		BusiestWeekday:        result.BusiestWeekday,
		CancellationsMonth:    result.CancellationsMonth,
		RemainingToday:        result.RemainingToday,
		CompletedToday:        result.CompletedToday,
		AverageServiceMinutes: result.AverageServiceMinutes,
		AverageWaitMinutes:    result.AverageWaitMinutes,
		Budget: BudgetResponse{
			Goal:       result.Budget.Goal,
			Revenue:    result.Budget.Revenue,
			Percentage: result.Budget.Percentage,
		},
	}

	if result.PeakHours != nil {
		resp.PeakHours = &PeakHoursResponse{
			FirstHour:  result.PeakHours.FirstHour,
			SecondHour: result.PeakHours.SecondHour,
			Percentage: result.PeakHours.Percentage,
		}
	}

	if result.NextBooking != nil {
		resp.NextBooking = &NextBookingResponse{
			BookingID:    result.NextBooking.BookingID,
			CustomerID:   result.NextBooking.CustomerID,
			TimeSlot:     result.NextBooking.TimeSlot.String(),
			ServiceType:  result.NextBooking.ServiceType,
			MinutesUntil: result.NextBooking.MinutesUntil,
		}
	}

	resp.TopServices = make([]ServiceStatResponse, 0, len(result.TopServices))
	for _, s := range result.TopServices {
		resp.TopServices = append(resp.TopServices, ServiceStatResponse{
			ServiceType: s.ServiceType,
			Count:       s.Count,
			Price:       s.Price,
		})
	}

	resp.IdleGaps = make([]IdleGapResponse, 0, len(result.IdleGaps))
	for _, g := range result.IdleGaps {
		resp.IdleGaps = append(resp.IdleGaps, IdleGapResponse{
			From:    g.From.String(),
			To:      g.To.String(),
			Minutes: g.Minutes,
		})
	}

	resp.UpcomingClients = make([]ClientResponse, 0, len(result.UpcomingClients))
	for _, c := range result.UpcomingClients {
		resp.UpcomingClients = append(resp.UpcomingClients, ClientResponse{
			BookingID:   c.BookingID,
			CustomerID:  c.CustomerID,
			TimeSlot:    c.TimeSlot.String(),
			ServiceType: c.ServiceType,
		})
	}

	resp.LateClients = make([]LateClientResponse, 0, len(result.LateClients))
	for _, c := range result.LateClients {
		resp.LateClients = append(resp.LateClients, LateClientResponse{
			BookingID:   c.BookingID,
			CustomerID:  c.CustomerID,
			TimeSlot:    c.TimeSlot.String(),
			ServiceType: c.ServiceType,
			MinutesLate: c.MinutesLate,
		})
	}

	resp.RecentArchived = make([]HistoryResponse, 0, len(result.RecentArchived))
	for _, e := range result.RecentArchived {
		resp.RecentArchived = append(resp.RecentArchived, HistoryResponse{
			BookingID:   e.BookingID,
			CustomerID:  e.CustomerID,
			Date:        e.Date.Format(domain.DateFormat),
			TimeSlot:    e.TimeSlot.String(),
			ServiceType: e.ServiceType,
		})
	}

	resp.RecentTransactions = make([]TransactionResponse, 0, len(result.RecentTransactions))
	for _, t := range result.RecentTransactions {
		resp.RecentTransactions = append(resp.RecentTransactions, TransactionResponse{
			BookingID:   t.BookingID,
			CustomerID:  t.CustomerID,
			Date:        t.Date.Format(domain.DateFormat),
			TimeSlot:    t.TimeSlot.String(),
			ServiceType: t.ServiceType,
			Price:       t.Price,
		})
	}

	resp.FinancialYear = make([]MonthlyFinanceResponse, 0, len(result.FinancialYear))
	for _, f := range result.FinancialYear {
		resp.FinancialYear = append(resp.FinancialYear, MonthlyFinanceResponse{
			Month:   int(f.Month),
			Revenue: f.Revenue,
			Expense: f.Expense,
		})
	}

	return resp
}
