package get_dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// UseCase use case сборки панели управления
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	finance      FinanceProvider
	catalog      *domain.ServiceCatalog
	clock        TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	finance FinanceProvider,
	catalog *domain.ServiceCatalog,
	clock TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		finance:      finance,
		catalog:      catalog,
		clock:        clock,
		logger:       logger,
	}
}

// Execute собирает все агрегаты панели за день, неделю и месяц,
// содержащие текущий момент
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.clock.Now()
	today := dateOnly(now)
	nowSlot := types.NewTimeString(now)

	uc.logger.Info("GetDashboard: building dashboard for %s", today.Format(domain.DateFormat))

	dayBookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: &today,
		EndDate:   &today,
	})
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get day bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get day bookings: %v", ErrInternal, err)
	}

	weekStart, weekEnd := weekBounds(today)
	weekBookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: &weekStart,
		EndDate:   &weekEnd,
	})
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get week bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get week bookings: %v", ErrInternal, err)
	}

	monthStart, monthEnd := monthBounds(today)
	monthBookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: &monthStart,
		EndDate:   &monthEnd,
	})
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get month bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get month bookings: %v", ErrInternal, err)
	}

	openToday, err := uc.bookingRepo.GetOpenByDate(ctx, today)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get open bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get open bookings: %v", ErrInternal, err)
	}

	recentArchived, err := uc.bookingRepo.GetRecentArchived(ctx, domain.RecentHistoryLimit)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get archived history: %v", err)
		return nil, fmt.Errorf("%w: failed to get archived history: %v", ErrInternal, err)
	}

	completed, err := uc.bookingRepo.GetCompleted(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get completed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get completed bookings: %v", ErrInternal, err)
	}

	financialYear, err := uc.finance.GetYear(ctx, now.Year())
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get financial records: %v", err)
		return nil, fmt.Errorf("%w: failed to get financial records: %v", ErrInternal, err)
	}

	interval := uc.slotInterval(ctx, today)

	activeToday := make([]*domain.Booking, 0, len(dayBookings))
	for _, b := range dayBookings {
		if b.Status == domain.StatusActive {
			activeToday = append(activeToday, b)
		}
	}

	monthRevenue := completedRevenue(monthBookings, uc.catalog)
	daysInMonth := monthEnd.Day()

	finance := make([]MonthlyFinance, 0, len(financialYear))
	for _, record := range financialYear {
		finance = append(finance, MonthlyFinance{
			Month:   record.Month,
			Revenue: record.Revenue,
			Expense: record.Expense,
		})
	}

	return &Response{
		GeneratedAt: now,

		RevenueToday:      completedRevenue(dayBookings, uc.catalog),
		RevenueWeek:       completedRevenue(weekBookings, uc.catalog),
		RevenueMonth:      monthRevenue,
		DailyAverageMonth: monthRevenue / float64(daysInMonth),

		TopServices:    topServices(monthBookings, uc.catalog, domain.TopServicesLimit),
		PeakHours:      peakHours(monthBookings),
		BusiestWeekday: busiestWeekday(monthBookings),

		CancellationsMonth: countByStatus(monthBookings, domain.StatusCancelled),

		IdleGaps:    idleGaps(openToday, interval),
		NextBooking: nextBooking(openToday, nowSlot),

		RemainingToday: remainingToday(activeToday, nowSlot),
		CompletedToday: countByStatus(dayBookings, domain.StatusCompleted),

		UpcomingClients: upcomingClients(activeToday, nowSlot, domain.UpcomingClientsLimit),
		LateClients:     lateClients(activeToday, nowSlot),

		RecentArchived:     historyEntries(recentArchived),
		RecentTransactions: priceTransactions(completed, uc.catalog, domain.RecentHistoryLimit),

		Budget: BudgetProgress{
			Goal:       domain.MonthlyBudgetGoal,
			Revenue:    monthRevenue,
			Percentage: monthRevenue / domain.MonthlyBudgetGoal * 100,
		},

		AverageServiceMinutes: domain.AverageServiceTimeMinutes,
		AverageWaitMinutes:    domain.AverageWaitTimeMinutes,

		FinancialYear: finance,
	}, nil
}

// slotInterval возвращает интервал слотов на день, при отсутствии
// конфигурации откатываясь к дефолтному значению
func (uc *UseCase) slotInterval(ctx context.Context, today time.Time) int {
	cfg, err := uc.scheduleRepo.GetByWeekday(ctx, domain.WeekdayFromDate(today))
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetDashboard: failed to get weekday config, using default interval: %v", err)
		}
		return domain.DefaultSlotIntervalMinutes
	}
	return cfg.EffectiveInterval()
}

// dateOnly обнуляет компонент времени
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekBounds возвращает понедельник и воскресенье недели, содержащей day
func weekBounds(day time.Time) (time.Time, time.Time) {
	offset := int(domain.WeekdayFromDate(day))
	monday := day.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday, sunday
}

// monthBounds возвращает первый и последний день месяца, содержащего day
func monthBounds(day time.Time) (time.Time, time.Time) {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}
