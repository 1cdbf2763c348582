package get_dashboard

import (
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// completedRevenue считает выручку периода: сумма цен по каталогу для
// завершённых бронирований. Неизвестная услуга даёт 0
func completedRevenue(bookings []*domain.Booking, catalog *domain.ServiceCatalog) float64 {
	var total float64
	for _, b := range bookings {
		if b.Status != domain.StatusCompleted {
			continue
		}
		total += catalog.Price(b.ServiceType)
	}
	return total
}

// countByStatus считает бронирования в заданном статусе
func countByStatus(bookings []*domain.Booking, status domain.BookingStatus) int {
	count := 0
	for _, b := range bookings {
		if b.Status == status {
			count++
		}
	}
	return count
}

// topServices ранжирует услуги по числу завершённых бронирований.
// При равенстве счётчиков порядок определяется позицией в каталоге
func topServices(bookings []*domain.Booking, catalog *domain.ServiceCatalog, limit int) []ServiceStat {
	counts := make(map[string]int)
	for _, b := range bookings {
		if b.Status != domain.StatusCompleted {
			continue
		}
		counts[b.ServiceType]++
	}

	stats := make([]ServiceStat, 0, limit)
	// обход по порядку каталога даёт детерминированный tie-break
	for _, entry := range catalog.Entries() {
		if counts[entry.ServiceType] == 0 {
			continue
		}
		stats = append(stats, ServiceStat{
			ServiceType: entry.ServiceType,
			Count:       counts[entry.ServiceType],
			Price:       entry.Price,
		})
	}

	// сортировка вставками устойчива к порядку каталога
	for i := 1; i < len(stats); i++ {
		for j := i; j > 0 && stats[j].Count > stats[j-1].Count; j-- {
			stats[j], stats[j-1] = stats[j-1], stats[j]
		}
	}

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// peakHours находит два самых загруженных часа месяца по завершённым
// бронированиям. Возвращает nil, если различных часовых корзин меньше двух.
// Пара упорядочена хронологически, процент считается от всех завершённых
// бронирований месяца
func peakHours(bookings []*domain.Booking) *PeakHours {
	counts := make(map[int]int)
	totalCompleted := 0

	for _, b := range bookings {
		if b.Status != domain.StatusCompleted {
			continue
		}
		hour, err := b.TimeSlot.Hour()
		if err != nil {
			continue
		}
		counts[hour]++
		totalCompleted++
	}

	if len(counts) < 2 {
		return nil
	}

	first, second := -1, -1
	for hour := 0; hour < 24; hour++ {
		count, ok := counts[hour]
		if !ok {
			continue
		}
		switch {
		case first == -1 || count > counts[first]:
			second = first
			first = hour
		case second == -1 || count > counts[second]:
			second = hour
		}
	}

	if first > second {
		first, second = second, first
	}

	var percentage float64
	if totalCompleted > 0 {
		percentage = float64(counts[first]+counts[second]) / float64(totalCompleted) * 100
	}

	return &PeakHours{
		FirstHour:  first,
		SecondHour: second,
		Percentage: percentage,
	}
}

// busiestWeekday определяет день недели с наибольшим числом завершённых
// бронирований. При равенстве побеждает более ранний день недели.
// Возвращает nil при отсутствии данных
func busiestWeekday(bookings []*domain.Booking) *string {
	var counts [7]int
	total := 0

	for _, b := range bookings {
		if b.Status != domain.StatusCompleted {
			continue
		}
		counts[domain.WeekdayFromDate(b.BookingDate)]++
		total++
	}

	if total == 0 {
		return nil
	}

	best := domain.Monday
	for _, wd := range domain.Weekdays {
		if counts[wd] > counts[best] {
			best = wd
		}
	}

	name := best.String()
	return &name
}

// idleGaps находит окна простоя: пары соседних незакрытых бронирований дня,
// разрыв между которыми превышает интервал слотов. Вход должен быть
// отсортирован по времени слота по возрастанию
func idleGaps(open []*domain.Booking, intervalMinutes int) []IdleGap {
	gaps := make([]IdleGap, 0)

	for i := 1; i < len(open); i++ {
		prev, cur := open[i-1], open[i]

		minutes, err := prev.TimeSlot.MinutesUntil(cur.TimeSlot)
		if err != nil {
			continue
		}
		if minutes > intervalMinutes {
			gaps = append(gaps, IdleGap{
				From:    prev.TimeSlot,
				To:      cur.TimeSlot,
				Minutes: minutes,
			})
		}
	}

	return gaps
}

// nextBooking возвращает ближайшее незакрытое бронирование сегодня,
// начинающееся не раньше текущего момента, или nil
func nextBooking(open []*domain.Booking, now types.TimeString) *NextBooking {
	for _, b := range open {
		if b.TimeSlot.IsBefore(now) {
			continue
		}
		minutes, err := now.MinutesUntil(b.TimeSlot)
		if err != nil {
			continue
		}
		return &NextBooking{
			BookingID:    b.ID,
			CustomerID:   b.CustomerID,
			TimeSlot:     b.TimeSlot,
			ServiceType:  b.ServiceType,
			MinutesUntil: minutes,
		}
	}
	return nil
}

// upcomingClients возвращает первых limit клиентов с активными
// бронированиями сегодня, чьё время ещё не наступило
func upcomingClients(active []*domain.Booking, now types.TimeString, limit int) []ClientEntry {
	clients := make([]ClientEntry, 0, limit)
	for _, b := range active {
		if b.TimeSlot.IsBefore(now) {
			continue
		}
		clients = append(clients, ClientEntry{
			BookingID:   b.ID,
			CustomerID:  b.CustomerID,
			TimeSlot:    b.TimeSlot,
			ServiceType: b.ServiceType,
		})
		if len(clients) == limit {
			break
		}
	}
	return clients
}

// remainingToday считает активные бронирования, чьё время ещё не наступило.
// Опаздывающие клиенты в счётчик не входят
func remainingToday(active []*domain.Booking, now types.TimeString) int {
	count := 0
	for _, b := range active {
		if !b.TimeSlot.IsBefore(now) {
			count++
		}
	}
	return count
}

// lateClients возвращает клиентов с активными бронированиями, чьё время
// уже прошло, с числом минут опоздания
func lateClients(active []*domain.Booking, now types.TimeString) []LateClient {
	late := make([]LateClient, 0)
	for _, b := range active {
		if !b.TimeSlot.IsBefore(now) {
			continue
		}
		minutes, err := b.TimeSlot.MinutesUntil(now)
		if err != nil {
			continue
		}
		late = append(late, LateClient{
			BookingID:   b.ID,
			CustomerID:  b.CustomerID,
			TimeSlot:    b.TimeSlot,
			ServiceType: b.ServiceType,
			MinutesLate: minutes,
		})
	}
	return late
}

// priceTransactions преобразует завершённые бронирования в транзакции с
// ценой из каталога, ограничивая результат limit записями.
// limit <= 0 снимает ограничение
func priceTransactions(completed []*domain.Booking, catalog *domain.ServiceCatalog, limit int) []Transaction {
	size := len(completed)
	if limit > 0 && limit < size {
		size = limit
	}

	transactions := make([]Transaction, 0, size)
	for _, b := range completed {
		transactions = append(transactions, Transaction{
			BookingID:   b.ID,
			CustomerID:  b.CustomerID,
			Date:        b.BookingDate,
			TimeSlot:    b.TimeSlot,
			ServiceType: b.ServiceType,
			Price:       catalog.Price(b.ServiceType),
		})
		if limit > 0 && len(transactions) == limit {
			break
		}
	}
	return transactions
}

// historyEntries преобразует архивные бронирования в записи истории
func historyEntries(archived []*domain.Booking) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(archived))
	for _, b := range archived {
		entries = append(entries, HistoryEntry{
			BookingID:   b.ID,
			CustomerID:  b.CustomerID,
			Date:        b.BookingDate,
			TimeSlot:    b.TimeSlot,
			ServiceType: b.ServiceType,
		})
	}
	return entries
}
