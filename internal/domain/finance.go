package domain

import "time"

// FinancialRecord is one row of the manual monthly ledger.
// It is maintained by hand for charting and is not derived from bookings.
type FinancialRecord struct {
	Year    int
	Month   time.Month
	Revenue float64
	Expense float64

	UpdatedAt time.Time
}

// placeholder chart values used to seed a year that has no records yet
var (
	seedRevenues = [12]float64{200, 150, 300, 100, 250, 200, 180, 220, 210, 190, 230, 240}
	seedExpenses = [12]float64{50, 100, 80, 120, 90, 110, 70, 130, 100, 90, 110, 120}
)

// SeedFinancialYear produces placeholder records for all twelve months
func SeedFinancialYear(year int) []FinancialRecord {
	records := make([]FinancialRecord, 12)
	for i := 0; i < 12; i++ {
		records[i] = FinancialRecord{
			Year:    year,
			Month:   time.Month(i + 1),
			Revenue: seedRevenues[i],
			Expense: seedExpenses[i],
		}
	}
	return records
}
