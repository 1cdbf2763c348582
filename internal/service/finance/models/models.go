package models

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// Request модели

// MonthUpdate финансовые показатели одного месяца
type MonthUpdate struct {
	Month   int     `json:"month"` // 1..12
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

// UpdateYearRequest запрос на пакетное обновление финансовых записей года
type UpdateYearRequest struct {
	Actor  domain.Actor
	Year   int
	Months []MonthUpdate `json:"months"`
}

// Response модели

// MonthlyRecord финансовая запись одного месяца
type MonthlyRecord struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

// YearResponse финансовые записи года, упорядоченные по месяцам
type YearResponse struct {
	Year   int             `json:"year"`
	Months []MonthlyRecord `json:"months"`
}

// FromDomainRecords конвертирует доменные записи в ответ
func FromDomainRecords(year int, records []*domain.FinancialRecord) *YearResponse {
	months := make([]MonthlyRecord, 0, len(records))
	for _, r := range records {
		months = append(months, MonthlyRecord{
			Month:   int(r.Month),
			Revenue: r.Revenue,
			Expense: r.Expense,
		})
	}
	return &YearResponse{Year: year, Months: months}
}

// ToDomainRecord конвертирует обновление месяца в доменную запись
func (m MonthUpdate) ToDomainRecord(year int) *domain.FinancialRecord {
	return &domain.FinancialRecord{
		Year:    year,
		Month:   time.Month(m.Month),
		Revenue: m.Revenue,
		Expense: m.Expense,
	}
}
