package models

import (
	"errors"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	BookingID          int64
	Actor              domain.Actor
	CancellationReason string
}

// CompleteBookingRequest запрос на завершение бронирования
type CompleteBookingRequest struct {
	BookingID int64
	Actor     domain.Actor
}

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	CustomerID int64
	Actor      domain.Actor
	Status     *string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	Date               string  `json:"date"`     // "2026-08-30"
	TimeSlot           string  `json:"timeSlot"` // "10:00"
	ServiceType        string  `json:"serviceType"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// UserBookingsResponse история бронирований, разбитая на предстоящие
// и прошедшие
type UserBookingsResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

// ArchiveResponse результат массовой архивации
type ArchiveResponse struct {
	Archived int64 `json:"archived"`
}

// CancellationsResponse отменённые бронирования текущего месяца
type CancellationsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

// TransactionResponse завершённое бронирование с ценой из каталога
type TransactionResponse struct {
	BookingID   int64   `json:"bookingId"`
	CustomerID  int64   `json:"customerId"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	ServiceType string  `json:"serviceType"`
	Price       float64 `json:"price"`
}

// TransactionsResponse список транзакций с общей суммой
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        float64               `json:"total"`
}

// FromDomainBooking конвертирует доменную модель в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		Date:               b.BookingDate.Format(domain.DateFormat),
		TimeSlot:           b.TimeSlot.String(),
		ServiceType:        b.ServiceType,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в доменный статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled, domain.StatusArchived:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
