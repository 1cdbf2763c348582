package create_booking

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	createBooking "github.com/m04kA/BRB-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string `json:"date"`     // "2026-08-30"
	TimeSlot    string `json:"timeSlot"` // "10:00"
	ServiceType string `json:"serviceType"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	ServiceType string `json:"serviceType"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Клиент всегда бронирует на себя, ID берётся из заголовков identity
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:  actor.UserID,
		Date:        date,
		TimeSlot:    timeSlot,
		ServiceType: r.ServiceType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          result.ID,
		CustomerID:  result.CustomerID,
		Date:        result.Date.Format(domain.DateFormat),
		TimeSlot:    result.TimeSlot.String(),
		ServiceType: result.ServiceType,
		Status:      result.Status,
		CreatedAt:   result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   result.UpdatedAt.Format(time.RFC3339),
	}
}
