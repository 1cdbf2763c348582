package create_booking

import (
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, catalog *domain.ServiceCatalog) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if !catalog.Contains(req.ServiceType) {
		return fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceType)
	}

	return nil
}

// slotExists проверяет, что запрошенное время совпадает с одним из
// сгенерированных слотов дня
func slotExists(slot types.TimeString, candidates []types.TimeString) bool {
	for _, c := range candidates {
		if c == slot {
			return true
		}
	}
	return false
}

// slotOccupied проверяет, что на слот уже есть активное бронирование
func slotOccupied(slot types.TimeString, active []*domain.Booking) bool {
	for _, b := range active {
		if b.TimeSlot == slot {
			return true
		}
	}
	return false
}
