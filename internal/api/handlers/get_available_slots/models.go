package get_available_slots

import (
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	getSlots "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string   `json:"date"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Free            []string `json:"free"`
	Occupied        []string `json:"occupied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getSlots.Response) *SlotsResponse {
	free := make([]string, 0, len(result.Free))
	for _, slot := range result.Free {
		free = append(free, slot.String())
	}

	occupied := make([]string, 0, len(result.Occupied))
	for _, slot := range result.Occupied {
		occupied = append(occupied, slot.String())
	}

	return &SlotsResponse{
		Date:            result.Date.Format(domain.DateFormat),
		IntervalMinutes: result.IntervalMinutes,
		Free:            free,
		Occupied:        occupied,
	}
}
