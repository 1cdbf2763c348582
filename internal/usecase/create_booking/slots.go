package create_booking

import (
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// generateSlots генерирует упорядоченный список начал слотов на день.
// Слоты идут от открытия с фиксированным шагом, пока начало слота строго
// раньше закрытия. Интервал <= 0 приводится к дефолтным 30 минутам
func generateSlots(cfg *domain.WeekdayConfig) ([]types.TimeString, error) {
	if !cfg.CanGenerateSlots() {
		return []types.TimeString{}, nil
	}

	openTime := *cfg.OpenTime
	closeTime := *cfg.CloseTime
	interval := cfg.EffectiveInterval()

	if err := openTime.Validate(); err != nil {
		return nil, err
	}
	if err := closeTime.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(interval)
		if err != nil {
			return nil, err
		}
		// защита от зацикливания при переходе через полночь
		if !current.IsBefore(next) {
			break
		}
		current = next
	}

	return slots, nil
}
