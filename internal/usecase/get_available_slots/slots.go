package get_available_slots

import (
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// generateSlots генерирует упорядоченный список начал слотов на день.
// Слоты идут от открытия с фиксированным шагом, пока начало слота строго
// раньше закрытия: слот, начинающийся в момент закрытия или позже,
// не генерируется. Интервал <= 0 приводится к дефолтным 30 минутам.
// Результат всегда строится заново: конфигурация могла измениться
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

// splitSlots делит сгенерированные слоты на свободные и занятые.
// Занят слот, на который есть активное бронирование; время бронирования,
// не совпадающее ни с одним сгенерированным слотом, игнорируется
func splitSlots(candidates []types.TimeString, active []*domain.Booking) (free, occupied []types.TimeString) {
	taken := make(map[types.TimeString]bool, len(active))
	for _, b := range active {
		taken[b.TimeSlot] = true
	}

	free = make([]types.TimeString, 0, len(candidates))
	occupied = make([]types.TimeString, 0)

	for _, slot := range candidates {
		if taken[slot] {
			occupied = append(occupied, slot)
			continue
		}
		free = append(free, slot)
	}

	return free, occupied
}
