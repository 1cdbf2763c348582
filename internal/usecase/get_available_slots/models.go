package get_available_slots

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date time.Time // дата, на которую запрашиваются слоты (без времени)
}

// Response свободные и занятые слоты на дату
type Response struct {
	Date            time.Time
	IntervalMinutes int                // действующий шаг расписания
	Free            []types.TimeString // свободные слоты, по возрастанию
	Occupied        []types.TimeString // занятые активными бронированиями
}
