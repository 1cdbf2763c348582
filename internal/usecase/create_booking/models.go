package create_booking

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID  int64            // ID клиента (из заголовков identity)
	Date        time.Time        // дата бронирования (без времени)
	TimeSlot    types.TimeString // начало слота, например "10:00"
	ServiceType string           // ключ услуги в прайс-листе
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	CustomerID  int64
	Date        time.Time
	TimeSlot    types.TimeString
	ServiceType string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
