package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownService возвращается, когда услуга отсутствует в прайс-листе
	ErrUnknownService = errors.New("create_booking: unknown service type")

	// ErrClosedDay возвращается при попытке бронирования на выходной день
	ErrClosedDay = errors.New("create_booking: closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним
	// слотом расписания этого дня
	ErrInvalidTimeSlot = errors.New("create_booking: time does not match any slot")

	// ErrSlotTaken возвращается, когда на слот уже есть активное бронирование
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
