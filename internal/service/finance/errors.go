package finance

import "errors"

var (
	// ErrValidation возвращается при некорректных финансовых данных
	ErrValidation = errors.New("invalid financial data")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("finance service: internal error")
)
