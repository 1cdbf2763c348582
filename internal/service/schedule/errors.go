package schedule

import "errors"

var (
	// ErrValidation возвращается, когда недельная конфигурация не проходит
	// валидацию. Текст ошибки называет проблемный день недели
	ErrValidation = errors.New("invalid schedule configuration")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
