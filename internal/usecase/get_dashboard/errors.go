package get_dashboard

import "errors"

var (
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("get_dashboard: internal error")
)
