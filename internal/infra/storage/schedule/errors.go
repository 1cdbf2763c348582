package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация дня не найдена
	ErrConfigNotFound = errors.New("schedule.repository: weekday config not found")

	// ErrIncompleteWeek возвращается, когда в таблице нет всех семи дней
	ErrIncompleteWeek = errors.New("schedule.repository: incomplete week configuration")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
