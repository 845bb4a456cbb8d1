package disabledslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда блокировка слота не найдена
	ErrSlotNotFound = errors.New("disabledslot.repository: disabled slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("disabledslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("disabledslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("disabledslot.repository: failed to scan row")
)
