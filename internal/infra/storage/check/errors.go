package check

import "errors"

var (
	// ErrCheckNotFound возвращается, когда чек не найден
	ErrCheckNotFound = errors.New("check.repository: check not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("check.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("check.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("check.repository: failed to scan row")
)
