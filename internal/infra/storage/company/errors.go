package company

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена в реестре
	ErrCompanyNotFound = errors.New("company.repository: company not found")

	// ErrDuplicateName возвращается при попытке добавить компанию с занятым именем
	ErrDuplicateName = errors.New("company.repository: company name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("company.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("company.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("company.repository: failed to scan row")
)
