package e

import (
	"errors"
	"fmt"
)

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrInvalidIdentifier = fmt.Errorf("invalid identifier")

	// 404 Not Found
	ErrNotFound        = fmt.Errorf("not found")
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrBrandNotFound   = fmt.Errorf("brand %w", ErrNotFound)

	// 500 Internal Server Error
	ErrQueryFailed         = fmt.Errorf("query failed")
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// QueryFailed помечает ошибку хранилища как ErrQueryFailed, сохраняя исходную причину.
// Уже помеченные ошибки возвращаются без изменений.
func QueryFailed(err error) error {
	if err == nil || errors.Is(err, ErrQueryFailed) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrQueryFailed, err)
}
