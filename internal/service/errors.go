package service

import "errors"

var (
	// ErrValidation - некорректные входные данные, ошибка клиента
	ErrValidation = errors.New("validation failed")
	// ErrNotFound - сообщение с таким id не найдено или уже истекло
	ErrNotFound = errors.New("not found")
	// ErrStorage - сбой чтения или записи во внешнем хранилище
	ErrStorage = errors.New("storage failure")
	// ErrRouteComputation - общая ошибка расчета маршрута, детали пишутся в лог
	ErrRouteComputation = errors.New("route computation failed")
)

// isClientError - ошибка вызвана входными данными и не требует записи в лог как сбой
func isClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound)
}
