package model

import "errors"

// ErrNotFound - запись с указанным id отсутствует.
var ErrNotFound = errors.New("item not found")

// ValidationError - некорректный ввод, исправляется вызывающей стороной.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidation достаёт ValidationError из цепочки err; nil, если её там нет.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
