package apperror

import "fmt"

type Error struct {
	Raw       error
	HTTPCode  int
	ErrorCode string
	Message   string
}

func NewError(err error, httpCode int, errCode string, message string) Error {
	return Error{
		Raw:       err,
		HTTPCode:  httpCode,
		ErrorCode: errCode,
		Message:   message,
	}
}

func (e Error) Error() string {
	if e.Raw == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Raw.Error())
}

func (e Error) Unwrap() error {
	return e.Raw
}
