package backend

import "fmt"

// RequestError возвращается, когда бэкенд ответил статусом вне 2xx.
// Сообщением служит сырое тело ответа — бэкенд кладёт туда текст ошибки.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}

// NetworkError возвращается при транспортной ошибке, когда ответ
// от бэкенда не был получен вовсе.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
