package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrPhoneExists
	ErrInvalidCredentials
	ErrInvalidRating
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "place not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrPhoneExists:        "phone already registered",
	ErrInvalidCredentials: "invalid phone or password",
	ErrInvalidRating:      "rating must be between 1 and 5",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrPhoneExists:        http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusBadRequest,
	ErrInvalidRating:      http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrPhoneExists:        "0005",
	ErrInvalidCredentials: "0006",
	ErrInvalidRating:      "0007",
}
