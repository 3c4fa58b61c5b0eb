package errors

import "github.com/rakapradana/place-review/constant"

type CustomError struct {
	errType constant.ErrorType
	fields  map[string]string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Fields returns per-field validation messages, nil for non-validation errors.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

func (c CustomError) Is(target constant.ErrorType) bool {
	return c.errType == target
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an invalid-request error carrying field-level
// messages.
func SetValidationError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}
