package errors

import (
	"fmt"
	"net/http"
)

// ErrAddressRequired is the validation failure for a missing or empty address.
var ErrAddressRequired = &AppError{
	TechnicalMessage: "address query parameter is missing or empty",
	UserMessage:      MsgAddressRequired,
	Code:             ErrCodeInvalidAddress,
	HTTPStatus:       http.StatusBadRequest,
}

// MapError converts a technical error into a user-friendly AppError. Provider
// failures never reach this point: the aggregator absorbs them into per-provider
// placeholders, so anything mapped here is either a validation failure or a
// fault outside the per-provider isolation boundary.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return &AppError{
		TechnicalMessage: err.Error(),
		UserMessage:      fmt.Sprintf("%s: %s", MsgAggregationFailed, err.Error()),
		Code:             ErrCodeAggregationFailed,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}
