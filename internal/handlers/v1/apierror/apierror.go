// Package apierror maps service errors to huma error responses.
package apierror

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// FromService converts err into the response for action. Unclassified
// errors are logged and answered with a generic 500.
func FromService(ctx context.Context, action string, err error) error {
	logging.GetLogData(ctx).AddData("serviceError", err.Error())

	var (
		notFound   *apperr.NotFoundError
		invalid    *apperr.ValidationError
		constraint *apperr.ConstraintError
	)
	switch {
	case errors.As(err, &notFound):
		return huma.Error404NotFound(notFound.Error())
	case errors.As(err, &invalid):
		return huma.Error422UnprocessableEntity("validation failed", Detail(invalid.Field, invalid.Message, nil))
	case errors.As(err, &constraint):
		return huma.Error409Conflict(constraint.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "failed to "+action)
}

// Detail builds an error detail located at body.<field>.
func Detail(field, message string, value any) *huma.ErrorDetail {
	return &huma.ErrorDetail{
		Message:  message,
		Location: "body." + field,
		Value:    value,
	}
}

// InvalidBody rejects a body field the schema cannot check, such as a date.
func InvalidBody(field string, value any, err error) error {
	return huma.Error422UnprocessableEntity("validation failed", Detail(field, err.Error(), value))
}

// InvalidQuery rejects a query parameter the schema cannot check.
func InvalidQuery(param string, value any, err error) error {
	return huma.Error422UnprocessableEntity("validation failed", &huma.ErrorDetail{
		Message:  err.Error(),
		Location: "query." + param,
		Value:    value,
	})
}
