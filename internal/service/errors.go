package service

import (
	"context"
	"errors"
	"regexp"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/elsafrica/billing/internal/calculator"
	"github.com/elsafrica/billing/internal/storage"
)

var validate = newValidator()

// ipSuffix is the ".NN" or ".NNN" last-octet shorthand for a customer IP.
var ipSuffix = regexp.MustCompile(`^\.\d{2,3}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("ipsuffix", func(fl validator.FieldLevel) bool {
		return ipSuffix.MatchString(fl.Field().String())
	})
	return v
}

// validateRequest runs the struct tags of a request message.
func validateRequest(msg any) error {
	if err := validate.Struct(msg); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// toConnectError maps domain and storage errors to Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	var dateErr *calculator.InvalidDateError
	var numErr *calculator.InvalidNumberError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &dateErr), errors.As(err, &numErr), errors.As(err, &validationErrs):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, storage.ErrInUse):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
