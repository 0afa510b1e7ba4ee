package mapping

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// ToConnectError maps domain errors onto connect codes. Errors that already carry a
// connect code pass through untouched.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return err
	}
	return connect.NewError(CodeOf(err), err)
}

// CodeOf returns the connect code for a domain error.
func CodeOf(err error) connect.Code {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, entity.ErrInvalidArgument), errors.Is(err, entity.ErrScoreOutOfRange):
		return connect.CodeInvalidArgument
	case errors.Is(err, entity.ErrAlreadyExists):
		return connect.CodeAlreadyExists
	case errors.Is(err, entity.ErrInconsistentData):
		return connect.CodeDataLoss
	case errors.Is(err, entity.ErrConcurrentWrite):
		return connect.CodeAborted
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	default:
		return connect.CodeInternal
	}
}
