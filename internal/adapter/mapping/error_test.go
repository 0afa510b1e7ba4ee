package mapping

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/eslsoft/toeicprep/internal/entity"
)

func TestToConnectError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", fmt.Errorf("load: %w", entity.ErrTestNotFound), connect.CodeNotFound},
		{"invalid argument", entity.InvalidArgumentf("bad label"), connect.CodeInvalidArgument},
		{"range", &entity.RangeError{Section: entity.SectionReading, Raw: 101}, connect.CodeInvalidArgument},
		{"inconsistent", &entity.InconsistentDataError{Entity: "question", ID: 3, Reason: "orphan"}, connect.CodeDataLoss},
		{"concurrent", entity.ErrConcurrentWrite, connect.CodeAborted},
		{"exists", entity.ErrAlreadyExists, connect.CodeAlreadyExists},
		{"deadline", context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{"other", errors.New("boom"), connect.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ToConnectError(tc.err)
			if got := connect.CodeOf(err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected the domain error to stay reachable, got %v", err)
			}
		})
	}

	if ToConnectError(nil) != nil {
		t.Fatalf("nil must map to nil")
	}
	passthrough := connect.NewError(connect.CodeUnavailable, errors.New("down"))
	if got := ToConnectError(passthrough); got != passthrough {
		t.Fatalf("expected connect errors to pass through, got %v", got)
	}
}
