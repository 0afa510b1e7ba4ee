// Package filterexpr binds the filter and order_by strings of list requests to typed
// query parameters.
//
// A filter is a CEL expression restricted to a conjunction of comparisons between a
// whitelisted identifier and a literal, for example:
//
//	test_id == 3 && completed_at >= timestamp('2024-01-01T00:00:00Z')
//
// Each (field, operator) pair of the schema names the params struct field receiving the
// literal. order_by is a comma separated list of "key [asc|desc]" segments.
package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalid is wrapped by every error caused by the caller's filter or order_by input.
var ErrInvalid = errors.New("invalid list expression")

// Request is implemented by list requests carrying raw filter and order_by strings.
type Request interface {
	GetFilter() string
	GetOrderBy() string
}

// Kind is the literal type a field accepts.
type Kind string

const (
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindTimestamp Kind = "timestamp"
)

// Op is a comparison operator.
type Op string

const (
	OpEQ  Op = "=="
	OpGT  Op = ">"
	OpGTE Op = ">="
	OpLT  Op = "<"
	OpLTE Op = "<="
	OpIN  Op = "in"
)

// Field describes one filterable identifier. Targets maps each allowed operator to the
// name of the params struct field that receives the literal.
type Field struct {
	Kind    Kind
	Targets map[Op]string
}

// Schema is the whitelist of a listable resource.
type Schema struct {
	Filter map[string]Field
	Order  OrderSchema
}

// Bind parses the filter into params and returns the resolved ordering.
func Bind[R Request, P any](req R, params *P, schema Schema) ([]Term, error) {
	if params == nil {
		return nil, errors.New("filterexpr: params must not be nil")
	}
	dest := reflect.ValueOf(params).Elem()
	if dest.Kind() != reflect.Struct {
		return nil, fmt.Errorf("filterexpr: params must point to a struct, got %s", dest.Kind())
	}

	if err := bindFilter(dest, req.GetFilter(), schema.Filter); err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	terms, err := ParseOrder(req.GetOrderBy(), schema.Order)
	if err != nil {
		return nil, fmt.Errorf("order_by: %w", err)
	}
	return terms, nil
}

func bindFilter(dest reflect.Value, filter string, fields map[string]Field) error {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil
	}
	if len(fields) == 0 {
		return invalidf("filtering is not supported")
	}

	preds, err := parsePredicates(filter, fields)
	if err != nil {
		return err
	}

	for _, pred := range preds {
		field, ok := fields[pred.field]
		if !ok {
			return invalidf("field %q is not filterable", pred.field)
		}
		target, ok := field.Targets[pred.op]
		if !ok {
			return invalidf("operator %q is not allowed for field %q", pred.op, pred.field)
		}
		if err := checkLiteral(field.Kind, pred.op, pred.value); err != nil {
			return fmt.Errorf("field %q: %w", pred.field, err)
		}

		fv := dest.FieldByName(target)
		if !fv.IsValid() || !fv.CanSet() {
			return fmt.Errorf("filterexpr: params struct %s has no settable field %q", dest.Type(), target)
		}
		if err := assign(fv, pred.value); err != nil {
			return fmt.Errorf("field %q: %w", pred.field, err)
		}
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
