package filterexpr

import (
	"fmt"
	"time"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

type predicate struct {
	field string
	op    Op
	value any
}

var binaryOps = map[string]Op{
	"_==_": OpEQ,
	"_>_":  OpGT,
	"_>=_": OpGTE,
	"_<_":  OpLT,
	"_<=_": OpLTE,
}

func parsePredicates(filter string, fields map[string]Field) ([]predicate, error) {
	env, err := newEnv(fields)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return nil, invalidf("%v", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("filterexpr: convert ast: %w", err)
	}

	var preds []predicate
	for _, expr := range conjuncts(parsed.GetExpr(), nil) {
		pred, err := toPredicate(expr)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}
	return preds, nil
}

func newEnv(fields map[string]Field) (*cel.Env, error) {
	opts := []cel.EnvOption{cel.CrossTypeNumericComparisons(true)}
	for name, field := range fields {
		var typ *cel.Type
		switch field.Kind {
		case KindString:
			typ = cel.StringType
		case KindNumber:
			typ = cel.DoubleType
		case KindTimestamp:
			typ = cel.TimestampType
		default:
			return nil, fmt.Errorf("filterexpr: field %q has unsupported kind %q", name, field.Kind)
		}
		opts = append(opts, cel.Variable(name, typ))
	}
	return cel.NewEnv(opts...)
}

// conjuncts flattens nested && calls into their operands.
func conjuncts(expr *exprpb.Expr, acc []*exprpb.Expr) []*exprpb.Expr {
	if call := expr.GetCallExpr(); call != nil && call.GetFunction() == "_&&_" && call.GetTarget() == nil {
		for _, arg := range call.GetArgs() {
			acc = conjuncts(arg, acc)
		}
		return acc
	}
	return append(acc, expr)
}

func toPredicate(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, invalidf("expected a comparison")
	}
	fn := call.GetFunction()
	switch fn {
	case "_||_", "!_", "_?_:_", "_!=_":
		return predicate{}, invalidf("operator %q is not supported, only && of comparisons", fn)
	case "@in":
		return comparison(call, OpIN)
	}
	if op, ok := binaryOps[fn]; ok {
		return comparison(call, op)
	}
	return predicate{}, invalidf("function %q is not supported", fn)
}

func comparison(call *exprpb.Expr_Call, op Op) (predicate, error) {
	args := call.GetArgs()
	if call.GetTarget() != nil || len(args) != 2 {
		return predicate{}, invalidf("operator %q expects two operands", op)
	}
	ident := args[0].GetIdentExpr()
	if ident == nil {
		return predicate{}, invalidf("left side of %q must be a field name", op)
	}
	value, err := literal(args[1])
	if err != nil {
		return predicate{}, err
	}
	return predicate{field: ident.GetName(), op: op, value: value}, nil
}

// literal returns string, float64, time.Time or []any.
func literal(expr *exprpb.Expr) (any, error) {
	if c := expr.GetConstExpr(); c != nil {
		switch c.GetConstantKind().(type) {
		case *exprpb.Constant_StringValue:
			return c.GetStringValue(), nil
		case *exprpb.Constant_Int64Value:
			return float64(c.GetInt64Value()), nil
		case *exprpb.Constant_Uint64Value:
			return float64(c.GetUint64Value()), nil
		case *exprpb.Constant_DoubleValue:
			return c.GetDoubleValue(), nil
		default:
			return nil, invalidf("literal %T is not supported", c.GetConstantKind())
		}
	}

	if list := expr.GetListExpr(); list != nil {
		values := make([]any, 0, len(list.GetElements()))
		for i, elem := range list.GetElements() {
			v, err := literal(elem)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			values = append(values, v)
		}
		return values, nil
	}

	if call := expr.GetCallExpr(); call != nil && call.GetFunction() == "timestamp" {
		args := call.GetArgs()
		if call.GetTarget() != nil || len(args) != 1 || args[0].GetConstExpr() == nil {
			return nil, invalidf("timestamp() expects one string literal")
		}
		raw := args[0].GetConstExpr().GetStringValue()
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, invalidf("timestamp %q is not RFC 3339", raw)
		}
		return t, nil
	}

	return nil, invalidf("right side must be a literal, a list or timestamp()")
}

func checkLiteral(kind Kind, op Op, value any) error {
	if op == OpIN {
		list, ok := value.([]any)
		if !ok {
			return invalidf("in expects a list literal")
		}
		if len(list) == 0 {
			return invalidf("in list must not be empty")
		}
		for _, item := range list {
			if err := checkLiteral(kind, OpEQ, item); err != nil {
				return err
			}
		}
		return nil
	}

	var ok bool
	switch kind {
	case KindString:
		_, ok = value.(string)
	case KindNumber:
		_, ok = value.(float64)
	case KindTimestamp:
		_, ok = value.(time.Time)
	}
	if !ok {
		return invalidf("expected a %s literal, got %T", kind, value)
	}
	return nil
}
