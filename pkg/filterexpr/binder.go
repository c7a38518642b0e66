package filterexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Msg wraps request DTOs that expose filter and order_by raw inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind describes the kind of literal value a field accepts.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "bool"
)

// Op represents a supported comparison operation.
type Op string

const (
	OpEQ  Op = "=="
	OpGTE Op = ">="
	OpLTE Op = "<="
	OpSW  Op = "startsWith"
)

// celOperators maps CEL call function names to filter ops.
var celOperators = map[string]Op{
	"_==_":       OpEQ,
	"_>=_":       OpGTE,
	"_<=_":       OpLTE,
	"startsWith": OpSW,
}

// FilterField whitelists one filterable field and the ops it accepts.
type FilterField struct {
	Kind ValueKind
	Ops  map[Op]bool
}

// Condition is one parsed comparison from a filter expression.
type Condition struct {
	Field string
	Op    Op
	Value any // string, int64, float64 or bool
}

// ResourceSchema aggregates filtering and ordering rules for a resource.
type ResourceSchema struct {
	Filter map[string]FilterField
	Order  OrderSchema
}

// Parse validates the request's filter and order_by against the schema and
// returns the typed conditions and ordering. Filters are conjunctions of
// whitelisted comparisons, e.g. `exposed == true && correct_total >= 5`.
func Parse(msg Msg, schema ResourceSchema) ([]Condition, Order, error) {
	conditions, err := parseFilter(msg.GetFilter(), schema.Filter)
	if err != nil {
		return nil, Order{}, fmt.Errorf("filter: %w", err)
	}
	order, err := parseOrderBy(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return nil, Order{}, fmt.Errorf("order_by: %w", err)
	}
	return conditions, order, nil
}

func parseFilter(filter string, fields map[string]FilterField) ([]Condition, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil, nil
	}
	if len(fields) == 0 {
		return nil, errors.New("filter schema has no fields defined")
	}

	env, err := cel.NewEnv()
	if err != nil {
		return nil, fmt.Errorf("build CEL env: %w", err)
	}
	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to convert AST: %w", err)
	}

	var conditions []Condition
	if err := collectConditions(parsed.GetExpr(), fields, &conditions); err != nil {
		return nil, err
	}
	return conditions, nil
}

// collectConditions walks a conjunction tree, accepting only `&&` over
// whitelisted comparisons.
func collectConditions(expr *exprpb.Expr, fields map[string]FilterField, out *[]Condition) error {
	call := expr.GetCallExpr()
	if call == nil {
		return errors.New("expected a comparison or conjunction")
	}
	if call.GetFunction() == "_&&_" {
		for _, arg := range call.GetArgs() {
			if err := collectConditions(arg, fields, out); err != nil {
				return err
			}
		}
		return nil
	}

	condition, err := parseComparison(call, fields)
	if err != nil {
		return err
	}
	*out = append(*out, condition)
	return nil
}

func parseComparison(call *exprpb.Expr_Call, fields map[string]FilterField) (Condition, error) {
	op, ok := celOperators[call.GetFunction()]
	if !ok {
		return Condition{}, fmt.Errorf("unsupported operation %q", call.GetFunction())
	}

	var fieldExpr, valueExpr *exprpb.Expr
	if op == OpSW {
		// startsWith is a receiver call: field.startsWith("prefix").
		if call.GetTarget() == nil || len(call.GetArgs()) != 1 {
			return Condition{}, errors.New("startsWith expects one argument")
		}
		fieldExpr, valueExpr = call.GetTarget(), call.GetArgs()[0]
	} else {
		args := call.GetArgs()
		if len(args) != 2 {
			return Condition{}, fmt.Errorf("%s expects two operands", op)
		}
		fieldExpr, valueExpr = args[0], args[1]
	}

	name := fieldExpr.GetIdentExpr().GetName()
	if name == "" {
		return Condition{}, errors.New("left operand must be a field name")
	}
	field, ok := fields[name]
	if !ok {
		return Condition{}, fmt.Errorf("unknown filter field %q", name)
	}
	if !field.Ops[op] {
		return Condition{}, fmt.Errorf("field %q does not support %s", name, op)
	}

	value, err := literalValue(valueExpr, field.Kind)
	if err != nil {
		return Condition{}, fmt.Errorf("field %q: %w", name, err)
	}
	return Condition{Field: name, Op: op, Value: value}, nil
}

func literalValue(expr *exprpb.Expr, kind ValueKind) (any, error) {
	constant := expr.GetConstExpr()
	if constant == nil {
		return nil, errors.New("right operand must be a literal")
	}
	switch kind {
	case KindString:
		if v, ok := constant.GetConstantKind().(*exprpb.Constant_StringValue); ok {
			return v.StringValue, nil
		}
		return nil, errors.New("expected a string literal")
	case KindNumber:
		switch v := constant.GetConstantKind().(type) {
		case *exprpb.Constant_Int64Value:
			return v.Int64Value, nil
		case *exprpb.Constant_Uint64Value:
			return int64(v.Uint64Value), nil
		case *exprpb.Constant_DoubleValue:
			return v.DoubleValue, nil
		default:
			return nil, errors.New("expected a numeric literal")
		}
	case KindBool:
		if v, ok := constant.GetConstantKind().(*exprpb.Constant_BoolValue); ok {
			return v.BoolValue, nil
		}
		return nil, errors.New("expected a bool literal")
	default:
		return nil, fmt.Errorf("unsupported value kind %q", kind)
	}
}
