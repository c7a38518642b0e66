package filterexpr

import (
	"reflect"
	"testing"
)

type listReq struct {
	filter  string
	orderBy string
}

func (r listReq) GetFilter() string  { return r.filter }
func (r listReq) GetOrderBy() string { return r.orderBy }

var statsSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"exposed": {
			Kind: KindBool,
			Ops:  map[Op]bool{OpEQ: true},
		},
		"correct_total": {
			Kind: KindNumber,
			Ops:  map[Op]bool{OpGTE: true, OpLTE: true},
		},
		"term_key": {
			Kind: KindString,
			Ops:  map[Op]bool{OpEQ: true, OpSW: true},
		},
	},
	Order: OrderSchema{
		DefaultPrimary: "last_seen",
		FallbackKey:    "id",
		Fields: map[string]OrderField{
			"last_seen":     {},
			"correct_total": {},
			"id":            {},
		},
	},
}

func TestParseConjunction(t *testing.T) {
	req := listReq{filter: `exposed == true && correct_total >= 5 && term_key.startsWith("cat")`}
	conditions, order, err := Parse(req, statsSchema)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Condition{
		{Field: "exposed", Op: OpEQ, Value: true},
		{Field: "correct_total", Op: OpGTE, Value: int64(5)},
		{Field: "term_key", Op: OpSW, Value: "cat"},
	}
	if !reflect.DeepEqual(conditions, want) {
		t.Errorf("conditions = %+v, want %+v", conditions, want)
	}
	if order.PrimaryKey != "last_seen" || order.SecondaryKey != "id" {
		t.Errorf("default order = %+v", order)
	}
}

func TestParseEmptyFilterYieldsNoConditions(t *testing.T) {
	conditions, _, err := Parse(listReq{}, statsSchema)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(conditions) != 0 {
		t.Errorf("conditions = %+v, want none", conditions)
	}
}

func TestParseRejectsInvalidFilters(t *testing.T) {
	cases := map[string]string{
		"unknown field":     `streak >= 3`,
		"unsupported op":    `correct_total != 5`,
		"op not in schema":  `exposed >= true`,
		"wrong value kind":  `exposed == "yes"`,
		"non-literal value": `correct_total >= correct_total`,
		"disjunction":       `exposed == true || correct_total >= 5`,
		"bare ident":        `exposed`,
		"syntax error":      `exposed == `,
	}
	for name, filter := range cases {
		if _, _, err := Parse(listReq{filter: filter}, statsSchema); err == nil {
			t.Errorf("%s: Parse(%q) expected error", name, filter)
		}
	}
}

func TestParseOrderBy(t *testing.T) {
	order, _ := mustParseOrder(t, "correct_total desc")
	if order.PrimaryKey != "correct_total" || !order.PrimaryDesc {
		t.Errorf("order = %+v, want correct_total desc", order)
	}
	if order.SecondaryKey != "id" || order.SecondaryDesc {
		t.Errorf("secondary = %s/%v, want id asc", order.SecondaryKey, order.SecondaryDesc)
	}

	order, _ = mustParseOrder(t, "last_seen desc, correct_total asc")
	if order.SecondaryKey != "correct_total" || order.SecondaryDesc {
		t.Errorf("two-key order = %+v", order)
	}
}

func TestParseOrderByRejectsBadInput(t *testing.T) {
	for _, raw := range []string{
		"mystery desc",
		"last_seen sideways",
		"last_seen, last_seen",
		"last_seen, correct_total, id",
	} {
		if _, _, err := Parse(listReq{orderBy: raw}, statsSchema); err == nil {
			t.Errorf("Parse(order_by=%q) expected error", raw)
		}
	}
}

func mustParseOrder(t *testing.T, raw string) (Order, []Condition) {
	t.Helper()
	conditions, order, err := Parse(listReq{orderBy: raw}, statsSchema)
	if err != nil {
		t.Fatalf("Parse(order_by=%q): %v", raw, err)
	}
	return order, conditions
}
