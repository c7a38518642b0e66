package repository

import (
	"fmt"
	"math"

	"github.com/eslsoft/journey/internal/repository"
	"github.com/eslsoft/journey/pkg/filterexpr"
)

// listTermStatsSchema whitelists the filter and order surface of the stats
// listing API. correct_total is the exposure count summed across modalities.
var listTermStatsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"exposed": {
			Kind: filterexpr.KindBool,
			Ops:  map[filterexpr.Op]bool{filterexpr.OpEQ: true},
		},
		"correct_total": {
			Kind: filterexpr.KindNumber,
			Ops:  map[filterexpr.Op]bool{filterexpr.OpGTE: true, filterexpr.OpLTE: true},
		},
		"term_key": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]bool{filterexpr.OpEQ: true, filterexpr.OpSW: true},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "last_seen",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		Fields: map[string]filterexpr.OrderField{
			"last_seen":  {},
			"updated_at": {},
			"term_key":   {},
			"id":         {},
		},
	},
}

// bindTermStatsQuery parses the raw filter and order_by expressions on the
// query and fills in the typed fields every backend translates from.
func bindTermStatsQuery(query *repository.ListTermStatsQuery) error {
	conditions, order, err := filterexpr.Parse(query, listTermStatsSchema)
	if err != nil {
		return err
	}

	for _, cond := range conditions {
		switch cond.Field {
		case "exposed":
			value := cond.Value.(bool)
			query.Exposed = &value
		case "correct_total":
			value, err := conditionInt32(cond)
			if err != nil {
				return err
			}
			if cond.Op == filterexpr.OpGTE {
				query.MinCorrect = &value
			} else {
				query.MaxCorrect = &value
			}
		case "term_key":
			query.TermPrefix = cond.Value.(string)
		}
	}

	query.OrderPrimary = order.PrimaryKey
	query.OrderPrimaryDesc = order.PrimaryDesc
	query.OrderSecondary = order.SecondaryKey
	query.OrderSecondaryDesc = order.SecondaryDesc
	return nil
}

func conditionInt32(cond filterexpr.Condition) (int32, error) {
	var value int64
	switch v := cond.Value.(type) {
	case int64:
		value = v
	case float64:
		value = int64(v)
	default:
		return 0, fmt.Errorf("field %q: unexpected value type %T", cond.Field, cond.Value)
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, fmt.Errorf("field %q out of int32 range: %d", cond.Field, value)
	}
	return int32(value), nil
}
