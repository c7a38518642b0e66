package filterexpr

import (
	"errors"
	"fmt"
	"strings"
)

// OrderField marks a key as usable in order_by. The zero value is enough;
// the struct exists so schemas can grow per-field options later.
type OrderField struct{}

// OrderSchema declares the orderable keys and the defaults applied when the
// request omits order_by. FallbackKey breaks ties for stable pagination.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField
}

// Order is the resolved ordering for a list query.
type Order struct {
	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

func parseOrderBy(raw string, schema OrderSchema) (Order, error) {
	if schema.Fields == nil {
		schema.Fields = map[string]OrderField{}
	}
	if schema.DefaultPrimary == "" {
		return Order{}, errors.New("order schema default primary key required")
	}
	if schema.FallbackKey == "" {
		return Order{}, errors.New("order schema fallback key required")
	}
	if _, ok := schema.Fields[schema.DefaultPrimary]; !ok {
		return Order{}, fmt.Errorf("order key %q missing from schema fields", schema.DefaultPrimary)
	}
	if _, ok := schema.Fields[schema.FallbackKey]; !ok {
		return Order{}, fmt.Errorf("fallback order key %q missing from schema fields", schema.FallbackKey)
	}

	ord := Order{
		PrimaryKey:    schema.DefaultPrimary,
		PrimaryDesc:   schema.DefaultPrimaryDesc,
		SecondaryKey:  schema.FallbackKey,
		SecondaryDesc: schema.FallbackDesc,
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ord, nil
	}

	segments := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(segments))
	idx := 0
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		parts := strings.Fields(seg)
		key := parts[0]
		if _, ok := schema.Fields[key]; !ok {
			return Order{}, fmt.Errorf("field %q cannot be used for ordering", key)
		}

		var desc bool
		switch len(parts) {
		case 1:
			desc = false
		case 2:
			switch strings.ToLower(parts[1]) {
			case "asc":
				desc = false
			case "desc":
				desc = true
			default:
				return Order{}, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
			}
		default:
			return Order{}, fmt.Errorf("invalid order segment %q", seg)
		}

		if _, dup := seen[key]; dup {
			return Order{}, fmt.Errorf("duplicate order key %q", key)
		}
		seen[key] = struct{}{}

		switch idx {
		case 0:
			ord.PrimaryKey = key
			ord.PrimaryDesc = desc
		case 1:
			ord.SecondaryKey = key
			ord.SecondaryDesc = desc
		default:
			return Order{}, errors.New("order_by supports at most two keys")
		}
		idx++
	}

	if ord.SecondaryKey == ord.PrimaryKey {
		// keep ordering stable when the request repeats the fallback key
		ord.SecondaryKey = schema.FallbackKey
		ord.SecondaryDesc = schema.FallbackDesc
		if ord.SecondaryKey == ord.PrimaryKey {
			for key := range schema.Fields {
				if key != ord.PrimaryKey {
					ord.SecondaryKey = key
					ord.SecondaryDesc = false
					break
				}
			}
		}
		if ord.SecondaryKey == ord.PrimaryKey {
			return Order{}, errors.New("order schema requires at least two distinct keys for stable ordering")
		}
	}

	return ord, nil
}
