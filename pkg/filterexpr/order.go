package filterexpr

import (
	"fmt"
	"strings"
)

// OrderSchema whitelists order keys. Columns maps each key to the column it sorts by.
// Default applies when order_by is empty. Tiebreak is appended ascending unless the
// caller already ordered by it, so that pagination is stable.
type OrderSchema struct {
	Columns  map[string]string
	Default  []Term
	Tiebreak string
}

// Term is one resolved ordering key.
type Term struct {
	Key    string
	Column string
	Desc   bool
}

// ParseOrder resolves raw against schema.
func ParseOrder(raw string, schema OrderSchema) ([]Term, error) {
	if _, ok := schema.Columns[schema.Tiebreak]; !ok {
		return nil, fmt.Errorf("filterexpr: tiebreak key %q has no column", schema.Tiebreak)
	}

	var terms []Term
	raw = strings.TrimSpace(raw)
	if raw == "" {
		for _, t := range schema.Default {
			col, ok := schema.Columns[t.Key]
			if !ok {
				return nil, fmt.Errorf("filterexpr: default key %q has no column", t.Key)
			}
			terms = append(terms, Term{Key: t.Key, Column: col, Desc: t.Desc})
		}
	} else {
		seen := make(map[string]bool)
		for _, seg := range strings.Split(raw, ",") {
			words := strings.Fields(seg)
			if len(words) == 0 {
				continue
			}
			key := words[0]
			col, ok := schema.Columns[key]
			if !ok {
				return nil, invalidf("%q cannot be used for ordering", key)
			}
			if seen[key] {
				return nil, invalidf("duplicate order key %q", key)
			}
			seen[key] = true

			desc := false
			switch {
			case len(words) == 1:
			case len(words) == 2 && strings.EqualFold(words[1], "asc"):
			case len(words) == 2 && strings.EqualFold(words[1], "desc"):
				desc = true
			default:
				return nil, invalidf("invalid order segment %q", strings.TrimSpace(seg))
			}
			terms = append(terms, Term{Key: key, Column: col, Desc: desc})
		}
	}

	for _, t := range terms {
		if t.Key == schema.Tiebreak {
			return terms, nil
		}
	}
	return append(terms, Term{Key: schema.Tiebreak, Column: schema.Columns[schema.Tiebreak]}), nil
}
