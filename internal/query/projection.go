package query

import (
	json "github.com/goccy/go-json"
)

// Project renders items as JSON objects restricted to the selected fields.
// The keep fields (identifiers, eagerly expanded relations) are always retained.
// With no selection the items are returned unchanged.
func Project[T any](items []T, fields []string, keep ...string) ([]any, error) {
	out := make([]any, 0, len(items))
	if len(fields) == 0 {
		for _, it := range items {
			out = append(out, it)
		}
		return out, nil
	}

	want := make(map[string]bool, len(fields)+len(keep))
	for _, f := range fields {
		want[f] = true
	}
	for _, k := range keep {
		want[k] = true
	}

	for _, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			return nil, err
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
		for k := range m {
			if !want[k] {
				delete(m, k)
			}
		}
		out = append(out, m)
	}
	return out, nil
}
