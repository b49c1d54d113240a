package postgres

import (
	"strconv"
	"strings"

	"devcamper/internal/query"
)

var comparison = map[query.Operator]string{
	query.Eq:  "=",
	query.Gt:  ">",
	query.Gte: ">=",
	query.Lt:  "<",
	query.Lte: "<=",
}

// args collects positional parameters while a statement is assembled.
// Values never appear in SQL text.
type args []any

func (a *args) bind(v any) string {
	*a = append(*a, v)
	return "$" + strconv.Itoa(len(*a))
}

func (a *args) bindAll(vs []any) string {
	ph := make([]string, len(vs))
	for i, v := range vs {
		ph[i] = a.bind(v)
	}
	return strings.Join(ph, ", ")
}

// condition renders one predicate against its field's column.
func (a *args) condition(p query.Predicate) string {
	col := p.Field.Column()
	if p.Field.Type == query.List {
		// jsonb string array: ? is containment, ?| is overlap
		if p.Op == query.In {
			return col + " ?| ARRAY[" + a.bindAll(p.Values) + "]::text[]"
		}
		return col + " ? " + a.bind(p.Values[0])
	}
	if p.Op == query.In {
		return col + " IN (" + a.bindAll(p.Values) + ")"
	}
	return col + " " + comparison[p.Op] + " " + a.bind(p.Values[0])
}

// where renders extra conditions followed by the predicates, ANDed.
func (a *args) where(preds []query.Predicate, extra ...string) string {
	conds := append([]string(nil), extra...)
	for _, p := range preds {
		conds = append(conds, a.condition(p))
	}
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// page appends LIMIT and OFFSET for the descriptor's window.
func (a *args) page(d query.Descriptor) string {
	return " LIMIT " + a.bind(d.Limit) + " OFFSET " + a.bind(d.Offset())
}

// orderBy renders sort keys; tiebreak keeps paging stable across equal keys.
func orderBy(s *query.Schema, keys []query.SortKey, tiebreak string) string {
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		f, ok := s.Field(k.Field)
		if !ok {
			continue
		}
		dir := " ASC"
		if k.Desc {
			dir = " DESC"
		}
		parts = append(parts, f.Column()+dir)
	}
	parts = append(parts, tiebreak+" ASC")
	return " ORDER BY " + strings.Join(parts, ", ")
}

// columns returns the columns backing the selected fields, always led by
// the required ones. An empty selection reads all.
func columns(s *query.Schema, sel []string, all []string, required ...string) []string {
	if len(sel) == 0 {
		return all
	}
	seen := make(map[string]bool)
	out := make([]string, 0, len(required)+len(sel))
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range required {
		add(c)
	}
	for _, name := range sel {
		f, ok := s.Field(name)
		if !ok {
			continue
		}
		for _, c := range f.Columns {
			add(c)
		}
	}
	return out
}
