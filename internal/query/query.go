// Package query turns list-endpoint query strings into typed query descriptors
// and computes pagination windows.
//
// A request such as
//
//	?averageCost[lte]=10000&location.state=MA&select=name,housing&sort=-name&page=2&limit=2
//
// becomes a Descriptor holding two predicates, a projection, a sort key and a
// page window. Repositories render descriptors into parameterized SQL.
package query

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"devcamper/internal/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// Operator is a filter comparison.
type Operator string

const (
	Eq  Operator = "eq"
	Gt  Operator = "gt"
	Gte Operator = "gte"
	Lt  Operator = "lt"
	Lte Operator = "lte"
	In  Operator = "in"
)

var operators = map[string]Operator{
	"gt":  Gt,
	"gte": Gte,
	"lt":  Lt,
	"lte": Lte,
	"in":  In,
}

// Reserved query keys control projection, sorting and paging, never filters.
var reserved = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

var keyPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.]*)(?:\[([A-Za-z]+)\])?$`)

// Predicate is one typed filter condition.
// Values holds exactly one element unless Op is In.
type Predicate struct {
	Field  Field
	Op     Operator
	Values []any
}

// SortKey orders results by a public field name.
type SortKey struct {
	Field string
	Desc  bool
}

// Descriptor is the parsed form of a list request.
type Descriptor struct {
	Filters []Predicate
	// Select lists the projected public fields; empty means all.
	Select []string
	Sort   []SortKey
	Page   int
	Limit  int
}

// Offset is the number of matching rows skipped before the page starts.
func (d Descriptor) Offset() int {
	return NewWindow(d.Page, d.Limit).Start
}

// Parse translates query-string parameters against the schema.
// Malformed filters, selections and sort keys are reported as bad requests.
func (s *Schema) Parse(params map[string]string) (Descriptor, error) {
	d := Descriptor{
		Page:  parsePositive(params["page"], DefaultPage),
		Limit: parsePositive(params["limit"], DefaultLimit),
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		if !reserved[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		p, err := s.predicate(k, params[k])
		if err != nil {
			return Descriptor{}, err
		}
		d.Filters = append(d.Filters, p)
	}

	sel, err := s.selection(params["select"])
	if err != nil {
		return Descriptor{}, err
	}
	d.Select = sel

	keysSort, err := s.sortKeys(params["sort"])
	if err != nil {
		return Descriptor{}, err
	}
	d.Sort = keysSort

	return d, nil
}

func (s *Schema) predicate(key, raw string) (Predicate, error) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return Predicate{}, apperror.BadRequest("Invalid query parameter %q", key)
	}
	name, opToken := m[1], m[2]

	f, ok := s.Field(name)
	if !ok || !f.Filter {
		return Predicate{}, apperror.BadRequest("Cannot filter by field %q", name)
	}

	op := Eq
	if opToken != "" {
		op, ok = operators[opToken]
		if !ok {
			return Predicate{}, apperror.BadRequest("Unknown filter operator %q", opToken)
		}
	}
	if !f.Type.allows(op) {
		return Predicate{}, apperror.BadRequest("Operator %q is not supported for field %q", op, name)
	}

	parts := []string{raw}
	if op == In {
		parts = splitList(raw)
		if len(parts) == 0 {
			return Predicate{}, apperror.BadRequest("Filter %q needs at least one value", key)
		}
	}

	values := make([]any, 0, len(parts))
	for _, p := range parts {
		v, err := parseValue(f.Type, p)
		if err != nil {
			return Predicate{}, apperror.BadRequest("Invalid value %q for field %q", p, name)
		}
		values = append(values, v)
	}

	return Predicate{Field: f, Op: op, Values: values}, nil
}

func (s *Schema) selection(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	names := splitList(raw)
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		f, ok := s.Field(n)
		if !ok || !f.Select {
			return nil, apperror.BadRequest("Cannot select field %q, selectable fields: %s", n, strings.Join(s.Selectable(), ", "))
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Schema) sortKeys(raw string) ([]SortKey, error) {
	if strings.TrimSpace(raw) == "" {
		return s.DefaultSort(), nil
	}
	var out []SortKey
	for _, n := range splitList(raw) {
		k := SortKey{Field: n}
		if strings.HasPrefix(n, "-") {
			k = SortKey{Field: n[1:], Desc: true}
		}
		f, ok := s.Field(k.Field)
		if !ok || !f.Sort {
			return nil, apperror.BadRequest("Cannot sort by field %q", k.Field)
		}
		out = append(out, k)
	}
	return out, nil
}

func parseValue(t Type, raw string) (any, error) {
	switch t {
	case Number:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, strconv.ErrRange
		}
		return f, nil
	case Integer:
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	case Bool:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case Time:
		raw = strings.TrimSpace(raw)
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return ts, nil
		}
		return time.Parse(time.DateOnly, raw)
	case ID:
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		return id.String(), nil
	default:
		return raw, nil
	}
}

func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
