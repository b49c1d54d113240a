package query

import "sort"

// Type is the value type of a queryable field. It decides which operators
// apply and how query-string values are parsed.
type Type int

const (
	Text Type = iota
	Number
	// Integer values must fit a 32-bit integer column.
	Integer
	Bool
	Time
	// List is a set of strings; eq means "contains", in means "overlaps".
	List
	// ID values must be UUIDs.
	ID
)

func (t Type) allows(op Operator) bool {
	switch t {
	case Number, Integer, Time:
		return true
	default:
		return op == Eq || op == In
	}
}

// Field describes one public field of a resource.
type Field struct {
	// Name is the public (JSON) name used in query strings.
	Name string
	// Columns back the field in storage. The first column is used for
	// filtering and sorting; all of them are read when the field is selected.
	Columns []string
	Type    Type
	Filter  bool
	Sort    bool
	Select  bool
}

// Column returns the column used for filtering and sorting.
func (f Field) Column() string {
	return f.Columns[0]
}

// Schema is the set of fields a resource exposes to the query translator.
type Schema struct {
	fields      map[string]Field
	selectable  []string
	defaultSort []SortKey
}

// NewSchema builds a schema. defaultSort applies when the request has no sort key.
func NewSchema(defaultSort []SortKey, fields ...Field) *Schema {
	s := &Schema{
		fields:      make(map[string]Field, len(fields)),
		defaultSort: defaultSort,
	}
	for _, f := range fields {
		s.fields[f.Name] = f
		if f.Select {
			s.selectable = append(s.selectable, f.Name)
		}
	}
	sort.Strings(s.selectable)
	return s
}

// Field looks up a field by public name.
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Selectable returns the names of all selectable fields in sorted order.
func (s *Schema) Selectable() []string {
	out := make([]string, len(s.selectable))
	copy(out, s.selectable)
	return out
}

// DefaultSort returns the sort keys used when a request has none.
func (s *Schema) DefaultSort() []SortKey {
	out := make([]SortKey, len(s.defaultSort))
	copy(out, s.defaultSort)
	return out
}
