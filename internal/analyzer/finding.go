package analyzer

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Category identifies one kind of anomaly.
type Category int

// Categories in report order. The four causes directly after
// InconsistentFields are attributed to mismatching rows only.
const (
	InconsistentFields Category = iota
	UnescapedDelimiter
	MismatchedQuotes
	EmbeddedLineBreak
	TrailingEmptyFields
	UnnecessaryQuoting
	EscapedCharacters
	LineBreaks
	Whitespace
	ColumnType
)

var categoryNames = map[Category]string{
	InconsistentFields:  "inconsistent_fields",
	UnescapedDelimiter:  "unescaped_delimiter",
	MismatchedQuotes:    "mismatched_quotes",
	EmbeddedLineBreak:   "embedded_line_break",
	TrailingEmptyFields: "trailing_empty_fields",
	UnnecessaryQuoting:  "unnecessary_quoting",
	EscapedCharacters:   "escaped_characters",
	LineBreaks:          "line_breaks",
	Whitespace:          "whitespace",
	ColumnType:          "column_type",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsCause reports whether c is a sub-finding of InconsistentFields.
func (c Category) IsCause() bool {
	return c > InconsistentFields && c <= TrailingEmptyFields
}

// Section is the fixed number of the report block the category belongs to.
func (c Category) Section() int {
	switch {
	case c <= TrailingEmptyFields:
		return 1
	case c == UnnecessaryQuoting:
		return 2
	case c == EscapedCharacters:
		return 3
	case c == LineBreaks:
		return 4
	case c == Whitespace:
		return 5
	default:
		return 6
	}
}

// FieldCount records the actual width of a mismatching row.
type FieldCount struct {
	Row   int
	Count int
}

// ColumnKind is the outcome of the per-column type profile.
type ColumnKind int

const (
	KindInteger ColumnKind = iota
	KindFloat
	KindDate
	KindMixed
)

func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindDate:
		return "date"
	default:
		return "mixed"
	}
}

// ColumnProfile describes one header column.
type ColumnProfile struct {
	Index int
	Name  string
	Kind  ColumnKind
}

// Finding is one category of anomaly and the rows exhibiting it.
// Rows are sorted and unique. Expected and Counts are set for
// InconsistentFields, Column for ColumnType.
type Finding struct {
	Category Category
	Rows     []int
	Expected int
	Counts   []FieldCount
	Column   *ColumnProfile
}

// Findings keeps the analyzer output in category order.
type Findings struct {
	byCategory *orderedmap.OrderedMap[Category, []Finding]
}

func newFindings() *Findings {
	return &Findings{byCategory: orderedmap.NewOrderedMap[Category, []Finding]()}
}

// add stores f unless it has no rows. Column profiles are kept regardless
// since a uniform column is still reported.
func (f *Findings) add(fd Finding) {
	if len(fd.Rows) == 0 && fd.Column == nil {
		return
	}
	list, _ := f.byCategory.Get(fd.Category)
	f.byCategory.Set(fd.Category, append(list, fd))
}

// Of returns every finding of category c.
func (f *Findings) Of(c Category) []Finding {
	list, _ := f.byCategory.Get(c)
	return list
}

// Rows returns the affected rows of the first finding of category c.
func (f *Findings) Rows(c Category) []int {
	if list := f.Of(c); len(list) > 0 {
		return list[0].Rows
	}
	return nil
}

// Has reports whether any finding of category c exists.
func (f *Findings) Has(c Category) bool {
	return len(f.Of(c)) > 0
}

// Categories lists the categories present, in report order.
func (f *Findings) Categories() []Category {
	return f.byCategory.Keys()
}

// All flattens the findings in report order.
func (f *Findings) All() []Finding {
	var all []Finding
	for _, c := range f.byCategory.Keys() {
		all = append(all, f.Of(c)...)
	}
	return all
}

// Len is the total number of findings.
func (f *Findings) Len() int {
	n := 0
	for _, c := range f.byCategory.Keys() {
		n += len(f.Of(c))
	}
	return n
}
