package tabular

import "time"

// ColumnType enumerates the closed set of types a column can infer as.
// The zero value is TypeString, the universal fallback.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeDateTime
)

// String returns the lowercase label used in diagnostics and warnings.
func (t ColumnType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeDateTime:
		return "datetime"
	default:
		return "string"
	}
}

// Value is one typed cell. The field selected by Type is meaningful; the
// rest stay at their zero values. Missing marks an empty/NA cell and must
// survive through formatting as the dialect's null sentinel.
type Value struct {
	Type    ColumnType
	Missing bool

	Str   string
	Int   int64
	Float float64
	Bool  bool

	// Time applies when Type is TypeDateTime. DateOnly records that the
	// source carried no clock component; HasOffset that it carried an
	// explicit zone offset.
	Time      time.Time
	DateOnly  bool
	HasOffset bool
}

// NewStringValue returns a string cell.
func NewStringValue(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// NewBooleanValue returns a boolean cell.
func NewBooleanValue(b bool) Value {
	return Value{Type: TypeBoolean, Bool: b}
}

// NewIntegerValue returns an integer cell.
func NewIntegerValue(i int64) Value {
	return Value{Type: TypeInteger, Int: i}
}

// NewFloatValue returns a float cell.
func NewFloatValue(f float64) Value {
	return Value{Type: TypeFloat, Float: f}
}

// NewDateTimeValue returns a date/time cell. dateOnly means the source had
// no clock component; hasOffset means it carried an explicit zone offset.
func NewDateTimeValue(t time.Time, dateOnly, hasOffset bool) Value {
	return Value{Type: TypeDateTime, Time: t, DateOnly: dateOnly, HasOffset: hasOffset}
}

// NewMissingValue returns the missing-cell marker typed as t so formatters
// can keep per-column rendering uniform.
func NewMissingValue(t ColumnType) Value {
	return Value{Type: t, Missing: true}
}
