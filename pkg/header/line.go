// Package header models HTTP header fields: single named multi-value lines,
// an ordered case-insensitive collection of them and a lenient parser for raw
// header blocks.
package header

import "strings"

// Line is an immutable header entry holding a name and its values in order.
// The name keeps its original case; comparisons ignore it.
type Line struct {
	name   string
	key    string
	values []string
}

// NewLine creates a Line. Underscores in name become hyphens, so names
// recovered from environment variables compare equal to wire names.
func NewLine(name string, values ...string) Line {
	name = strings.ReplaceAll(name, "_", "-")
	return Line{
		name:   name,
		key:    strings.ToLower(name),
		values: append([]string(nil), values...),
	}
}

func (l Line) Name() string {
	return l.name
}

// Values returns a copy of the values.
func (l Line) Values() []string {
	return append([]string(nil), l.values...)
}

// Value returns the value at position, or false when out of range.
func (l Line) Value(position int) (string, bool) {
	if position < 0 || position >= len(l.values) {
		return "", false
	}
	return l.values[position], true
}

// WithValue returns a copy whose values are replaced by values.
func (l Line) WithValue(values ...string) Line {
	l.values = append([]string(nil), values...)
	return l
}

// WithAddedValue returns a copy with values appended.
func (l Line) WithAddedValue(values ...string) Line {
	merged := make([]string, 0, len(l.values)+len(values))
	merged = append(merged, l.values...)
	l.values = append(merged, values...)
	return l
}

func (l Line) CommaSeparated() string {
	return strings.Join(l.values, ",")
}

func (l Line) NewlineSeparated() string {
	return strings.Join(l.values, "\n")
}

// IsNamed compares name with the line's name, ignoring case.
func (l Line) IsNamed(name string) bool {
	return l.key == strings.ToLower(name)
}

// String joins the values with "\n" for comma headers and with "," for
// everything else.
func (l Line) String() string {
	if IsCommaHeader(l.key) {
		return l.NewlineSeparated()
	}
	return l.CommaSeparated()
}
