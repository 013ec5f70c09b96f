package header

import (
	"iter"
	"sort"
	"strings"
)

// Headers is an ordered list of header lines with case-insensitive lookup.
//
// Add, Set, Remove and Import modify the collection in place. The With*
// methods leave the receiver untouched and return a modified copy, which is
// what immutable message values build on.
type Headers struct {
	lines []Line
}

// FromMap builds Headers with one single-valued line per key. Keys are
// visited in sorted order.
func FromMap(m map[string]string) Headers {
	values := make(map[string][]string, len(m))
	for k, v := range m {
		values[k] = []string{v}
	}
	return FromValues(values)
}

// FromLines builds Headers holding lines in the given order, so that a start
// line passed first stays reachable through First.
func FromLines(lines ...Line) Headers {
	return Headers{lines: append([]Line(nil), lines...)}
}

// FromValues builds Headers with one line per key, in sorted key order.
func FromValues(m map[string][]string) Headers {
	var h Headers
	h.Import(m)
	return h
}

// Import appends one line per key of m, in sorted key order. Existing lines
// are left as they are, even when they share a name with an imported key.
func (h *Headers) Import(m map[string][]string) {
	for _, name := range sortedKeys(m) {
		h.lines = append(h.lines, NewLine(name, m[name]...))
	}
}

func (h Headers) Contains(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Get returns the first line named name.
func (h Headers) Get(name string) (Line, bool) {
	for _, line := range h.lines {
		if line.IsNamed(name) {
			return line, true
		}
	}
	return Line{}, false
}

// GetAll returns the values of the first line named name, or nil.
func (h Headers) GetAll(name string) []string {
	line, ok := h.Get(name)
	if !ok {
		return nil
	}
	return line.Values()
}

// Add appends values to the last line named name, or starts a new line when
// there is none. A comma header whose first value contains a comma always
// starts a new line so that it is never read back merged with its siblings.
func (h *Headers) Add(name string, values ...string) {
	separate := IsCommaHeader(name) && len(values) > 0 && strings.Contains(values[0], ",")
	if !separate {
		for i := len(h.lines) - 1; i >= 0; i-- {
			if h.lines[i].IsNamed(name) {
				h.lines[i] = h.lines[i].WithAddedValue(values...)
				return
			}
		}
	}
	h.lines = append(h.lines, NewLine(name, values...))
}

// Set replaces every line named name with a single line holding values.
func (h *Headers) Set(name string, values ...string) {
	h.Remove(name)
	h.Add(name, values...)
}

// Remove drops every line named name.
func (h *Headers) Remove(name string) {
	kept := make([]Line, 0, len(h.lines))
	for _, line := range h.lines {
		if !line.IsNamed(name) {
			kept = append(kept, line)
		}
	}
	h.lines = kept
}

// WithHeader is the copy-on-write form of Set.
func (h Headers) WithHeader(name string, values ...string) Headers {
	c := h.clone()
	c.Set(name, values...)
	return c
}

// WithAddedHeaderValue is the copy-on-write form of Add.
func (h Headers) WithAddedHeaderValue(name string, values ...string) Headers {
	c := h.clone()
	c.Add(name, values...)
	return c
}

// WithoutHeader is the copy-on-write form of Remove.
func (h Headers) WithoutHeader(name string) Headers {
	c := h.clone()
	c.Remove(name)
	return c
}

// AsMap serializes every header into a single string keyed by the name of
// its first line. Lines sharing a name case-insensitively are merged, then
// joined following the comma-header rule, so the result can differ from
// Line.String of each separate line.
func (h Headers) AsMap() map[string]string {
	nested := h.AsNestedMap()
	m := make(map[string]string, len(nested))
	for name, values := range nested {
		m[name] = NewLine(name, values...).String()
	}
	return m
}

// AsNestedMap returns the raw values keyed by the name of the first line
// carrying them. Values of lines sharing a name case-insensitively are
// concatenated in order under that first spelling.
func (h Headers) AsNestedMap() map[string][]string {
	m := make(map[string][]string, len(h.lines))
	names := make(map[string]string, len(h.lines))
	for _, line := range h.lines {
		name, ok := names[line.key]
		if !ok {
			name = line.name
			names[line.key] = name
		}
		m[name] = append(m[name], line.values...)
	}
	return m
}

// First returns the zeroth line.
func (h Headers) First() (Line, bool) {
	if len(h.lines) == 0 {
		return Line{}, false
	}
	return h.lines[0], true
}

func (h Headers) Len() int {
	return len(h.lines)
}

// Lines returns a copy of the lines in insertion order.
func (h Headers) Lines() []Line {
	return append([]Line(nil), h.lines...)
}

// All iterates over the lines in insertion order together with their
// position.
func (h Headers) All() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i, line := range h.lines {
			if !yield(i, line) {
				return
			}
		}
	}
}

// clone copies the line slice. Lines are immutable, so sharing them between
// copies is safe.
func (h Headers) clone() Headers {
	return Headers{lines: append([]Line(nil), h.lines...)}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
