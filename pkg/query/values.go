// Package query reads and writes query strings as ordered key/value pairs,
// sharing the "key[]" convention for repeated keys with form data.
package query

import (
	"sort"
	"strings"

	"github.com/rohmanhakim/http-message/pkg/percent"
)

// Values is an ordered list of decoded query pairs. Duplicate keys are
// allowed and keep their relative order.
type Values struct {
	pairs []Pair
}

// Parse decodes a raw query (without the leading '?'). Empty segments are
// ignored, a segment without '=' yields an empty value and a trailing "[]"
// is stripped from keys.
func Parse(raw string) Values {
	var v Values
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return v
	}

	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		key = percent.DecodeForm(key)
		key = strings.TrimSuffix(key, arraySuffix)
		v.pairs = append(v.pairs, Pair{Key: key, Value: percent.DecodeForm(value)})
	}
	return v
}

// FromMap builds Values from a map, visiting keys in sorted order.
func FromMap(m map[string][]string) Values {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var v Values
	for _, k := range keys {
		for _, value := range m[k] {
			v.pairs = append(v.pairs, Pair{Key: k, Value: value})
		}
	}
	return v
}

func (v Values) Len() int {
	return len(v.pairs)
}

// Pairs returns a copy of the pairs in order.
func (v Values) Pairs() []Pair {
	pairs := make([]Pair, len(v.pairs))
	copy(pairs, v.pairs)
	return pairs
}

// Get returns the first value stored under key.
func (v Values) Get(key string) (string, bool) {
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// GetAll returns every value stored under key, or nil.
func (v Values) GetAll(key string) []string {
	var values []string
	for _, p := range v.pairs {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values
}

func (v Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the distinct keys in order of first appearance.
func (v Values) Keys() []string {
	seen := make(map[string]struct{}, len(v.pairs))
	var keys []string
	for _, p := range v.pairs {
		if _, ok := seen[p.Key]; ok {
			continue
		}
		seen[p.Key] = struct{}{}
		keys = append(keys, p.Key)
	}
	return keys
}

// Append returns a copy with key=value added at the end.
func (v Values) Append(key string, value string) Values {
	pairs := make([]Pair, len(v.pairs), len(v.pairs)+1)
	copy(pairs, v.pairs)
	return Values{pairs: append(pairs, Pair{Key: key, Value: value})}
}

// Set returns a copy where key holds exactly value. The pair takes the
// position of the first existing occurrence, or goes last.
func (v Values) Set(key string, value string) Values {
	var pairs []Pair
	replaced := false
	for _, p := range v.pairs {
		if p.Key != key {
			pairs = append(pairs, p)
			continue
		}
		if !replaced {
			pairs = append(pairs, Pair{Key: key, Value: value})
			replaced = true
		}
	}
	if !replaced {
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return Values{pairs: pairs}
}

// Delete returns a copy without any pair named key.
func (v Values) Delete(key string) Values {
	var pairs []Pair
	for _, p := range v.pairs {
		if p.Key != key {
			pairs = append(pairs, p)
		}
	}
	return Values{pairs: pairs}
}

// Encode writes the pairs back as a query string. Keys holding more than one
// value are written with the "[]" suffix.
func (v Values) Encode() string {
	counts := make(map[string]int, len(v.pairs))
	for _, p := range v.pairs {
		counts[p.Key]++
	}

	var b strings.Builder
	for i, p := range v.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(percent.EncodeForm(p.Key))
		if counts[p.Key] > 1 {
			b.WriteString(arraySuffix)
		}
		b.WriteByte('=')
		b.WriteString(percent.EncodeForm(p.Value))
	}
	return b.String()
}

func (v Values) String() string {
	return v.Encode()
}
