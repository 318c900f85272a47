package style

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a rendered style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Static maps ------------------------------------------------------

// KV is a single entry of a static style map. Value is either a flat value
// or a nested map (M or map[string]any).
type KV struct {
	Key   string
	Value any
}

// M is a static style map. Entries are kept in the order of definition.
// nil is a legal (empty) style map.
type M []KV

// Len returns the number of entries, counting duplicate keys.
func (m M) Len() int {
	return len(m)
}

// Get returns the value for key. If a key is present more than once,
// the last value wins.
func (m M) Get(key string) (any, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// Compact returns a map with every key present only once. A key keeps the
// position of its first occurrence and the value of its last one, which
// is how assignment to an object literal behaves.
func (m M) Compact() M {
	if len(m) == 0 {
		return m
	}
	pos := make(map[string]int, len(m))
	c := make(M, 0, len(m))
	for _, kv := range m {
		if i, ok := pos[kv.Key]; ok {
			c[i].Value = kv.Value
			continue
		}
		pos[kv.Key] = len(c)
		c = append(c, kv)
	}
	return c
}

// AsMap returns v as a static style map, if v is a map value.
// Plain Go maps are converted with keys in sorted order.
func AsMap(v any) (M, bool) {
	switch m := v.(type) {
	case M:
		return m, true
	case map[string]any:
		return FromMap(m), true
	case map[string]string:
		g := make(map[string]any, len(m))
		for k, s := range m {
			g[k] = s
		}
		return FromMap(g), true
	}
	return nil, false
}

// FromMap converts a Go map into a static style map. Nested Go maps are
// converted as well. Keys are sorted, as Go maps are unordered.
func FromMap(gomap map[string]any) M {
	if gomap == nil {
		return nil
	}
	keys := make([]string, 0, len(gomap))
	for k := range gomap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m := make(M, 0, len(keys))
	for _, k := range keys {
		v := gomap[k]
		if nested, ok := v.(map[string]any); ok {
			v = FromMap(nested)
		}
		m = append(m, KV{Key: k, Value: v})
	}
	return m
}

// --- Values -----------------------------------------------------------

// IsObject is true for values which are not flat, i.e. maps and lists.
func IsObject(v any) bool {
	if _, ok := AsMap(v); ok {
		return true
	}
	switch v.(type) {
	case []any, []string, []KV:
		return true
	}
	return false
}

// Optional is implemented by values which may be unset, like CSS
// dimension option types.
type Optional interface {
	IsNone() bool
}

// IsTruthy reports if a value counts as set. Empty strings, false, nil,
// numeric zero and NaN are not. Neither are unset Optionals and values
// rendering as the empty string.
func IsTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case Property:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	}
	if n, ok := asInt(v); ok {
		return n != 0
	}
	if o, ok := v.(Optional); ok && o.IsNone() {
		return false
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String() != ""
	}
	return true
}

// IsDefined is like IsTruthy, except that numeric zero counts as defined.
func IsDefined(v any) bool {
	return isZeroNumber(v) || IsTruthy(v)
}

func isZeroNumber(v any) bool {
	switch x := v.(type) {
	case float64:
		return x == 0
	case float32:
		return x == 0
	}
	n, ok := asInt(v)
	return ok && n == 0
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}
	return 0, false
}

// Format converts a flat value into a property value.
//
//     Format(12)    => "12"
//     Format(1.5)   => "1.5"
//     Format("red") => "red"
//
// Values implementing fmt.Stringer are formatted by calling String().
func Format(v any) Property {
	switch x := v.(type) {
	case nil:
		return NullStyle
	case Property:
		return x
	case string:
		return Property(x)
	case bool:
		return Property(strconv.FormatBool(x))
	case float64:
		return Property(strconv.FormatFloat(x, 'f', -1, 64))
	case float32:
		return Property(strconv.FormatFloat(float64(x), 'f', -1, 32))
	case fmt.Stringer:
		return Property(x.String())
	}
	if n, ok := asInt(v); ok {
		return Property(strconv.FormatInt(n, 10))
	}
	return Property(fmt.Sprint(v))
}

// Kebab converts a camel-case key to a CSS property name by inserting
// a hyphen before every upper-case letter and lower-casing the result.
//
//     Kebab("backgroundColor") => "background-color"
//     Kebab("MozAppearance")   => "-moz-appearance"
func Kebab(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
