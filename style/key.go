package style

import (
	"bytes"
	"encoding/json"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// CanonicalKey serializes a style map into a JSON-like string, suitable as
// a cache key for computed styles. Two maps produce the same key if they
// have the same entries in the same order. Strings are NFC-normalized,
// nil values are left out and duplicate keys are compacted first.
//
//     CanonicalKey(M{{"color", "red"}, {"size", 2}}) => {"color":"red","size":2}
func CanonicalKey(m M) string {
	var buf bytes.Buffer
	writeCanonicalMap(&buf, m)
	return buf.String()
}

func writeCanonicalMap(buf *bytes.Buffer, m M) {
	buf.WriteByte('{')
	first := true
	for _, kv := range m.Compact() {
		if kv.Value == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeCanonicalString(buf, kv.Key)
		buf.WriteByte(':')
		writeCanonicalValue(buf, kv.Value)
	}
	buf.WriteByte('}')
}

func writeCanonicalValue(buf *bytes.Buffer, v any) {
	if nested, ok := AsMap(v); ok {
		writeCanonicalMap(buf, nested)
		return
	}
	switch x := v.(type) {
	case string:
		writeCanonicalString(buf, x)
		return
	case Property:
		writeCanonicalString(buf, string(x))
		return
	case bool:
		buf.WriteString(strconv.FormatBool(x))
		return
	case float64, float32:
		buf.WriteString(string(Format(x)))
		return
	case []any:
		buf.WriteByte('[')
		for i, elem := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if elem == nil {
				buf.WriteString("null")
				continue
			}
			writeCanonicalValue(buf, elem)
		}
		buf.WriteByte(']')
		return
	}
	if _, ok := asInt(v); ok {
		buf.WriteString(string(Format(v)))
		return
	}
	writeCanonicalString(buf, string(Format(v)))
}

// writeCanonicalString writes a JSON string without HTML escaping.
func writeCanonicalString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(norm.NFC.String(s)) // encoding a string cannot fail
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
