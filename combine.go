package sx

import "strings"

// Combine compiles every description and merges the results into one
// style. If all parts are static, the result is static and holds the
// class names of all parts. Otherwise the result is dynamic: its arguments
// are passed on to every dynamic part, static parts contribute their class
// names unchanged.
//
// Class names are joined as by CombineClassNames.
func (c *Compiler) Combine(descs ...any) (Style, error) {
	styles := make([]Style, len(descs))
	dynamic := false
	for i, d := range descs {
		s, err := c.CSS(d)
		if err != nil {
			return Style{}, err
		}
		styles[i] = s
		dynamic = dynamic || s.IsDynamic()
	}
	if !dynamic {
		names := make([]string, len(styles))
		for i, s := range styles {
			names[i] = s.class
		}
		return StaticStyle(CombineClassNames(names...)), nil
	}
	return DynamicStyle(func(args ...any) (string, error) {
		names := make([]string, len(styles))
		for i, s := range styles {
			name, err := s.Class(args...)
			if err != nil {
				return "", err
			}
			names[i] = name
		}
		return CombineClassNames(names...), nil
	}), nil
}

// CombineClassNames joins class names with a single space. Empty names are
// skipped. Of repeated names only the last occurrence is kept; apart from
// that, names stay in their original order:
//
//     CombineClassNames("a", "", "b", "a") => "b a"
//
// Names are compared as given, i.e. "a b" is a single name.
func CombineClassNames(names ...string) string {
	last := make(map[string]int, len(names))
	defined := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		last[n] = len(defined)
		defined = append(defined, n)
	}
	kept := make([]string, 0, len(defined))
	for i, n := range defined {
		if last[n] == i {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}
