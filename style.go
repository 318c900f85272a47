package sx

import "github.com/npillmayer/sx/style"

// Kind tells static and dynamic styles apart.
type Kind uint8

// Kinds of compiled styles. The zero value of a Style is of kind NoStyle.
const (
	NoStyle Kind = iota
	Static
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	}
	return "none"
}

// StyleFunc computes a style map from arguments. It describes a dynamic
// style. A StyleFunc is called once without arguments when it is compiled,
// to register its default variant, and has to cope with that.
type StyleFunc func(args ...any) style.M

// ClassFunc computes the class name(s) for a dynamic style.
type ClassFunc func(args ...any) (string, error)

// Style is a compiled style, either a static class name (possibly several
// names, separated by spaces) or a function computing class names from
// arguments.
//
// Style is a tagged union. Clients may pattern-match on it:
//
//     var class string
//     var f sx.ClassFunc
//     switch m := s.Match(); m {
//     case m.Static(&class):
//         …
//     case m.Dynamic(&f):
//         …
//     }
type Style struct {
	kind  Kind
	class string
	apply ClassFunc
}

// StaticStyle creates a compiled style for class names.
func StaticStyle(class string) Style {
	return Style{kind: Static, class: class}
}

// DynamicStyle creates a compiled style for a class-name function.
func DynamicStyle(f ClassFunc) Style {
	if f == nil {
		return Style{}
	}
	return Style{kind: Dynamic, apply: f}
}

// Kind returns the kind of the style.
func (s Style) Kind() Kind {
	return s.kind
}

// IsDynamic is true for styles computing their class names from arguments.
func (s Style) IsDynamic() bool {
	return s.kind == Dynamic
}

// Class resolves the style to class names. Static styles ignore args.
func (s Style) Class(args ...any) (string, error) {
	switch s.kind {
	case Static:
		return s.class, nil
	case Dynamic:
		return s.apply(args...)
	}
	return "", nil
}

// String returns the class names of a static style. For dynamic styles it
// returns a placeholder, as class names depend on arguments.
func (s Style) String() string {
	if s.kind == Dynamic {
		return "<dynamic style>"
	}
	return s.class
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for the style.
func (s Style) Match() Matcher {
	return &matcher{s: &s}
}

// Matcher helps to pattern-match a Style. A case method returns the
// matcher itself if the style is of the case's kind, nil otherwise.
type Matcher interface {
	Static(*string) Matcher
	Dynamic(*ClassFunc) Matcher
}

type matcher struct {
	s *Style
}

func (m *matcher) Static(class *string) Matcher {
	if m.s.kind == Static {
		if class != nil {
			*class = m.s.class
		}
		return m
	}
	return nil
}

func (m *matcher) Dynamic(f *ClassFunc) Matcher {
	if m.s.kind == Dynamic {
		if f != nil {
			*f = m.s.apply
		}
		return m
	}
	return nil
}
