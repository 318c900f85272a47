package sx

import (
	"strconv"

	"github.com/npillmayer/sx/dom"
	"github.com/npillmayer/sx/registry"
	"github.com/npillmayer/sx/style"
)

// Compiler turns style descriptions into class names and inserts the
// corresponding rules into the stylesheet of its registry.
//
// A Compiler is not safe for concurrent use.
type Compiler struct {
	prefix string
	nextID func() string
	doc    *dom.Document
	host   registry.Host
	reg    *registry.Registry
}

// New creates a compiler. Without options, it will create its own empty
// HTML document to host the stylesheet.
func New(opts ...Option) *Compiler {
	c := &Compiler{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(c)
	}
	if c.host == nil {
		c.doc = dom.NewDocument()
		c.host = registry.DocumentHost{Doc: c.doc}
	}
	if c.nextID == nil {
		prefix := c.prefix
		c.nextID = func() string { return newID(prefix) }
	}
	c.reg = registry.New(c.host)
	return c
}

// Registry returns the registry owning the stylesheet.
func (c *Compiler) Registry() *registry.Registry {
	return c.reg
}

// Document returns the host document, or nil if the compiler has been
// configured with a custom host.
func (c *Compiler) Document() *dom.Document {
	return c.doc
}

// Rules returns the text of all rules inserted so far.
func (c *Compiler) Rules() []string {
	return c.reg.Rules()
}

// Reset drops the current stylesheet from the registry. Class names
// compiled before stay valid as names, but their rules will not be part
// of the new stylesheet.
func (c *Compiler) Reset() {
	c.reg.Reset()
}

// CSS compiles a style description. desc may be
//
//  - a string, which is taken as class name(s) and returned unchanged,
//  - a compiled Style, which is returned unchanged,
//  - a style map (style.M or map[string]any), for which a new class name
//    is allocated and rules are inserted,
//  - a StyleFunc (or func(...any) style.M), which results in a dynamic style.
//
// Values of any other type are treated like an empty style map.
// If more descriptions are given, all of them are combined (see Combine).
//
// Errors are returned only if the host stylesheet rejects a rule.
func (c *Compiler) CSS(desc any, more ...any) (Style, error) {
	if len(more) > 0 {
		return c.Combine(append([]any{desc}, more...)...)
	}
	switch d := desc.(type) {
	case string:
		return StaticStyle(d), nil
	case Style:
		return d, nil
	case StyleFunc:
		return c.dynamic(d)
	case func(...any) style.M:
		return c.dynamic(StyleFunc(d))
	}
	m, ok := style.AsMap(desc)
	if !ok {
		tracer().Infof("sx: cannot use %T as a style, treating it as empty", desc)
	}
	name, err := c.reg.Insert(c.nextID(), m)
	if err != nil {
		return Style{}, err
	}
	return StaticStyle(name), nil
}

// dynamic wraps a style function behind a cache of computed styles.
// The cache is never evicted.
func (c *Compiler) dynamic(fn StyleFunc) (Style, error) {
	base := c.nextID()
	cache := make(map[string]string)
	apply := func(args ...any) (string, error) {
		computed := fn(args...)
		key := style.CanonicalKey(computed)
		if name, ok := cache[key]; ok {
			tracer().P("class", name).Debugf("sx: cache hit for %s", key)
			return name, nil
		}
		name := base
		if version := len(cache); version > 0 {
			name = base + "-" + strconv.Itoa(version)
		}
		if _, err := c.reg.Insert(name, computed); err != nil {
			return "", err
		}
		tracer().P("class", name).Debugf("sx: new variant for %s", key)
		cache[key] = name
		return name, nil
	}
	if _, err := apply(); err != nil { // default variant
		return Style{}, err
	}
	return DynamicStyle(apply), nil
}
