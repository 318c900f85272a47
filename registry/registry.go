package registry

import (
	"errors"
	"fmt"

	"github.com/npillmayer/sx/dom"
	"github.com/npillmayer/sx/style"
	"github.com/npillmayer/sx/style/rules"
)

// ErrRuleRejected is returned if the host stylesheet refuses a rule.
var ErrRuleRejected = errors.New("registry: rule rejected by stylesheet")

// ErrNoHost is returned if a registry has no host to create a stylesheet.
var ErrNoHost = errors.New("registry: no host document")

// Sheet is a live rule list, as provided by a host document.
type Sheet interface {
	InsertRule(text string, index int) (int, error) // insert rule text at index
	Len() int                                        // number of rules
	CSSRules() []string                              // rule texts in order
	Attached() bool                                  // is the sheet part of a document?
}

// Host is able to create and attach a new stylesheet.
type Host interface {
	CreateStyleSheet() (Sheet, error)
}

// Registry hands out a single stylesheet and inserts rules into it.
// A Registry is not safe for concurrent use.
type Registry struct {
	host  Host
	sheet Sheet
}

// New creates a registry for a host. The stylesheet will not be created
// before it is needed.
func New(host Host) *Registry {
	return &Registry{host: host}
}

// ForDocument creates a registry hosted by an HTML document.
func ForDocument(doc *dom.Document) *Registry {
	return New(DocumentHost{Doc: doc})
}

// EnsureSheet returns the stylesheet of the registry, creating and
// attaching it on first call. If the stylesheet has been detached from its
// document in the meantime, a new one is created.
func (reg *Registry) EnsureSheet() (Sheet, error) {
	if reg.sheet != nil && reg.sheet.Attached() {
		return reg.sheet, nil
	}
	if reg.host == nil {
		return nil, ErrNoHost
	}
	sheet, err := reg.host.CreateStyleSheet()
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create stylesheet: %w", err)
	}
	tracer().Debugf("registry: created stylesheet")
	reg.sheet = sheet
	return sheet, nil
}

// Insert flattens a style map for selector "."+className and appends the
// resulting rules to the end of the stylesheet. It returns className.
//
// If the host rejects a rule, the rules inserted before it stay in the
// stylesheet and an error wrapping ErrRuleRejected is returned.
func (reg *Registry) Insert(className string, m style.M) (string, error) {
	sheet, err := reg.EnsureSheet()
	if err != nil {
		return className, err
	}
	for _, rule := range rules.Flatten("."+className, m, "") {
		text := rule.CSSText()
		if _, err := sheet.InsertRule(text, sheet.Len()); err != nil {
			return className, fmt.Errorf("%w: %q: %v", ErrRuleRejected, text, err)
		}
		tracer().P("class", className).Debugf("registry: %s", text)
	}
	return className, nil
}

// Rules returns the text of all rules inserted so far. If no stylesheet
// has been created yet, the result is empty.
func (reg *Registry) Rules() []string {
	if reg.sheet == nil {
		return nil
	}
	return reg.sheet.CSSRules()
}

// Len returns the number of rules in the stylesheet.
func (reg *Registry) Len() int {
	if reg.sheet == nil {
		return 0
	}
	return reg.sheet.Len()
}

// Sheet returns the current stylesheet, or nil if none has been created.
func (reg *Registry) Sheet() Sheet {
	return reg.sheet
}

// Reset drops the stylesheet. The next insertion will create a new one.
// Removing the old stylesheet from its document is up to the host.
func (reg *Registry) Reset() {
	reg.sheet = nil
}

// --- Host adapter ----------------------------------------------------------

// DocumentHost adapts a dom.Document to interface Host.
type DocumentHost struct {
	Doc *dom.Document
}

// CreateStyleSheet attaches a new <style> element to the document's head.
func (h DocumentHost) CreateStyleSheet() (Sheet, error) {
	if h.Doc == nil {
		return nil, ErrNoHost
	}
	return h.Doc.CreateStyleSheet(), nil
}

var _ Host = DocumentHost{}
var _ Sheet = &dom.StyleSheet{}
