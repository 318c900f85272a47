package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an HTML document able to host stylesheets.
type Document struct {
	root   *html.Node
	sheets []*StyleSheet
}

const skeleton = "<!DOCTYPE html><html><head></head><body></body></html>"

// NewDocument creates an empty HTML document with <head> and <body>.
func NewDocument() *Document {
	doc, err := ParseDocument(strings.NewReader(skeleton))
	if err != nil {
		panic(fmt.Sprintf("dom: cannot parse document skeleton: %v", err))
	}
	return doc
}

// ParseDocument creates a document from HTML input. Missing <head> and
// <body> elements are created by the HTML parser.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the document node of the HTML parse tree.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// Head returns the <head> element.
func (doc *Document) Head() *html.Node {
	return findElement(atom.Head, doc.root)
}

// Body returns the <body> element.
func (doc *Document) Body() *html.Node {
	return findElement(atom.Body, doc.root)
}

// CreateStyleSheet creates a new, empty <style> element, attaches it to
// the end of <head> and returns its stylesheet.
func (doc *Document) CreateStyleSheet() *StyleSheet {
	head := doc.Head()
	if head == nil { // cannot happen for parsed documents
		head = &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
		doc.root.AppendChild(head)
	}
	el := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	el.AppendChild(&html.Node{Type: html.TextNode})
	head.AppendChild(el)
	sheet := &StyleSheet{owner: el}
	doc.sheets = append(doc.sheets, sheet)
	tracer().Debugf("dom: created stylesheet #%d", len(doc.sheets))
	return sheet
}

// StyleSheets returns the stylesheets currently attached to the document,
// in document order of creation.
func (doc *Document) StyleSheets() []*StyleSheet {
	attached := make([]*StyleSheet, 0, len(doc.sheets))
	for _, s := range doc.sheets {
		if s.Attached() {
			attached = append(attached, s)
		}
	}
	return attached
}

// RemoveStyleSheet detaches a stylesheet's <style> element from the
// document. The stylesheet keeps its rules but is no longer attached.
func (doc *Document) RemoveStyleSheet(sheet *StyleSheet) {
	if sheet == nil || !sheet.Attached() {
		return
	}
	sheet.owner.Parent.RemoveChild(sheet.owner)
	for i, s := range doc.sheets {
		if s == sheet {
			doc.sheets = append(doc.sheets[:i], doc.sheets[i+1:]...)
			break
		}
	}
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
