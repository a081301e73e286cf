package atom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Text is a text construct (RFC 4287 section 3.1): human-readable text
// whose representation depends on Type.
//
// For "text" and "html" the content is the flat string in Body; for
// "html" that string holds the markup itself. For "xhtml" the content is
// the xhtml:div element in Div. The content is never sanitized; strip
// anything dangerous before showing it to anyone.
type Text struct {
	Common
	Type string // "text", "html" or "xhtml"
	Body string
	Div  *xmltree.Element
}

// NewText returns a plain-text construct.
func NewText(s string) *Text {
	return &Text{Type: "text", Body: s}
}

// DecodeText decodes a text-construct element.
func DecodeText(el *xmltree.Element) binding.Node {
	t := new(Text)
	t.ReadXML(el, nil)
	return t
}

// ReadXML fills the construct from el, branching on the type attribute.
func (t *Text) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	typ := el.Attr(attrType)
	if typ == "" {
		typ = "text"
	}
	typ = strings.ToLower(strings.TrimSpace(typ))
	t.Type = typ
	switch typ {
	case "text", "html":
		t.Body = xmltree.Flatten(el)
	case "xhtml":
		t.Div = xmltree.Wrap(el, divTag)
	}
	t.Common.ReadXML(el, d)
}

// StandardTag returns the zero name: a text construct is always encoded
// under a caller-supplied tag (title, rights, subtitle, ...).
func (t *Text) StandardTag() xmltree.Name {
	return xmltree.Name{}
}

// Populate implements binding.Node.
func (t *Text) Populate(el *xmltree.Element) error {
	return t.PrepareXML(el)
}

// PrepareXML writes the construct onto el.
func (t *Text) PrepareXML(el *xmltree.Element) error {
	if err := t.Common.PrepareXML(el); err != nil {
		return err
	}
	if t.Type != "" {
		el.SetAttr(attrType, t.Type)
	}
	if strings.EqualFold(t.Type, "xhtml") {
		if t.Div != nil {
			el.Append(t.Div)
		} else {
			el.NewChild(divTag)
		}
	} else if t.Body != "" {
		el.Text = t.Body
	}
	return nil
}

// PlainText returns the content with any markup removed: html bodies are
// parsed and reduced to their text, xhtml content is reduced to the text
// of the div subtree, and plain text is returned as is.
func (t *Text) PlainText() string {
	switch strings.ToLower(t.Type) {
	case "html":
		return htmlText(t.Body)
	case "xhtml":
		if t.Div == nil {
			return ""
		}
		return elementText(t.Div)
	default:
		return t.Body
	}
}

// htmlText extracts the text content of an HTML fragment.
func htmlText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}

// elementText gathers all text in an element subtree, in document order.
func elementText(el *xmltree.Element) string {
	var b strings.Builder
	var walk func(*xmltree.Element)
	walk = func(e *xmltree.Element) {
		b.WriteString(e.Text)
		for _, c := range e.Children() {
			walk(c)
			b.WriteString(c.Tail)
		}
	}
	walk(el)
	return b.String()
}
