package atom

import (
	"encoding/base64"
	"strings"

	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Content is the atom:content element (RFC 4287 section 4.1.3): either
// inline content of some media type or, via Src, a pointer to it.
//
// Exactly one of Body, Inner and Binary is meaningful, selected by Type:
// textual content lands in Body, XML content (including xhtml) in Inner,
// and anything else is treated as base64-encoded binary and lands
// decoded in Binary.
type Content struct {
	Common
	Type   string
	Src    string
	Body   string
	Inner  *xmltree.Element
	Binary []byte
}

// xmlMediaTypes are the non-suffix media types treated as XML content
// (RFC 4287 section 4.1.3.3).
var xmlMediaTypes = map[string]bool{
	"text/xml":                               true,
	"application/xml":                        true,
	"text/xml-external-parsed-entity":        true,
	"application/xml-external-parsed-entity": true,
	"application/xml-dtd":                    true,
}

func isXMLMediaType(typ string) bool {
	return xmlMediaTypes[typ] ||
		strings.HasSuffix(typ, "+xml") || strings.HasSuffix(typ, "/xml")
}

// DecodeContent decodes an atom:content element.
func DecodeContent(el *xmltree.Element) binding.Node {
	c := new(Content)
	c.ReadXML(el, nil)
	return c
}

// ReadXML fills the content from el, branching on the type attribute.
func (c *Content) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	typ := el.Attr(attrType)
	if typ == "" {
		typ = "text"
	}
	typ = strings.ToLower(typ)
	c.Type = typ
	c.Src = el.Attr(xmltree.Local("src"))
	switch {
	case c.Src != "":
		// Out-of-line content, nothing inline to read.
	case typ == "text" || typ == "html":
		c.Body = xmltree.Flatten(el)
	case typ == "xhtml":
		c.Inner = xmltree.Wrap(el, divTag)
	case isXMLMediaType(typ):
		if el.Len() == 1 && strings.TrimSpace(el.Text) == "" {
			c.Inner = el.Children()[0]
		} else {
			c.Inner = el
		}
	case strings.HasPrefix(typ, "text/"):
		c.Body = xmltree.Flatten(el)
	default:
		// Undecodable base64 degrades to no content.
		c.Binary, _ = base64.StdEncoding.DecodeString(strings.TrimSpace(el.Text))
	}
	c.Common.ReadXML(el, d)
}

// StandardTag returns atom:content.
func (c *Content) StandardTag() xmltree.Name {
	return name("content")
}

// Populate implements binding.Node.
func (c *Content) Populate(el *xmltree.Element) error {
	return c.PrepareXML(el)
}

// PrepareXML writes the content onto el, mirroring the decode branches.
func (c *Content) PrepareXML(el *xmltree.Element) error {
	if err := c.Common.PrepareXML(el); err != nil {
		return err
	}
	if c.Type != "" {
		el.SetAttr(attrType, c.Type)
	}
	switch {
	case c.Src != "":
		el.SetAttr(xmltree.Local("src"), c.Src)
	case c.Type == "" || c.Type == "text" || c.Type == "html":
		el.Text = c.Body
	case c.Type == "xhtml" || isXMLMediaType(c.Type):
		switch {
		case c.Inner == nil:
			// Nothing to write.
		case c.Inner.Tag == name("content"):
			// The decoded element was the content element itself.
			el.Text = c.Inner.Text
			for _, sub := range c.Inner.Children() {
				el.Append(sub)
			}
		default:
			el.Append(c.Inner)
		}
	case strings.HasPrefix(c.Type, "text/"):
		el.Text = c.Body
	default:
		el.Text = base64.StdEncoding.EncodeToString(c.Binary)
	}
	return nil
}

// IsBinary reports whether the content is opaque binary that travels
// base64 encoded.
func (c *Content) IsBinary() bool {
	if c.Src != "" || c.Type == "" {
		return false
	}
	switch c.Type {
	case "text", "html", "xhtml":
		return false
	}
	return !isXMLMediaType(c.Type) && !strings.HasPrefix(c.Type, "text/")
}
