// Package atom models the elements of the Atom Syndication Format
// (RFC 4287) on top of the binding engine.
//
// Every construct embeds the ones it derives from and exposes the two
// stage methods the engine expects: ReadXML fills the construct from an
// element (own fields first, then the embedded levels, all sharing one
// dispatch table), PrepareXML writes it back (embedded levels first).
// Extension vocabularies build on these types the same way; see the
// atompub, ames, asoc, aconf and thr packages.
package atom

import (
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// NS is the Atom namespace.
var NS = xmltree.DefineNamespace("atom", "http://www.w3.org/2005/Atom")

// XHTMLNS is the XHTML namespace, used by xhtml text constructs.
var XHTMLNS = xmltree.DefineNamespace("xhtml", "http://www.w3.org/1999/xhtml")

func name(local string) xmltree.Name {
	return xmltree.Name{Space: NS, Local: local}
}

var (
	attrBase = xmltree.Name{Space: xmltree.XMLNamespace, Local: "base"}
	attrLang = xmltree.Name{Space: xmltree.XMLNamespace, Local: "lang"}
	attrType = xmltree.Local("type")
	divTag   = xmltree.Name{Space: XHTMLNS, Local: "div"}
)

// Common carries the attributes every Atom element may have: xml:base
// for resolving relative references and xml:lang for the natural
// language of the element and its descendants.
type Common struct {
	Base string
	Lang string
}

// ReadXML fills the common attributes from el.
func (c *Common) ReadXML(el *xmltree.Element, _ *binding.Dispatch) {
	c.Base = el.Attr(attrBase)
	c.Lang = el.Attr(attrLang)
}

// PrepareXML writes the common attributes onto el.
func (c *Common) PrepareXML(el *xmltree.Element) error {
	if c.Base != "" {
		el.SetAttr(attrBase, c.Base)
	}
	if c.Lang != "" {
		el.SetAttr(attrLang, c.Lang)
	}
	return nil
}
