// Package atompub models the documents of the Atom Publishing Protocol
// (RFC 5023): service documents with their workspaces and collections,
// category documents, and the feed/entry variants carrying an
// app:collection element.
package atompub

import (
	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// NS is the AtomPub namespace.
var NS = xmltree.DefineNamespace("app", "http://www.w3.org/2007/app")

func name(local string) xmltree.Name {
	return xmltree.Name{Space: NS, Local: local}
}

func atomName(local string) xmltree.Name {
	return xmltree.Name{Space: atom.NS, Local: local}
}

// Media types of AtomPub documents.
const (
	ServiceMediaType    = "application/atomsvc+xml"
	CategoriesMediaType = "application/atomcat+xml"
)

func init() {
	binding.RegisterMediaType(ServiceMediaType, DecodeService)
	binding.RegisterMediaType(CategoriesMediaType, DecodeCategories)
}

// Categories is the app:categories element and category document
// (RFC 5023 section 7). It either points to an out-of-line category
// list via Href or carries the categories inline.
type Categories struct {
	atom.Common
	Fixed      bool
	Scheme     string
	Href       string
	Categories []*atom.Category
}

// CategoriesDispatch is the dispatch table of app:categories.
var CategoriesDispatch = binding.NewDispatch("app.Categories", binding.Table{
	"category": atom.DecodeCategory,
})

// DecodeCategories decodes an app:categories element.
func DecodeCategories(el *xmltree.Element) binding.Node {
	c := new(Categories)
	c.ReadXML(el, CategoriesDispatch)
	return c
}

// ReadXML fills the element. An href attribute makes the list
// out-of-line: fixed, scheme and the inline categories are then ignored.
func (c *Categories) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	c.Href = el.Attr(xmltree.Local("href"))
	if c.Href == "" {
		c.Fixed = el.Attr(xmltree.Local("fixed")) == "yes"
		c.Scheme = el.Attr(xmltree.Local("scheme"))
		for _, sub := range el.Children() {
			if sub.Tag == atomName("category") {
				c.Categories = append(c.Categories, d.Resolve("category")(sub).(*atom.Category))
			}
		}
	}
	c.Common.ReadXML(el, d)
}

// StandardTag returns app:categories.
func (c *Categories) StandardTag() xmltree.Name {
	return name("categories")
}

// MediaType returns the media type of a category document.
func (c *Categories) MediaType() string {
	return CategoriesMediaType
}

// Populate implements binding.Node.
func (c *Categories) Populate(el *xmltree.Element) error {
	return c.PrepareXML(el)
}

// PrepareXML writes the element.
func (c *Categories) PrepareXML(el *xmltree.Element) error {
	if err := c.Common.PrepareXML(el); err != nil {
		return err
	}
	if c.Href != "" {
		el.SetAttr(xmltree.Local("href"), c.Href)
		return nil
	}
	if c.Fixed {
		el.SetAttr(xmltree.Local("fixed"), "yes")
	}
	if c.Scheme != "" {
		el.SetAttr(xmltree.Local("scheme"), c.Scheme)
	}
	for _, cat := range c.Categories {
		if _, err := binding.EncodeInto(cat, el, atomName("category")); err != nil {
			return err
		}
	}
	return nil
}

// Accept is the app:accept element (RFC 5023 section 8.3.4): one media
// range a collection accepts.
type Accept struct {
	atom.Common
	MediaRange string
}

// DecodeAccept decodes an app:accept element.
func DecodeAccept(el *xmltree.Element) binding.Node {
	a := new(Accept)
	a.ReadXML(el, nil)
	return a
}

// ReadXML fills the element.
func (a *Accept) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	a.MediaRange = xmltree.InnerText(el)
	a.Common.ReadXML(el, d)
}

// StandardTag returns app:accept.
func (a *Accept) StandardTag() xmltree.Name {
	return name("accept")
}

// Populate implements binding.Node.
func (a *Accept) Populate(el *xmltree.Element) error {
	return a.PrepareXML(el)
}

// PrepareXML writes the element.
func (a *Accept) PrepareXML(el *xmltree.Element) error {
	if err := a.Common.PrepareXML(el); err != nil {
		return err
	}
	el.Text = a.MediaRange
	return nil
}
