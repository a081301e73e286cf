package atom

import (
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Meta collects the metadata shared by atom:feed, atom:entry and
// atom:source.
type Meta struct {
	Common
	Authors      []*Person
	Categories   []*Category
	Contributors []*Person
	ID           string
	Links        Links
	Rights       *Text
	Title        *Text
	Updated      *Date
}

// MetaDispatch is the dispatch table for the metadata children. Derived
// types extend it; decoding always resolves through the most-derived
// table, so a derived type can substitute the decoder of any child here.
var MetaDispatch = binding.NewDispatch("atom.Meta", binding.Table{
	"author":      DecodePerson,
	"category":    DecodeCategory,
	"contributor": DecodePerson,
	"link":        DecodeLink,
	"rights":      DecodeText,
	"title":       DecodeText,
	"updated":     DecodeDate,
})

// ReadXML fills the metadata from el's children. Children with
// unrecognized tags are skipped.
func (m *Meta) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case name("author"):
			m.Authors = append(m.Authors, d.Resolve("author")(sub).(*Person))
		case name("category"):
			m.Categories = append(m.Categories, d.Resolve("category")(sub).(*Category))
		case name("contributor"):
			m.Contributors = append(m.Contributors, d.Resolve("contributor")(sub).(*Person))
		case name("id"):
			m.ID = xmltree.InnerText(sub)
		case name("link"):
			m.Links = append(m.Links, d.Resolve("link")(sub).(LinkNode))
		case name("rights"):
			m.Rights = d.Resolve("rights")(sub).(*Text)
		case name("title"):
			m.Title = d.Resolve("title")(sub).(*Text)
		case name("updated"):
			m.Updated = d.Resolve("updated")(sub).(*Date)
		}
	}
	m.Common.ReadXML(el, d)
}

// PrepareXML writes the metadata onto el, lists in insertion order.
func (m *Meta) PrepareXML(el *xmltree.Element) error {
	if err := m.Common.PrepareXML(el); err != nil {
		return err
	}
	for _, a := range m.Authors {
		if _, err := binding.EncodeInto(a, el, name("author")); err != nil {
			return err
		}
	}
	for _, c := range m.Categories {
		if _, err := binding.EncodeInto(c, el, name("category")); err != nil {
			return err
		}
	}
	for _, c := range m.Contributors {
		if _, err := binding.EncodeInto(c, el, name("contributor")); err != nil {
			return err
		}
	}
	if m.ID != "" {
		el.NewTextChild(name("id"), m.ID)
	}
	for _, l := range m.Links {
		if _, err := binding.EncodeInto(l, el, name("link")); err != nil {
			return err
		}
	}
	if m.Rights != nil {
		if _, err := binding.EncodeInto(m.Rights, el, name("rights")); err != nil {
			return err
		}
	}
	if m.Title != nil {
		if _, err := binding.EncodeInto(m.Title, el, name("title")); err != nil {
			return err
		}
	}
	if m.Updated != nil {
		if _, err := binding.EncodeInto(m.Updated, el, name("updated")); err != nil {
			return err
		}
	}
	return nil
}
