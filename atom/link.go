package atom

import (
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Link is the atom:link element (RFC 4287 section 4.2.7).
type Link struct {
	Common
	Href     string
	Rel      string
	Type     string
	HrefLang string
	Title    string
	Length   string
}

// DecodeLink decodes an atom:link element.
func DecodeLink(el *xmltree.Element) binding.Node {
	l := new(Link)
	l.ReadXML(el, nil)
	return l
}

// ReadXML fills the link from el's attributes.
func (l *Link) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	l.Href = el.Attr(xmltree.Local("href"))
	l.Rel = el.Attr(xmltree.Local("rel"))
	l.Type = el.Attr(attrType)
	l.HrefLang = el.Attr(xmltree.Local("hreflang"))
	l.Title = el.Attr(xmltree.Local("title"))
	l.Length = el.Attr(xmltree.Local("length"))
	l.Common.ReadXML(el, d)
}

// StandardTag returns atom:link.
func (l *Link) StandardTag() xmltree.Name {
	return name("link")
}

// Populate implements binding.Node.
func (l *Link) Populate(el *xmltree.Element) error {
	return l.PrepareXML(el)
}

// PrepareXML writes the link's attributes onto el. href is always
// written, even when empty.
func (l *Link) PrepareXML(el *xmltree.Element) error {
	if err := l.Common.PrepareXML(el); err != nil {
		return err
	}
	el.SetAttr(xmltree.Local("href"), l.Href)
	if l.Rel != "" {
		el.SetAttr(xmltree.Local("rel"), l.Rel)
	}
	if l.Type != "" {
		el.SetAttr(attrType, l.Type)
	}
	if l.HrefLang != "" {
		el.SetAttr(xmltree.Local("hreflang"), l.HrefLang)
	}
	if l.Title != "" {
		el.SetAttr(xmltree.Local("title"), l.Title)
	}
	if l.Length != "" {
		el.SetAttr(xmltree.Local("length"), l.Length)
	}
	return nil
}

// LinkHref implements LinkNode.
func (l *Link) LinkHref() string { return l.Href }

// LinkRel implements LinkNode.
func (l *Link) LinkRel() string { return l.Rel }

// LinkNode is satisfied by atom:link and by extension link elements that
// can stand in for it (for instance thr.Link).
type LinkNode interface {
	binding.Node
	LinkHref() string
	LinkRel() string
}

// Links is the ordered link list of a node, with the usual helpers for
// working with relation types. All helpers preserve insertion order.
type Links []LinkNode

// Get returns the href of the first link with the given relation, or "".
func (ls Links) Get(rel string) string {
	for _, l := range ls {
		if l.LinkRel() == rel {
			return l.LinkHref()
		}
	}
	return ""
}

// GetAll returns the hrefs of all links with the given relation, in
// order.
func (ls Links) GetAll(rel string) []string {
	var hrefs []string
	for _, l := range ls {
		if l.LinkRel() == rel {
			hrefs = append(hrefs, l.LinkHref())
		}
	}
	return hrefs
}

// First returns the first link with the given relation.
func (ls Links) First(rel string) (LinkNode, bool) {
	for _, l := range ls {
		if l.LinkRel() == rel {
			return l, true
		}
	}
	return nil, false
}

// Remove drops all links with the given relation, keeping the relative
// order of the survivors.
func (ls *Links) Remove(rel string) {
	kept := (*ls)[:0]
	for _, l := range *ls {
		if l.LinkRel() != rel {
			kept = append(kept, l)
		}
	}
	*ls = kept
}

// Replace removes all links with the given relation and appends a single
// new one at the end of the list.
func (ls *Links) Replace(rel, href string) {
	ls.Remove(rel)
	*ls = append(*ls, &Link{Href: href, Rel: rel})
}
