// Package thr models the Atom Threading Extensions (RFC 4685):
// thr:in-reply-to on entries, the thr:count and thr:updated attributes
// on replies links, and thr:total.
package thr

import (
	"io"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/atompub"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// NS is the threading extension namespace.
var NS = xmltree.DefineNamespace("thr", "http://purl.org/syndication/thread/1.0")

func name(local string) xmltree.Name {
	return xmltree.Name{Space: NS, Local: local}
}

var (
	attrCount   = xmltree.Name{Space: NS, Local: "count"}
	attrUpdated = xmltree.Name{Space: NS, Local: "updated"}
)

// InReplyTo is the thr:in-reply-to element (RFC 4685 section 3),
// identifying the resource an entry is a response to.
type InReplyTo struct {
	atom.Common
	Ref    string
	Href   string
	Source string
	Type   string
}

// DecodeInReplyTo decodes a thr:in-reply-to element.
func DecodeInReplyTo(el *xmltree.Element) binding.Node {
	irt := new(InReplyTo)
	irt.ReadXML(el, nil)
	return irt
}

// ReadXML fills the element from its attributes.
func (irt *InReplyTo) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	irt.Ref = el.Attr(xmltree.Local("ref"))
	irt.Href = el.Attr(xmltree.Local("href"))
	irt.Source = el.Attr(xmltree.Local("source"))
	irt.Type = el.Attr(xmltree.Local("type"))
	irt.Common.ReadXML(el, d)
}

// StandardTag returns thr:in-reply-to.
func (irt *InReplyTo) StandardTag() xmltree.Name {
	return name("in-reply-to")
}

// Populate implements binding.Node.
func (irt *InReplyTo) Populate(el *xmltree.Element) error {
	return irt.PrepareXML(el)
}

// PrepareXML writes the element's attributes.
func (irt *InReplyTo) PrepareXML(el *xmltree.Element) error {
	if err := irt.Common.PrepareXML(el); err != nil {
		return err
	}
	if irt.Ref != "" {
		el.SetAttr(xmltree.Local("ref"), irt.Ref)
	}
	if irt.Href != "" {
		el.SetAttr(xmltree.Local("href"), irt.Href)
	}
	if irt.Source != "" {
		el.SetAttr(xmltree.Local("source"), irt.Source)
	}
	if irt.Type != "" {
		el.SetAttr(xmltree.Local("type"), irt.Type)
	}
	return nil
}

// Link is an atom:link carrying the thr:count and thr:updated
// attributes a "replies" link may have (RFC 4685 section 4).
type Link struct {
	atom.Link
	Count   string
	Updated string
}

// DecodeLink decodes an extended atom:link element.
func DecodeLink(el *xmltree.Element) binding.Node {
	l := new(Link)
	l.ReadXML(el, nil)
	return l
}

// ReadXML fills the link, threading attributes first.
func (l *Link) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	l.Count = el.Attr(attrCount)
	l.Updated = el.Attr(attrUpdated)
	l.Link.ReadXML(el, d)
}

// Populate implements binding.Node.
func (l *Link) Populate(el *xmltree.Element) error {
	return l.PrepareXML(el)
}

// PrepareXML writes the link, atom attributes first.
func (l *Link) PrepareXML(el *xmltree.Element) error {
	if err := l.Link.PrepareXML(el); err != nil {
		return err
	}
	if l.Count != "" {
		el.SetAttr(attrCount, l.Count)
	}
	if l.Updated != "" {
		el.SetAttr(attrUpdated, l.Updated)
	}
	return nil
}

// Entry is an AtomPub entry with threading children, and with the
// threading link decoder substituted for every link in the entry.
type Entry struct {
	atompub.Entry
	Total      *atom.Text
	InReplyTos []*InReplyTo
}

// EntryDispatch extends the AtomPub entry table with the threading
// children and overrides the link decoder.
var EntryDispatch = atompub.EntryDispatch.Extend("thr.Entry", binding.Table{
	"link":        DecodeLink,
	"total":       atom.DecodeText,
	"in-reply-to": DecodeInReplyTo,
})

// DecodeEntry decodes a threaded entry element.
func DecodeEntry(el *xmltree.Element) binding.Node {
	e := new(Entry)
	e.ReadXML(el, EntryDispatch)
	return e
}

// ParseEntry reads a threaded entry document. The root element must be
// atom:entry.
func ParseEntry(r io.Reader) (*Entry, error) {
	n, err := binding.DecodeDocument(r, xmltree.QName(atom.NS, "entry"), DecodeEntry)
	if err != nil {
		return nil, err
	}
	return n.(*Entry), nil
}

// ReadXML fills the entry from el's children.
func (e *Entry) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case name("total"):
			e.Total = d.Resolve("total")(sub).(*atom.Text)
		case name("in-reply-to"):
			e.InReplyTos = append(e.InReplyTos, d.Resolve("in-reply-to")(sub).(*InReplyTo))
		}
	}
	e.Entry.ReadXML(el, d)
}

// Populate implements binding.Node: the inherited Validate first, then
// the field stages.
func (e *Entry) Populate(el *xmltree.Element) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return e.PrepareXML(el)
}

// PrepareXML writes the entry, inherited content first.
func (e *Entry) PrepareXML(el *xmltree.Element) error {
	if err := e.Entry.PrepareXML(el); err != nil {
		return err
	}
	if e.Total != nil {
		if _, err := binding.EncodeInto(e.Total, el, name("total")); err != nil {
			return err
		}
	}
	for _, irt := range e.InReplyTos {
		if _, err := binding.EncodeInto(irt, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}

// Feed is an AtomPub feed whose entries are threaded entries and whose
// links carry the threading attributes.
type Feed struct {
	atompub.Feed
	Total      *atom.Text
	InReplyTos []*InReplyTo
}

// FeedDispatch extends the AtomPub feed table with the threading
// children and decoder overrides.
var FeedDispatch = atompub.FeedDispatch.Extend("thr.Feed", binding.Table{
	"entry":       DecodeEntry,
	"link":        DecodeLink,
	"total":       atom.DecodeText,
	"in-reply-to": DecodeInReplyTo,
})

// DecodeFeed decodes a threaded feed element.
func DecodeFeed(el *xmltree.Element) binding.Node {
	f := new(Feed)
	f.ReadXML(el, FeedDispatch)
	return f
}

// ParseFeed reads a threaded feed document. The root element must be
// atom:feed.
func ParseFeed(r io.Reader) (*Feed, error) {
	n, err := binding.DecodeDocument(r, xmltree.QName(atom.NS, "feed"), DecodeFeed)
	if err != nil {
		return nil, err
	}
	return n.(*Feed), nil
}

// ReadXML fills the feed from el's children.
func (f *Feed) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case name("total"):
			f.Total = d.Resolve("total")(sub).(*atom.Text)
		case name("in-reply-to"):
			f.InReplyTos = append(f.InReplyTos, d.Resolve("in-reply-to")(sub).(*InReplyTo))
		}
	}
	f.Feed.ReadXML(el, d)
}

// Populate implements binding.Node: the inherited Validate first, then
// the field stages.
func (f *Feed) Populate(el *xmltree.Element) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return f.PrepareXML(el)
}

// PrepareXML writes the feed, inherited content first.
func (f *Feed) PrepareXML(el *xmltree.Element) error {
	if err := f.Feed.PrepareXML(el); err != nil {
		return err
	}
	if f.Total != nil {
		if _, err := binding.EncodeInto(f.Total, el, name("total")); err != nil {
			return err
		}
	}
	for _, irt := range f.InReplyTos {
		if _, err := binding.EncodeInto(irt, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}
