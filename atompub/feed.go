package atompub

import (
	"io"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Source is an atom:source carrying the app:collection the entry was
// posted to (RFC 5023 section 8.3.5).
type Source struct {
	atom.Source
	Collection *Collection
}

// SourceDispatch extends the atom source table with the collection
// child.
var SourceDispatch = atom.SourceDispatch.Extend("app.Source", binding.Table{
	"collection": DecodeCollection,
})

// DecodeSource decodes an extended atom:source element.
func DecodeSource(el *xmltree.Element) binding.Node {
	s := new(Source)
	s.ReadXML(el, SourceDispatch)
	return s
}

// ReadXML fills the source from el's children.
func (s *Source) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	if sub := el.Find(name("collection")); sub != nil {
		s.Collection = d.Resolve("collection")(sub).(*Collection)
	}
	s.Source.ReadXML(el, d)
}

// Populate implements binding.Node.
func (s *Source) Populate(el *xmltree.Element) error {
	return s.PrepareXML(el)
}

// PrepareXML writes the source, atom metadata first.
func (s *Source) PrepareXML(el *xmltree.Element) error {
	if err := s.Source.PrepareXML(el); err != nil {
		return err
	}
	if s.Collection != nil {
		if _, err := binding.EncodeInto(s.Collection, el, name("collection")); err != nil {
			return err
		}
	}
	return nil
}

// Entry is an atom:entry whose source child is the extended app source.
type Entry struct {
	atom.Entry
}

// EntryDispatch substitutes the app source decoder into the atom entry
// table.
var EntryDispatch = atom.EntryDispatch.Extend("app.Entry", binding.Table{
	"source": DecodeSource,
})

// DecodeEntry decodes an AtomPub entry element.
func DecodeEntry(el *xmltree.Element) binding.Node {
	e := new(Entry)
	e.ReadXML(el, EntryDispatch)
	return e
}

// ParseEntry reads an AtomPub entry document. The root element must be
// atom:entry.
func ParseEntry(r io.Reader) (*Entry, error) {
	n, err := binding.DecodeDocument(r, atomName("entry"), DecodeEntry)
	if err != nil {
		return nil, err
	}
	return n.(*Entry), nil
}

// Feed is an atom:feed whose entries are AtomPub entries and which may
// carry the app:collection it serves.
type Feed struct {
	atom.Feed
	Collection *Collection
}

// FeedDispatch substitutes the AtomPub entry decoder into the atom feed
// table and adds the collection child.
var FeedDispatch = atom.FeedDispatch.Extend("app.Feed", binding.Table{
	"entry":      DecodeEntry,
	"collection": DecodeCollection,
})

// DecodeFeed decodes an AtomPub feed element.
func DecodeFeed(el *xmltree.Element) binding.Node {
	f := new(Feed)
	f.ReadXML(el, FeedDispatch)
	return f
}

// ParseFeed reads an AtomPub feed document. The root element must be
// atom:feed.
func ParseFeed(r io.Reader) (*Feed, error) {
	n, err := binding.DecodeDocument(r, atomName("feed"), DecodeFeed)
	if err != nil {
		return nil, err
	}
	return n.(*Feed), nil
}

// ReadXML fills the feed from el's children.
func (f *Feed) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	if sub := el.Find(name("collection")); sub != nil {
		f.Collection = d.Resolve("collection")(sub).(*Collection)
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

// PrepareXML writes the feed, atom content first.
func (f *Feed) PrepareXML(el *xmltree.Element) error {
	if err := f.Feed.PrepareXML(el); err != nil {
		return err
	}
	if f.Collection != nil {
		if _, err := binding.EncodeInto(f.Collection, el, name("collection")); err != nil {
			return err
		}
	}
	return nil
}
