package atom

import (
	"io"

	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Media types of Atom documents.
const (
	FeedMediaType  = "application/atom+xml"
	EntryMediaType = "application/atom+xml;type=entry"
)

func init() {
	binding.RegisterMediaType(FeedMediaType, DecodeFeed)
	binding.RegisterMediaType(EntryMediaType, DecodeEntry)
}

// Source is the atom:source element (RFC 4287 section 4.2.11): the feed
// metadata an entry keeps when it is copied out of its feed. It is also
// the base of Feed.
type Source struct {
	Meta
	Generator *Generator
	Icon      string
	Logo      string
	Subtitle  *Text
}

// SourceDispatch extends MetaDispatch with the source-level children.
var SourceDispatch = MetaDispatch.Extend("atom.Source", binding.Table{
	"generator": DecodeGenerator,
	"subtitle":  DecodeText,
})

// DecodeSource decodes an atom:source element.
func DecodeSource(el *xmltree.Element) binding.Node {
	s := new(Source)
	s.ReadXML(el, SourceDispatch)
	return s
}

// ReadXML fills the source from el's children.
func (s *Source) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case name("generator"):
			s.Generator = d.Resolve("generator")(sub).(*Generator)
		case name("icon"):
			s.Icon = xmltree.InnerText(sub)
		case name("logo"):
			s.Logo = xmltree.InnerText(sub)
		case name("subtitle"):
			s.Subtitle = d.Resolve("subtitle")(sub).(*Text)
		}
	}
	s.Meta.ReadXML(el, d)
}

// StandardTag returns atom:source.
func (s *Source) StandardTag() xmltree.Name {
	return name("source")
}

// Populate implements binding.Node. A source has no required fields.
func (s *Source) Populate(el *xmltree.Element) error {
	return s.PrepareXML(el)
}

// PrepareXML writes the source onto el, metadata first.
func (s *Source) PrepareXML(el *xmltree.Element) error {
	if err := s.Meta.PrepareXML(el); err != nil {
		return err
	}
	if s.Generator != nil {
		if _, err := binding.EncodeInto(s.Generator, el, name("generator")); err != nil {
			return err
		}
	}
	if s.Icon != "" {
		el.NewTextChild(name("icon"), s.Icon)
	}
	if s.Logo != "" {
		el.NewTextChild(name("logo"), s.Logo)
	}
	if s.Subtitle != nil {
		if _, err := binding.EncodeInto(s.Subtitle, el, name("subtitle")); err != nil {
			return err
		}
	}
	return nil
}

// AtomSource returns the embedded atom-level source, giving extension
// source types a common denominator.
func (s *Source) AtomSource() *Source { return s }

// SourceNode is satisfied by atom:source and extension source elements.
type SourceNode interface {
	binding.Node
	AtomSource() *Source
}

// Entry is the atom:entry element (RFC 4287 section 4.1.2).
type Entry struct {
	Meta
	Content   *Content
	Published *Date
	Source    SourceNode
	Summary   *Text
}

// EntryDispatch extends MetaDispatch with the entry-level children.
var EntryDispatch = MetaDispatch.Extend("atom.Entry", binding.Table{
	"content":   DecodeContent,
	"published": DecodeDate,
	"source":    DecodeSource,
	"summary":   DecodeText,
})

// DecodeEntry decodes an atom:entry element.
func DecodeEntry(el *xmltree.Element) binding.Node {
	e := new(Entry)
	e.ReadXML(el, EntryDispatch)
	return e
}

// ParseEntry reads an Atom entry document. The root element must be
// atom:entry.
func ParseEntry(r io.Reader) (*Entry, error) {
	n, err := binding.DecodeDocument(r, name("entry"), DecodeEntry)
	if err != nil {
		return nil, err
	}
	return n.(*Entry), nil
}

// ReadXML fills the entry from el's children.
func (e *Entry) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case name("content"):
			e.Content = d.Resolve("content")(sub).(*Content)
		case name("published"):
			e.Published = d.Resolve("published")(sub).(*Date)
		case name("source"):
			e.Source = d.Resolve("source")(sub).(SourceNode)
		case name("summary"):
			e.Summary = d.Resolve("summary")(sub).(*Text)
		}
	}
	e.Meta.ReadXML(el, d)
}

// StandardTag returns atom:entry.
func (e *Entry) StandardTag() xmltree.Name {
	return name("entry")
}

// MediaType returns the media type of an entry document.
func (e *Entry) MediaType() string {
	return EntryMediaType
}

// Validate checks the fields RFC 4287 requires of an entry.
func (e *Entry) Validate() error {
	switch {
	case e.ID == "":
		return &binding.IncompleteObjectError{Type: "atom:entry", Field: "id"}
	case e.Title == nil:
		return &binding.IncompleteObjectError{Type: "atom:entry", Field: "title"}
	case e.Updated == nil:
		return &binding.IncompleteObjectError{Type: "atom:entry", Field: "updated"}
	}
	return nil
}

// Populate implements binding.Node: Validate first, then the field
// stages, so an incomplete entry fails before anything is written.
func (e *Entry) Populate(el *xmltree.Element) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return e.PrepareXML(el)
}

// PrepareXML writes the entry onto el, metadata first.
func (e *Entry) PrepareXML(el *xmltree.Element) error {
	if err := e.Meta.PrepareXML(el); err != nil {
		return err
	}
	if e.Content != nil {
		if _, err := binding.EncodeInto(e.Content, el, name("content")); err != nil {
			return err
		}
	}
	if e.Published != nil {
		if _, err := binding.EncodeInto(e.Published, el, name("published")); err != nil {
			return err
		}
	}
	if e.Source != nil {
		if _, err := binding.EncodeInto(e.Source, el, name("source")); err != nil {
			return err
		}
	}
	if e.Summary != nil {
		if _, err := binding.EncodeInto(e.Summary, el, name("summary")); err != nil {
			return err
		}
	}
	return nil
}

// AtomEntry returns the embedded atom-level entry, giving extension
// entry types a common denominator.
func (e *Entry) AtomEntry() *Entry { return e }

// AllAuthors returns the entry's authors followed by the authors of its
// source, if any.
func (e *Entry) AllAuthors() []*Person {
	authors := make([]*Person, 0, len(e.Authors))
	authors = append(authors, e.Authors...)
	if e.Source != nil {
		authors = append(authors, e.Source.AtomSource().Authors...)
	}
	return authors
}

// EntryNode is satisfied by atom:entry and extension entry elements.
type EntryNode interface {
	binding.Node
	AtomEntry() *Entry
}

// Feed is the atom:feed element (RFC 4287 section 4.1.1): a Source plus
// the entries.
type Feed struct {
	Source
	Entries []EntryNode
}

// FeedDispatch extends SourceDispatch with the entry child.
var FeedDispatch = SourceDispatch.Extend("atom.Feed", binding.Table{
	"entry": DecodeEntry,
})

// DecodeFeed decodes an atom:feed element.
func DecodeFeed(el *xmltree.Element) binding.Node {
	f := new(Feed)
	f.ReadXML(el, FeedDispatch)
	return f
}

// ParseFeed reads an Atom feed document. The root element must be
// atom:feed.
func ParseFeed(r io.Reader) (*Feed, error) {
	n, err := binding.DecodeDocument(r, name("feed"), DecodeFeed)
	if err != nil {
		return nil, err
	}
	return n.(*Feed), nil
}

// ReadXML fills the feed from el's children.
func (f *Feed) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		if sub.Tag == name("entry") {
			f.Entries = append(f.Entries, d.Resolve("entry")(sub).(EntryNode))
		}
	}
	f.Source.ReadXML(el, d)
}

// StandardTag returns atom:feed.
func (f *Feed) StandardTag() xmltree.Name {
	return name("feed")
}

// MediaType returns the media type of a feed document.
func (f *Feed) MediaType() string {
	return FeedMediaType
}

// Validate checks the fields RFC 4287 requires of a feed.
func (f *Feed) Validate() error {
	switch {
	case f.ID == "":
		return &binding.IncompleteObjectError{Type: "atom:feed", Field: "id"}
	case f.Title == nil:
		return &binding.IncompleteObjectError{Type: "atom:feed", Field: "title"}
	case f.Updated == nil:
		return &binding.IncompleteObjectError{Type: "atom:feed", Field: "updated"}
	}
	return nil
}

// Populate implements binding.Node: Validate first, then the field
// stages.
func (f *Feed) Populate(el *xmltree.Element) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return f.PrepareXML(el)
}

// PrepareXML writes the feed onto el, source metadata first, entries
// last in insertion order.
func (f *Feed) PrepareXML(el *xmltree.Element) error {
	if err := f.Source.PrepareXML(el); err != nil {
		return err
	}
	for _, entry := range f.Entries {
		if _, err := binding.EncodeInto(entry, el, name("entry")); err != nil {
			return err
		}
	}
	return nil
}
