// Package asoc models the social-graph extension: lightweight posts,
// peer lists describing the social graph, certificate lists, and an
// extended AtomPub service document linking to all of them.
package asoc

import (
	"io"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/atompub"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// NS is the social-graph extension namespace.
var NS = xmltree.DefineNamespace("asoc", "http://www.alipedis.com/2012/asoc")

func name(local string) xmltree.Name {
	return xmltree.Name{Space: NS, Local: local}
}

func atomName(local string) xmltree.Name {
	return xmltree.Name{Space: atom.NS, Local: local}
}

// MediaType is the media type shared by the asoc documents.
const MediaType = "application/asoc+xml"

func init() {
	binding.RegisterMediaType(MediaType, DecodePost)
}

// Post is the asoc:post element: a message with atom metadata but
// without the weight of a full entry. Unlike an entry it has no title
// and no required fields.
type Post struct {
	atom.Common
	Authors    []*atom.Person
	Categories []*atom.Category
	Content    *atom.Text
	ID         string
	Links      atom.Links
	Published  *atom.Date
	Rights     *atom.Text
	Updated    *atom.Date
}

// PostDispatch is the dispatch table of asoc:post.
var PostDispatch = binding.NewDispatch("asoc.Post", binding.Table{
	"author":    atom.DecodePerson,
	"category":  atom.DecodeCategory,
	"content":   atom.DecodeText,
	"link":      atom.DecodeLink,
	"published": atom.DecodeDate,
	"rights":    atom.DecodeText,
	"updated":   atom.DecodeDate,
})

// DecodePost decodes an asoc:post element.
func DecodePost(el *xmltree.Element) binding.Node {
	p := new(Post)
	p.ReadXML(el, PostDispatch)
	return p
}

// ParsePost reads a post document. The root element must be asoc:post.
func ParsePost(r io.Reader) (*Post, error) {
	n, err := binding.DecodeDocument(r, name("post"), DecodePost)
	if err != nil {
		return nil, err
	}
	return n.(*Post), nil
}

// ReadXML fills the post from el's children. The content child lives in
// the asoc namespace; the metadata children are plain atom.
func (p *Post) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case atomName("author"):
			p.Authors = append(p.Authors, d.Resolve("author")(sub).(*atom.Person))
		case atomName("category"):
			p.Categories = append(p.Categories, d.Resolve("category")(sub).(*atom.Category))
		case name("content"):
			p.Content = d.Resolve("content")(sub).(*atom.Text)
		case atomName("id"):
			p.ID = xmltree.InnerText(sub)
		case atomName("link"):
			p.Links = append(p.Links, d.Resolve("link")(sub).(atom.LinkNode))
		case atomName("published"):
			p.Published = d.Resolve("published")(sub).(*atom.Date)
		case atomName("rights"):
			p.Rights = d.Resolve("rights")(sub).(*atom.Text)
		case atomName("updated"):
			p.Updated = d.Resolve("updated")(sub).(*atom.Date)
		}
	}
	p.Common.ReadXML(el, d)
}

// StandardTag returns asoc:post.
func (p *Post) StandardTag() xmltree.Name {
	return name("post")
}

// MediaType returns the media type of a post document.
func (p *Post) MediaType() string {
	return MediaType
}

// Populate implements binding.Node. A post has no required fields.
func (p *Post) Populate(el *xmltree.Element) error {
	return p.PrepareXML(el)
}

// PrepareXML writes the post.
func (p *Post) PrepareXML(el *xmltree.Element) error {
	if err := p.Common.PrepareXML(el); err != nil {
		return err
	}
	for _, a := range p.Authors {
		if _, err := binding.EncodeInto(a, el, atomName("author")); err != nil {
			return err
		}
	}
	for _, c := range p.Categories {
		if _, err := binding.EncodeInto(c, el, atomName("category")); err != nil {
			return err
		}
	}
	if p.Content != nil {
		if _, err := binding.EncodeInto(p.Content, el, name("content")); err != nil {
			return err
		}
	}
	if p.ID != "" {
		el.NewTextChild(atomName("id"), p.ID)
	}
	for _, l := range p.Links {
		if _, err := binding.EncodeInto(l, el, atomName("link")); err != nil {
			return err
		}
	}
	if p.Published != nil {
		if _, err := binding.EncodeInto(p.Published, el, atomName("published")); err != nil {
			return err
		}
	}
	if p.Rights != nil {
		if _, err := binding.EncodeInto(p.Rights, el, atomName("rights")); err != nil {
			return err
		}
	}
	if p.Updated != nil {
		if _, err := binding.EncodeInto(p.Updated, el, atomName("updated")); err != nil {
			return err
		}
	}
	return nil
}

// Feed is an AtomPub feed that also carries asoc:post children, kept in
// their own list next to the regular entries.
type Feed struct {
	atompub.Feed
	Posts []*Post
}

// FeedDispatch extends the AtomPub feed table with the post child.
var FeedDispatch = atompub.FeedDispatch.Extend("asoc.Feed", binding.Table{
	"post": DecodePost,
})

// DecodeFeed decodes a feed element with posts.
func DecodeFeed(el *xmltree.Element) binding.Node {
	f := new(Feed)
	f.ReadXML(el, FeedDispatch)
	return f
}

// ReadXML fills the feed from el's children.
func (f *Feed) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		if sub.Tag == name("post") {
			f.Posts = append(f.Posts, d.Resolve("post")(sub).(*Post))
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

// PrepareXML writes the feed, inherited content first, posts last.
func (f *Feed) PrepareXML(el *xmltree.Element) error {
	if err := f.Feed.PrepareXML(el); err != nil {
		return err
	}
	for _, p := range f.Posts {
		if _, err := binding.EncodeInto(p, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}
