// Package ames models the Atom messaging extension: posts are entries
// relieved of the title requirement, carried in ames:post elements, and
// feeds may hold them next to their regular entries.
package ames

import (
	"io"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/atompub"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// NS is the messaging extension namespace.
var NS = xmltree.DefineNamespace("ames", "http://www.alipedis.com/2012/ames")

func name(local string) xmltree.Name {
	return xmltree.Name{Space: NS, Local: local}
}

// PostMediaType is the media type of a post document.
const PostMediaType = "application/x-ames+xml;type=post"

func init() {
	binding.RegisterMediaType(PostMediaType, DecodePost)
}

// Post is an AtomPub entry without the title requirement, encoded as
// ames:post.
type Post struct {
	atompub.Entry
}

// PostDispatch is the dispatch table of ames:post; it adds nothing over
// the AtomPub entry table.
var PostDispatch = atompub.EntryDispatch.Extend("ames.Post", nil)

// DecodePost decodes an ames:post element.
func DecodePost(el *xmltree.Element) binding.Node {
	p := new(Post)
	p.ReadXML(el, PostDispatch)
	return p
}

// ParsePost reads a post document. The root element must be ames:post.
func ParsePost(r io.Reader) (*Post, error) {
	n, err := binding.DecodeDocument(r, name("post"), DecodePost)
	if err != nil {
		return nil, err
	}
	return n.(*Post), nil
}

// StandardTag returns ames:post.
func (p *Post) StandardTag() xmltree.Name {
	return name("post")
}

// MediaType returns the media type of a post document.
func (p *Post) MediaType() string {
	return PostMediaType
}

// Validate checks the required fields of a post: id and updated, but no
// title.
func (p *Post) Validate() error {
	if p.ID == "" {
		return &binding.IncompleteObjectError{Type: "ames:post", Field: "id"}
	}
	if p.Updated == nil {
		return &binding.IncompleteObjectError{Type: "ames:post", Field: "updated"}
	}
	return nil
}

// Populate implements binding.Node with the relaxed Validate.
func (p *Post) Populate(el *xmltree.Element) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.PrepareXML(el)
}

// Feed is an AtomPub feed that also carries ames:post children.
type Feed struct {
	atompub.Feed
	Posts []*Post
}

// FeedDispatch extends the AtomPub feed table with the post child.
var FeedDispatch = atompub.FeedDispatch.Extend("ames.Feed", binding.Table{
	"post": DecodePost,
})

// DecodeFeed decodes a feed element with posts.
func DecodeFeed(el *xmltree.Element) binding.Node {
	f := new(Feed)
	f.ReadXML(el, FeedDispatch)
	return f
}

// ParseFeed reads a feed document with posts. The root element must be
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

// PrepareXML writes the feed, inherited content first, posts last under
// their standard tag.
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
