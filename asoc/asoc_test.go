package asoc

import (
	"strings"
	"testing"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

const asocPostDoc = `<asoc:post xmlns:asoc="http://www.alipedis.com/2012/asoc"` +
	` xmlns="http://www.w3.org/2005/Atom">` +
	`<id>urn:p1</id>` +
	`<author><name>peer</name></author>` +
	`<asoc:content type="text">short message</asoc:content>` +
	`<link href="http://example.org/p1" rel="self"/>` +
	`<published>2012-07-01T08:00:00Z</published>` +
	`<updated>2012-07-01T09:00:00Z</updated>` +
	`</asoc:post>`

func TestParsePost(t *testing.T) {
	p, err := ParsePost(strings.NewReader(asocPostDoc))
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if p.ID != "urn:p1" {
		t.Errorf("ID = %q", p.ID)
	}
	// The content child is asoc:content, a text construct.
	if p.Content == nil || p.Content.Body != "short message" {
		t.Errorf("Content = %+v", p.Content)
	}
	if len(p.Authors) != 1 || p.Authors[0].Name != "peer" {
		t.Errorf("Authors = %+v", p.Authors)
	}
	if got := p.Links.Get("self"); got != "http://example.org/p1" {
		t.Errorf("self link = %q", got)
	}
	if p.Published == nil || p.Updated == nil {
		t.Errorf("dates = %+v / %+v", p.Published, p.Updated)
	}
}

func TestPost_NoRequiredFields(t *testing.T) {
	el := xmltree.NewRoot(name("post"))
	if err := new(Post).Populate(el); err != nil {
		t.Errorf("empty post Populate() error = %v", err)
	}
}

func TestPost_RoundTrip(t *testing.T) {
	p, err := ParsePost(strings.NewReader(asocPostDoc))
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}

	el, err := binding.EncodeRoot(p, xmltree.Name{})
	if err != nil {
		t.Fatalf("EncodeRoot() error = %v", err)
	}
	if el.Find(name("content")) == nil {
		t.Fatalf("content not under the asoc namespace: %s", xmltree.Marshal(el))
	}
	again, err := ParsePost(strings.NewReader(string(xmltree.Marshal(el))))
	if err != nil {
		t.Fatalf("reparsing encoded post: %v", err)
	}
	if again.ID != p.ID || again.Content.Body != p.Content.Body {
		t.Errorf("round trip = %+v, want %+v", again, p)
	}
}

func TestFeed_Posts(t *testing.T) {
	doc := `<feed xmlns="http://www.w3.org/2005/Atom"` +
		` xmlns:asoc="http://www.alipedis.com/2012/asoc">` +
		`<id>urn:f</id><title>graph</title><updated>2012-07-01T09:00:00Z</updated>` +
		`<asoc:post><id>urn:p1</id></asoc:post>` +
		`<entry><id>urn:e1</id><title>e</title><updated>2012-07-01T09:00:00Z</updated></entry>` +
		`</feed>`

	n := DecodeFeed(mustElement(t, doc))
	f := n.(*Feed)
	// Posts land in their own list, not among the entries.
	if len(f.Posts) != 1 || f.Posts[0].ID != "urn:p1" {
		t.Errorf("Posts = %+v", f.Posts)
	}
	if len(f.Entries) != 1 {
		t.Errorf("got %d entries, want 1", len(f.Entries))
	}
}

func mustElement(t *testing.T, doc string) *xmltree.Element {
	t.Helper()
	el, err := xmltree.ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return el
}

func TestParsePeers(t *testing.T) {
	doc := `<asoc:peers xmlns:asoc="http://www.alipedis.com/2012/asoc"` +
		` xmlns="http://www.w3.org/2005/Atom">` +
		`<asoc:peer>` +
		`<id>urn:peer1</id>` +
		`<asoc:uri>http://example.net/alice</asoc:uri>` +
		`<asoc:name>alice</asoc:name>` +
		`<category term="friend"/>` +
		`<link href="http://example.net/alice/feed" rel="alternate"/>` +
		`</asoc:peer>` +
		`</asoc:peers>`

	ps, err := ParsePeers(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParsePeers() error = %v", err)
	}
	if len(ps.Peers) != 1 {
		t.Fatalf("got %d peers, want 1", len(ps.Peers))
	}
	peer := ps.Peers[0]
	if peer.ID != "urn:peer1" || peer.URI != "http://example.net/alice" || peer.Name != "alice" {
		t.Errorf("peer = %+v", peer)
	}
	if len(peer.Categories) != 1 || peer.Categories[0].Term != "friend" {
		t.Errorf("categories = %+v", peer.Categories)
	}
	if got := peer.Links.Get("alternate"); got != "http://example.net/alice/feed" {
		t.Errorf("alternate link = %q", got)
	}
}

func TestPeers_RoundTrip(t *testing.T) {
	ps := &Peers{Peers: []*Peer{{
		ID:    "urn:peer1",
		URI:   "http://example.net/alice",
		Name:  "alice",
		Links: atom.Links{&atom.Link{Href: "http://example.net/alice/feed", Rel: "alternate"}},
	}}}

	el, err := binding.EncodeRoot(ps, xmltree.Name{})
	if err != nil {
		t.Fatalf("EncodeRoot() error = %v", err)
	}
	again, err := ParsePeers(strings.NewReader(string(xmltree.Marshal(el))))
	if err != nil {
		t.Fatalf("reparsing encoded peers: %v", err)
	}
	if len(again.Peers) != 1 || again.Peers[0].Name != "alice" {
		t.Errorf("peers after round trip = %+v", again.Peers)
	}
	if got := again.Peers[0].Links.Get("alternate"); got != "http://example.net/alice/feed" {
		t.Errorf("link after round trip = %q", got)
	}
}

func TestParseCertificates(t *testing.T) {
	doc := `<asoc:certificates xmlns:asoc="http://www.alipedis.com/2012/asoc">` +
		`<asoc:certificate name="signing">PEMDATA</asoc:certificate>` +
		`<asoc:certificate name="old" href="http://example.org/old.pem"/>` +
		`</asoc:certificates>`

	cs, err := ParseCertificates(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseCertificates() error = %v", err)
	}
	if len(cs.Certificates) != 2 {
		t.Fatalf("got %d certificates, want 2", len(cs.Certificates))
	}
	if cs.Certificates[0].Name != "signing" || cs.Certificates[0].Certificate != "PEMDATA" {
		t.Errorf("inline certificate = %+v", cs.Certificates[0])
	}
	if cs.Certificates[1].Href != "http://example.org/old.pem" {
		t.Errorf("referenced certificate = %+v", cs.Certificates[1])
	}
}

func TestParseService_Links(t *testing.T) {
	doc := `<service xmlns="http://www.w3.org/2007/app"` +
		` xmlns:atom="http://www.w3.org/2005/Atom">` +
		`<workspace><atom:title>Account</atom:title></workspace>` +
		`<atom:link href="http://example.org/peers" rel="http://www.alipedis.com/2012/asoc/peers"/>` +
		`</service>`

	s, err := ParseService(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseService() error = %v", err)
	}
	if len(s.Workspaces) != 1 {
		t.Errorf("got %d workspaces, want 1", len(s.Workspaces))
	}
	if got := s.Links.Get("http://www.alipedis.com/2012/asoc/peers"); got != "http://example.org/peers" {
		t.Errorf("peers link = %q", got)
	}
}
