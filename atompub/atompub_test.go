package atompub

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

const serviceDoc = `<?xml version="1.0" encoding="utf-8"?>
<service xmlns="http://www.w3.org/2007/app" xmlns:atom="http://www.w3.org/2005/Atom">
  <workspace>
    <atom:title>Main Site</atom:title>
    <collection href="http://example.org/blog/main">
      <atom:title>My Blog Entries</atom:title>
      <categories href="http://example.org/cats/forMain.cats"/>
    </collection>
    <collection href="http://example.org/blog/pic">
      <atom:title>Pictures</atom:title>
      <accept>image/png</accept>
      <accept>image/jpeg</accept>
      <accept>image/gif</accept>
    </collection>
  </workspace>
  <workspace>
    <atom:title>Sidebar Blog</atom:title>
    <collection href="http://example.org/sidebar/list">
      <atom:title>Remaindered Links</atom:title>
      <categories fixed="yes">
        <atom:category scheme="http://example.org/extra-cats/" term="joke"/>
        <atom:category scheme="http://example.org/extra-cats/" term="serious"/>
      </categories>
    </collection>
  </workspace>
</service>`

func parseTestService(t *testing.T) *Service {
	t.Helper()
	s, err := ParseService(strings.NewReader(serviceDoc))
	if err != nil {
		t.Fatalf("ParseService() error = %v", err)
	}
	return s
}

func TestParseService(t *testing.T) {
	s := parseTestService(t)

	if len(s.Workspaces) != 2 {
		t.Fatalf("got %d workspaces, want 2", len(s.Workspaces))
	}
	ws := s.Workspaces[0]
	if ws.Title == nil || ws.Title.Body != "Main Site" {
		t.Errorf("workspace title = %+v", ws.Title)
	}
	if len(ws.Collections) != 2 {
		t.Fatalf("got %d collections, want 2", len(ws.Collections))
	}

	blog := ws.Collections[0]
	if blog.Href != "http://example.org/blog/main" {
		t.Errorf("collection href = %q", blog.Href)
	}
	if len(blog.Categories) != 1 || blog.Categories[0].Href != "http://example.org/cats/forMain.cats" {
		t.Errorf("out-of-line categories = %+v", blog.Categories)
	}

	pics := ws.Collections[1]
	if len(pics.Accept) != 3 || pics.Accept[0].MediaRange != "image/png" {
		t.Errorf("accept list = %+v", pics.Accept)
	}

	side := s.Workspaces[1].Collections[0]
	if len(side.Categories) != 1 {
		t.Fatalf("categories = %+v", side.Categories)
	}
	cats := side.Categories[0]
	if !cats.Fixed || len(cats.Categories) != 2 || cats.Categories[0].Term != "joke" {
		t.Errorf("inline categories = %+v", cats)
	}
}

func TestService_RoundTrip(t *testing.T) {
	s := parseTestService(t)

	el, err := binding.EncodeRoot(s, xmltree.Name{})
	if err != nil {
		t.Fatalf("EncodeRoot() error = %v", err)
	}
	again, err := ParseService(strings.NewReader(string(xmltree.Marshal(el))))
	if err != nil {
		t.Fatalf("reparsing encoded service: %v", err)
	}

	if len(again.Workspaces) != 2 {
		t.Fatalf("got %d workspaces, want 2", len(again.Workspaces))
	}
	if got := again.Workspaces[0].Collections[1].Accept; len(got) != 3 {
		t.Errorf("accept list after round trip = %+v", got)
	}
	if got := again.Workspaces[1].Collections[0].Categories[0]; !got.Fixed ||
		len(got.Categories) != 2 {
		t.Errorf("inline categories after round trip = %+v", got)
	}
}

func requireIncomplete(t *testing.T, err error, field string) {
	t.Helper()
	var incomplete *binding.IncompleteObjectError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error = %v, want *binding.IncompleteObjectError", err)
	}
	if incomplete.Field != field {
		t.Errorf("missing field = %q, want %q", incomplete.Field, field)
	}
}

func TestCollection_RequiredFields(t *testing.T) {
	c := new(Collection)
	el := xmltree.NewRoot(name("collection"))
	requireIncomplete(t, c.Populate(el), "href")

	c.Href = "http://example.org/c"
	requireIncomplete(t, c.Populate(el), "title")

	c.Title = atom.NewText("t")
	if err := c.Populate(xmltree.NewRoot(name("collection"))); err != nil {
		t.Errorf("complete collection Populate() error = %v", err)
	}
}

func TestWorkspace_RequiredFields(t *testing.T) {
	w := new(Workspace)
	requireIncomplete(t, w.Populate(xmltree.NewRoot(name("workspace"))), "title")
}

func TestService_RequiresWorkspace(t *testing.T) {
	s := new(Service)
	requireIncomplete(t, s.Populate(xmltree.NewRoot(name("service"))), "workspaces")
}

func TestCategories_OutOfLineSkipsInline(t *testing.T) {
	el, err := xmltree.ParseBytes([]byte(`<categories xmlns="http://www.w3.org/2007/app"` +
		` xmlns:atom="http://www.w3.org/2005/Atom" href="http://example.org/c" fixed="yes">` +
		`<atom:category term="leaked"/></categories>`))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}

	c := DecodeCategories(el).(*Categories)
	if c.Href != "http://example.org/c" {
		t.Errorf("Href = %q", c.Href)
	}
	// Out-of-line mode: the inline attributes and children are ignored.
	if c.Fixed || c.Scheme != "" || len(c.Categories) != 0 {
		t.Errorf("inline fields set in out-of-line mode: %+v", c)
	}

	out := xmltree.NewRoot(name("categories"))
	if err := c.Populate(out); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if _, ok := out.Lookup(xmltree.Local("fixed")); ok {
		t.Error("fixed attribute written in out-of-line mode")
	}
}

func TestCategories_MediaType(t *testing.T) {
	if got := new(Categories).MediaType(); got != "application/atomcat+xml" {
		t.Errorf("categories media type = %q", got)
	}
	if got := new(Service).MediaType(); got != "application/atomsvc+xml" {
		t.Errorf("service media type = %q", got)
	}
}
