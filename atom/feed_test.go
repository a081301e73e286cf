package atom

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

const feedDoc = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Feed</title>
  <subtitle type="html">A &lt;em&gt;lively&lt;/em&gt; feed</subtitle>
  <link href="http://example.org/" rel="alternate"/>
  <link href="http://example.org/feed" rel="self"/>
  <id>urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6</id>
  <updated>2003-12-13T18:30:02Z</updated>
  <generator uri="http://example.org/gen" version="1.0">Example Toolkit</generator>
  <icon>http://example.org/icon.png</icon>
  <logo>http://example.org/logo.png</logo>
  <rights>Copyright (c) 2003</rights>
  <author><name>John Doe</name><email>johndoe@example.com</email></author>
  <category term="tech" scheme="http://example.org/cats" label="Technology"/>
  <entry>
    <title>Atom-Powered Robots Run Amok</title>
    <link href="http://example.org/2003/12/13/atom03"/>
    <id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
    <updated>2003-12-13T18:30:02Z</updated>
    <published>2003-12-12T12:00:00Z</published>
    <summary>Some text.</summary>
    <content type="html">&lt;p&gt;Robots!&lt;/p&gt;</content>
  </entry>
</feed>`

func parseTestFeed(t *testing.T) *Feed {
	t.Helper()
	f, err := ParseFeed(strings.NewReader(feedDoc))
	if err != nil {
		t.Fatalf("ParseFeed() error = %v", err)
	}
	return f
}

func TestParseFeed(t *testing.T) {
	f := parseTestFeed(t)

	if f.ID != "urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6" {
		t.Errorf("ID = %q", f.ID)
	}
	if f.Title == nil || f.Title.Body != "Example Feed" {
		t.Errorf("Title = %+v", f.Title)
	}
	if f.Subtitle == nil || f.Subtitle.Type != "html" {
		t.Errorf("Subtitle = %+v", f.Subtitle)
	}
	if f.Updated == nil || !f.Updated.Time.Equal(time.Date(2003, 12, 13, 18, 30, 2, 0, time.UTC)) {
		t.Errorf("Updated = %+v", f.Updated)
	}
	if f.Generator == nil || f.Generator.Text != "Example Toolkit" || f.Generator.Version != "1.0" {
		t.Errorf("Generator = %+v", f.Generator)
	}
	if f.Icon != "http://example.org/icon.png" || f.Logo != "http://example.org/logo.png" {
		t.Errorf("Icon = %q, Logo = %q", f.Icon, f.Logo)
	}
	if len(f.Authors) != 1 || f.Authors[0].Name != "John Doe" ||
		f.Authors[0].Email != "johndoe@example.com" {
		t.Errorf("Authors = %+v", f.Authors)
	}
	if len(f.Categories) != 1 || f.Categories[0].Term != "tech" ||
		f.Categories[0].Label != "Technology" {
		t.Errorf("Categories = %+v", f.Categories)
	}
	if got := f.Links.Get("self"); got != "http://example.org/feed" {
		t.Errorf("self link = %q", got)
	}

	if len(f.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(f.Entries))
	}
	e := f.Entries[0].AtomEntry()
	if e.Title.Body != "Atom-Powered Robots Run Amok" {
		t.Errorf("entry title = %q", e.Title.Body)
	}
	if e.Published == nil || e.Summary == nil {
		t.Errorf("entry = %+v", e)
	}
	if e.Content == nil || e.Content.Type != "html" || e.Content.Body != "<p>Robots!</p>" {
		t.Errorf("entry content = %+v", e.Content)
	}
}

func TestParseFeed_WrongRoot(t *testing.T) {
	_, err := ParseFeed(strings.NewReader(
		`<entry xmlns="http://www.w3.org/2005/Atom"/>`))
	var pe *xmltree.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *xmltree.ParseError", err)
	}
}

func TestParseFeed_GenerousDecoding(t *testing.T) {
	// Decoding never fails on missing data: an empty feed with an empty
	// entry parses fine, fields stay empty.
	f, err := ParseFeed(strings.NewReader(
		`<feed xmlns="http://www.w3.org/2005/Atom"><entry/></feed>`))
	if err != nil {
		t.Fatalf("ParseFeed() error = %v", err)
	}
	if f.ID != "" || f.Title != nil || f.Updated != nil {
		t.Errorf("fields set on empty feed: %+v", f)
	}
	if len(f.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(f.Entries))
	}
	if e := f.Entries[0].AtomEntry(); e.ID != "" || e.Title != nil {
		t.Errorf("fields set on empty entry: %+v", e)
	}
}

func TestParseFeed_UnknownChildrenSkipped(t *testing.T) {
	f, err := ParseFeed(strings.NewReader(`<feed xmlns="http://www.w3.org/2005/Atom">` +
		`<id>urn:x</id><mystery>?</mystery><other:thing xmlns:other="http://example.org/x"/></feed>`))
	if err != nil {
		t.Fatalf("ParseFeed() error = %v", err)
	}
	if f.ID != "urn:x" {
		t.Errorf("ID = %q", f.ID)
	}
}

func TestFeed_RoundTrip(t *testing.T) {
	f := parseTestFeed(t)

	el, err := binding.EncodeRoot(f, xmltree.Name{})
	if err != nil {
		t.Fatalf("EncodeRoot() error = %v", err)
	}
	again, err := ParseFeed(strings.NewReader(string(xmltree.Marshal(el))))
	if err != nil {
		t.Fatalf("reparsing encoded feed: %v", err)
	}

	if again.ID != f.ID {
		t.Errorf("ID = %q, want %q", again.ID, f.ID)
	}
	if again.Title.Body != f.Title.Body {
		t.Errorf("Title = %q, want %q", again.Title.Body, f.Title.Body)
	}
	if !again.Updated.Time.Equal(f.Updated.Time) {
		t.Errorf("Updated = %v, want %v", again.Updated.Time, f.Updated.Time)
	}
	if got, want := again.Links.GetAll("self"), f.Links.GetAll("self"); len(got) != len(want) {
		t.Errorf("self links = %v, want %v", got, want)
	}
	if len(again.Entries) != len(f.Entries) {
		t.Fatalf("got %d entries, want %d", len(again.Entries), len(f.Entries))
	}
	e, want := again.Entries[0].AtomEntry(), f.Entries[0].AtomEntry()
	if e.ID != want.ID || e.Title.Body != want.Title.Body {
		t.Errorf("entry = %+v, want %+v", e, want)
	}
	if e.Content.Body != want.Content.Body {
		t.Errorf("entry content = %q, want %q", e.Content.Body, want.Content.Body)
	}
}

func incompleteField(t *testing.T, err error) string {
	t.Helper()
	var incomplete *binding.IncompleteObjectError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error = %v, want *binding.IncompleteObjectError", err)
	}
	return incomplete.Field
}

func TestEntry_RequiredFieldOrder(t *testing.T) {
	e := new(Entry)
	el := xmltree.NewRoot(name("entry"))

	if got := incompleteField(t, e.Populate(el)); got != "id" {
		t.Errorf("first missing field = %q, want %q", got, "id")
	}
	e.ID = "urn:x"
	if got := incompleteField(t, e.Populate(el)); got != "title" {
		t.Errorf("after id, missing field = %q, want %q", got, "title")
	}
	e.Title = NewText("t")
	if got := incompleteField(t, e.Populate(el)); got != "updated" {
		t.Errorf("after title, missing field = %q, want %q", got, "updated")
	}
	e.Updated = NewDate(time.Now())

	if err := e.Populate(xmltree.NewRoot(name("entry"))); err != nil {
		t.Errorf("complete entry Populate() error = %v", err)
	}
}

func TestEntry_ValidateBeforeWrite(t *testing.T) {
	// An incomplete entry must fail before touching the element.
	e := new(Entry)
	e.Title = NewText("t")
	el := xmltree.NewRoot(name("entry"))

	if err := e.Populate(el); err == nil {
		t.Fatal("expected error for incomplete entry")
	}
	if el.Len() != 0 || len(el.Attrs()) != 0 {
		t.Errorf("element written despite validation failure: %s", xmltree.MarshalElement(el))
	}
}

func TestFeed_RequiredFields(t *testing.T) {
	f := new(Feed)
	el := xmltree.NewRoot(name("feed"))
	if got := incompleteField(t, f.Populate(el)); got != "id" {
		t.Errorf("missing field = %q, want %q", got, "id")
	}
}

func TestEntry_AllAuthors(t *testing.T) {
	src := &Source{}
	src.Authors = []*Person{{Name: "feed author"}}
	e := &Entry{Source: src}
	e.Authors = []*Person{{Name: "entry author"}}

	all := e.AllAuthors()
	if len(all) != 2 || all[0].Name != "entry author" || all[1].Name != "feed author" {
		t.Errorf("AllAuthors() = %+v", all)
	}

	noSource := &Entry{}
	noSource.Authors = e.Authors
	if got := noSource.AllAuthors(); len(got) != 1 {
		t.Errorf("AllAuthors() without source = %+v", got)
	}
}

func TestEntry_SourceRoundTrip(t *testing.T) {
	doc := `<entry xmlns="http://www.w3.org/2005/Atom">` +
		`<id>urn:e</id><title>t</title><updated>2003-12-13T18:30:02Z</updated>` +
		`<source><id>urn:f</id><title>Origin</title><subtitle>sub</subtitle></source></entry>`

	e, err := ParseEntry(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseEntry() error = %v", err)
	}
	if e.Source == nil {
		t.Fatal("Source = nil")
	}
	src := e.Source.AtomSource()
	if src.ID != "urn:f" || src.Subtitle == nil || src.Subtitle.Body != "sub" {
		t.Errorf("source = %+v", src)
	}

	el, err := binding.EncodeRoot(e, xmltree.Name{})
	if err != nil {
		t.Fatalf("EncodeRoot() error = %v", err)
	}
	if el.Find(name("source")) == nil {
		t.Errorf("source element not written: %s", xmltree.Marshal(el))
	}
}

func TestEntry_MediaTypes(t *testing.T) {
	if got := new(Entry).MediaType(); got != "application/atom+xml;type=entry" {
		t.Errorf("entry media type = %q", got)
	}
	if got := new(Feed).MediaType(); got != "application/atom+xml" {
		t.Errorf("feed media type = %q", got)
	}
}
