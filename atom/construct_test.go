package atom

import (
	"testing"

	"github.com/tsawler/atomtree/xmltree"
)

func TestPerson_RoundTrip(t *testing.T) {
	p := &Person{Name: "Jo Example", URI: "http://example.org/jo", Email: "jo@example.org"}

	el := xmltree.NewRoot(name("author"))
	if err := p.Populate(el); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	again := DecodePerson(el).(*Person)
	if *again != *p {
		t.Errorf("round trip = %+v, want %+v", again, p)
	}
}

func TestPerson_NameAlwaysWritten(t *testing.T) {
	el := xmltree.NewRoot(name("author"))
	if err := new(Person).Populate(el); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if el.Find(name("name")) == nil {
		t.Error("name child not written for empty person")
	}
	if el.Find(name("uri")) != nil || el.Find(name("email")) != nil {
		t.Error("empty uri/email written")
	}
}

func TestCategory_TermAlwaysWritten(t *testing.T) {
	el := xmltree.NewRoot(name("category"))
	if err := new(Category).Populate(el); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if _, ok := el.Lookup(xmltree.Local("term")); !ok {
		t.Error("term attribute not written for empty category")
	}
}

func TestGenerator_RoundTrip(t *testing.T) {
	g := &Generator{Text: "gen", URI: "http://example.org/g", Version: "2"}

	el := xmltree.NewRoot(name("generator"))
	if err := g.Populate(el); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	again := DecodeGenerator(el).(*Generator)
	if *again != *g {
		t.Errorf("round trip = %+v, want %+v", again, g)
	}
}

func TestCommon_Attributes(t *testing.T) {
	el := parseElement(t, `<a:title xmlns:a="http://www.w3.org/2005/Atom"`+
		` xml:base="http://example.org/" xml:lang="en-US">x</a:title>`)

	txt := DecodeText(el).(*Text)
	if txt.Base != "http://example.org/" || txt.Lang != "en-US" {
		t.Errorf("common = base %q, lang %q", txt.Base, txt.Lang)
	}

	out := xmltree.NewRoot(name("title"))
	if err := txt.Populate(out); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if out.Attr(attrBase) != "http://example.org/" || out.Attr(attrLang) != "en-US" {
		t.Errorf("encoded common attrs = %v", out.Attrs())
	}
}
