package atom

import (
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Person is a person construct (RFC 4287 section 3.2).
type Person struct {
	Common
	Name  string
	URI   string
	Email string
}

// DecodePerson decodes a person-construct element.
func DecodePerson(el *xmltree.Element) binding.Node {
	p := new(Person)
	p.ReadXML(el, nil)
	return p
}

// ReadXML fills the person from el's children.
func (p *Person) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case name("name"):
			p.Name = xmltree.InnerText(sub)
		case name("uri"):
			p.URI = xmltree.InnerText(sub)
		case name("email"):
			p.Email = xmltree.InnerText(sub)
		}
	}
	p.Common.ReadXML(el, d)
}

// StandardTag returns the zero name: a person construct is encoded under
// a caller-supplied tag (author, contributor).
func (p *Person) StandardTag() xmltree.Name {
	return xmltree.Name{}
}

// Populate implements binding.Node.
func (p *Person) Populate(el *xmltree.Element) error {
	return p.PrepareXML(el)
}

// PrepareXML writes the person onto el. The name child is always
// written; uri and email only when set.
func (p *Person) PrepareXML(el *xmltree.Element) error {
	if err := p.Common.PrepareXML(el); err != nil {
		return err
	}
	el.NewTextChild(name("name"), p.Name)
	if p.URI != "" {
		el.NewTextChild(name("uri"), p.URI)
	}
	if p.Email != "" {
		el.NewTextChild(name("email"), p.Email)
	}
	return nil
}

// Category is the atom:category element (RFC 4287 section 4.2.2).
type Category struct {
	Common
	Term   string
	Scheme string
	Label  string
}

// DecodeCategory decodes an atom:category element.
func DecodeCategory(el *xmltree.Element) binding.Node {
	c := new(Category)
	c.ReadXML(el, nil)
	return c
}

// ReadXML fills the category from el's attributes.
func (c *Category) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	c.Term = el.Attr(xmltree.Local("term"))
	c.Scheme = el.Attr(xmltree.Local("scheme"))
	c.Label = el.Attr(xmltree.Local("label"))
	c.Common.ReadXML(el, d)
}

// StandardTag returns atom:category.
func (c *Category) StandardTag() xmltree.Name {
	return name("category")
}

// Populate implements binding.Node.
func (c *Category) Populate(el *xmltree.Element) error {
	return c.PrepareXML(el)
}

// PrepareXML writes the category's attributes onto el. term is always
// written, even when empty.
func (c *Category) PrepareXML(el *xmltree.Element) error {
	if err := c.Common.PrepareXML(el); err != nil {
		return err
	}
	el.SetAttr(xmltree.Local("term"), c.Term)
	if c.Scheme != "" {
		el.SetAttr(xmltree.Local("scheme"), c.Scheme)
	}
	if c.Label != "" {
		el.SetAttr(xmltree.Local("label"), c.Label)
	}
	return nil
}

// Generator is the atom:generator element (RFC 4287 section 4.2.4),
// identifying the agent that produced the document.
type Generator struct {
	Common
	Text    string
	URI     string
	Version string
}

// DecodeGenerator decodes an atom:generator element.
func DecodeGenerator(el *xmltree.Element) binding.Node {
	g := new(Generator)
	g.ReadXML(el, nil)
	return g
}

// ReadXML fills the generator from el.
func (g *Generator) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	g.Text = xmltree.Flatten(el)
	g.URI = el.Attr(xmltree.Local("uri"))
	g.Version = el.Attr(xmltree.Local("version"))
	g.Common.ReadXML(el, d)
}

// StandardTag returns atom:generator.
func (g *Generator) StandardTag() xmltree.Name {
	return name("generator")
}

// Populate implements binding.Node.
func (g *Generator) Populate(el *xmltree.Element) error {
	return g.PrepareXML(el)
}

// PrepareXML writes the generator onto el.
func (g *Generator) PrepareXML(el *xmltree.Element) error {
	if err := g.Common.PrepareXML(el); err != nil {
		return err
	}
	el.Text = g.Text
	if g.URI != "" {
		el.SetAttr(xmltree.Local("uri"), g.URI)
	}
	if g.Version != "" {
		el.SetAttr(xmltree.Local("version"), g.Version)
	}
	return nil
}
