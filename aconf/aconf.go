// Package aconf models the account-configuration extension, anchored in
// AtomPub service documents: aconf:link children point at the
// configuration services of an account, and certificate lists can be
// carried inline or as their own documents.
package aconf

import (
	"io"

	"github.com/tsawler/atomtree/atompub"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// NS is the account-configuration namespace.
var NS = xmltree.DefineNamespace("aconf", "http://www.alipedis.com/2012/aconf")

func name(local string) xmltree.Name {
	return xmltree.Name{Space: NS, Local: local}
}

// CertificatesMediaType is the media type of a certificates document.
const CertificatesMediaType = "application/x-aconf+xml;type=certificates"

func init() {
	binding.RegisterMediaType(CertificatesMediaType, DecodeCertificates)
}

var attrBase = xmltree.Name{Space: xmltree.XMLNamespace, Local: "base"}

// Link is the aconf:link element. It carries only href, rel and
// xml:base; the rel value defines what to expect behind the href.
type Link struct {
	Href string
	Rel  string
	Base string
}

// DecodeLink decodes an aconf:link element.
func DecodeLink(el *xmltree.Element) binding.Node {
	l := new(Link)
	l.ReadXML(el, nil)
	return l
}

// ReadXML fills the link from el's attributes.
func (l *Link) ReadXML(el *xmltree.Element, _ *binding.Dispatch) {
	l.Href = el.Attr(xmltree.Local("href"))
	l.Rel = el.Attr(xmltree.Local("rel"))
	l.Base = el.Attr(attrBase)
}

// StandardTag returns aconf:link.
func (l *Link) StandardTag() xmltree.Name {
	return name("link")
}

// Populate implements binding.Node.
func (l *Link) Populate(el *xmltree.Element) error {
	return l.PrepareXML(el)
}

// PrepareXML writes the link's attributes.
func (l *Link) PrepareXML(el *xmltree.Element) error {
	if l.Href != "" {
		el.SetAttr(xmltree.Local("href"), l.Href)
	}
	if l.Rel != "" {
		el.SetAttr(xmltree.Local("rel"), l.Rel)
	}
	if l.Base != "" {
		el.SetAttr(attrBase, l.Base)
	}
	return nil
}

// LinkHref implements atom.LinkNode.
func (l *Link) LinkHref() string { return l.Href }

// LinkRel implements atom.LinkNode.
func (l *Link) LinkRel() string { return l.Rel }

// Certificate is the aconf:certificate element.
type Certificate struct {
	Href        string
	Name        string
	Certificate string
}

// DecodeCertificate decodes an aconf:certificate element.
func DecodeCertificate(el *xmltree.Element) binding.Node {
	c := new(Certificate)
	c.ReadXML(el, nil)
	return c
}

// ReadXML fills the certificate.
func (c *Certificate) ReadXML(el *xmltree.Element, _ *binding.Dispatch) {
	c.Href = el.Attr(xmltree.Local("href"))
	c.Name = el.Attr(xmltree.Local("name"))
	c.Certificate = xmltree.InnerText(el)
}

// StandardTag returns aconf:certificate.
func (c *Certificate) StandardTag() xmltree.Name {
	return name("certificate")
}

// Populate implements binding.Node.
func (c *Certificate) Populate(el *xmltree.Element) error {
	return c.PrepareXML(el)
}

// PrepareXML writes the certificate.
func (c *Certificate) PrepareXML(el *xmltree.Element) error {
	if c.Href != "" {
		el.SetAttr(xmltree.Local("href"), c.Href)
	}
	if c.Name != "" {
		el.SetAttr(xmltree.Local("name"), c.Name)
	}
	if c.Certificate != "" {
		el.Text = c.Certificate
	}
	return nil
}

// Certificates is the aconf:certificates element and document.
type Certificates struct {
	Certificates []*Certificate
}

// CertificatesDispatch is the dispatch table of aconf:certificates.
var CertificatesDispatch = binding.NewDispatch("aconf.Certificates", binding.Table{
	"certificate": DecodeCertificate,
})

// DecodeCertificates decodes an aconf:certificates element.
func DecodeCertificates(el *xmltree.Element) binding.Node {
	c := new(Certificates)
	c.ReadXML(el, CertificatesDispatch)
	return c
}

// ParseCertificates reads a certificates document. The root element
// must be aconf:certificates.
func ParseCertificates(r io.Reader) (*Certificates, error) {
	n, err := binding.DecodeDocument(r, name("certificates"), DecodeCertificates)
	if err != nil {
		return nil, err
	}
	return n.(*Certificates), nil
}

// ReadXML fills the list from el's children.
func (c *Certificates) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		if sub.Tag == name("certificate") {
			c.Certificates = append(c.Certificates, d.Resolve("certificate")(sub).(*Certificate))
		}
	}
}

// StandardTag returns aconf:certificates.
func (c *Certificates) StandardTag() xmltree.Name {
	return name("certificates")
}

// MediaType returns the media type of a certificates document.
func (c *Certificates) MediaType() string {
	return CertificatesMediaType
}

// Populate implements binding.Node.
func (c *Certificates) Populate(el *xmltree.Element) error {
	return c.PrepareXML(el)
}

// PrepareXML writes the list.
func (c *Certificates) PrepareXML(el *xmltree.Element) error {
	for _, cert := range c.Certificates {
		if _, err := binding.EncodeInto(cert, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}

// Service is an AtomPub service document extended with aconf:link
// children.
type Service struct {
	atompub.Service
	Links []*Link
}

// ServiceDispatch extends the AtomPub service table, substituting the
// aconf link decoder under the link name.
var ServiceDispatch = atompub.ServiceDispatch.Extend("aconf.Service", binding.Table{
	"link": DecodeLink,
})

// DecodeService decodes an extended app:service element.
func DecodeService(el *xmltree.Element) binding.Node {
	s := new(Service)
	s.ReadXML(el, ServiceDispatch)
	return s
}

// ParseService reads an extended service document. The root element
// must be app:service.
func ParseService(r io.Reader) (*Service, error) {
	n, err := binding.DecodeDocument(r,
		xmltree.QName(atompub.NS, "service"), DecodeService)
	if err != nil {
		return nil, err
	}
	return n.(*Service), nil
}

// ReadXML fills the service from el's children.
func (s *Service) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		if sub.Tag == name("link") {
			s.Links = append(s.Links, d.Resolve("link")(sub).(*Link))
		}
	}
	s.Service.ReadXML(el, d)
}

// Populate implements binding.Node: the inherited Validate first, then
// the field stages.
func (s *Service) Populate(el *xmltree.Element) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.PrepareXML(el)
}

// PrepareXML writes the service, workspaces first, links last.
func (s *Service) PrepareXML(el *xmltree.Element) error {
	if err := s.Service.PrepareXML(el); err != nil {
		return err
	}
	for _, l := range s.Links {
		if _, err := binding.EncodeInto(l, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}
