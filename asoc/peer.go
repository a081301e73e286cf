package asoc

import (
	"io"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/atompub"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Peer is the asoc:peer element: one node of the social graph, with its
// identity and the links and categories describing the relationship.
type Peer struct {
	atom.Common
	ID         string
	URI        string
	Name       string
	Categories []*atom.Category
	Links      atom.Links
}

// PeerDispatch is the dispatch table of asoc:peer.
var PeerDispatch = binding.NewDispatch("asoc.Peer", binding.Table{
	"category": atom.DecodeCategory,
	"link":     atom.DecodeLink,
})

// DecodePeer decodes an asoc:peer element.
func DecodePeer(el *xmltree.Element) binding.Node {
	p := new(Peer)
	p.ReadXML(el, PeerDispatch)
	return p
}

// ReadXML fills the peer from el's children.
func (p *Peer) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case atomName("id"):
			p.ID = xmltree.InnerText(sub)
		case name("uri"):
			p.URI = xmltree.InnerText(sub)
		case name("name"):
			p.Name = xmltree.InnerText(sub)
		case atomName("category"):
			p.Categories = append(p.Categories, d.Resolve("category")(sub).(*atom.Category))
		case atomName("link"):
			p.Links = append(p.Links, d.Resolve("link")(sub).(atom.LinkNode))
		}
	}
	p.Common.ReadXML(el, d)
}

// StandardTag returns asoc:peer.
func (p *Peer) StandardTag() xmltree.Name {
	return name("peer")
}

// Populate implements binding.Node.
func (p *Peer) Populate(el *xmltree.Element) error {
	return p.PrepareXML(el)
}

// PrepareXML writes the peer. Categories and links are encoded under
// their own standard tags.
func (p *Peer) PrepareXML(el *xmltree.Element) error {
	if err := p.Common.PrepareXML(el); err != nil {
		return err
	}
	if p.ID != "" {
		el.NewTextChild(atomName("id"), p.ID)
	}
	if p.URI != "" {
		el.NewTextChild(name("uri"), p.URI)
	}
	if p.Name != "" {
		el.NewTextChild(name("name"), p.Name)
	}
	for _, c := range p.Categories {
		if _, err := binding.EncodeInto(c, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	for _, l := range p.Links {
		if _, err := binding.EncodeInto(l, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}

// Peers is the asoc:peers element and document: the peer list of an
// account.
type Peers struct {
	atom.Common
	Peers []*Peer
}

// PeersDispatch is the dispatch table of asoc:peers.
var PeersDispatch = binding.NewDispatch("asoc.Peers", binding.Table{
	"peer": DecodePeer,
})

// DecodePeers decodes an asoc:peers element.
func DecodePeers(el *xmltree.Element) binding.Node {
	p := new(Peers)
	p.ReadXML(el, PeersDispatch)
	return p
}

// ParsePeers reads a peers document. The root element must be
// asoc:peers.
func ParsePeers(r io.Reader) (*Peers, error) {
	n, err := binding.DecodeDocument(r, name("peers"), DecodePeers)
	if err != nil {
		return nil, err
	}
	return n.(*Peers), nil
}

// ReadXML fills the list from el's children.
func (p *Peers) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		if sub.Tag == name("peer") {
			p.Peers = append(p.Peers, d.Resolve("peer")(sub).(*Peer))
		}
	}
	p.Common.ReadXML(el, d)
}

// StandardTag returns asoc:peers.
func (p *Peers) StandardTag() xmltree.Name {
	return name("peers")
}

// MediaType returns the media type of a peers document.
func (p *Peers) MediaType() string {
	return MediaType
}

// Populate implements binding.Node.
func (p *Peers) Populate(el *xmltree.Element) error {
	return p.PrepareXML(el)
}

// PrepareXML writes the list.
func (p *Peers) PrepareXML(el *xmltree.Element) error {
	if err := p.Common.PrepareXML(el); err != nil {
		return err
	}
	for _, peer := range p.Peers {
		if _, err := binding.EncodeInto(peer, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}

// Certificate is the asoc:certificate element: a named certificate,
// inline in the element text or referenced by href.
type Certificate struct {
	atom.Common
	Href        string
	Name        string
	Certificate string
}

// DecodeCertificate decodes an asoc:certificate element.
func DecodeCertificate(el *xmltree.Element) binding.Node {
	c := new(Certificate)
	c.ReadXML(el, nil)
	return c
}

// ReadXML fills the certificate.
func (c *Certificate) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	c.Href = el.Attr(xmltree.Local("href"))
	c.Name = el.Attr(xmltree.Local("name"))
	c.Certificate = xmltree.InnerText(el)
	c.Common.ReadXML(el, d)
}

// StandardTag returns asoc:certificate.
func (c *Certificate) StandardTag() xmltree.Name {
	return name("certificate")
}

// Populate implements binding.Node.
func (c *Certificate) Populate(el *xmltree.Element) error {
	return c.PrepareXML(el)
}

// PrepareXML writes the certificate.
func (c *Certificate) PrepareXML(el *xmltree.Element) error {
	if err := c.Common.PrepareXML(el); err != nil {
		return err
	}
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

// Certificates is the asoc:certificates element and document.
type Certificates struct {
	atom.Common
	Certificates []*Certificate
}

// CertificatesDispatch is the dispatch table of asoc:certificates.
var CertificatesDispatch = binding.NewDispatch("asoc.Certificates", binding.Table{
	"certificate": DecodeCertificate,
})

// DecodeCertificates decodes an asoc:certificates element.
func DecodeCertificates(el *xmltree.Element) binding.Node {
	c := new(Certificates)
	c.ReadXML(el, CertificatesDispatch)
	return c
}

// ParseCertificates reads a certificates document. The root element
// must be asoc:certificates.
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
	c.Common.ReadXML(el, d)
}

// StandardTag returns asoc:certificates.
func (c *Certificates) StandardTag() xmltree.Name {
	return name("certificates")
}

// MediaType returns the media type of a certificates document.
func (c *Certificates) MediaType() string {
	return MediaType
}

// Populate implements binding.Node.
func (c *Certificates) Populate(el *xmltree.Element) error {
	return c.PrepareXML(el)
}

// PrepareXML writes the list.
func (c *Certificates) PrepareXML(el *xmltree.Element) error {
	if err := c.Common.PrepareXML(el); err != nil {
		return err
	}
	for _, cert := range c.Certificates {
		if _, err := binding.EncodeInto(cert, el, xmltree.Name{}); err != nil {
			return err
		}
	}
	return nil
}

// Service is an AtomPub service document extended with the atom:link
// children pointing at the account's social-graph documents.
type Service struct {
	atompub.Service
	Links atom.Links
}

// ServiceDispatch extends the AtomPub service table with the link child.
var ServiceDispatch = atompub.ServiceDispatch.Extend("asoc.Service", binding.Table{
	"link": atom.DecodeLink,
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
		if sub.Tag == atomName("link") {
			s.Links = append(s.Links, d.Resolve("link")(sub).(atom.LinkNode))
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

// PrepareXML writes the service, workspaces first, links last under
// their standard tag.
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
