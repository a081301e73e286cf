package atompub

import (
	"io"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Collection is the app:collection element (RFC 5023 section 8.3.3).
// Href and Title are required at encode time.
type Collection struct {
	atom.Common
	Href       string
	Title      *atom.Text
	Accept     []*Accept
	Categories []*Categories
}

// CollectionDispatch is the dispatch table of app:collection.
var CollectionDispatch = binding.NewDispatch("app.Collection", binding.Table{
	"title":      atom.DecodeText,
	"accept":     DecodeAccept,
	"categories": DecodeCategories,
})

// DecodeCollection decodes an app:collection element.
func DecodeCollection(el *xmltree.Element) binding.Node {
	c := new(Collection)
	c.ReadXML(el, CollectionDispatch)
	return c
}

// ReadXML fills the collection.
func (c *Collection) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	c.Href = el.Attr(xmltree.Local("href"))
	for _, sub := range el.Children() {
		switch sub.Tag {
		case atomName("title"):
			c.Title = d.Resolve("title")(sub).(*atom.Text)
		case name("accept"):
			c.Accept = append(c.Accept, d.Resolve("accept")(sub).(*Accept))
		case name("categories"):
			c.Categories = append(c.Categories, d.Resolve("categories")(sub).(*Categories))
		}
	}
	c.Common.ReadXML(el, d)
}

// StandardTag returns app:collection.
func (c *Collection) StandardTag() xmltree.Name {
	return name("collection")
}

// Validate checks the fields RFC 5023 requires of a collection.
func (c *Collection) Validate() error {
	if c.Href == "" {
		return &binding.IncompleteObjectError{Type: "app:collection", Field: "href"}
	}
	if c.Title == nil {
		return &binding.IncompleteObjectError{Type: "app:collection", Field: "title"}
	}
	return nil
}

// Populate implements binding.Node: Validate first, then the field
// stages.
func (c *Collection) Populate(el *xmltree.Element) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.PrepareXML(el)
}

// PrepareXML writes the collection.
func (c *Collection) PrepareXML(el *xmltree.Element) error {
	if err := c.Common.PrepareXML(el); err != nil {
		return err
	}
	el.SetAttr(xmltree.Local("href"), c.Href)
	if c.Title != nil {
		if _, err := binding.EncodeInto(c.Title, el, atomName("title")); err != nil {
			return err
		}
	}
	for _, a := range c.Accept {
		if _, err := binding.EncodeInto(a, el, name("accept")); err != nil {
			return err
		}
	}
	for _, cats := range c.Categories {
		if _, err := binding.EncodeInto(cats, el, name("categories")); err != nil {
			return err
		}
	}
	return nil
}

// Workspace is the app:workspace element (RFC 5023 section 8.3.2).
// Title is required at encode time.
type Workspace struct {
	atom.Common
	Title       *atom.Text
	Collections []*Collection
}

// WorkspaceDispatch is the dispatch table of app:workspace.
var WorkspaceDispatch = binding.NewDispatch("app.Workspace", binding.Table{
	"title":      atom.DecodeText,
	"collection": DecodeCollection,
})

// DecodeWorkspace decodes an app:workspace element.
func DecodeWorkspace(el *xmltree.Element) binding.Node {
	w := new(Workspace)
	w.ReadXML(el, WorkspaceDispatch)
	return w
}

// ReadXML fills the workspace.
func (w *Workspace) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		switch sub.Tag {
		case atomName("title"):
			w.Title = d.Resolve("title")(sub).(*atom.Text)
		case name("collection"):
			w.Collections = append(w.Collections, d.Resolve("collection")(sub).(*Collection))
		}
	}
	w.Common.ReadXML(el, d)
}

// StandardTag returns app:workspace.
func (w *Workspace) StandardTag() xmltree.Name {
	return name("workspace")
}

// Validate checks the fields RFC 5023 requires of a workspace.
func (w *Workspace) Validate() error {
	if w.Title == nil {
		return &binding.IncompleteObjectError{Type: "app:workspace", Field: "title"}
	}
	return nil
}

// Populate implements binding.Node: Validate first, then the field
// stages.
func (w *Workspace) Populate(el *xmltree.Element) error {
	if err := w.Validate(); err != nil {
		return err
	}
	return w.PrepareXML(el)
}

// PrepareXML writes the workspace.
func (w *Workspace) PrepareXML(el *xmltree.Element) error {
	if err := w.Common.PrepareXML(el); err != nil {
		return err
	}
	if w.Title != nil {
		if _, err := binding.EncodeInto(w.Title, el, atomName("title")); err != nil {
			return err
		}
	}
	for _, c := range w.Collections {
		if _, err := binding.EncodeInto(c, el, name("collection")); err != nil {
			return err
		}
	}
	return nil
}

// Service is the app:service element and service document (RFC 5023
// section 8.3.1). At least one workspace is required at encode time.
type Service struct {
	atom.Common
	Workspaces []*Workspace
}

// ServiceDispatch is the dispatch table of app:service.
var ServiceDispatch = binding.NewDispatch("app.Service", binding.Table{
	"workspace": DecodeWorkspace,
})

// DecodeService decodes an app:service element.
func DecodeService(el *xmltree.Element) binding.Node {
	s := new(Service)
	s.ReadXML(el, ServiceDispatch)
	return s
}

// ParseService reads a service document. The root element must be
// app:service.
func ParseService(r io.Reader) (*Service, error) {
	n, err := binding.DecodeDocument(r, name("service"), DecodeService)
	if err != nil {
		return nil, err
	}
	return n.(*Service), nil
}

// ReadXML fills the service from el's children.
func (s *Service) ReadXML(el *xmltree.Element, d *binding.Dispatch) {
	for _, sub := range el.Children() {
		if sub.Tag == name("workspace") {
			s.Workspaces = append(s.Workspaces, d.Resolve("workspace")(sub).(*Workspace))
		}
	}
	s.Common.ReadXML(el, d)
}

// StandardTag returns app:service.
func (s *Service) StandardTag() xmltree.Name {
	return name("service")
}

// MediaType returns the media type of a service document.
func (s *Service) MediaType() string {
	return ServiceMediaType
}

// Validate checks that the service has at least one workspace.
func (s *Service) Validate() error {
	if len(s.Workspaces) == 0 {
		return &binding.IncompleteObjectError{Type: "app:service", Field: "workspaces"}
	}
	return nil
}

// Populate implements binding.Node: Validate first, then the field
// stages.
func (s *Service) Populate(el *xmltree.Element) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.PrepareXML(el)
}

// PrepareXML writes the service.
func (s *Service) PrepareXML(el *xmltree.Element) error {
	if err := s.Common.PrepareXML(el); err != nil {
		return err
	}
	for _, w := range s.Workspaces {
		if _, err := binding.EncodeInto(w, el, name("workspace")); err != nil {
			return err
		}
	}
	return nil
}
