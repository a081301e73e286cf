// Package xmltree provides a small namespace-aware XML element tree.
//
// Elements carry a qualified tag name, an ordered attribute list, an
// ordered child list, and text content. Mixed content survives a
// parse/marshal round trip: text before the first child lives in
// Element.Text, text following a child lives in that child's Tail.
//
// Namespace prefixes are presentation only. Two names are equal exactly
// when their namespace URI and local part are equal; the prefix an input
// document happened to use is discarded during parsing and chosen again
// from the process-wide prefix registry during marshalling.
package xmltree

// Name is a namespace-qualified XML name. The zero Name is the empty
// name; names are comparable and usable as map keys.
type Name struct {
	Space string // namespace URI, "" for no namespace
	Local string
}

// QName builds a qualified name from a namespace URI and a local part.
func QName(space, local string) Name {
	return Name{Space: space, Local: local}
}

// Local builds a name with no namespace.
func Local(local string) Name {
	return Name{Local: local}
}

// String renders the name in Clark notation, e.g. "{uri}local".
func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// IsZero reports whether the name is empty.
func (n Name) IsZero() bool {
	return n.Space == "" && n.Local == ""
}

// Attr is a single attribute with a qualified name.
type Attr struct {
	Name  Name
	Value string
}

// Element is one node of the tree. An element is owned by exactly one
// parent; the root is owned by the caller.
type Element struct {
	Tag  Name
	Text string // text before the first child element
	Tail string // text after this element's end tag, within the parent

	attrs    []Attr
	children []*Element
}

// NewRoot creates a detached element suitable as a document root.
func NewRoot(tag Name) *Element {
	return &Element{Tag: tag}
}

// NewChild appends and returns a new child element with the given tag.
func (e *Element) NewChild(tag Name) *Element {
	child := &Element{Tag: tag}
	e.children = append(e.children, child)
	return child
}

// NewTextChild appends a new child element containing only text.
func (e *Element) NewTextChild(tag Name, text string) *Element {
	child := e.NewChild(tag)
	child.Text = text
	return child
}

// Append adds child as the last child of e.
func (e *Element) Append(child *Element) {
	e.children = append(e.children, child)
}

// Children returns the ordered child list. The returned slice is the
// element's own; callers must not reorder it.
func (e *Element) Children() []*Element {
	return e.children
}

// Len returns the number of child elements.
func (e *Element) Len() int {
	return len(e.children)
}

// Find returns the first child with the given tag, or nil.
func (e *Element) Find(tag Name) *Element {
	for _, c := range e.children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name Name) string {
	v, _ := e.Lookup(name)
	return v
}

// Lookup returns the value of the named attribute and whether it is set.
func (e *Element) Lookup(name Name) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value and
// otherwise appending to the ordered attribute list.
func (e *Element) SetAttr(name Name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Attrs returns the ordered attribute list.
func (e *Element) Attrs() []Attr {
	return e.attrs
}
