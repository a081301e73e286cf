// Package binding is the engine that moves typed document nodes in and
// out of xmltree elements.
//
// Decoding is generous: a decode function never fails on missing or
// unexpected data, it leaves the corresponding fields empty. Validation
// happens separately, at encode time, where a missing required field
// aborts with an *IncompleteObjectError.
//
// Vocabulary packages compose node types by embedding. Each level of a
// composed type contributes a ReadXML stage (run most-derived first,
// sharing one Dispatch so a derived type can substitute the decoder for
// a named child) and a PrepareXML stage (run least-derived first, so
// inherited fields are written before the type's own).
package binding

import (
	"fmt"

	"github.com/tsawler/atomtree/xmltree"
)

// Node is the contract every bindable document node implements.
//
// StandardTag is the element name used when no explicit tag is supplied
// at encode time; node types that are only ever encoded under a
// caller-supplied tag return the zero Name.
type Node interface {
	StandardTag() xmltree.Name
	Populate(el *xmltree.Element) error
}

// Func decodes an element into a node. Decode functions do not fail:
// malformed or missing data degrades to empty fields.
type Func func(el *xmltree.Element) Node

// EncodeInto creates a new child of parent, fills it from n, and returns
// it. A zero tag means the node's standard tag. The child stays attached
// even when Populate fails; output above the failing node is not rolled
// back.
func EncodeInto(n Node, parent *xmltree.Element, tag xmltree.Name) (*xmltree.Element, error) {
	tag, err := pickTag(n, tag)
	if err != nil {
		return nil, err
	}
	el := parent.NewChild(tag)
	return el, n.Populate(el)
}

// EncodeRoot fills a new parentless element from n, for use as a
// document root.
func EncodeRoot(n Node, tag xmltree.Name) (*xmltree.Element, error) {
	tag, err := pickTag(n, tag)
	if err != nil {
		return nil, err
	}
	el := xmltree.NewRoot(tag)
	return el, n.Populate(el)
}

func pickTag(n Node, tag xmltree.Name) (xmltree.Name, error) {
	if !tag.IsZero() {
		return tag, nil
	}
	tag = n.StandardTag()
	if tag.IsZero() {
		return tag, fmt.Errorf("binding: %T has no standard tag", n)
	}
	return tag, nil
}
