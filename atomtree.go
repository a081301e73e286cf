// Package atomtree reads and writes Atom and AtomPub documents, plus a
// small set of extension vocabularies built on them.
//
// Basic usage:
//
//	feed, err := atomtree.ParseFeedFile("feed.xml")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(feed.Title.Body, feed.Links.Get("self"))
//
// Documents are decoded generously: missing or malformed pieces become
// empty fields and never fail the parse. Encoding is strict the other
// way around; a document missing a required field does not serialize:
//
//	data, err := atomtree.EncodeDocument(feed)
//
// The vocabulary packages (atom, atompub, ames, asoc, aconf, thr) hold
// the document types themselves; the binding and xmltree packages
// underneath are available for building further vocabularies.
package atomtree

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/atomtree/atom"
	"github.com/tsawler/atomtree/atompub"
	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// ErrUnknownMediaType is returned by Decode for a media type no
// vocabulary package has registered.
var ErrUnknownMediaType = errors.New("atomtree: unknown media type")

// ParseFeed reads an Atom feed document.
func ParseFeed(r io.Reader) (*atom.Feed, error) {
	return atom.ParseFeed(r)
}

// ParseFeedFile reads an Atom feed document from a file.
func ParseFeedFile(filename string) (*atom.Feed, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return atom.ParseFeed(f)
}

// ParseEntry reads an Atom entry document.
func ParseEntry(r io.Reader) (*atom.Entry, error) {
	return atom.ParseEntry(r)
}

// ParseEntryFile reads an Atom entry document from a file.
func ParseEntryFile(filename string) (*atom.Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return atom.ParseEntry(f)
}

// ParseService reads an AtomPub service document.
func ParseService(r io.Reader) (*atompub.Service, error) {
	return atompub.ParseService(r)
}

// Decode parses one document of the given media type, using the decoder
// the owning vocabulary package registered. The root element is not
// checked beyond what the decoder tolerates.
func Decode(mediaType string, r io.Reader) (binding.Node, error) {
	fn, ok := binding.LookupMediaType(mediaType)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMediaType, mediaType)
	}
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return fn(root), nil
}

// EncodeDocument serializes a node as a complete document under its
// standard tag.
func EncodeDocument(n binding.Node) ([]byte, error) {
	el, err := binding.EncodeRoot(n, xmltree.Name{})
	if err != nil {
		return nil, err
	}
	return xmltree.Marshal(el), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	feed := atomtree.Must(atomtree.ParseFeedFile("feed.xml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
