package binding

import (
	"io"
	"strings"
	"sync"

	"github.com/tsawler/atomtree/xmltree"
)

// DecodeDocument parses one document from r, checks that the root
// element has the expected qualified name, and decodes it with fn. A
// root tag mismatch is a *xmltree.ParseError.
func DecodeDocument(r io.Reader, want xmltree.Name, fn Func) (Node, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	if root.Tag != want {
		return nil, &xmltree.ParseError{
			Reason: "unexpected root element " + root.Tag.String() + ", want " + want.String(),
		}
	}
	return fn(root), nil
}

var (
	mediaMu    sync.Mutex
	mediaTypes = map[string]Func{}
)

// RegisterMediaType associates a media type with the decode function for
// documents of that type, so a protocol layer can pick a decoder from a
// Content-Type header. Vocabulary packages register their document types
// at init time.
func RegisterMediaType(mediaType string, fn Func) {
	mediaMu.Lock()
	defer mediaMu.Unlock()
	mediaTypes[mediaType] = fn
}

// LookupMediaType returns the decode function for a media type. The full
// type is tried first, then the type stripped of its parameters, so
// "application/atom+xml;type=entry" falls back to "application/atom+xml"
// when only the latter is registered.
func LookupMediaType(mediaType string) (Func, bool) {
	mediaMu.Lock()
	defer mediaMu.Unlock()
	if fn, ok := mediaTypes[mediaType]; ok {
		return fn, true
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		fn, ok := mediaTypes[strings.TrimSpace(mediaType[:i])]
		return fn, ok
	}
	return nil, false
}
