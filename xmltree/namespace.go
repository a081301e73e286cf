package xmltree

import "sync"

// XMLNamespace is the namespace of the built-in xml: prefix (xml:base,
// xml:lang and friends). It is never declared in output documents.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

var (
	nsMu        sync.Mutex
	prefixByURI = map[string]string{}
	uriByPrefix = map[string]string{}
)

// DefineNamespace registers the preferred prefix for a namespace URI and
// returns the URI, so a package can register and capture its namespace in
// one declaration. Registration is process-wide; re-registering the same
// prefix for the same URI is a no-op, and the latest registration wins on
// conflict.
func DefineNamespace(prefix, uri string) string {
	nsMu.Lock()
	defer nsMu.Unlock()
	if old, ok := uriByPrefix[prefix]; ok && old != uri {
		delete(prefixByURI, old)
	}
	uriByPrefix[prefix] = uri
	prefixByURI[uri] = prefix
	return uri
}

// prefixFor returns the registered prefix for a namespace URI.
func prefixFor(uri string) (string, bool) {
	nsMu.Lock()
	defer nsMu.Unlock()
	p, ok := prefixByURI[uri]
	return p, ok
}
