package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ParseError reports a malformed document or a root element that does
// not match what the caller expected. No partial tree is returned
// alongside a ParseError.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xmltree: %s: %v", e.Reason, e.Err)
	}
	return "xmltree: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads one XML document and returns its root element.
//
// Documents declaring a non-UTF-8 encoding are transcoded using the IANA
// charset tables before tokenizing.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Reason: "malformed document", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: Name{Space: t.Name.Space, Local: t.Name.Local}}
			for _, a := range t.Attr {
				// Namespace declarations are presentation, not data.
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.attrs = append(el.attrs, Attr{
					Name:  Name{Space: a.Name.Space, Local: a.Name.Local},
					Value: a.Value,
				})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Reason: "multiple root elements"}
				}
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			if n := len(cur.children); n > 0 {
				cur.children[n-1].Tail += string(t)
			} else {
				cur.Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, &ParseError{Reason: "no root element"}
	}
	return root, nil
}

// ParseBytes parses an in-memory document.
func ParseBytes(data []byte) (*Element, error) {
	return Parse(bytes.NewReader(data))
}

// charsetReader decodes documents in any encoding the IANA index knows.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
