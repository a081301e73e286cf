package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Marshal serializes a tree as a UTF-8 document with an XML declaration.
// Every namespace used in the tree is declared once on the root element,
// using registered prefixes where available and generated ns0, ns1, ...
// prefixes otherwise.
func Marshal(root *Element) []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	newMarshaller(root).write(&b, root, true)
	return b.Bytes()
}

// MarshalElement serializes a single element (and its subtree) without an
// XML declaration. Namespace declarations go on the element itself.
func MarshalElement(el *Element) []byte {
	var b bytes.Buffer
	newMarshaller(el).write(&b, el, true)
	return b.Bytes()
}

type marshaller struct {
	prefixes map[string]string // namespace URI -> prefix
	declared []string          // URIs needing an xmlns declaration, in first-use order
	gen      int
}

func newMarshaller(root *Element) *marshaller {
	m := &marshaller{prefixes: map[string]string{XMLNamespace: "xml"}}
	m.collect(root)
	return m
}

func (m *marshaller) collect(el *Element) {
	m.add(el.Tag.Space)
	for _, a := range el.attrs {
		m.add(a.Name.Space)
	}
	for _, c := range el.children {
		m.collect(c)
	}
}

func (m *marshaller) add(space string) {
	if space == "" {
		return
	}
	if _, ok := m.prefixes[space]; ok {
		return
	}
	prefix, ok := prefixFor(space)
	if !ok {
		prefix = fmt.Sprintf("ns%d", m.gen)
		m.gen++
	}
	m.prefixes[space] = prefix
	m.declared = append(m.declared, space)
}

func (m *marshaller) qualify(n Name) string {
	if n.Space == "" {
		return n.Local
	}
	return m.prefixes[n.Space] + ":" + n.Local
}

func (m *marshaller) write(b *bytes.Buffer, el *Element, top bool) {
	tag := m.qualify(el.Tag)
	b.WriteByte('<')
	b.WriteString(tag)
	if top {
		for _, space := range m.declared {
			b.WriteString(` xmlns:` + m.prefixes[space] + `="`)
			escape(b, space)
			b.WriteByte('"')
		}
	}
	for _, a := range el.attrs {
		b.WriteByte(' ')
		b.WriteString(m.qualify(a.Name))
		b.WriteString(`="`)
		escape(b, a.Value)
		b.WriteByte('"')
	}
	if el.Text == "" && len(el.children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	escape(b, el.Text)
	for _, c := range el.children {
		m.write(b, c, false)
		escape(b, c.Tail)
	}
	b.WriteString("</" + tag + ">")
}

func escape(b *bytes.Buffer, s string) {
	// EscapeText only fails on a failing writer; a bytes.Buffer never does.
	xml.EscapeText(b, []byte(s))
}
