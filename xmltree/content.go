package xmltree

import "strings"

// Flatten returns the element's content as a single string: the direct
// text followed by the serialized form of every child element and the
// text trailing it, in document order.
func Flatten(el *Element) string {
	if len(el.children) == 0 {
		return el.Text
	}
	var b strings.Builder
	b.WriteString(el.Text)
	for _, c := range el.children {
		b.Write(MarshalElement(c))
		b.WriteString(c.Tail)
	}
	return b.String()
}

// InnerText returns only the element's leading text, ignoring children.
func InnerText(el *Element) string {
	return el.Text
}

// Wrap returns the element's content wrapped in a tag element. If the
// content already is a single tag element, that child is returned
// directly; otherwise a new wrapper is synthesized around the text and
// children.
func Wrap(el *Element, tag Name) *Element {
	if len(el.children) == 1 && el.children[0].Tag == tag {
		return el.children[0]
	}
	res := NewRoot(tag)
	res.Text = el.Text
	for _, c := range el.children {
		res.Append(c)
	}
	return res
}
