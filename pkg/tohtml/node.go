package tohtml

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is content produced while rendering a block. Callbacks receive
// the content built so far and return a replacement.
type Node interface {
	nodes() []*html.Node
}

type textNode string

// Text is escaped on output. Newlines become <br> elements.
func Text(s string) Node {
	return textNode(s)
}

func (t textNode) nodes() []*html.Node {
	var result []*html.Node
	lines := strings.Split(string(t), "\n")
	for i, line := range lines {
		if line != "" {
			result = append(result, &html.Node{Type: html.TextNode, Data: line})
		}
		if i < len(lines)-1 {
			result = append(result, newElement("br", nil))
		}
	}
	return result
}

type elementNode struct {
	tag     string
	attrs   []html.Attribute
	content Node
}

// Element wraps content, which may be nil, in a tag.
func Element(tag string, attrs []html.Attribute, content Node) Node {
	return &elementNode{tag: tag, attrs: attrs, content: content}
}

func (e *elementNode) nodes() []*html.Node {
	n := newElement(e.tag, e.attrs)
	if e.content != nil {
		for _, c := range e.content.nodes() {
			n.AppendChild(c)
		}
	}
	return []*html.Node{n}
}

type rawNode struct {
	node *html.Node
}

// Raw inserts a pre-built node as it is. It is the only way to emit
// markup that was not escaped by the renderer.
func Raw(n *html.Node) Node {
	return rawNode{node: n}
}

func (r rawNode) nodes() []*html.Node {
	if r.node == nil {
		return nil
	}
	if r.node.Parent != nil {
		r.node.Parent.RemoveChild(r.node)
	}
	return []*html.Node{r.node}
}

// Attr is a shorthand for building element attributes.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func newElement(tag string, attrs []html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		n.Attr = append([]html.Attribute(nil), attrs...)
	}
	return n
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
