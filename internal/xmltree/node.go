// Package xmltree provides a generic labeled-tree view of an XML
// document with namespace-aware child and attribute lookup. It knows
// nothing about the metadata schema; parsers consume it as a black box.
package xmltree

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Attr is one attribute of a node. Space holds the resolved namespace
// URI, or "xmlns" for namespace declarations.
type Attr struct {
	Space string
	Local string
	Value string
}

// Node is one element of the labeled tree.
type Node struct {
	Space    string
	Local    string
	Attrs    []Attr
	Children []*Node
	text     strings.Builder
}

// Decode reads an XML document and returns its root node.
func Decode(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	var root *Node
	var stack []*Node
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("malformed XML document").
				WithCause(err)
		}
		switch tok := token.(type) {
		case xml.StartElement:
			node := &Node{Space: tok.Name.Space, Local: tok.Name.Local}
			for _, attr := range tok.Attr {
				node.Attrs = append(node.Attrs, Attr{
					Space: attr.Name.Space,
					Local: attr.Name.Local,
					Value: attr.Value,
				})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errbuilder.New().
						WithCode(errbuilder.CodeInvalidArgument).
						WithMsg("multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(tok)
			}
		}
	}
	if root == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document has no root element")
	}
	return root, nil
}

// Text returns the trimmed character data directly under the node.
func (n *Node) Text() string {
	return strings.TrimSpace(n.text.String())
}

// SetText replaces the node's character data. Intended for building
// trees in tests.
func (n *Node) SetText(value string) {
	n.text.Reset()
	n.text.WriteString(value)
}

// Child returns the first child element with the given local name,
// regardless of namespace, or nil.
func (n *Node) Child(local string) *Node {
	for _, child := range n.Children {
		if child.Local == local {
			return child
		}
	}
	return nil
}

// ChildList returns all child elements with the given local name.
func (n *Node) ChildList(local string) []*Node {
	var out []*Node
	for _, child := range n.Children {
		if child.Local == local {
			out = append(out, child)
		}
	}
	return out
}

// ChildText returns the trimmed text of the named child, or "" when the
// child is absent.
func (n *Node) ChildText(local string) string {
	child := n.Child(local)
	if child == nil {
		return ""
	}
	return child.Text()
}

// Attr looks up an attribute by local name regardless of namespace.
func (n *Node) Attr(local string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Local == local && attr.Space != "xmlns" {
			return attr.Value, true
		}
	}
	return "", false
}

// AttrNS looks up an attribute qualified by the given namespace URI.
func (n *Node) AttrNS(space, local string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Space == space && attr.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// DeclaresNamespace reports whether the node's own namespace is the given
// URI or the node carries an xmlns declaration binding it.
func (n *Node) DeclaresNamespace(uri string) bool {
	if n.Space == uri {
		return true
	}
	for _, attr := range n.Attrs {
		if attr.Space == "xmlns" && attr.Value == uri {
			return true
		}
		if attr.Space == "" && attr.Local == "xmlns" && attr.Value == uri {
			return true
		}
	}
	return false
}
