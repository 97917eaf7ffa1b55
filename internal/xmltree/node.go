// Package xmltree parses XML documents into a generic node tree and
// flattens that tree into nested maps, lists, and scalars. It knows nothing
// about itinerary semantics.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

// Node is one element of a parsed document: a tag name, an ordered sequence
// of children, an unordered attribute mapping, and optional trimmed text.
// The tree is read-only once built.
type Node struct {
	// Tag is the element's local name
	Tag string

	// Attributes maps attribute name to its raw string value; nil when the
	// element carries no attributes
	Attributes map[string]string

	// Children holds the child elements in document order
	Children []*Node

	// Text is the trimmed character data preceding the first child element.
	// Text between or after children (tail text) is not part of the model.
	Text string
}

// Parse reads an entire XML document into a Node tree.
// Any decoding failure wraps domain.ErrMalformedDocument.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attributes = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attributes[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", domain.ErrMalformedDocument)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.CharData:
			// Only the leading text of an element is kept, matching the
			// element-text model the flattener consumes.
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				if len(cur.Children) == 0 {
					cur.Text += string(t)
				}
			}

		case xml.EndElement:
			cur := stack[len(stack)-1]
			cur.Text = strings.TrimSpace(cur.Text)
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", domain.ErrMalformedDocument)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unexpected end of document", domain.ErrMalformedDocument)
	}
	return root, nil
}

// Walk visits every node of the subtree rooted at n in depth-first document
// order. Traversal stops early when visit returns false.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}

// ChildTags returns the tag names of the node's immediate children in
// document order, duplicates included.
func (n *Node) ChildTags() []string {
	tags := make([]string, len(n.Children))
	for i, c := range n.Children {
		tags[i] = c.Tag
	}
	return tags
}
