package xmltree

// TextKey is the reserved key under which element text is stored when the
// element also carries children or attributes.
const TextKey = "text"

// Flatten converts a node and its subtree into a generic nested structure.
//
// The value domain is:
//   - nil for a node with no children, attributes, or text
//   - string for a node that collapses to its text content
//   - map[string]any otherwise, with child values stored under their tag
//     name, or under an []any sequence when a tag name recurs among siblings
//
// Attributes merge into the mapping under their own names; attribute values
// stay strings. Non-empty text is stored under TextKey only when the node
// also has children or attributes, otherwise the whole node collapses to the
// text scalar. Flatten never fails; malformed shapes flatten structurally.
func Flatten(n *Node) any {
	var out map[string]any

	if len(n.Children) > 0 {
		grouped := make(map[string][]any)
		var order []string
		for _, c := range n.Children {
			if _, seen := grouped[c.Tag]; !seen {
				order = append(order, c.Tag)
			}
			grouped[c.Tag] = append(grouped[c.Tag], Flatten(c))
		}

		out = make(map[string]any, len(order))
		for _, tag := range order {
			values := grouped[tag]
			if len(values) == 1 {
				out[tag] = values[0]
			} else {
				out[tag] = values
			}
		}
	}

	if len(n.Attributes) > 0 {
		if out == nil {
			out = make(map[string]any, len(n.Attributes))
		}
		for k, v := range n.Attributes {
			out[k] = v
		}
	}

	if n.Text != "" {
		if out == nil {
			return n.Text
		}
		out[TextKey] = n.Text
	}

	if out == nil {
		return nil
	}
	return out
}
