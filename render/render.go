package render

import (
	"encoding/json"
	"strings"
)

// Element is one node of a rendered tree.
type Element struct {
	// Kind is the resolved primitive kind.
	Kind Kind

	// Type is the original layout type string (set for containers and
	// for unknown types, where it names the unrecognized type in the
	// placeholder).
	Type string

	// Props are the post-remap properties.
	Props map[string]any

	// Children are the rendered children, in input order.
	Children []*Element

	// Text is the literal content of a text element.
	Text string

	// Raw is markup passed through verbatim (Card markup passthrough).
	// When set, Children and Text are empty.
	Raw string
}

// Render interprets a component tree. It is total over any node: text
// leaves become text elements, known types become containers with their
// children rendered in order, and unknown types become placeholder
// elements. Render never panics and has no side effects; identical
// input yields identical output.
func Render(node Node) *Element {
	kind := KindOf(node.Type)

	if kind == KindText {
		text, _ := node.Content.(string)
		return &Element{Kind: KindText, Text: text}
	}

	if kind == KindUnknown {
		return &Element{Kind: KindUnknown, Type: node.Type}
	}

	el := &Element{
		Kind:  kind,
		Type:  node.Type,
		Props: remapProps(kind, node.Props),
	}

	// Card markup passthrough: string content containing a markup
	// delimiter is emitted verbatim instead of rendering children.
	if kind == KindCard {
		if s, ok := node.Content.(string); ok && strings.Contains(s, "<") {
			el.Raw = s
			return el
		}
	}

	for _, child := range node.Children {
		el.Children = append(el.Children, Render(child))
	}

	// Structured (non-string) content rides along as a trailing text
	// child. String content on containers is not rendered.
	if node.Content != nil {
		if _, isString := node.Content.(string); !isString {
			if b, err := json.Marshal(node.Content); err == nil {
				el.Children = append(el.Children, &Element{Kind: KindText, Text: string(b)})
			}
		}
	}

	return el
}
