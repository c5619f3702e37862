// Package render interprets component trees stored on page records,
// producing an element tree that can be serialized to HTML.
package render

// Node is one node of a page's content layout. A node is either a text
// leaf (type "text" or "string", carrying Content) or a container whose
// Type names one of the fixed UI primitives.
type Node struct {
	// Type selects the UI primitive, or "text"/"string" for a leaf.
	Type string `json:"type" dynamodbav:"type"`

	// Props are the primitive's properties, if any.
	Props map[string]any `json:"props,omitempty" dynamodbav:"props,omitempty"`

	// Children are rendered in the order given.
	Children []Node `json:"children,omitempty" dynamodbav:"children,omitempty"`

	// Content is the literal content of a text leaf. Containers may
	// carry structured (non-string) content, appended as a trailing
	// child. String content on containers is ignored, except for the
	// Card markup passthrough.
	Content any `json:"content,omitempty" dynamodbav:"content,omitempty"`
}
