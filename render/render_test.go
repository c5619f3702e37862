package render_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/sirsluginston/sitekit/render"
)

func TestRender_TextLeaf(t *testing.T) {
	tests := []struct {
		name     string
		node     render.Node
		expected string
	}{
		{
			name:     "text type with content",
			node:     render.Node{Type: "text", Content: "hello"},
			expected: "hello",
		},
		{
			name:     "string type with content",
			node:     render.Node{Type: "string", Content: "hello"},
			expected: "hello",
		},
		{
			name:     "text type without content",
			node:     render.Node{Type: "text"},
			expected: "",
		},
		{
			name:     "text type with non-string content",
			node:     render.Node{Type: "text", Content: map[string]any{"x": 1}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := render.Render(tt.node)
			if el.Kind != render.KindText {
				t.Fatalf("expected KindText, got %v", el.Kind)
			}
			if el.Text != tt.expected {
				t.Errorf("expected text %q, got %q", tt.expected, el.Text)
			}
		})
	}
}

func TestRender_UnknownType(t *testing.T) {
	el := render.Render(render.Node{Type: "Bogus"})
	if el.Kind != render.KindUnknown {
		t.Fatalf("expected KindUnknown, got %v", el.Kind)
	}
	if el.Type != "Bogus" {
		t.Errorf("expected placeholder to carry type %q, got %q", "Bogus", el.Type)
	}
}

func TestRender_DeeplyNestedUnknownTypes(t *testing.T) {
	node := render.Node{Type: "Nope"}
	for i := 0; i < 50; i++ {
		node = render.Node{Type: "PageContainer", Children: []render.Node{node}}
	}

	el := render.Render(node)
	for i := 0; i < 50; i++ {
		if len(el.Children) != 1 {
			t.Fatalf("depth %d: expected one child, got %d", i, len(el.Children))
		}
		el = el.Children[0]
	}
	if el.Kind != render.KindUnknown {
		t.Errorf("expected innermost element to be a placeholder, got kind %v", el.Kind)
	}
}

func TestRender_CardWithTextChild(t *testing.T) {
	node := render.Node{
		Type: "Card",
		Children: []render.Node{
			{Type: "text", Content: "hi"},
		},
	}

	el := render.Render(node)
	if el.Kind != render.KindCard {
		t.Fatalf("expected KindCard, got %v", el.Kind)
	}
	if len(el.Children) != 1 || el.Children[0].Text != "hi" {
		t.Errorf("expected a single text child %q, got %+v", "hi", el.Children)
	}
}

func TestRender_ChildrenKeepOrder(t *testing.T) {
	node := render.Node{
		Type: "GridLayout",
		Children: []render.Node{
			{Type: "text", Content: "a"},
			{Type: "text", Content: "b"},
			{Type: "text", Content: "a"},
			{Type: "text", Content: "c"},
		},
	}

	el := render.Render(node)
	got := make([]string, len(el.Children))
	for i, child := range el.Children {
		got[i] = child.Text
	}
	want := []string{"a", "b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected children %v in order with no dedup, got %v", want, got)
	}
}

func TestRender_StatCardTitleRemap(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		label any
		title any
	}{
		{
			name:  "title becomes label",
			props: map[string]any{"title": "Users"},
			label: "Users",
			title: nil,
		},
		{
			name:  "existing label wins",
			props: map[string]any{"title": "Users", "label": "Members"},
			label: "Members",
			title: "Users",
		},
		{
			name:  "no title no remap",
			props: map[string]any{"value": "42"},
			label: nil,
			title: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := render.Render(render.Node{Type: "StatCard", Props: tt.props})
			if got := el.Props["label"]; got != tt.label {
				t.Errorf("expected label %v, got %v", tt.label, got)
			}
			if got := el.Props["title"]; got != tt.title {
				t.Errorf("expected title %v, got %v", tt.title, got)
			}
		})
	}
}

func TestRender_RemapDoesNotMutateInput(t *testing.T) {
	props := map[string]any{"title": "Users"}
	render.Render(render.Node{Type: "StatCard", Props: props})

	if _, ok := props["label"]; ok {
		t.Error("input props were mutated by remap")
	}
	if props["title"] != "Users" {
		t.Error("input title was removed by remap")
	}
}

func TestRender_OtherKindsDoNotRemapTitle(t *testing.T) {
	el := render.Render(render.Node{Type: "Header", Props: map[string]any{"title": "Welcome"}})
	if el.Props["title"] != "Welcome" {
		t.Errorf("expected Header to keep title prop, got %v", el.Props)
	}
}

func TestRender_CardMarkupPassthrough(t *testing.T) {
	node := render.Node{
		Type:    "Card",
		Content: "<p>raw</p>",
		Children: []render.Node{
			{Type: "text", Content: "ignored"},
		},
	}

	el := render.Render(node)
	if el.Raw != "<p>raw</p>" {
		t.Errorf("expected raw passthrough, got %q", el.Raw)
	}
	if len(el.Children) != 0 {
		t.Errorf("expected children suppressed under passthrough, got %d", len(el.Children))
	}
}

func TestRender_CardPlainStringContentIgnored(t *testing.T) {
	el := render.Render(render.Node{Type: "Card", Content: "no markup here"})
	if el.Raw != "" {
		t.Errorf("expected no passthrough without markup delimiter, got %q", el.Raw)
	}
	if len(el.Children) != 0 {
		t.Errorf("expected string content on a container to be dropped, got %d children", len(el.Children))
	}
}

func TestRender_StructuredContentAppended(t *testing.T) {
	node := render.Node{
		Type:    "Alert",
		Content: map[string]any{"severity": "info"},
		Children: []render.Node{
			{Type: "text", Content: "first"},
		},
	}

	el := render.Render(node)
	if len(el.Children) != 2 {
		t.Fatalf("expected structured content appended as trailing child, got %d children", len(el.Children))
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(el.Children[1].Text), &decoded); err != nil {
		t.Fatalf("trailing child is not JSON: %v", err)
	}
	if decoded["severity"] != "info" {
		t.Errorf("expected structured content to round-trip, got %v", decoded)
	}
}

func TestRender_Idempotent(t *testing.T) {
	node := render.Node{
		Type:  "PageContainer",
		Props: map[string]any{"class": "home"},
		Children: []render.Node{
			{Type: "Header", Props: map[string]any{"title": "Welcome"}},
			{Type: "StatCard", Props: map[string]any{"title": "Users", "value": "42"}},
			{Type: "Mystery"},
			{Type: "text", Content: "done"},
		},
	}

	first := render.Render(node)
	second := render.Render(node)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical input")
	}
	if render.HTML(first) != render.HTML(second) {
		t.Error("expected identical markup for identical input")
	}
}

func TestKindOf(t *testing.T) {
	known := []string{
		"PageContainer", "Header", "GridLayout", "Card", "Sidebar",
		"Button", "Input", "StatCard", "Badge", "Alert", "Toggle",
	}
	for _, typ := range known {
		if render.KindOf(typ) == render.KindUnknown {
			t.Errorf("expected %q to resolve to a kind", typ)
		}
	}
	if render.KindOf("pagecontainer") != render.KindUnknown {
		t.Error("expected kind resolution to be case-sensitive")
	}
	if render.KindOf("") != render.KindUnknown {
		t.Error("expected empty type to be unknown")
	}
}

func TestRender_JSONRoundTrip(t *testing.T) {
	raw := `{
		"type": "Card",
		"props": {"class": "intro"},
		"children": [
			{"type": "text", "content": "hi"},
			{"type": "Badge", "props": {"variant": "new"}}
		]
	}`

	var node render.Node
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		t.Fatalf("unmarshal layout: %v", err)
	}

	el := render.Render(node)
	if el.Kind != render.KindCard {
		t.Fatalf("expected KindCard, got %v", el.Kind)
	}
	if len(el.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(el.Children))
	}
	if el.Children[0].Text != "hi" {
		t.Errorf("expected first child text %q, got %q", "hi", el.Children[0].Text)
	}
	if el.Children[1].Kind != render.KindBadge {
		t.Errorf("expected second child to be a Badge, got %v", el.Children[1].Kind)
	}
}
