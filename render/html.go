package render

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"strconv"
	"strings"
)

// tags maps each kind to its HTML tag and base class.
var tags = map[Kind]struct {
	Tag   string
	Class string
}{
	KindPageContainer: {"main", "page-container"},
	KindHeader:        {"header", "page-header"},
	KindGridLayout:    {"section", "grid-layout"},
	KindCard:          {"article", "card"},
	KindSidebar:       {"aside", "sidebar"},
	KindButton:        {"button", "button"},
	KindInput:         {"input", "input"},
	KindStatCard:      {"div", "stat-card"},
	KindBadge:         {"span", "badge"},
	KindAlert:         {"div", "alert"},
	KindToggle:        {"label", "toggle"},
}

// attrAllowlist holds prop names emitted as plain HTML attributes.
// Every other scalar prop is emitted with a data- prefix so arbitrary
// layout props survive the trip without colliding with HTML semantics.
var attrAllowlist = map[string]bool{
	"id":          true,
	"class":       true,
	"href":        true,
	"src":         true,
	"alt":         true,
	"value":       true,
	"placeholder": true,
	"name":        true,
	"type":        true,
}

// HTML renders an element tree to markup.
func HTML(el *Element) string {
	var b strings.Builder
	WriteHTML(&b, el)
	return b.String()
}

// WriteHTML writes an element tree as markup. Text is escaped, props
// become escaped attributes, and raw passthrough content is written
// verbatim. Unknown elements render as a visible diagnostic block.
func WriteHTML(w io.Writer, el *Element) {
	if el == nil {
		return
	}

	switch el.Kind {
	case KindText:
		io.WriteString(w, template.HTMLEscapeString(el.Text))
		return
	case KindUnknown:
		fmt.Fprintf(w, `<div class="render-error">Unknown component: %s</div>`,
			template.HTMLEscapeString(el.Type))
		return
	}

	t, ok := tags[el.Kind]
	if !ok {
		// Closed kind set; nothing else reaches here.
		return
	}

	io.WriteString(w, "<"+t.Tag)
	writeAttrs(w, t.Class, el.Props)

	if el.Kind == KindInput {
		io.WriteString(w, "/>")
		return
	}
	io.WriteString(w, ">")

	if el.Raw != "" {
		io.WriteString(w, el.Raw)
	} else {
		for _, child := range el.Children {
			WriteHTML(w, child)
		}
	}

	io.WriteString(w, "</"+t.Tag+">")
}

// writeAttrs writes the class attribute followed by scalar props in
// sorted order, so output is deterministic for identical input.
func writeAttrs(w io.Writer, baseClass string, props map[string]any) {
	class := baseClass
	if extra, ok := props["class"].(string); ok && extra != "" {
		class += " " + extra
	}
	fmt.Fprintf(w, ` class="%s"`, template.HTMLEscapeString(class))

	names := make([]string, 0, len(props))
	for name := range props {
		if name == "class" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, ok := scalarString(props[name])
		if !ok {
			continue
		}
		attr := attrName(name)
		if attr == "" {
			continue
		}
		if !attrAllowlist[name] && !strings.HasPrefix(attr, "data-") {
			attr = "data-" + attr
		}
		fmt.Fprintf(w, ` %s="%s"`, attr, template.HTMLEscapeString(value))
	}
}

// scalarString stringifies scalar prop values. Maps, slices, and nil
// are skipped; they are layout structure, not attributes.
func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	default:
		return "", false
	}
}

// attrName lowercases a prop name and drops characters that are not
// valid in an attribute name.
func attrName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
