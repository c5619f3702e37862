package render

// Kind identifies a UI primitive. The set is closed: type strings that
// resolve to no kind map to KindUnknown, which renders as a visible
// placeholder rather than failing the tree.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindPageContainer
	KindHeader
	KindGridLayout
	KindCard
	KindSidebar
	KindButton
	KindInput
	KindStatCard
	KindBadge
	KindAlert
	KindToggle
)

// kinds maps layout type strings to their Kind. "text" and "string"
// are both accepted for text leaves.
var kinds = map[string]Kind{
	"text":          KindText,
	"string":        KindText,
	"PageContainer": KindPageContainer,
	"Header":        KindHeader,
	"GridLayout":    KindGridLayout,
	"Card":          KindCard,
	"Sidebar":       KindSidebar,
	"Button":        KindButton,
	"Input":         KindInput,
	"StatCard":      KindStatCard,
	"Badge":         KindBadge,
	"Alert":         KindAlert,
	"Toggle":        KindToggle,
}

// KindOf resolves a layout type string to a Kind. Unrecognized strings
// yield KindUnknown.
func KindOf(typ string) Kind {
	return kinds[typ]
}

// propRemap renames a prop when the target prop is absent. Remaps are
// kept in one table so primitive-specific renames stay auditable.
type propRemap struct {
	From string
	To   string
}

// propRemaps lists prop renames per kind. StatCard historically
// accepted "title" for what the primitive calls "label".
var propRemaps = map[Kind][]propRemap{
	KindStatCard: {
		{From: "title", To: "label"},
	},
}

// remapProps returns props with the kind's remaps applied. The input
// map is never mutated; when no remap fires the input is returned
// as-is.
func remapProps(kind Kind, props map[string]any) map[string]any {
	remaps := propRemaps[kind]
	if len(remaps) == 0 || len(props) == 0 {
		return props
	}

	out := props
	copied := false
	for _, rm := range remaps {
		v, ok := out[rm.From]
		if !ok {
			continue
		}
		if _, taken := out[rm.To]; taken {
			continue
		}
		if !copied {
			out = make(map[string]any, len(props))
			for k, pv := range props {
				out[k] = pv
			}
			copied = true
		}
		out[rm.To] = v
		delete(out, rm.From)
	}
	return out
}
