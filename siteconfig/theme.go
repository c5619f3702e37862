package siteconfig

import (
	"fmt"
	"io"
)

// WriteTheme writes the resolved palette, fonts, and spacing as CSS
// custom properties on the document root. It is the explicit
// side-effecting half of resolution: callers invoke it once per
// navigation against their presentation target, keeping Merge pure.
func WriteTheme(w io.Writer, m *Merged) error {
	b := m.Brand
	_, err := fmt.Fprintf(w, `:root {
  --brand-color: %s;
  --project-color: %s;
  --accent-color: %s;
  --light-color: %s;
  --dark-color: %s;
  --shared-border-color: %s;
  --font-sans: %s;
  --font-serif: %s;
  --space-unit: %dpx;
  --radius-master: %dpx;
}
`,
		b.BrandColor, b.ProjectColor, b.AccentColor, b.LightColor, b.DarkColor,
		b.SharedBorderColor, b.FontSans, b.FontSerif, b.SpaceUnit, b.RadiusMaster)
	return err
}

// DarkMode reports whether the resolved default theme forces dark mode
// on or off. For "auto" (or anything unrecognized) ok is false and the
// ambient system preference decides.
func DarkMode(m *Merged) (dark, ok bool) {
	switch m.Brand.DefaultTheme {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}
