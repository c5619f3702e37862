package siteconfig_test

import (
	"reflect"
	"testing"

	"github.com/sirsluginston/sitekit/siteconfig"
	"github.com/sirsluginston/sitekit/store"
)

func TestNavbar_Ordering(t *testing.T) {
	pages := []store.Page{
		{PageKey: "Zeta", PageTitle: "Zeta", Route: "/zeta"},
		{PageKey: "About", PageTitle: "About", Route: "/about", NavbarOrder: intPtr(2)},
		{PageKey: "Home", PageTitle: "Home", Route: "/", NavbarOrder: intPtr(1)},
		{PageKey: "Alpha", PageTitle: "Alpha", Route: "/alpha"},
	}

	entries := siteconfig.Navbar(pages, nil)
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Route
	}
	// Ordered pages first, then unordered ones sorted by page key.
	want := []string{"/", "/about", "/alpha", "/zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestNavbar_OptOut(t *testing.T) {
	pages := []store.Page{
		{PageKey: "Home", PageTitle: "Home", Route: "/"},
		{PageKey: "Hidden", PageTitle: "Hidden", Route: "/hidden", InNavbar: boolPtr(false)},
		{PageKey: "Shown", PageTitle: "Shown", Route: "/shown", InNavbar: boolPtr(true)},
	}

	entries := siteconfig.Navbar(pages, nil)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Route == "/hidden" {
			t.Error("opted-out page appeared in navbar")
		}
	}
}

func TestNavbar_RoleGating(t *testing.T) {
	pages := []store.Page{
		{PageKey: "Home", PageTitle: "Home", Route: "/"},
		{PageKey: "Admin", PageTitle: "Admin", Route: "/admin", NavbarRoles: []string{"Admin"}},
	}

	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{"no roles", nil, 1},
		{"wrong role", []string{"Editor"}, 1},
		{"matching role", []string{"Admin"}, 2},
		{"one of several", []string{"Editor", "Admin"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := siteconfig.Navbar(pages, tt.roles)
			if len(entries) != tt.want {
				t.Errorf("expected %d entries, got %d", tt.want, len(entries))
			}
		})
	}
}

func TestNavbar_Labels(t *testing.T) {
	pages := []store.Page{
		{PageKey: "About", PageTitle: "About Us", Route: "/about"},
		{PageKey: "Docs", PageTitle: "Documentation", Route: "/docs", NavbarLabel: strPtr("Docs")},
		{PageKey: "Blog", PageTitle: "Blog", Route: "/blog", NavbarLabel: strPtr("")},
	}

	entries := siteconfig.Navbar(pages, nil)
	labels := map[string]string{}
	for _, e := range entries {
		labels[e.Route] = e.Label
	}

	if labels["/about"] != "About Us" {
		t.Errorf("expected page title fallback, got %q", labels["/about"])
	}
	if labels["/docs"] != "Docs" {
		t.Errorf("expected explicit label, got %q", labels["/docs"])
	}
	if labels["/blog"] != "Blog" {
		t.Errorf("expected empty label to fall back to title, got %q", labels["/blog"])
	}
}

func TestNavbar_Empty(t *testing.T) {
	if entries := siteconfig.Navbar(nil, nil); len(entries) != 0 {
		t.Errorf("expected no entries for no pages, got %v", entries)
	}
}
