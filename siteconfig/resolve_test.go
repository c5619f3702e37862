package siteconfig_test

import (
	"reflect"
	"testing"

	"github.com/sirsluginston/sitekit/siteconfig"
	"github.com/sirsluginston/sitekit/store"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func testBrand() *store.Brand {
	return siteconfig.FallbackBrand()
}

func TestMerge_BrandOnly(t *testing.T) {
	brand := testBrand()
	m := siteconfig.Merge(brand, nil, nil)

	if m.Brand.BrandColor != "#D2691E" {
		t.Errorf("expected brand color %q, got %q", "#D2691E", m.Brand.BrandColor)
	}
	if m.Brand.ProjectColor != "#4B3A78" {
		t.Errorf("expected project color %q, got %q", "#4B3A78", m.Brand.ProjectColor)
	}
	// No SharedBorderColor anywhere, so it falls through to the
	// resolved project color.
	if m.Brand.SharedBorderColor != "#4B3A78" {
		t.Errorf("expected shared border color %q, got %q", "#4B3A78", m.Brand.SharedBorderColor)
	}
	if m.Brand.SpaceUnit != 8 || m.Brand.RadiusMaster != 8 {
		t.Errorf("expected spacing 8/8, got %d/%d", m.Brand.SpaceUnit, m.Brand.RadiusMaster)
	}
}

func TestMerge_PlaceholderProject(t *testing.T) {
	brand := testBrand()
	m := siteconfig.Merge(brand, nil, nil)

	if m.Project.ProjectKey != store.BrandKey {
		t.Errorf("expected placeholder project key %q, got %q", store.BrandKey, m.Project.ProjectKey)
	}
	if m.Project.ProjectTitle != brand.Parent {
		t.Errorf("expected placeholder title %q, got %q", brand.Parent, m.Project.ProjectTitle)
	}
	if m.Project.ProjectStatus != store.StatusActive {
		t.Errorf("expected placeholder status %q, got %q", store.StatusActive, m.Project.ProjectStatus)
	}
}

func TestMerge_PlaceholderPage(t *testing.T) {
	m := siteconfig.Merge(testBrand(), nil, nil)

	if m.Page.PageKey != "Home" || m.Page.Route != "/" {
		t.Errorf("expected Home page at /, got %q at %q", m.Page.PageKey, m.Page.Route)
	}
	if !m.Page.HasShell || !m.Page.InNavbar {
		t.Errorf("expected shell and navbar defaults true, got %v/%v", m.Page.HasShell, m.Page.InNavbar)
	}
}

func TestMerge_ProjectColorOverrides(t *testing.T) {
	brand := testBrand()
	project := &store.Project{
		ProjectKey:   "arcade",
		ProjectTitle: "Arcade",
		ProjectColor: "#112233",
		BrandColor:   strPtr("#445566"),
		AccentColor:  strPtr("#778899"),
	}

	m := siteconfig.Merge(brand, project, nil)

	if m.Brand.BrandColor != "#445566" {
		t.Errorf("expected project brand color override, got %q", m.Brand.BrandColor)
	}
	if m.Brand.AccentColor != "#778899" {
		t.Errorf("expected project accent color override, got %q", m.Brand.AccentColor)
	}
	if m.Brand.ProjectColor != "#112233" {
		t.Errorf("expected project color %q, got %q", "#112233", m.Brand.ProjectColor)
	}
	// Unset project fields keep the brand's values.
	if m.Brand.LightColor != brand.LightColor {
		t.Errorf("expected brand light color %q, got %q", brand.LightColor, m.Brand.LightColor)
	}
	if m.Brand.DarkColor != brand.DarkColor {
		t.Errorf("expected brand dark color %q, got %q", brand.DarkColor, m.Brand.DarkColor)
	}
}

func TestMerge_SharedBorderColorChain(t *testing.T) {
	tests := []struct {
		name     string
		brand    func(*store.Brand)
		project  *store.Project
		expected string
	}{
		{
			name:     "project shared border color wins",
			brand:    func(b *store.Brand) { b.SharedBorderColor = strPtr("#000001") },
			project:  &store.Project{ProjectColor: "#000003", SharedBorderColor: strPtr("#000000")},
			expected: "#000000",
		},
		{
			name:     "brand shared border color next",
			brand:    func(b *store.Brand) { b.SharedBorderColor = strPtr("#000001") },
			project:  &store.Project{ProjectColor: "#000003"},
			expected: "#000001",
		},
		{
			name:     "project color next",
			brand:    func(b *store.Brand) {},
			project:  &store.Project{ProjectColor: "#000003"},
			expected: "#000003",
		},
		{
			name:     "brand project color last",
			brand:    func(b *store.Brand) {},
			project:  nil,
			expected: "#4B3A78",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brand := testBrand()
			tt.brand(brand)
			m := siteconfig.Merge(brand, tt.project, nil)
			if m.Brand.SharedBorderColor != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, m.Brand.SharedBorderColor)
			}
		})
	}
}

func TestMerge_LinksReplaceWholesale(t *testing.T) {
	brand := testBrand()
	project := &store.Project{
		ProjectKey:   "arcade",
		ProjectColor: "#112233",
		Links: []store.Link{
			{Name: "Docs", URL: "https://docs.example.com"},
		},
	}

	m := siteconfig.Merge(brand, project, nil)
	if len(m.Brand.Links) != 1 || m.Brand.Links[0].Name != "Docs" {
		t.Errorf("expected project links to replace brand links, got %v", m.Brand.Links)
	}

	// Empty project link list keeps the brand's.
	project.Links = nil
	m = siteconfig.Merge(brand, project, nil)
	if len(m.Brand.Links) != len(brand.Links) {
		t.Errorf("expected brand links kept, got %v", m.Brand.Links)
	}
}

func TestMerge_RolesAndMetaWholesale(t *testing.T) {
	brand := testBrand()
	brand.AllowedRoles = []string{"Admin", "Editor"}
	brand.DeniedRoles = []string{"Banned"}

	project := &store.Project{
		ProjectKey:   "arcade",
		ProjectColor: "#112233",
		AllowedRoles: []string{"Member"},
		MetaTags:     &store.MetaTags{Title: "Arcade"},
	}

	m := siteconfig.Merge(brand, project, nil)
	if len(m.Brand.AllowedRoles) != 1 || m.Brand.AllowedRoles[0] != "Member" {
		t.Errorf("expected allowed roles replaced, got %v", m.Brand.AllowedRoles)
	}
	if len(m.Brand.DeniedRoles) != 1 || m.Brand.DeniedRoles[0] != "Banned" {
		t.Errorf("expected brand denied roles kept, got %v", m.Brand.DeniedRoles)
	}
	if m.Brand.MetaTags == nil || m.Brand.MetaTags.Title != "Arcade" {
		t.Errorf("expected project meta tags, got %v", m.Brand.MetaTags)
	}
}

func TestMerge_PageDefaults(t *testing.T) {
	page := &store.Page{
		ProjectKey: "arcade",
		PageKey:    "About",
		PageTitle:  "About Us",
		Route:      "/about",
	}

	m := siteconfig.Merge(testBrand(), nil, page)
	if !m.Page.HasShell {
		t.Error("expected HasShell to default true when absent")
	}
	if !m.Page.InNavbar {
		t.Error("expected InNavbar to default true when absent")
	}
	if m.Page.NavbarLabel != "About Us" {
		t.Errorf("expected navbar label to fall back to page title, got %q", m.Page.NavbarLabel)
	}
}

func TestMerge_PageExplicitFlags(t *testing.T) {
	page := &store.Page{
		ProjectKey:  "arcade",
		PageKey:     "Hidden",
		PageTitle:   "Hidden",
		Route:       "/hidden",
		HasShell:    boolPtr(false),
		InNavbar:    boolPtr(false),
		NavbarLabel: strPtr("Secret"),
	}

	m := siteconfig.Merge(testBrand(), nil, page)
	if m.Page.HasShell {
		t.Error("expected HasShell false when explicitly set")
	}
	if m.Page.InNavbar {
		t.Error("expected InNavbar false when explicitly set")
	}
	if m.Page.NavbarLabel != "Secret" {
		t.Errorf("expected explicit navbar label, got %q", m.Page.NavbarLabel)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	brand := testBrand()
	project := &store.Project{
		ProjectKey:   "arcade",
		ProjectColor: "#112233",
		ProjectOrder: intPtr(1),
	}
	page := &store.Page{ProjectKey: "arcade", PageKey: "About", PageTitle: "About", Route: "/about"}

	before := *brand
	siteconfig.Merge(brand, project, page)

	if !reflect.DeepEqual(*brand, before) {
		t.Error("brand record was mutated by merge")
	}
	if project.ProjectColor != "#112233" || *project.ProjectOrder != 1 {
		t.Error("project record was mutated by merge")
	}
	if page.HasShell != nil || page.InNavbar != nil {
		t.Error("page record was mutated by merge")
	}
}
