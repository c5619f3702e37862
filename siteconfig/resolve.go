package siteconfig

import "github.com/sirsluginston/sitekit/store"

const (
	defaultSpaceUnit    = 8
	defaultRadiusMaster = 8

	// placeholderYear is the creation year reported for the brand's
	// synthesized project view.
	placeholderYear = 2020
)

// Merge resolves the three tiers into one effective configuration.
// Pure: no I/O, inputs are never mutated. project and page may be nil,
// in which case placeholder views are synthesized.
//
// Color precedence is project over brand, field by field. The shared
// border color alone has a longer chain: it falls through both tiers'
// SharedBorderColor to the resolved project color.
func Merge(brand *store.Brand, project *store.Project, page *store.Page) *Merged {
	m := &Merged{
		Brand: BrandView{
			Parent:       brand.Parent,
			LogoURL:      brand.LogoURL,
			FontSans:     brand.FontSans,
			FontSerif:    brand.FontSerif,
			SpaceUnit:    intOr(brand.SpaceUnit, defaultSpaceUnit),
			RadiusMaster: intOr(brand.RadiusMaster, defaultRadiusMaster),
			DefaultTheme: brand.DefaultTheme,
		},
	}

	m.Brand.BrandColor = override(projectField(project, func(p *store.Project) *string { return p.BrandColor }), brand.BrandColor)
	m.Brand.AccentColor = override(projectField(project, func(p *store.Project) *string { return p.AccentColor }), brand.AccentColor)
	m.Brand.LightColor = override(projectField(project, func(p *store.Project) *string { return p.LightColor }), brand.LightColor)
	m.Brand.DarkColor = override(projectField(project, func(p *store.Project) *string { return p.DarkColor }), brand.DarkColor)

	projectColor := brand.ProjectColor
	if project != nil && project.ProjectColor != "" {
		projectColor = project.ProjectColor
	}
	m.Brand.ProjectColor = projectColor

	// Four-level chain: project.SharedBorderColor, then
	// brand.SharedBorderColor, then the resolved project color (which
	// is itself project.ProjectColor over brand.ProjectColor).
	switch {
	case project != nil && project.SharedBorderColor != nil:
		m.Brand.SharedBorderColor = *project.SharedBorderColor
	case brand.SharedBorderColor != nil:
		m.Brand.SharedBorderColor = *brand.SharedBorderColor
	default:
		m.Brand.SharedBorderColor = projectColor
	}

	// Links: a non-empty project list replaces the brand's verbatim.
	m.Brand.Links = brand.Links
	if project != nil && len(project.Links) > 0 {
		m.Brand.Links = project.Links
	}

	// Roles and meta tags: wholesale override, no union.
	m.Brand.AllowedRoles = brand.AllowedRoles
	m.Brand.DeniedRoles = brand.DeniedRoles
	if project != nil && project.AllowedRoles != nil {
		m.Brand.AllowedRoles = project.AllowedRoles
	}
	if project != nil && project.DeniedRoles != nil {
		m.Brand.DeniedRoles = project.DeniedRoles
	}
	m.Brand.MetaTags = brand.MetaTags
	if project != nil && project.MetaTags != nil {
		m.Brand.MetaTags = project.MetaTags
	}

	if project != nil {
		m.Project = ProjectView{
			ProjectKey:         project.ProjectKey,
			ProjectID:          project.ProjectID,
			ProjectTitle:       project.ProjectTitle,
			ProjectSlug:        project.ProjectSlug,
			ProjectTagline:     strOr(project.ProjectTagline),
			ProjectDescription: strOr(project.ProjectDescription),
			ProjectLogoURL:     strOr(project.ProjectLogoURL),
			ProjectStatus:      project.ProjectStatus,
			YearCreated:        project.YearCreated,
			ProjectOrder:       project.ProjectOrder,
			ProjectTags:        project.ProjectTags,
		}
	} else {
		m.Project = ProjectView{
			ProjectKey:    store.BrandKey,
			ProjectID:     "0",
			ProjectTitle:  brand.Parent,
			ProjectSlug:   "sirsluginston",
			ProjectStatus: store.StatusActive,
			YearCreated:   placeholderYear,
		}
	}

	if page != nil {
		m.Page = PageView{
			PageKey:       page.PageKey,
			PageTitle:     page.PageTitle,
			PageTagline:   strOr(page.PageTagline),
			Route:         page.Route,
			AllowedRoles:  page.AllowedRoles,
			DeniedRoles:   page.DeniedRoles,
			HasShell:      boolOr(page.HasShell, true),
			ShellConfig:   page.ShellConfig,
			InNavbar:      boolOr(page.InNavbar, true),
			NavbarLabel:   override(page.NavbarLabel, page.PageTitle),
			NavbarOrder:   page.NavbarOrder,
			NavbarRoles:   page.NavbarRoles,
			ContentLayout: page.ContentLayout,
			MetaTags:      page.MetaTags,
		}
	} else {
		m.Page = PageView{
			PageKey:     "Home",
			PageTitle:   "Home",
			Route:       "/",
			HasShell:    true,
			InNavbar:    true,
			NavbarLabel: "Home",
		}
	}

	return m
}

// FallbackBrand returns the hardcoded brand used when the store is
// unreachable. Resolution must tolerate a missing brand record.
func FallbackBrand() *store.Brand {
	unit := 8
	return &store.Brand{
		ProjectKey: store.BrandKey,
		PageKey:    store.ConfigKey,
		Parent:     "SirSluginston Co",
		LogoURL:    "/logo.jpg",
		Version:    "1.0.0",
		Links: []store.Link{
			{Name: "Support", URL: "mailto:support@sirsluginston.com", Type: "support"},
			{Name: "GitHub", URL: "https://github.com/sirsluginston", Type: "social"},
		},
		BrandColor:   "#D2691E",
		ProjectColor: "#4B3A78",
		AccentColor:  "#FFD700",
		LightColor:   "#FFFFF0",
		DarkColor:    "#2F2F2F",
		FontSans:     "Roboto, sans-serif",
		FontSerif:    "Lora, serif",
		SpaceUnit:    &unit,
		RadiusMaster: &unit,
		DefaultTheme: "light",
		MetaTags: &store.MetaTags{
			Title:       "SirSluginston Co",
			Description: "Home of innovative projects and solutions",
			Keywords:    []string{"sirsluginston", "projects", "technology"},
		},
	}
}

func projectField(p *store.Project, get func(*store.Project) *string) *string {
	if p == nil {
		return nil
	}
	return get(p)
}

func override(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func strOr(v *string) string {
	if v != nil {
		return *v
	}
	return ""
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
