// Package siteconfig resolves Brand, Project, and Page records into one
// effective configuration for a navigation, following the three-tier
// override precedence.
package siteconfig

import (
	"github.com/sirsluginston/sitekit/render"
	"github.com/sirsluginston/sitekit/store"
)

// Merged is the resolved, read-only view of one navigation's
// configuration. It is derived, never persisted, and recomputed on
// every route change.
type Merged struct {
	Brand   BrandView   `json:"brand"`
	Project ProjectView `json:"project"`
	Page    PageView    `json:"page"`
}

// BrandView is the brand tier after project color overrides resolve.
type BrandView struct {
	Parent  string `json:"parent"`
	LogoURL string `json:"logoURL"`

	BrandColor        string `json:"brandColor"`
	ProjectColor      string `json:"projectColor"`
	AccentColor       string `json:"accentColor"`
	LightColor        string `json:"lightColor"`
	DarkColor         string `json:"darkColor"`
	SharedBorderColor string `json:"sharedBorderColor"`

	FontSans     string `json:"fontSans"`
	FontSerif    string `json:"fontSerif"`
	SpaceUnit    int    `json:"spaceUnit"`
	RadiusMaster int    `json:"radiusMaster"`

	DefaultTheme string `json:"defaultTheme,omitempty"`

	Links        []store.Link    `json:"links,omitempty"`
	AllowedRoles []string        `json:"allowedRoles,omitempty"`
	DeniedRoles  []string        `json:"deniedRoles,omitempty"`
	MetaTags     *store.MetaTags `json:"metaTags,omitempty"`
}

// ProjectView is the project tier, synthesized from the brand when no
// project record exists.
type ProjectView struct {
	ProjectKey         string   `json:"projectKey"`
	ProjectID          string   `json:"projectID"`
	ProjectTitle       string   `json:"projectTitle"`
	ProjectSlug        string   `json:"projectSlug"`
	ProjectTagline     string   `json:"projectTagline,omitempty"`
	ProjectDescription string   `json:"projectDescription,omitempty"`
	ProjectLogoURL     string   `json:"projectLogoURL,omitempty"`
	ProjectStatus      string   `json:"projectStatus"`
	YearCreated        int      `json:"yearCreated"`
	ProjectOrder       *int     `json:"projectOrder,omitempty"`
	ProjectTags        []string `json:"projectTags,omitempty"`
}

// PageView is the page tier, synthesized as a home page when no page
// record exists.
type PageView struct {
	PageKey     string `json:"pageKey"`
	PageTitle   string `json:"pageTitle"`
	PageTagline string `json:"pageTagline,omitempty"`
	Route       string `json:"route"`

	AllowedRoles []string `json:"allowedRoles,omitempty"`
	DeniedRoles  []string `json:"deniedRoles,omitempty"`

	HasShell    bool               `json:"hasShell"`
	ShellConfig *store.ShellConfig `json:"shellConfig,omitempty"`

	InNavbar    bool     `json:"inNavbar"`
	NavbarLabel string   `json:"navbarLabel,omitempty"`
	NavbarOrder *int     `json:"navbarOrder,omitempty"`
	NavbarRoles []string `json:"navbarRoles,omitempty"`

	ContentLayout *render.Node    `json:"contentLayout,omitempty"`
	MetaTags      *store.MetaTags `json:"metaTags,omitempty"`
}
