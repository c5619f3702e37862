package store

import "github.com/sirsluginston/sitekit/render"

const (
	// BrandKey is the reserved partition key of the brand record.
	// It never appears in project listings.
	BrandKey = "SirSluginston"

	// ConfigKey is the sort key reserved for brand and project
	// records. Page listings exclude it.
	ConfigKey = "Config"
)

// Link is a footer or support link.
type Link struct {
	Name string `json:"name" dynamodbav:"name"`
	Icon string `json:"icon,omitempty" dynamodbav:"icon,omitempty"`
	URL  string `json:"url" dynamodbav:"url"`
	Type string `json:"type,omitempty" dynamodbav:"type,omitempty"`
}

// MetaTags holds SEO metadata.
type MetaTags struct {
	Title         string   `json:"title,omitempty" dynamodbav:"title,omitempty"`
	Description   string   `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Keywords      []string `json:"keywords,omitempty" dynamodbav:"keywords,omitempty"`
	OGImage       string   `json:"ogImage,omitempty" dynamodbav:"ogImage,omitempty"`
	OGTitle       string   `json:"ogTitle,omitempty" dynamodbav:"ogTitle,omitempty"`
	OGDescription string   `json:"ogDescription,omitempty" dynamodbav:"ogDescription,omitempty"`
}

// ShellConfig controls which parts of the page shell a page shows.
type ShellConfig struct {
	ShowLogo          *bool `json:"showLogo,omitempty" dynamodbav:"ShowLogo,omitempty"`
	ShowNavbar        *bool `json:"showNavbar,omitempty" dynamodbav:"ShowNavbar,omitempty"`
	ShowFooter        *bool `json:"showFooter,omitempty" dynamodbav:"ShowFooter,omitempty"`
	ShowThemeToggle   *bool `json:"showThemeToggle,omitempty" dynamodbav:"ShowThemeToggle,omitempty"`
	ShowNotifications *bool `json:"showNotifications,omitempty" dynamodbav:"ShowNotifications,omitempty"`
	ShowSettings      *bool `json:"showSettings,omitempty" dynamodbav:"ShowSettings,omitempty"`
	ShowAccount       *bool `json:"showAccount,omitempty" dynamodbav:"ShowAccount,omitempty"`
}

// Brand is the singleton record of global defaults: the
// (BrandKey, ConfigKey) item of the configuration table.
type Brand struct {
	ProjectKey string `json:"ProjectKey" dynamodbav:"ProjectKey"`
	PageKey    string `json:"PageKey" dynamodbav:"PageKey"`

	Parent  string `json:"Parent" dynamodbav:"Parent"`
	LogoURL string `json:"LogoURL" dynamodbav:"LogoURL"`
	Version string `json:"Version" dynamodbav:"Version"`

	Links []Link `json:"Links,omitempty" dynamodbav:"Links,omitempty"`

	BrandColor        string  `json:"BrandColor" dynamodbav:"BrandColor"`
	ProjectColor      string  `json:"ProjectColor" dynamodbav:"ProjectColor"`
	AccentColor       string  `json:"AccentColor" dynamodbav:"AccentColor"`
	LightColor        string  `json:"LightColor" dynamodbav:"LightColor"`
	DarkColor         string  `json:"DarkColor" dynamodbav:"DarkColor"`
	SharedBorderColor *string `json:"SharedBorderColor,omitempty" dynamodbav:"SharedBorderColor,omitempty"`

	FontSans  string `json:"FontSans" dynamodbav:"FontSans"`
	FontSerif string `json:"FontSerif" dynamodbav:"FontSerif"`

	SpaceUnit    *int `json:"SpaceUnit,omitempty" dynamodbav:"SpaceUnit,omitempty"`
	RadiusMaster *int `json:"RadiusMaster,omitempty" dynamodbav:"RadiusMaster,omitempty"`

	// DefaultTheme is "light", "dark", or "auto".
	DefaultTheme string `json:"DefaultTheme,omitempty" dynamodbav:"DefaultTheme,omitempty"`

	AllowedRoles []string `json:"AllowedRoles,omitempty" dynamodbav:"AllowedRoles,omitempty"`
	DeniedRoles  []string `json:"DeniedRoles,omitempty" dynamodbav:"DeniedRoles,omitempty"`

	MetaTags *MetaTags `json:"MetaTags,omitempty" dynamodbav:"MetaTags,omitempty"`
}

// Project status values.
const (
	StatusActive      = "Active"
	StatusMaintenance = "Maintenance"
	StatusComingSoon  = "Coming Soon"
	StatusArchived    = "Archived"
)

// ProjectStatusOptions lists the valid lifecycle states in display
// order.
var ProjectStatusOptions = []string{
	StatusActive, StatusMaintenance, StatusComingSoon, StatusArchived,
}

// Project is one project's configuration: the (projectKey, ConfigKey)
// item. Optional color fields override the brand palette field by
// field.
type Project struct {
	ProjectKey string `json:"ProjectKey" dynamodbav:"ProjectKey"`
	PageKey    string `json:"PageKey" dynamodbav:"PageKey"`

	ProjectID          string  `json:"ProjectID" dynamodbav:"ProjectID"`
	ProjectTitle       string  `json:"ProjectTitle" dynamodbav:"ProjectTitle"`
	ProjectSlug        string  `json:"ProjectSlug" dynamodbav:"ProjectSlug"`
	ProjectTagline     *string `json:"ProjectTagline,omitempty" dynamodbav:"ProjectTagline,omitempty"`
	ProjectDescription *string `json:"ProjectDescription,omitempty" dynamodbav:"ProjectDescription,omitempty"`
	ProjectLogoURL     *string `json:"ProjectLogoURL,omitempty" dynamodbav:"ProjectLogoURL,omitempty"`
	ProjectStatus      string  `json:"ProjectStatus" dynamodbav:"ProjectStatus"`
	YearCreated        int     `json:"YearCreated" dynamodbav:"YearCreated"`
	LastUpdated        string  `json:"LastUpdated" dynamodbav:"LastUpdated"`
	Version            string  `json:"Version" dynamodbav:"Version"`

	Links []Link `json:"Links,omitempty" dynamodbav:"Links,omitempty"`

	BrandColor        *string `json:"BrandColor,omitempty" dynamodbav:"BrandColor,omitempty"`
	ProjectColor      string  `json:"ProjectColor" dynamodbav:"ProjectColor"`
	AccentColor       *string `json:"AccentColor,omitempty" dynamodbav:"AccentColor,omitempty"`
	LightColor        *string `json:"LightColor,omitempty" dynamodbav:"LightColor,omitempty"`
	DarkColor         *string `json:"DarkColor,omitempty" dynamodbav:"DarkColor,omitempty"`
	SharedBorderColor *string `json:"SharedBorderColor,omitempty" dynamodbav:"SharedBorderColor,omitempty"`

	ProjectOrder *int     `json:"ProjectOrder,omitempty" dynamodbav:"ProjectOrder,omitempty"`
	ProjectTags  []string `json:"ProjectTags,omitempty" dynamodbav:"ProjectTags,omitempty"`

	AllowedRoles []string `json:"AllowedRoles,omitempty" dynamodbav:"AllowedRoles,omitempty"`
	DeniedRoles  []string `json:"DeniedRoles,omitempty" dynamodbav:"DeniedRoles,omitempty"`

	MetaTags *MetaTags `json:"MetaTags,omitempty" dynamodbav:"MetaTags,omitempty"`
}

// Page is one routed page: a (projectKey, pageKey) item whose sort key
// is anything but ConfigKey.
type Page struct {
	ProjectKey string `json:"ProjectKey" dynamodbav:"ProjectKey"`
	PageKey    string `json:"PageKey" dynamodbav:"PageKey"`

	PageTitle   string  `json:"PageTitle" dynamodbav:"PageTitle"`
	PageTagline *string `json:"PageTagline,omitempty" dynamodbav:"PageTagline,omitempty"`
	Route       string  `json:"Route" dynamodbav:"Route"`
	Version     string  `json:"Version" dynamodbav:"Version"`

	AllowedRoles []string `json:"AllowedRoles,omitempty" dynamodbav:"AllowedRoles,omitempty"`
	DeniedRoles  []string `json:"DeniedRoles,omitempty" dynamodbav:"DeniedRoles,omitempty"`

	// HasShell defaults to true when absent.
	HasShell    *bool        `json:"HasShell,omitempty" dynamodbav:"HasShell,omitempty"`
	ShellConfig *ShellConfig `json:"ShellConfig,omitempty" dynamodbav:"ShellConfig,omitempty"`

	// InNavbar defaults to true when absent.
	InNavbar    *bool    `json:"InNavbar,omitempty" dynamodbav:"InNavbar,omitempty"`
	NavbarLabel *string  `json:"NavbarLabel,omitempty" dynamodbav:"NavbarLabel,omitempty"`
	NavbarOrder *int     `json:"NavbarOrder,omitempty" dynamodbav:"NavbarOrder,omitempty"`
	NavbarRoles []string `json:"NavbarRoles,omitempty" dynamodbav:"NavbarRoles,omitempty"`

	ContentLayout *render.Node `json:"ContentLayout,omitempty" dynamodbav:"ContentLayout,omitempty"`

	MetaTags    *MetaTags `json:"MetaTags,omitempty" dynamodbav:"MetaTags,omitempty"`
	LastUpdated string    `json:"LastUpdated,omitempty" dynamodbav:"LastUpdated,omitempty"`
}

// UserSettings is one authenticated principal's record, keyed by the
// identity provider's subject identifier. Email and RealName are
// immutable after creation.
type UserSettings struct {
	UserID      string `json:"UserID" dynamodbav:"UserID"`
	Email       string `json:"Email" dynamodbav:"Email"`
	RealName    string `json:"RealName" dynamodbav:"RealName"`
	DisplayName string `json:"DisplayName" dynamodbav:"DisplayName"`
	AvatarURL   string `json:"AvatarURL,omitempty" dynamodbav:"AvatarURL,omitempty"`
	Timezone    string `json:"Timezone,omitempty" dynamodbav:"Timezone,omitempty"`

	EmailNotifications  bool `json:"EmailNotifications" dynamodbav:"EmailNotifications"`
	MarketingEmails     bool `json:"MarketingEmails" dynamodbav:"MarketingEmails"`
	ProjectUpdates      bool `json:"ProjectUpdates" dynamodbav:"ProjectUpdates"`
	SystemNotifications bool `json:"SystemNotifications" dynamodbav:"SystemNotifications"`

	// ThemePreference is "light", "dark", or "auto".
	ThemePreference  string `json:"ThemePreference" dynamodbav:"ThemePreference"`
	DateFormat       string `json:"DateFormat,omitempty" dynamodbav:"DateFormat,omitempty"`
	ShowEmailPublicly bool  `json:"ShowEmailPublicly" dynamodbav:"ShowEmailPublicly"`
	AnalyticsOptOut   bool  `json:"AnalyticsOptOut" dynamodbav:"AnalyticsOptOut"`

	CreatedAt string `json:"CreatedAt" dynamodbav:"CreatedAt"`
	UpdatedAt string `json:"UpdatedAt" dynamodbav:"UpdatedAt"`
}

// RecordKey identifies one item of the configuration table.
type RecordKey struct {
	ProjectKey string
	PageKey    string
}
