package siteconfig

import (
	"sort"

	"github.com/sirsluginston/sitekit/store"
)

// navbarOrderMax sorts pages without an explicit order after those
// with one.
const navbarOrderMax = 999

// NavEntry is one navbar item.
type NavEntry struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// Navbar builds the navbar for a page list. Pages opt out with
// InNavbar = false; pages with NavbarRoles require the caller to hold
// one of those roles. Entries sort by NavbarOrder (absent orders last),
// ties by page key.
func Navbar(pages []store.Page, roles []string) []NavEntry {
	held := make(map[string]bool, len(roles))
	for _, r := range roles {
		held[r] = true
	}

	var visible []store.Page
	for _, page := range pages {
		if page.InNavbar != nil && !*page.InNavbar {
			continue
		}
		if len(page.NavbarRoles) > 0 && !anyHeld(page.NavbarRoles, held) {
			continue
		}
		visible = append(visible, page)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		oi := intOr(visible[i].NavbarOrder, navbarOrderMax)
		oj := intOr(visible[j].NavbarOrder, navbarOrderMax)
		if oi != oj {
			return oi < oj
		}
		return visible[i].PageKey < visible[j].PageKey
	})

	entries := make([]NavEntry, 0, len(visible))
	for _, page := range visible {
		label := page.PageTitle
		if page.NavbarLabel != nil && *page.NavbarLabel != "" {
			label = *page.NavbarLabel
		}
		entries = append(entries, NavEntry{Label: label, Route: page.Route})
	}
	return entries
}

func anyHeld(required []string, held map[string]bool) bool {
	for _, r := range required {
		if held[r] {
			return true
		}
	}
	return false
}
