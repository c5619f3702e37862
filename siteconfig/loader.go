package siteconfig

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sirsluginston/sitekit/store"
)

// Loader fetches and resolves the configuration for a navigation.
type Loader struct {
	store  *store.Store
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(s *store.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{store: s, logger: logger}
}

// Load fetches Brand, Project, and the project's pages in parallel,
// joins the three reads, and merges. Load never fails: an unreachable
// brand record falls back to the hardcoded default, an unreachable
// project or page list resolves through placeholder synthesis. The
// project's full page list is returned alongside the merged view for
// navbar construction.
func (l *Loader) Load(ctx context.Context, projectKey, pageKey string) (*Merged, []store.Page) {
	var (
		brand   *store.Brand
		project *store.Project
		pages   []store.Page
	)

	// Three independent reads, no ordering dependency.
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		b, err := l.store.GetBrand(ctx)
		if err != nil {
			l.logger.Warn("brand config unavailable, using fallback", "error", err)
			b = FallbackBrand()
		}
		brand = b
	}()

	go func() {
		defer wg.Done()
		p, err := l.store.GetProject(ctx, projectKey)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				l.logger.Warn("project config unavailable", "projectKey", projectKey, "error", err)
			}
			return
		}
		project = p
	}()

	go func() {
		defer wg.Done()
		ps, err := l.store.ListPages(ctx, projectKey)
		if err != nil {
			l.logger.Warn("page listing unavailable", "projectKey", projectKey, "error", err)
			return
		}
		pages = ps
	}()

	wg.Wait()

	var page *store.Page
	for i := range pages {
		if pages[i].PageKey == pageKey {
			page = &pages[i]
			break
		}
	}

	return Merge(brand, project, page), pages
}
