// Package admin implements the editing workflow: validated project and
// page writes, cascading project deletion, and cache invalidation.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sirsluginston/sitekit/store"
)

// ErrValidation is returned when a write is blocked before reaching
// the store. The wrapping error names the offending field.
var ErrValidation = errors.New("sitekit: validation failed")

// Invalidator is notified after every successful write so previously
// resolved configurations are treated as stale and re-fetched.
type Invalidator func()

// Service applies validated writes to the configuration table.
type Service struct {
	store      *store.Store
	logger     *slog.Logger
	invalidate Invalidator
}

// NewService creates a Service. invalidate may be nil.
func NewService(s *store.Store, logger *slog.Logger, invalidate Invalidator) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, logger: logger, invalidate: invalidate}
}

// SaveProject validates and upserts a project record. Validation runs
// before any write; a failing field blocks the whole submission. The
// last-updated timestamp is stamped fresh, overriding any
// client-supplied value.
func (s *Service) SaveProject(ctx context.Context, project *store.Project) error {
	switch {
	case project.ProjectKey == "":
		return fmt.Errorf("%w: ProjectKey is required", ErrValidation)
	case project.ProjectKey == store.BrandKey:
		return fmt.Errorf("%w: ProjectKey %q is reserved", ErrValidation, store.BrandKey)
	case project.ProjectTitle == "":
		return fmt.Errorf("%w: ProjectTitle is required", ErrValidation)
	case project.ProjectColor == "":
		return fmt.Errorf("%w: ProjectColor is required", ErrValidation)
	}

	project.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if err := s.store.PutProject(ctx, project); err != nil {
		return err
	}

	s.logger.Info("project saved", "projectKey", project.ProjectKey)
	s.notify()
	return nil
}

// SavePage validates and upserts a page record.
func (s *Service) SavePage(ctx context.Context, page *store.Page) error {
	switch {
	case page.ProjectKey == "":
		return fmt.Errorf("%w: ProjectKey is required", ErrValidation)
	case page.PageKey == "":
		return fmt.Errorf("%w: PageKey is required", ErrValidation)
	case page.PageKey == store.ConfigKey:
		return fmt.Errorf("%w: PageKey %q is reserved for the project record", ErrValidation, store.ConfigKey)
	case page.PageTitle == "":
		return fmt.Errorf("%w: PageTitle is required", ErrValidation)
	case page.Route == "":
		return fmt.Errorf("%w: Route is required", ErrValidation)
	}

	page.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if err := s.store.PutPage(ctx, page); err != nil {
		return err
	}

	s.logger.Info("page saved", "projectKey", page.ProjectKey, "pageKey", page.PageKey)
	s.notify()
	return nil
}

// DeletePage removes a single page record.
func (s *Service) DeletePage(ctx context.Context, projectKey, pageKey string) error {
	if pageKey == store.ConfigKey {
		return fmt.Errorf("%w: cannot delete the project record as a page", ErrValidation)
	}
	if err := s.store.DeleteRecord(ctx, projectKey, pageKey); err != nil {
		return err
	}

	s.logger.Info("page deleted", "projectKey", projectKey, "pageKey", pageKey)
	s.notify()
	return nil
}

// DeleteProject removes a project and every page under it. Records are
// enumerated and deleted one by one with no transaction: a failure
// partway leaves some records deleted and returns an error, and the
// caller re-runs the deletion to complete it (at-least-once).
func (s *Service) DeleteProject(ctx context.Context, projectKey string) error {
	if projectKey == store.BrandKey {
		return fmt.Errorf("%w: cannot delete the brand record", ErrValidation)
	}

	keys, err := s.store.ListPageKeys(ctx, projectKey)
	if err != nil {
		return err
	}

	for i, key := range keys {
		if err := s.store.DeleteRecord(ctx, key.ProjectKey, key.PageKey); err != nil {
			s.logger.Error("cascade delete aborted",
				"projectKey", projectKey,
				"deleted", i,
				"remaining", len(keys)-i,
				"error", err,
			)
			return fmt.Errorf("cascade delete %s after %d of %d records: %w", projectKey, i, len(keys), err)
		}
	}

	s.logger.Info("project deleted", "projectKey", projectKey, "records", len(keys))
	s.notify()
	return nil
}

func (s *Service) notify() {
	if s.invalidate != nil {
		s.invalidate()
	}
}
