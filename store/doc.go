// Package store provides the DynamoDB data access layer for site
// configuration and user settings.
//
// All site configuration lives in one table keyed by
// (ProjectKey, PageKey). Three record kinds share it, distinguished by
// key shape:
//
//   - Brand: the ("SirSluginston", "Config") singleton of global
//     defaults (palette, fonts, links).
//   - Project: (projectKey, "Config"), one per project, optionally
//     overriding brand fields.
//   - Page: (projectKey, pageKey != "Config"), many per project,
//     optionally carrying a content layout tree.
//
// User settings live in a second, single-key table whose partition key
// attribute name is configurable.
//
// # Operations
//
// The store exposes point lookups ([Store.GetBrand], [Store.GetProject],
// [Store.GetPage], [Store.GetUser]), full-replace writes
// ([Store.PutProject], [Store.PutPage], [Store.PutUser]), deletes
// ([Store.DeleteRecord]), a filtered scan for project listings
// ([Store.ListProjects]), and partition queries for a project's pages
// ([Store.ListPages], [Store.ListPageKeys]).
//
// Read misses surface as [ErrNotFound], distinct from transport
// failure, so callers can apply fallback and placeholder logic.
// Display-name lookups on the users table consult an optional GSI;
// when the index is missing its failure surfaces wrapped in
// [ErrIndexUnavailable] so callers can degrade gracefully.
package store
