// Package users implements the user settings workflow: idempotent
// record creation, read-modify-write updates with immutable identity
// fields, and best-effort display-name uniqueness.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sirsluginston/sitekit/store"
)

// ErrDisplayNameTaken is returned when another user already holds the
// requested display name.
var ErrDisplayNameTaken = errors.New("sitekit: display name already taken")

// Service manages user settings records.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates a Service.
func NewService(s *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, logger: logger}
}

// Get fetches the caller's settings record.
func (s *Service) Get(ctx context.Context, userID string) (*store.UserSettings, error) {
	return s.store.GetUser(ctx, userID)
}

// CreateInput carries the client-supplied fields of a new record.
// Unset preference flags take their defaults.
type CreateInput struct {
	Email       string
	RealName    string
	DisplayName string
	AvatarURL   string
	Timezone    string

	EmailNotifications  *bool
	MarketingEmails     *bool
	ProjectUpdates      *bool
	SystemNotifications *bool
	ThemePreference     string
	DateFormat          string
	ShowEmailPublicly   *bool
	AnalyticsOptOut     *bool
}

// Create makes the caller's settings record. Idempotent: when a record
// already exists it is returned unchanged with created = false and no
// write is performed.
func (s *Service) Create(ctx context.Context, userID, claimEmail string, in CreateInput) (settings *store.UserSettings, created bool, err error) {
	existing, err := s.store.GetUser(ctx, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	if in.DisplayName != "" {
		if err := s.checkDisplayName(ctx, in.DisplayName); err != nil {
			return nil, false, err
		}
	}

	email := in.Email
	if email == "" {
		email = claimEmail
	}
	timezone := in.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	theme := in.ThemePreference
	if theme == "" {
		theme = "auto"
	}
	dateFormat := in.DateFormat
	if dateFormat == "" {
		dateFormat = "MM/DD/YYYY"
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user := &store.UserSettings{
		UserID:              userID,
		Email:               email,
		RealName:            in.RealName,
		DisplayName:         in.DisplayName,
		AvatarURL:           in.AvatarURL,
		Timezone:            timezone,
		EmailNotifications:  boolOr(in.EmailNotifications, true),
		MarketingEmails:     boolOr(in.MarketingEmails, false),
		ProjectUpdates:      boolOr(in.ProjectUpdates, true),
		SystemNotifications: boolOr(in.SystemNotifications, true),
		ThemePreference:     theme,
		DateFormat:          dateFormat,
		ShowEmailPublicly:   boolOr(in.ShowEmailPublicly, false),
		AnalyticsOptOut:     boolOr(in.AnalyticsOptOut, false),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.store.PutUser(ctx, user); err != nil {
		return nil, false, err
	}

	s.logger.Info("user record created", "userID", userID)
	return user, true, nil
}

// UpdateInput carries a settings patch. Nil fields keep their stored
// values. UserID, Email, and RealName cannot be patched; the stored
// values are re-asserted on every update.
type UpdateInput struct {
	DisplayName *string
	AvatarURL   *string
	Timezone    *string

	EmailNotifications  *bool
	MarketingEmails     *bool
	ProjectUpdates      *bool
	SystemNotifications *bool
	ThemePreference     *string
	DateFormat          *string
	ShowEmailPublicly   *bool
	AnalyticsOptOut     *bool
}

// Update applies a patch to the caller's record with read-modify-write
// semantics and a fresh UpdatedAt stamp.
func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (*store.UserSettings, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil && *in.DisplayName != user.DisplayName {
		if err := s.checkDisplayName(ctx, *in.DisplayName); err != nil {
			return nil, err
		}
		user.DisplayName = *in.DisplayName
	}

	setStr(&user.AvatarURL, in.AvatarURL)
	setStr(&user.Timezone, in.Timezone)
	setStr(&user.ThemePreference, in.ThemePreference)
	setStr(&user.DateFormat, in.DateFormat)
	setBool(&user.EmailNotifications, in.EmailNotifications)
	setBool(&user.MarketingEmails, in.MarketingEmails)
	setBool(&user.ProjectUpdates, in.ProjectUpdates)
	setBool(&user.SystemNotifications, in.SystemNotifications)
	setBool(&user.ShowEmailPublicly, in.ShowEmailPublicly)
	setBool(&user.AnalyticsOptOut, in.AnalyticsOptOut)

	user.UserID = userID
	user.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.store.PutUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// checkDisplayName enforces uniqueness while the index is available.
// When the index lookup itself fails the check is skipped with a
// warning: availability over consistency, by the same tradeoff the
// deployed system makes while the index is not yet provisioned.
func (s *Service) checkDisplayName(ctx context.Context, displayName string) error {
	_, err := s.store.FindUserByDisplayName(ctx, displayName)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %q", ErrDisplayNameTaken, displayName)
	case errors.Is(err, store.ErrNotFound):
		return nil
	case errors.Is(err, store.ErrIndexUnavailable):
		s.logger.Warn("display name uniqueness check skipped", "error", err)
		return nil
	default:
		return err
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
