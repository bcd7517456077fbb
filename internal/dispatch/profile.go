package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"skillhub/internal/gateway"
	"skillhub/internal/models"
	"skillhub/internal/notify"
	"skillhub/internal/session"
)

// ProfileDispatcher hydrates and updates the current user's profile. The
// profile comes from two sources: the session identity (name, email, avatar)
// and an optional stored profile record; a missing record is a soft
// condition, not an error.
type ProfileDispatcher struct {
	gw       *gateway.Client
	sess     *session.Session
	notifier notify.Notifier
	logger   *zap.Logger

	mu      sync.RWMutex
	profile *models.UserProfile
}

// NewProfileDispatcher creates a profile dispatcher.
func NewProfileDispatcher(
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
) *ProfileDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileDispatcher{
		gw:       gw,
		sess:     sess,
		notifier: notifier,
		logger:   logger,
	}
}

// Hydrate builds the profile from the session identity plus the stored
// record when one exists. A 404 on the record falls back to auth-derived
// defaults and the page proceeds normally; any other failure is returned.
func (d *ProfileDispatcher) Hydrate(ctx context.Context) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		Name:   d.sess.Name,
		Email:  d.sess.Email,
		Avatar: d.sess.Avatar,
	}

	record, err := d.gw.GetProfile(ctx, d.sess.Email)
	switch {
	case err == nil:
		profile.Title = record.Title
		profile.Location = record.Location
		profile.Bio = record.Bio
		profile.Skills = record.Skills
		profile.GitHub = record.GitHub
		profile.LinkedIn = record.LinkedIn
		profile.Stats = record.Stats
	case gateway.IsNotFound(err):
		d.logger.Info("no stored profile record, using session defaults",
			zap.String("email", d.sess.Email),
		)
	default:
		return nil, err
	}

	d.mu.Lock()
	d.profile = profile
	d.mu.Unlock()
	return profile, nil
}

// Update validates the edit form, stores it, and replaces the held profile
// with the server's returned record.
func (d *ProfileDispatcher) Update(ctx context.Context, form *models.ProfileForm) (*models.UserProfile, error) {
	if errs := models.Validate(form); errs.HasErrors() {
		d.notifier.Error(errs.Error())
		return nil, errs
	}

	d.mu.RLock()
	current := d.profile
	d.mu.RUnlock()
	if current == nil {
		current = &models.UserProfile{
			Name:   d.sess.Name,
			Email:  d.sess.Email,
			Avatar: d.sess.Avatar,
		}
	}

	next := *current
	next.Title = form.Title
	next.Location = form.Location
	next.Bio = form.Bio
	next.Skills = form.Skills
	next.GitHub = form.GitHub
	next.LinkedIn = form.LinkedIn

	updated, err := d.gw.UpdateProfile(ctx, d.sess.Email, &next)
	if err != nil {
		d.notifier.Error(msgProfileUpdateErr)
		return nil, err
	}

	d.mu.Lock()
	d.profile = updated
	d.mu.Unlock()
	d.notifier.Success(msgProfileUpdated)
	return updated, nil
}

// Profile returns the currently held profile, or nil before Hydrate.
func (d *ProfileDispatcher) Profile() *models.UserProfile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.profile
}
