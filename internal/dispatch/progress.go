package dispatch

import (
	"context"

	"go.uber.org/zap"

	"skillhub/internal/gateway"
	"skillhub/internal/models"
	"skillhub/internal/notify"
	"skillhub/internal/session"
	"skillhub/internal/store"
)

// ProgressDispatcher owns the learning progress page's stores.
type ProgressDispatcher struct {
	gw       *gateway.Client
	sess     *session.Session
	notifier notify.Notifier
	logger   *zap.Logger

	Updates  *store.Collection[*models.LearningProgress]
	Expanded *store.FlagDict
}

// NewProgressDispatcher creates a progress dispatcher with fresh, aligned
// stores.
func NewProgressDispatcher(
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
) *ProgressDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &ProgressDispatcher{
		gw:       gw,
		sess:     sess,
		notifier: notifier,
		logger:   logger,
		Updates:  store.NewCollection[*models.LearningProgress](logger),
		Expanded: store.NewFlagDict(false),
	}
	d.Updates.Attach(d.Expanded)
	return d
}

// Load fetches the progress collection; every card starts collapsed.
func (d *ProgressDispatcher) Load(ctx context.Context) error {
	updates, err := d.gw.ListProgress(ctx)
	if err != nil {
		d.notifier.Error(msgProgressLoadErr)
		return err
	}
	d.Updates.Load(updates)
	return nil
}

// Create publishes a new progress update and appends the server's returned
// record.
func (d *ProgressDispatcher) Create(ctx context.Context, form *models.ProgressForm) (*models.LearningProgress, error) {
	if errs := models.Validate(form); errs.HasErrors() {
		d.notifier.Error(errs.Error())
		return nil, errs
	}

	created, err := d.gw.CreateProgress(ctx, form)
	if err != nil {
		d.notifier.Error(msgProgressCreateErr)
		return nil, err
	}

	d.Updates.Append(created)
	d.notifier.Success(msgProgressCreated)
	return created, nil
}

// Update applies the edit dialog form in place; only the edited entity
// changes, sibling entries are untouched.
func (d *ProgressDispatcher) Update(ctx context.Context, id string, form *models.ProgressForm) (*models.LearningProgress, error) {
	if errs := models.Validate(form); errs.HasErrors() {
		d.notifier.Error(errs.Error())
		return nil, errs
	}

	updated, err := d.gw.UpdateProgress(ctx, id, form)
	if err != nil {
		d.notifier.Error(msgProgressUpdateErr)
		return nil, err
	}

	if err := d.Updates.Replace(id, updated); err != nil {
		d.notifier.Error(msgProgressUpdateErr)
		return nil, err
	}
	d.notifier.Success(msgProgressUpdated)
	return updated, nil
}

// Delete removes the update and its view-state entry in the same step.
func (d *ProgressDispatcher) Delete(ctx context.Context, id string) error {
	if err := d.gw.DeleteProgress(ctx, id); err != nil {
		d.notifier.Error(msgProgressDeleteErr)
		return err
	}

	d.Updates.Remove(id)
	d.notifier.Success(msgProgressDeleted)
	return nil
}

// Toggle flips a progress card's expanded state.
func (d *ProgressDispatcher) Toggle(id string) bool {
	return d.Expanded.Toggle(id)
}

// Owns reports whether the session owns the update. Display gating only.
func (d *ProgressDispatcher) Owns(update *models.LearningProgress) bool {
	return d.sess != nil && d.sess.Owns(update.Author)
}
