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

// PlanDispatcher owns the learning plan page's stores.
type PlanDispatcher struct {
	gw       *gateway.Client
	sess     *session.Session
	notifier notify.Notifier
	logger   *zap.Logger

	Plans    *store.Collection[*models.LearningPlan]
	Expanded *store.FlagDict
}

// NewPlanDispatcher creates a plan dispatcher with fresh, aligned stores.
func NewPlanDispatcher(
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
) *PlanDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &PlanDispatcher{
		gw:       gw,
		sess:     sess,
		notifier: notifier,
		logger:   logger,
		Plans:    store.NewCollection[*models.LearningPlan](logger),
		Expanded: store.NewFlagDict(false),
	}
	d.Plans.Attach(d.Expanded)
	return d
}

// Load fetches the plan collection; every card starts collapsed.
func (d *PlanDispatcher) Load(ctx context.Context) error {
	plans, err := d.gw.ListPlans(ctx)
	if err != nil {
		d.notifier.Error(msgPlanLoadErr)
		return err
	}
	d.Plans.Load(plans)
	return nil
}

// Create publishes a new plan and appends the server's returned plan.
func (d *PlanDispatcher) Create(ctx context.Context, form *models.PlanForm) (*models.LearningPlan, error) {
	if errs := models.Validate(form); errs.HasErrors() {
		d.notifier.Error(errs.Error())
		return nil, errs
	}

	created, err := d.gw.CreatePlan(ctx, form)
	if err != nil {
		d.notifier.Error(msgPlanCreateErr)
		return nil, err
	}

	d.Plans.Append(created)
	d.notifier.Success(msgPlanCreated)
	return created, nil
}

// Update applies the edit dialog form in place.
func (d *PlanDispatcher) Update(ctx context.Context, id string, form *models.PlanForm) (*models.LearningPlan, error) {
	if errs := models.Validate(form); errs.HasErrors() {
		d.notifier.Error(errs.Error())
		return nil, errs
	}

	updated, err := d.gw.UpdatePlan(ctx, id, form)
	if err != nil {
		d.notifier.Error(msgPlanUpdateErr)
		return nil, err
	}

	if err := d.Plans.Replace(id, updated); err != nil {
		d.notifier.Error(msgPlanUpdateErr)
		return nil, err
	}
	d.notifier.Success(msgPlanUpdated)
	return updated, nil
}

// Delete removes the plan and its view-state entry in the same step.
func (d *PlanDispatcher) Delete(ctx context.Context, id string) error {
	if err := d.gw.DeletePlan(ctx, id); err != nil {
		d.notifier.Error(msgPlanDeleteErr)
		return err
	}

	d.Plans.Remove(id)
	d.notifier.Success(msgPlanDeleted)
	return nil
}

// Toggle flips a plan card's expanded state.
func (d *PlanDispatcher) Toggle(id string) bool {
	return d.Expanded.Toggle(id)
}

// Owns reports whether the session owns the plan. Display gating only.
func (d *PlanDispatcher) Owns(plan *models.LearningPlan) bool {
	return d.sess != nil && d.sess.Owns(plan.Author)
}
