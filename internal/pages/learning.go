package pages

import (
	"context"

	"go.uber.org/zap"

	"skillhub/internal/dispatch"
	"skillhub/internal/gateway"
	"skillhub/internal/models"
	"skillhub/internal/notify"
	"skillhub/internal/session"
)

// LearningPlans is the published plans page.
type LearningPlans struct {
	pageContext
	Dispatcher *dispatch.PlanDispatcher
	loading    *loadingSet
}

// NewLearningPlans creates the page and its dispatcher.
func NewLearningPlans(
	parent context.Context,
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
) *LearningPlans {
	return &LearningPlans{
		pageContext: newPageContext(parent),
		Dispatcher:  dispatch.NewPlanDispatcher(gw, sess, notifier, logger),
		loading:     newLoadingSet("plans"),
	}
}

// Mount fetches the plan list under the page context.
func (p *LearningPlans) Mount() error {
	p.loading.start("plans")
	defer p.loading.finish("plans")
	return p.Dispatcher.Load(p.ctx)
}

// Loading reports whether the plan fetch is still in flight.
func (p *LearningPlans) Loading() bool {
	return p.loading.loading("plans")
}

// Plans returns the rendered plan order.
func (p *LearningPlans) Plans() []*models.LearningPlan {
	return p.Dispatcher.Plans.Snapshot()
}

// Context returns the page's lifetime context for user-driven mutations.
func (p *LearningPlans) Context() context.Context {
	return p.ctx
}

// LearningProgressPage is the progress updates page.
type LearningProgressPage struct {
	pageContext
	Dispatcher *dispatch.ProgressDispatcher
	loading    *loadingSet
}

// NewLearningProgress creates the page and its dispatcher.
func NewLearningProgress(
	parent context.Context,
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
) *LearningProgressPage {
	return &LearningProgressPage{
		pageContext: newPageContext(parent),
		Dispatcher:  dispatch.NewProgressDispatcher(gw, sess, notifier, logger),
		loading:     newLoadingSet("progress"),
	}
}

// Mount fetches the progress list under the page context.
func (p *LearningProgressPage) Mount() error {
	p.loading.start("progress")
	defer p.loading.finish("progress")
	return p.Dispatcher.Load(p.ctx)
}

// Loading reports whether the progress fetch is still in flight.
func (p *LearningProgressPage) Loading() bool {
	return p.loading.loading("progress")
}

// Updates returns the rendered progress order.
func (p *LearningProgressPage) Updates() []*models.LearningProgress {
	return p.Dispatcher.Updates.Snapshot()
}

// Context returns the page's lifetime context for user-driven mutations.
func (p *LearningProgressPage) Context() context.Context {
	return p.ctx
}
