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

// SkillSharing is the post feed page.
type SkillSharing struct {
	pageContext
	Dispatcher *dispatch.PostDispatcher
	loading    *loadingSet
}

// NewSkillSharing creates the page and its dispatcher.
func NewSkillSharing(
	parent context.Context,
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
	config *dispatch.PostDispatcherConfig,
) *SkillSharing {
	return &SkillSharing{
		pageContext: newPageContext(parent),
		Dispatcher:  dispatch.NewPostDispatcher(gw, sess, notifier, logger, config),
		loading:     newLoadingSet("posts"),
	}
}

// Mount fetches the post list (and its comment fan-out) under the page
// context.
func (p *SkillSharing) Mount() error {
	p.loading.start("posts")
	defer p.loading.finish("posts")
	return p.Dispatcher.Load(p.ctx)
}

// Loading reports whether the post fetch is still in flight.
func (p *SkillSharing) Loading() bool {
	return p.loading.loading("posts")
}

// Posts returns the rendered post order.
func (p *SkillSharing) Posts() []*models.SkillPost {
	return p.Dispatcher.Posts.Snapshot()
}

// Context returns the page's lifetime context for user-driven mutations.
func (p *SkillSharing) Context() context.Context {
	return p.ctx
}
