package pages

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"skillhub/internal/dispatch"
	"skillhub/internal/gateway"
	"skillhub/internal/models"
	"skillhub/internal/notify"
	"skillhub/internal/session"
)

// Profile is the current user's profile page. It re-fetches its own copies
// of the post, plan, and progress collections and partitions them
// client-side (mine / liked-by-me); the gateway offers no dedicated
// endpoints for those views.
type Profile struct {
	pageContext
	sess *session.Session

	ProfileDispatcher  *dispatch.ProfileDispatcher
	PostDispatcher     *dispatch.PostDispatcher
	PlanDispatcher     *dispatch.PlanDispatcher
	ProgressDispatcher *dispatch.ProgressDispatcher

	loading *loadingSet
}

// NewProfile creates the page and its dispatchers.
func NewProfile(
	parent context.Context,
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
) *Profile {
	return &Profile{
		pageContext:        newPageContext(parent),
		sess:               sess,
		ProfileDispatcher:  dispatch.NewProfileDispatcher(gw, sess, notifier, logger),
		PostDispatcher:     dispatch.NewPostDispatcher(gw, sess, notifier, logger, nil),
		PlanDispatcher:     dispatch.NewPlanDispatcher(gw, sess, notifier, logger),
		ProgressDispatcher: dispatch.NewProgressDispatcher(gw, sess, notifier, logger),
		loading:            newLoadingSet("profile", "posts", "plans", "progress"),
	}
}

// Mount hydrates the profile and fetches the four resource categories in
// parallel, each with its own loading flag so one slow fetch does not block
// the others. The first error encountered is returned, but every fetch runs
// to completion or cancellation.
func (p *Profile) Mount() error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	fetch := func(resource string, load func(context.Context) error) {
		wg.Add(1)
		p.loading.start(resource)
		go func() {
			defer wg.Done()
			defer p.loading.finish(resource)
			record(load(p.ctx))
		}()
	}

	fetch("profile", func(ctx context.Context) error {
		_, err := p.ProfileDispatcher.Hydrate(ctx)
		return err
	})
	fetch("posts", p.PostDispatcher.Load)
	fetch("plans", p.PlanDispatcher.Load)
	fetch("progress", p.ProgressDispatcher.Load)

	wg.Wait()
	return firstErr
}

// Loading reports whether a resource category is still in flight. Known
// categories: profile, posts, plans, progress.
func (p *Profile) Loading(resource string) bool {
	return p.loading.loading(resource)
}

// UserProfile returns the hydrated profile, or nil before Mount completes.
func (p *Profile) UserProfile() *models.UserProfile {
	return p.ProfileDispatcher.Profile()
}

// MyPosts returns the posts authored by the current user.
func (p *Profile) MyPosts() []*models.SkillPost {
	return p.PostDispatcher.Posts.Filter(func(post *models.SkillPost) bool {
		return p.sess.Owns(post.Author)
	})
}

// LikedPosts returns the posts whose likedBy set contains the current user.
func (p *Profile) LikedPosts() []*models.SkillPost {
	return p.PostDispatcher.Posts.Filter(func(post *models.SkillPost) bool {
		return post.LikedByUser(p.sess.UserID)
	})
}

// MyPlans returns the plans authored by the current user.
func (p *Profile) MyPlans() []*models.LearningPlan {
	return p.PlanDispatcher.Plans.Filter(func(plan *models.LearningPlan) bool {
		return p.sess.Owns(plan.Author)
	})
}

// MyProgress returns the progress updates authored by the current user.
func (p *Profile) MyProgress() []*models.LearningProgress {
	return p.ProgressDispatcher.Updates.Filter(func(update *models.LearningProgress) bool {
		return p.sess.Owns(update.Author)
	})
}

// Context returns the page's lifetime context for user-driven mutations.
func (p *Profile) Context() context.Context {
	return p.ctx
}
