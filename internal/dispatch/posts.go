package dispatch

import (
	"context"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"skillhub/internal/gateway"
	"skillhub/internal/models"
	"skillhub/internal/notify"
	"skillhub/internal/session"
	"skillhub/internal/store"
)

// PostDispatcherConfig holds post dispatcher configuration
type PostDispatcherConfig struct {
	// CommentFanoutLimit bounds the concurrent per-post comment fetches on
	// Load. Posts beyond the bound fetch on first expand.
	CommentFanoutLimit int
}

// DefaultPostConfig returns default post dispatcher configuration
func DefaultPostConfig() *PostDispatcherConfig {
	return &PostDispatcherConfig{CommentFanoutLimit: 50}
}

// PostDispatcher owns the skill post page's stores and reconciles them with
// the gateway after every mutation.
type PostDispatcher struct {
	gw       *gateway.Client
	sess     *session.Session
	notifier notify.Notifier
	logger   *zap.Logger
	config   *PostDispatcherConfig

	// Posts owns the ordered post list; the comment store and both
	// view-state dictionaries are attached as companions so their key sets
	// never drift from the collection's.
	Posts         *store.Collection[*models.SkillPost]
	Comments      *store.CommentStore
	ShowComments  *store.FlagDict
	CommentDrafts *store.TextDict
}

// NewPostDispatcher creates a post dispatcher with fresh, aligned stores.
func NewPostDispatcher(
	gw *gateway.Client,
	sess *session.Session,
	notifier notify.Notifier,
	logger *zap.Logger,
	config *PostDispatcherConfig,
) *PostDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config == nil {
		config = DefaultPostConfig()
	}

	d := &PostDispatcher{
		gw:            gw,
		sess:          sess,
		notifier:      notifier,
		logger:        logger,
		config:        config,
		Posts:         store.NewCollection[*models.SkillPost](logger),
		Comments:      store.NewCommentStore(logger),
		ShowComments:  store.NewFlagDict(false),
		CommentDrafts: store.NewTextDict(),
	}
	d.Posts.Attach(d.Comments, d.ShowComments, d.CommentDrafts)
	return d
}

// Load fetches the post collection and fans out one concurrent comment fetch
// per post up to the configured bound. A failed comment fetch is logged and
// leaves that post's list for fetch-on-expand; it does not fail the page.
func (d *PostDispatcher) Load(ctx context.Context) error {
	posts, err := d.gw.ListPosts(ctx)
	if err != nil {
		d.notifier.Error(msgPostLoadErr)
		return err
	}
	d.Posts.Load(posts)

	var wg sync.WaitGroup
	for i, post := range posts {
		if i >= d.config.CommentFanoutLimit {
			break
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			d.fetchComments(ctx, id)
		}(post.ID)
	}
	wg.Wait()
	return nil
}

func (d *PostDispatcher) fetchComments(ctx context.Context, postID string) {
	comments, err := d.gw.ListComments(ctx, postID)
	if err != nil {
		d.logger.Warn("failed to load comments",
			zap.String("post_id", postID),
			zap.Error(err),
		)
		return
	}
	d.Comments.LoadFor(postID, comments)
}

// Create validates the dialog form, creates the post, and appends the
// server's returned post (the trusted update source) with an empty comment
// list and collapsed view-state.
func (d *PostDispatcher) Create(ctx context.Context, form *models.PostForm, image io.Reader, imageName string) (*models.SkillPost, error) {
	if errs := models.Validate(form); errs.HasErrors() {
		d.notifier.Error(errs.Error())
		return nil, errs
	}

	created, err := d.gw.CreatePost(ctx, form, image, imageName)
	if err != nil {
		d.notifier.Error(msgPostCreateErr)
		return nil, err
	}

	d.Posts.Append(created)
	d.Comments.LoadFor(created.ID, nil)
	d.notifier.Success(msgPostCreated)
	return created, nil
}

// Update applies the edit dialog form and substitutes the updated post in
// place.
func (d *PostDispatcher) Update(ctx context.Context, id string, form *models.PostForm) (*models.SkillPost, error) {
	if errs := models.Validate(form); errs.HasErrors() {
		d.notifier.Error(errs.Error())
		return nil, errs
	}

	updated, err := d.gw.UpdatePost(ctx, id, form)
	if err != nil {
		d.notifier.Error(msgPostUpdateErr)
		return nil, err
	}

	if err := d.Posts.Replace(id, updated); err != nil {
		d.notifier.Error(msgPostUpdateErr)
		return nil, err
	}
	d.notifier.Success(msgPostUpdated)
	return updated, nil
}

// Delete removes the post; the attached companions drop its comment list
// and view-state entries in the same step.
func (d *PostDispatcher) Delete(ctx context.Context, id string) error {
	if err := d.gw.DeletePost(ctx, id); err != nil {
		d.notifier.Error(msgPostDeleteErr)
		return err
	}

	d.Posts.Remove(id)
	d.notifier.Success(msgPostDeleted)
	return nil
}

// ToggleLike flips the current user's like and replaces the post's likedBy
// set with the server's authoritative response. The client never keeps its
// own guess: overlapping toggles resolve as last response received wins.
func (d *PostDispatcher) ToggleLike(ctx context.Context, postID string) error {
	like, err := d.gw.ToggleLike(ctx, postID)
	if err != nil {
		d.notifier.Error(msgLikeErr)
		return err
	}

	post, ok := d.Posts.Get(postID)
	if !ok {
		d.logger.Error("like toggled on unknown post", zap.String("post_id", postID))
		return nil
	}
	updated := *post
	updated.LikedBy = like.LikedBy
	return d.Posts.Replace(postID, &updated)
}

// ToggleComments flips the comment panel and lazily fetches the list the
// first time a post is expanded.
func (d *PostDispatcher) ToggleComments(ctx context.Context, postID string) bool {
	visible := d.ShowComments.Toggle(postID)
	if visible && !d.Comments.Has(postID) {
		d.fetchComments(ctx, postID)
	}
	return visible
}

// AddComment submits the post's draft buffer as a new comment and clears the
// buffer on success.
func (d *PostDispatcher) AddComment(ctx context.Context, postID string) (*models.Comment, error) {
	form := &models.CommentForm{Content: strings.TrimSpace(d.CommentDrafts.Get(postID))}
	if form.Content == "" {
		d.notifier.Error(msgCommentEmpty)
		return nil, models.ValidationErrors{{Field: "content", Message: "is required", Code: "REQUIRED"}}
	}

	created, err := d.gw.AddComment(ctx, postID, form)
	if err != nil {
		d.notifier.Error(msgCommentAddErr)
		return nil, err
	}

	d.Comments.AppendFor(postID, created)
	d.CommentDrafts.Clear(postID)
	d.notifier.Success(msgCommentAdded)
	return created, nil
}

// EditComment rewrites a comment's content. The server's 403 is the
// authoritative ownership deny and takes the specific not-authorized path;
// hiding the edit control client-side is a convenience, not the boundary.
func (d *PostDispatcher) EditComment(ctx context.Context, postID, commentID, content string) (*models.Comment, error) {
	form := &models.CommentForm{Content: strings.TrimSpace(content)}
	if form.Content == "" {
		d.notifier.Error(msgCommentEmpty)
		return nil, models.ValidationErrors{{Field: "content", Message: "is required", Code: "REQUIRED"}}
	}

	updated, err := d.gw.UpdateComment(ctx, commentID, form)
	if err != nil {
		if gateway.IsForbidden(err) {
			d.notifier.Error(msgCommentEditDenied)
		} else {
			d.notifier.Error(msgCommentUpdateErr)
		}
		return nil, err
	}

	if err := d.Comments.ReplaceIn(postID, commentID, updated); err != nil {
		d.notifier.Error(msgCommentUpdateErr)
		return nil, err
	}
	d.notifier.Success(msgCommentUpdated)
	return updated, nil
}

// DeleteComment removes a comment, mapping the server's 403 to the specific
// not-authorized notification.
func (d *PostDispatcher) DeleteComment(ctx context.Context, postID, commentID string) error {
	if err := d.gw.DeleteComment(ctx, commentID); err != nil {
		if gateway.IsForbidden(err) {
			d.notifier.Error(msgCommentDropDenied)
		} else {
			d.notifier.Error(msgCommentDeleteErr)
		}
		return err
	}

	d.Comments.RemoveFrom(postID, commentID)
	d.notifier.Success(msgCommentDeleted)
	return nil
}

// Owns reports whether the session owns the post. Display gating only.
func (d *PostDispatcher) Owns(post *models.SkillPost) bool {
	return d.sess != nil && d.sess.Owns(post.Author)
}

// OwnsComment reports whether the session owns the comment. Display gating
// only.
func (d *PostDispatcher) OwnsComment(comment *models.Comment) bool {
	return d.sess != nil && d.sess.Owns(comment.Author)
}
