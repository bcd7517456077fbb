package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"skillhub/internal/config"
	"skillhub/internal/dispatch"
	"skillhub/internal/gateway"
	"skillhub/internal/notify"
	"skillhub/internal/pages"
	"skillhub/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger.Info("Starting skillhub client")
	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Client.Environment),
		zap.String("gateway", cfg.Gateway.BaseURL),
	)

	gw := gateway.NewClient(cfg.Gateway, logger)
	notifier := notify.NewLogNotifier(logger)

	ctx := context.Background()

	// Session bootstrap; the pages cannot function without identity.
	sess, err := session.Start(ctx, gw, cfg.Gateway.LoginURL, logger)
	if err != nil {
		if session.IsLoginRequired(err) {
			fmt.Fprintf(os.Stderr, "Not signed in. Open %s to log in, then run again.\n", cfg.Gateway.LoginURL)
			os.Exit(1)
		}
		logger.Fatal("Failed to reach the gateway", zap.Error(err))
	}
	fmt.Printf("Signed in as %s <%s>\n\n", sess.Name, sess.Email)

	postConfig := dispatch.DefaultPostConfig()
	postConfig.CommentFanoutLimit = cfg.Client.CommentFanoutLimit

	// Render each page once.
	feed := pages.NewSkillSharing(ctx, gw, sess, notifier, logger, postConfig)
	defer feed.Close()
	if err := feed.Mount(); err != nil {
		logger.Warn("Skill sharing page failed to load", zap.Error(err))
	} else {
		renderFeed(feed)
	}

	plans := pages.NewLearningPlans(ctx, gw, sess, notifier, logger)
	defer plans.Close()
	if err := plans.Mount(); err != nil {
		logger.Warn("Learning plans page failed to load", zap.Error(err))
	} else {
		renderPlans(plans)
	}

	progress := pages.NewLearningProgress(ctx, gw, sess, notifier, logger)
	defer progress.Close()
	if err := progress.Mount(); err != nil {
		logger.Warn("Learning progress page failed to load", zap.Error(err))
	} else {
		renderProgress(progress)
	}

	profile := pages.NewProfile(ctx, gw, sess, notifier, logger)
	defer profile.Close()
	if err := profile.Mount(); err != nil {
		logger.Warn("Profile page failed to load", zap.Error(err))
	} else {
		renderProfile(profile)
	}

	fmt.Printf("Log out at %s\n", cfg.Gateway.LogoutURL)
}

func renderFeed(p *pages.SkillSharing) {
	posts := p.Posts()
	fmt.Printf("Skill Sharing — %d posts\n", len(posts))
	for _, post := range posts {
		owner := " "
		if p.Dispatcher.Owns(post) {
			owner = "*"
		}
		fmt.Printf("  %s %-40q by %-20s likes=%d comments=%d [%s]\n",
			owner, post.Title, post.Author.Name, post.LikeCount(),
			p.Dispatcher.Comments.CountFor(post.ID), post.Category)
	}
	fmt.Println()
}

func renderPlans(p *pages.LearningPlans) {
	plans := p.Plans()
	fmt.Printf("Learning Plans — %d plans\n", len(plans))
	for _, plan := range plans {
		fmt.Printf("  %-40q by %-20s %s, %d followers\n",
			plan.Title, plan.Author.Name, plan.Difficulty, plan.Followers)
	}
	fmt.Println()
}

func renderProgress(p *pages.LearningProgressPage) {
	updates := p.Updates()
	fmt.Printf("Learning Progress — %d updates\n", len(updates))
	for _, update := range updates {
		fmt.Printf("  %-40q by %-20s %3d%% (%s)\n",
			update.Title, update.Author.Name, update.ProgressPercent, update.Template)
	}
	fmt.Println()
}

func renderProfile(p *pages.Profile) {
	profile := p.UserProfile()
	if profile == nil {
		return
	}
	fmt.Printf("Profile — %s <%s>\n", profile.Name, profile.Email)
	if profile.Bio != "" {
		fmt.Printf("  %s\n", profile.Bio)
	}
	fmt.Printf("  posts=%d plans=%d following=%d followers=%d\n",
		profile.Stats.Posts, profile.Stats.Plans,
		profile.Stats.Following, profile.Stats.Followers)
	fmt.Printf("  mine: %d posts, %d plans, %d progress updates; liked: %d posts\n",
		len(p.MyPosts()), len(p.MyPlans()), len(p.MyProgress()), len(p.LikedPosts()))
}

// initLogger initializes the structured logger from the logging section
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zc.Level = level

	if cfg.Output != "" {
		zc.OutputPaths = []string{cfg.Output}
	}

	return zc.Build()
}
