package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"signal/internal/config"
	"signal/internal/core"
	"signal/internal/digest"
	"signal/internal/feeds"
	"signal/internal/logger"
	"signal/internal/profile"
	"signal/internal/relevance"
	"signal/internal/render"
	"signal/internal/sources"
	"signal/internal/store"
	"signal/internal/trends"
)

// NewRefreshCmd creates the refresh command
func NewRefreshCmd() *cobra.Command {
	var skipDigest bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch all sources, score articles and write today's briefings",
		Long: `Fetch every enabled source, score the articles against the interest
profile, detect cross-source signals and write the daily briefing, the
weekly digest and the signals report as markdown files.

Failed sources are skipped. The briefing uses Gemini when GEMINI_API_KEY
is set and a deterministic fallback otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd.Context(), skipDigest)
		},
	}

	cmd.Flags().BoolVar(&skipDigest, "skip-digest", false, "Skip LLM digest generation, use the basic digest")

	return cmd
}

func runRefresh(ctx context.Context, skipDigest bool) error {
	cfg := config.Get()
	log := logger.Get()

	st, err := store.NewStore(config.GetDataDir())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	prof, err := loadProfile(st)
	if err != nil {
		return err
	}

	engine, err := newEngine(prof, st)
	if err != nil {
		return err
	}

	fetcher := feeds.NewFeedManager(
		feeds.WithTimeout(cfg.FeedTimeout()),
		feeds.WithUserAgent(cfg.Feeds.UserAgent),
	)
	manager := sources.NewManager(st, fetcher)

	srcs, err := manager.List(profile.DefaultSources())
	if err != nil {
		return err
	}

	opts := sources.DefaultAggregateOptions()
	opts.MaxConcurrency = cfg.Feeds.Concurrency
	result, err := manager.Aggregate(ctx, srcs, opts)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	scored, clusters := engine.scorer.ScoreArticles(result.Articles)
	pool := relevance.TopPool(scored)
	if err := st.SaveArticles(pool); err != nil {
		log.Error("Failed to persist article pool", "error", err)
	}

	now := time.Now().UTC()
	pools := relevance.Categorize(pool, cfg.Settings(), now)

	if err := writeReports(ctx, cfg, pools, clusters, engine.tracker, now, skipDigest); err != nil {
		return err
	}

	fmt.Printf("Refreshed %d sources (%d failed), scored %d articles, %d in pool, %d signals\n",
		result.SourcesFetched, result.SourcesFailed, len(scored), len(pool), len(clusters))
	return nil
}

// engine bundles the scoring collaborators built from one profile.
type engine struct {
	scorer  *relevance.Scorer
	tracker *trends.Tracker
}

func newEngine(prof *profile.Profile, st *store.Store) (*engine, error) {
	matcher, err := relevance.NewMatcher(prof)
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	tracker := trends.NewTracker(st, nil)
	clusterer := relevance.NewClusterer(prof, tracker)
	return &engine{
		scorer:  relevance.NewScorer(prof, matcher, clusterer, nil),
		tracker: tracker,
	}, nil
}

// loadProfile returns the stored interest profile, seeding the defaults on
// first use.
func loadProfile(st *store.Store) (*profile.Profile, error) {
	prof, err := st.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if prof == nil {
		prof = profile.Default()
		if err := st.SaveProfile(prof); err != nil {
			return nil, fmt.Errorf("failed to seed default profile: %w", err)
		}
		logger.Info("Seeded default interest profile")
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return prof, nil
}

// writeReports renders and writes the daily briefing, weekly digest and
// signals report for the given pools.
func writeReports(ctx context.Context, cfg *config.Config, pools core.DigestPools, clusters []core.ThemeCluster, tracker *trends.Tracker, now time.Time, skipDigest bool) error {
	log := logger.Get()
	dateStr := now.Format("2006-01-02")

	var briefing core.Digest
	if skipDigest {
		briefing = digest.BasicDigest(pools.Daily)
	} else {
		gen, err := digest.NewGenerator(ctx, config.GetGeminiAPIKey(), config.GetGeminiModel(), cfg.GeminiTimeout())
		if err != nil {
			log.Warn("Gemini unavailable, using basic digest", "error", err)
			briefing = digest.BasicDigest(pools.Daily)
		} else {
			briefing = gen.Generate(ctx, pools.Daily)
		}
	}

	trending := make(map[string]bool, len(clusters))
	for _, cluster := range clusters {
		trending[cluster.Theme] = tracker.IsTrending(cluster.Theme)
	}

	outputs := map[string]string{
		fmt.Sprintf("daily_%s.md", dateStr):   render.RenderDaily(briefing, pools.Daily, now, cfg.Digest.DailyMinutes),
		fmt.Sprintf("weekly_%s.md", dateStr):  render.RenderWeekly(pools.Weekly, now),
		fmt.Sprintf("signals_%s.md", dateStr): render.RenderSignals(clusters, trending),
	}
	for filename, content := range outputs {
		path, err := render.WriteToFile(content, config.GetOutputDir(), filename)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}
