package handlers

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"signal/internal/config"
	"signal/internal/relevance"
	"signal/internal/store"
)

// NewDigestCmd creates the digest command
func NewDigestCmd() *cobra.Command {
	var skipDigest bool

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Regenerate briefings from the last scored pool",
		Long: `Regenerate the daily briefing and weekly digest from the article pool
saved by the last refresh, without refetching any feeds. Useful for
retrying after an LLM failure or after changing digest settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, skipDigest)
		},
	}

	cmd.Flags().BoolVar(&skipDigest, "skip-digest", false, "Skip LLM digest generation, use the basic digest")

	return cmd
}

func runDigest(cmd *cobra.Command, skipDigest bool) error {
	cfg := config.Get()

	st, err := store.NewStore(config.GetDataDir())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	pool, err := st.LoadArticles()
	if err != nil {
		return fmt.Errorf("failed to load article pool: %w", err)
	}
	if len(pool) == 0 {
		return fmt.Errorf("no scored articles found, run 'signal refresh' first")
	}

	prof, err := loadProfile(st)
	if err != nil {
		return err
	}
	engine, err := newEngine(prof, st)
	if err != nil {
		return err
	}

	// Clusters are recomputed from the stored pool so the signals report
	// stays consistent with the rendered digests.
	scored, clusters := engine.scorer.ScoreArticles(pool)
	now := time.Now().UTC()
	pools := relevance.Categorize(scored, cfg.Settings(), now)

	return writeReports(cmd.Context(), cfg, pools, clusters, engine.tracker, now, skipDigest)
}
