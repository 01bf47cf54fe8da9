package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"signal/internal/config"
	"signal/internal/render"
	"signal/internal/store"
)

// NewSignalsCmd creates the signals command
func NewSignalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signals",
		Short: "Show cross-source signals from the last scored pool",
		Long: `Detect themes covered by two or more distinct sources in the article
pool saved by the last refresh and print them, marking themes with a
sustained multi-day run as trending.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignals()
		},
	}
}

func runSignals() error {
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

	_, clusters := engine.scorer.ScoreArticles(pool)
	trending := make(map[string]bool, len(clusters))
	for _, cluster := range clusters {
		trending[cluster.Theme] = engine.tracker.IsTrending(cluster.Theme)
	}

	fmt.Print(render.RenderSignals(clusters, trending))
	return nil
}
