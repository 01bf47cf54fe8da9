package handlers

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"signal/internal/config"
	"signal/internal/core"
	"signal/internal/feeds"
	"signal/internal/profile"
	"signal/internal/sources"
	"signal/internal/store"
)

// NewSourcesCmd creates the source management command
func NewSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage RSS/Atom feed sources",
		Long: `Manage the RSS/Atom sources feeding the digests.

Subcommands:
  add       Add a new source
  remove    Remove a source
  list      List all sources
  enable    Enable a source
  disable   Disable a source`,
	}

	cmd.AddCommand(newSourcesAddCmd())
	cmd.AddCommand(newSourcesRemoveCmd())
	cmd.AddCommand(newSourcesListCmd())
	cmd.AddCommand(newSourcesToggleCmd("enable", true))
	cmd.AddCommand(newSourcesToggleCmd("disable", false))

	return cmd
}

func newSourcesAddCmd() *cobra.Command {
	var (
		category   string
		priority   int
		cred       float64
		digestType string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <feed-url>",
		Short: "Add a new RSS/Atom source",
		Long: `Add a new source. The URL must serve a valid RSS or Atom feed and
must not collide with an existing source.

Examples:
  signal sources add "MAS News" https://www.mas.gov.sg/rss --category "Singapore FSI" --priority 1
  signal sources add "The Register" https://www.theregister.com/headlines.atom`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := core.Source{
				Name:        args[0],
				URL:         args[1],
				Category:    category,
				Priority:    priority,
				Credibility: cred,
				DigestType:  core.DigestType(digestType),
			}
			return withManager(func(ctx context.Context, m *sources.Manager) error {
				if err := m.Add(ctx, src); err != nil {
					return err
				}
				fmt.Printf("Added source %q\n", src.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "General", "Topical category")
	cmd.Flags().IntVar(&priority, "priority", 2, "Priority 1-3 (1 = highest)")
	cmd.Flags().Float64Var(&cred, "credibility", 0.5, "Credibility 0-1")
	cmd.Flags().StringVar(&digestType, "digest", "both", "Digest pool: daily, weekly or both")

	return cmd
}

func newSourcesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <feed-url>",
		Short: "Remove a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(ctx context.Context, m *sources.Manager) error {
				if err := m.Remove(args[0]); err != nil {
					return err
				}
				fmt.Printf("Removed source %s\n", args[0])
				return nil
			})
		},
	}
}

func newSourcesListCmd() *cobra.Command {
	var showDisabled bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(ctx context.Context, m *sources.Manager) error {
				srcs, err := m.List(profile.DefaultSources())
				if err != nil {
					return err
				}
				printSources(srcs, showDisabled)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&showDisabled, "all", false, "Show disabled sources as well")

	return cmd
}

func newSourcesToggleCmd(verb string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <feed-url>",
		Short: verb + " a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(ctx context.Context, m *sources.Manager) error {
				if err := m.Toggle(args[0], enabled); err != nil {
					return err
				}
				fmt.Printf("Source %s %sd\n", args[0], verb)
				return nil
			})
		},
	}
}

// withManager opens the store, builds a source manager and runs fn with it.
func withManager(fn func(context.Context, *sources.Manager) error) error {
	cfg := config.Get()
	st, err := store.NewStore(config.GetDataDir())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	fetcher := feeds.NewFeedManager(
		feeds.WithTimeout(cfg.FeedTimeout()),
		feeds.WithUserAgent(cfg.Feeds.UserAgent),
	)
	return fn(context.Background(), sources.NewManager(st, fetcher))
}

func printSources(srcs []core.Source, showDisabled bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tPRIORITY\tCRED\tDIGEST\tENABLED\tURL")
	for _, src := range srcs {
		if !src.Enabled && !showDisabled {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\t%t\t%s\n",
			src.Name, src.Category, src.Priority, src.Credibility, src.DigestType, src.Enabled, src.URL)
	}
	_ = w.Flush()
}
