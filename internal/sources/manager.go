// Package sources provides feed source management and aggregation
package sources

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"signal/internal/core"
	"signal/internal/logger"
)

// Store persists the configured source list.
type Store interface {
	SaveSources(sources []core.Source) error
	LoadSources() ([]core.Source, error)
}

// Fetcher fetches one source's feed. Satisfied by feeds.FeedManager.
type Fetcher interface {
	FetchArticles(ctx context.Context, source core.Source) ([]core.Article, error)
	ValidateFeedURL(ctx context.Context, feedURL string) error
}

// Manager handles feed source management and article discovery
type Manager struct {
	store   Store
	fetcher Fetcher
	log     *slog.Logger
}

// NewManager creates a new source manager
func NewManager(store Store, fetcher Fetcher) *Manager {
	return &Manager{
		store:   store,
		fetcher: fetcher,
		log:     logger.Get(),
	}
}

// List returns all configured sources, seeding defaults on first use.
func (m *Manager) List(defaults []core.Source) ([]core.Source, error) {
	sources, err := m.store.LoadSources()
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}
	if len(sources) == 0 && len(defaults) > 0 {
		if err := m.store.SaveSources(defaults); err != nil {
			return nil, fmt.Errorf("failed to seed default sources: %w", err)
		}
		m.log.Info("Seeded default sources", "count", len(defaults))
		return defaults, nil
	}
	return sources, nil
}

// Add registers a new source. The URL must not collide with an existing
// source (compared case-insensitively) and must serve a parseable feed.
func (m *Manager) Add(ctx context.Context, source core.Source) error {
	if source.Name == "" || source.URL == "" {
		return fmt.Errorf("source name and URL are required")
	}

	sources, err := m.store.LoadSources()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}
	for _, existing := range sources {
		if strings.EqualFold(existing.URL, source.URL) {
			return fmt.Errorf("source already exists with URL: %s", existing.URL)
		}
	}

	if err := m.fetcher.ValidateFeedURL(ctx, source.URL); err != nil {
		return fmt.Errorf("failed to validate feed: %w", err)
	}

	if source.Priority < 1 || source.Priority > 3 {
		source.Priority = 2
	}
	if source.Credibility <= 0 || source.Credibility > 1 {
		source.Credibility = 0.5
	}
	if source.DigestType == "" {
		source.DigestType = core.DigestBoth
	}
	source.Enabled = true

	sources = append(sources, source)
	if err := m.store.SaveSources(sources); err != nil {
		return fmt.Errorf("failed to store source: %w", err)
	}

	m.log.Info("Added new source", "name", source.Name, "url", source.URL)
	return nil
}

// Remove deletes a source by URL
func (m *Manager) Remove(sourceURL string) error {
	sources, err := m.store.LoadSources()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}

	kept := sources[:0]
	removed := false
	for _, src := range sources {
		if strings.EqualFold(src.URL, sourceURL) {
			removed = true
			continue
		}
		kept = append(kept, src)
	}
	if !removed {
		return fmt.Errorf("source not found: %s", sourceURL)
	}

	if err := m.store.SaveSources(kept); err != nil {
		return fmt.Errorf("failed to store sources: %w", err)
	}
	m.log.Info("Removed source", "url", sourceURL)
	return nil
}

// Toggle enables or disables a source
func (m *Manager) Toggle(sourceURL string, enabled bool) error {
	sources, err := m.store.LoadSources()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}

	found := false
	for i := range sources {
		if strings.EqualFold(sources[i].URL, sourceURL) {
			sources[i].Enabled = enabled
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("source not found: %s", sourceURL)
	}

	if err := m.store.SaveSources(sources); err != nil {
		return fmt.Errorf("failed to store sources: %w", err)
	}
	m.log.Info("Toggled source", "url", sourceURL, "enabled", enabled)
	return nil
}

// AggregateOptions configures the aggregation process
type AggregateOptions struct {
	MaxConcurrency int           // Number of feeds to fetch concurrently
	Timeout        time.Duration // Timeout for the entire aggregation
}

// DefaultAggregateOptions returns sensible defaults
func DefaultAggregateOptions() AggregateOptions {
	return AggregateOptions{
		MaxConcurrency: 5,
		Timeout:        10 * time.Minute,
	}
}

// AggregateResult contains aggregation statistics
type AggregateResult struct {
	Articles          []core.Article
	SourcesFetched    int
	SourcesFailed     int
	DuplicateArticles int
	Errors            []error
}

// Aggregate fetches articles from all enabled sources concurrently. A failed
// source is recorded and skipped, never fatal. Duplicate URLs across sources
// are dropped so the same story is only scored once.
func (m *Manager) Aggregate(ctx context.Context, sources []core.Source, opts AggregateOptions) (*AggregateResult, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if opts.MaxConcurrency < 1 {
		opts.MaxConcurrency = 1
	}

	var enabled []core.Source
	for _, src := range sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}
	if len(enabled) == 0 {
		m.log.Warn("No enabled sources found")
		return &AggregateResult{}, nil
	}

	m.log.Info("Starting aggregation", "source_count", len(enabled), "max_concurrency", opts.MaxConcurrency)

	result := &AggregateResult{}
	sem := make(chan struct{}, opts.MaxConcurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, src := range enabled {
		select {
		case <-ctx.Done():
			m.log.Warn("Aggregation cancelled", "reason", ctx.Err())
			return result, ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{} // Acquire semaphore

		go func(s core.Source) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore

			articles, err := m.fetcher.FetchArticles(ctx, s)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				m.log.Error("Failed to fetch source", "source", s.Name, "error", err)
				result.SourcesFailed++
				result.Errors = append(result.Errors, fmt.Errorf("source %s: %w", s.Name, err))
				return
			}
			result.SourcesFetched++
			result.Articles = append(result.Articles, articles...)
		}(src)
	}

	wg.Wait()

	result.Articles, result.DuplicateArticles = dedupeByURL(result.Articles)

	m.log.Info("Aggregation completed",
		"fetched", result.SourcesFetched,
		"failed", result.SourcesFailed,
		"articles", len(result.Articles),
		"duplicates", result.DuplicateArticles,
	)

	return result, nil
}

// dedupeByURL drops articles whose URL was already seen, keeping a stable
// order so repeated runs over the same batch produce identical output.
func dedupeByURL(articles []core.Article) ([]core.Article, int) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].URL < articles[j].URL
	})

	seen := make(map[string]bool, len(articles))
	unique := articles[:0]
	dropped := 0
	for _, a := range articles {
		key := strings.ToLower(a.URL)
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true
		unique = append(unique, a)
	}
	return unique, dropped
}
