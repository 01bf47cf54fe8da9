// Package feeds provides RSS/Atom feed fetching and normalization
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"signal/internal/core"
)

const maxSummaryLength = 500

// FeedManager fetches feeds and converts their items into articles
type FeedManager struct {
	parser    *gofeed.Parser
	timeout   time.Duration
	userAgent string
}

// Option configures a FeedManager
type Option func(*FeedManager)

// WithTimeout sets the per-feed fetch timeout
func WithTimeout(d time.Duration) Option {
	return func(fm *FeedManager) {
		if d > 0 {
			fm.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent to feed servers
func WithUserAgent(ua string) Option {
	return func(fm *FeedManager) {
		if ua != "" {
			fm.userAgent = ua
		}
	}
}

// NewFeedManager creates a new feed manager
func NewFeedManager(opts ...Option) *FeedManager {
	fm := &FeedManager{
		parser:    gofeed.NewParser(),
		timeout:   10 * time.Second,
		userAgent: "Signal RSS Reader/1.0",
	}
	for _, opt := range opts {
		opt(fm)
	}
	fm.parser.UserAgent = fm.userAgent
	fm.parser.Client = &http.Client{Timeout: fm.timeout}
	return fm
}

// FetchArticles fetches one source's feed and returns its items as articles.
// Items without a title or link are skipped rather than failing the fetch.
func (fm *FeedManager) FetchArticles(ctx context.Context, source core.Source) ([]core.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, fm.timeout)
	defer cancel()

	feed, err := fm.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %q: %w", source.Name, err)
	}

	var articles []core.Article
	for _, item := range feed.Items {
		if item == nil || item.Title == "" || item.Link == "" {
			continue
		}
		articles = append(articles, core.Article{
			ID:            generateArticleID(item.Link),
			Title:         strings.TrimSpace(item.Title),
			URL:           item.Link,
			Summary:       cleanSummary(itemSummary(item)),
			SourceName:    source.Name,
			Category:      source.Category,
			Priority:      source.Priority,
			Credibility:   source.Credibility,
			DigestType:    source.DigestType,
			PublishedDate: itemPublished(item),
		})
	}
	return articles, nil
}

// ValidateFeedURL checks that a URL serves a parseable feed
func (fm *FeedManager) ValidateFeedURL(ctx context.Context, feedURL string) error {
	ctx, cancel := context.WithTimeout(ctx, fm.timeout)
	defer cancel()

	if _, err := fm.parser.ParseURLWithContext(feedURL, ctx); err != nil {
		return fmt.Errorf("invalid feed URL: %w", err)
	}
	return nil
}

// generateArticleID creates a deterministic ID for an article based on its URL
func generateArticleID(link string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String()
}

// itemSummary picks the best available body text for an item
func itemSummary(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

// itemPublished normalizes an item's publication time to UTC
func itemPublished(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Time{}
}

// cleanSummary strips HTML markup and truncates to a readable excerpt
func cleanSummary(raw string) string {
	text := raw
	if strings.Contains(raw, "<") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			text = doc.Text()
		}
	}
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxSummaryLength {
		text = text[:maxSummaryLength]
		if idx := strings.LastIndex(text, " "); idx > 0 {
			text = text[:idx]
		}
		text += "..."
	}
	return text
}
