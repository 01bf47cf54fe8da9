package relevance

import (
	"sort"
	"strings"

	"signal/internal/core"
	"signal/internal/logger"
	"signal/internal/profile"
)

const (
	// A theme becomes a cross-source signal only when at least this many
	// distinct sources cover it in one batch. Single-source themes are noise.
	minClusterSources = 2

	maxSampleSources  = 4
	maxSampleArticles = 5
)

// TrendRecorder receives the per-theme source counts of each clustering
// pass. Recording is advisory telemetry: implementations must tolerate
// failure and the clusterer never lets a recorder error affect its output.
type TrendRecorder interface {
	Record(theme string, sourceCount int) error
}

// Clusterer groups a batch of articles into cross-source theme clusters and
// classifies per-article deal-relevance signals.
type Clusterer struct {
	themes map[string][]string
	deal   profile.DealKeywords
	trends TrendRecorder // optional
}

// NewClusterer builds a clusterer over the profile's theme table and deal
// keyword lists. trends may be nil.
func NewClusterer(p *profile.Profile, trends TrendRecorder) *Clusterer {
	return &Clusterer{
		themes: p.ThemeKeywords,
		deal:   p.Deal,
		trends: trends,
	}
}

// DetectCrossReferences finds every theme covered by two or more distinct
// sources in the batch, sorted by source count descending. Sources and
// Articles are capped samples for display; ArticleIDs is always the complete
// list because the scorer's boost lookup depends on it.
func (c *Clusterer) DetectCrossReferences(articles []core.Article) []core.ThemeCluster {
	var clusters []core.ThemeCluster

	for theme, keywords := range c.themes {
		var matched []core.Article
		for _, a := range articles {
			text := strings.ToLower(a.Text())
			for _, kw := range keywords {
				if strings.Contains(text, strings.ToLower(kw)) {
					matched = append(matched, a)
					break
				}
			}
		}

		sources := distinctSources(matched)
		if len(sources) < minClusterSources {
			continue
		}

		ids := make([]string, 0, len(matched))
		for _, a := range matched {
			ids = append(ids, a.ID)
		}

		clusters = append(clusters, core.ThemeCluster{
			Theme:       theme,
			Keywords:    keywords,
			SourceCount: len(sources),
			Sources:     sources[:minInt(len(sources), maxSampleSources)],
			Articles:    matched[:minInt(len(matched), maxSampleArticles)],
			ArticleIDs:  ids,
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].SourceCount != clusters[j].SourceCount {
			return clusters[i].SourceCount > clusters[j].SourceCount
		}
		return clusters[i].Theme < clusters[j].Theme
	})

	c.recordTrends(clusters)
	return clusters
}

// recordTrends appends today's counts to the rolling trend history. Any
// failure is logged and swallowed: trend history must never affect
// clustering or scoring.
func (c *Clusterer) recordTrends(clusters []core.ThemeCluster) {
	if c.trends == nil {
		return
	}
	for _, cluster := range clusters {
		if err := c.trends.Record(cluster.Theme, cluster.SourceCount); err != nil {
			logger.Debug("trend history write failed", "theme", cluster.Theme, "error", err)
		}
	}
}

// ClassifySignalType assigns exactly one signal type to an article based on
// its text and the clients already matched by the Matcher. Evaluation order
// is fixed: competitor risk outranks everything, then leadership changes,
// then regulatory and own-portfolio signals (which don't need a client),
// then opportunities, then a bare client mention, then background.
func (c *Clusterer) ClassifySignalType(text string, matchedClients []string) core.SignalType {
	text = strings.ToLower(text)
	hasClient := len(matchedClients) > 0

	switch {
	case hasClient && containsAny(text, c.deal.Competitor):
		return core.SignalRisk
	case hasClient && containsAny(text, c.deal.CSuite):
		return core.SignalRelationship
	case containsAny(text, c.deal.Regulatory):
		return core.SignalRegulatory
	case containsAny(text, c.deal.VendorProduct):
		return core.SignalVendor
	case hasClient && containsAny(text, c.deal.Opportunity):
		return core.SignalOpportunity
	case hasClient:
		return core.SignalRelationship
	default:
		return core.SignalBackground
	}
}

func distinctSources(articles []core.Article) []string {
	seen := make(map[string]bool, len(articles))
	var sources []string
	for _, a := range articles {
		if !seen[a.SourceName] {
			seen[a.SourceName] = true
			sources = append(sources, a.SourceName)
		}
	}
	return sources
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
