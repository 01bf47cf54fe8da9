package relevance

import (
	"math"
	"sort"
	"strings"
	"time"

	"signal/internal/core"
	"signal/internal/profile"
)

const (
	baseScore = 0.20

	maxCrossRefBoost        = 0.30
	maxCrossRefPerCluster   = 0.15
	crossRefPerSourceWeight = 0.05

	maxDealBoost = 0.40

	// Reading speed used for the estimate, words per minute.
	readingWPM        = 150
	minReadingMinutes = 1
	maxReadingMinutes = 10

	// Post-scoring pool shaping: articles below the floor are dropped and
	// only the top slice is kept for categorization.
	minPoolScore = 0.1
	maxPoolSize  = 200
)

// Scorer combines source trust, recency, entity matches, cross-source
// coverage and deal-relevance keywords into one bounded relevance score per
// article. Scoring is a pure function of (batch, profile, now); the only
// side effect is the clusterer's advisory trend recording.
type Scorer struct {
	matcher   *Matcher
	clusterer *Clusterer
	profile   *profile.Profile
	now       func() time.Time
}

// NewScorer wires a scorer from its parts. now may be nil, in which case
// time.Now is used; tests inject a fixed clock for determinism.
func NewScorer(p *profile.Profile, matcher *Matcher, clusterer *Clusterer, now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{
		matcher:   matcher,
		clusterer: clusterer,
		profile:   p,
		now:       now,
	}
}

// ScoreArticles scores and tags a whole batch. Cross-reference clusters are
// computed once for the batch, never per article. The returned slice is the
// input slice with derived fields populated, plus the cluster list for
// rendering. Articles missing both title and summary keep their non-text
// score terms; a bad article never aborts the batch.
func (s *Scorer) ScoreArticles(articles []core.Article) ([]core.Article, []core.ThemeCluster) {
	clusters := s.clusterer.DetectCrossReferences(articles)
	now := s.now()

	for i := range articles {
		s.scoreArticle(&articles[i], clusters, now)
	}
	return articles, clusters
}

// scoreArticle applies the scoring pipeline in its fixed order. The category
// weight is multiplicative and sits between the trust terms and the recency
// term, so it scales source trust but not recency or entity boosts.
func (s *Scorer) scoreArticle(a *core.Article, clusters []core.ThemeCluster, now time.Time) {
	text := strings.ToLower(a.Text())

	score := baseScore

	switch a.Priority {
	case 1:
		score += 0.20
	case 2:
		score += 0.10
	}

	score += (a.Credibility - 0.5) * 0.4

	score *= s.profile.CategoryWeight(a.Category)

	score += recencyBoost(a.PublishedDate, now)

	matchable := strings.TrimSpace(text) != ""

	if matchable {
		if ind := s.matcher.DetectIndustry(text); ind != nil {
			score += industryTierBoost(ind.Tier)
			a.MatchedIndustry = ind.Name
		}

		clients := s.matcher.DetectAllClients(text)
		if len(clients) > 0 {
			a.MatchedClient = clients[0]
			a.AllMatchedClients = clients
			score += clientTierBoost(s.profile.ClientTier(clients[0]))
		}

		score += crossRefBoost(a.ID, clusters)
		score += s.dealBoost(text, a.AllMatchedClients)
		a.SignalType = s.clusterer.ClassifySignalType(text, a.AllMatchedClients)
	} else {
		a.SignalType = core.SignalBackground
	}

	a.RelevanceScore = math.Min(1.0, score)
	a.ReadingMinutes = estimateReadingMinutes(a.Summary)
}

// dealBoost computes the deal-relevance term. The client co-occurrence rules
// are exclusive (first match wins); the regulatory and own-portfolio terms
// stack independently. The total is clamped to maxDealBoost.
func (s *Scorer) dealBoost(text string, matchedClients []string) float64 {
	deal := s.profile.Deal
	hasClient := len(matchedClients) > 0

	boost := 0.0
	switch {
	case hasClient && containsAny(text, deal.Competitor):
		boost += 0.35
	case hasClient && containsAny(text, deal.CSuite):
		boost += 0.30
	case hasClient && containsAny(text, deal.Opportunity):
		boost += 0.20
	}
	if containsAny(text, deal.Regulatory) {
		boost += 0.25
	}
	if containsAny(text, deal.VendorProduct) {
		boost += 0.15
	}

	return math.Min(maxDealBoost, boost)
}

// recencyBoost rewards breaking coverage in stepped buckets and nothing
// beyond a day. A zero or future publish date gets no boost.
func recencyBoost(published, now time.Time) float64 {
	if published.IsZero() || published.After(now) {
		return 0
	}
	age := now.Sub(published)
	switch {
	case age < 4*time.Hour:
		return 0.12
	case age < 8*time.Hour:
		return 0.08
	case age < 12*time.Hour:
		return 0.05
	case age < 24*time.Hour:
		return 0.02
	default:
		return 0
	}
}

func industryTierBoost(tier int) float64 {
	switch tier {
	case 1:
		return 0.30
	case 2:
		return 0.20
	case 3:
		return 0.10
	default:
		return 0
	}
}

func clientTierBoost(tier int) float64 {
	switch tier {
	case 1:
		return 0.35
	case 2:
		return 0.25
	case 3:
		return 0.15
	default:
		// Tier unknown (e.g. migrated legacy client): middle boost.
		return 0.25
	}
}

// crossRefBoost sums the per-cluster contribution for every cluster holding
// this article, each capped, then clamps the total. The lookup walks the
// complete ArticleIDs lists; the capped display samples must never be used
// here.
func crossRefBoost(articleID string, clusters []core.ThemeCluster) float64 {
	boost := 0.0
	for _, cluster := range clusters {
		for _, id := range cluster.ArticleIDs {
			if id == articleID {
				boost += math.Min(maxCrossRefPerCluster, float64(cluster.SourceCount)*crossRefPerSourceWeight)
				break
			}
		}
	}
	return math.Min(maxCrossRefBoost, boost)
}

func estimateReadingMinutes(summary string) int {
	words := len(strings.Fields(summary))
	minutes := int(math.Ceil(float64(words) / readingWPM))
	if minutes < minReadingMinutes {
		return minReadingMinutes
	}
	if minutes > maxReadingMinutes {
		return maxReadingMinutes
	}
	return minutes
}

// TopPool filters a scored batch down to the working article pool: drops
// everything under the relevance floor, sorts by score descending and keeps
// the top slice. Sorting is stable so equal scores keep batch order.
func TopPool(articles []core.Article) []core.Article {
	pool := make([]core.Article, 0, len(articles))
	for _, a := range articles {
		if a.RelevanceScore >= minPoolScore {
			pool = append(pool, a)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].RelevanceScore > pool[j].RelevanceScore
	})
	if len(pool) > maxPoolSize {
		pool = pool[:maxPoolSize]
	}
	return pool
}
