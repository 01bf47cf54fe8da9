package relevance

import (
	"sort"
	"time"

	"signal/internal/core"
)

const (
	dailySourceCap  = 3
	weeklySourceCap = 2
)

// Categorize partitions a scored pool into the daily and weekly digest
// views. Both pools are recomputed from scratch on every call; there is no
// incremental update path. Callers must score before categorizing.
//
// Daily: sources tagged daily/both, published within the daily window,
// ordered purely by relevance, at most dailySourceCap per source.
//
// Weekly: sources tagged weekly/both, published within the weekly window,
// ordered by source priority first and relevance second (the weekly pool is
// the curated deep-read list, so editorial priority beats the algorithmic
// score), at most weeklySourceCap per source, stopping at the configured
// target size.
func Categorize(articles []core.Article, settings core.Settings, now time.Time) core.DigestPools {
	dailyCutoff := now.Add(-time.Duration(settings.DailyWindowHours) * time.Hour)
	weeklyCutoff := now.AddDate(0, 0, -settings.WeeklyWindowDays)

	var daily []core.Article
	for _, a := range articles {
		if forDaily(a.DigestType) && !a.PublishedDate.Before(dailyCutoff) {
			daily = append(daily, a)
		}
	}
	sort.SliceStable(daily, func(i, j int) bool {
		return daily[i].RelevanceScore > daily[j].RelevanceScore
	})
	daily = capPerSource(daily, dailySourceCap, 0)

	var weekly []core.Article
	for _, a := range articles {
		if forWeekly(a.DigestType) && !a.PublishedDate.Before(weeklyCutoff) {
			weekly = append(weekly, a)
		}
	}
	sort.SliceStable(weekly, func(i, j int) bool {
		if weekly[i].Priority != weekly[j].Priority {
			return weekly[i].Priority < weekly[j].Priority
		}
		return weekly[i].RelevanceScore > weekly[j].RelevanceScore
	})
	weekly = capPerSource(weekly, weeklySourceCap, settings.WeeklyArticleTarget)

	return core.DigestPools{Daily: daily, Weekly: weekly}
}

// capPerSource walks an already-sorted list admitting at most limit articles
// per source, stopping at target when target > 0. The list must be sorted
// before capping: pre-grouping by source would break the required
// relevance-then-diversity ordering.
func capPerSource(sorted []core.Article, limit, target int) []core.Article {
	counts := make(map[string]int)
	var out []core.Article
	for _, a := range sorted {
		if counts[a.SourceName] >= limit {
			continue
		}
		out = append(out, a)
		counts[a.SourceName]++
		if target > 0 && len(out) >= target {
			break
		}
	}
	return out
}

func forDaily(dt core.DigestType) bool {
	return dt == core.DigestDaily || dt == core.DigestBoth
}

func forWeekly(dt core.DigestType) bool {
	return dt == core.DigestWeekly || dt == core.DigestBoth
}
