package relevance

import (
	"fmt"
	"testing"
	"time"

	"signal/internal/core"
)

func poolArticle(id, source string, dt core.DigestType, score float64, priority int, age time.Duration) core.Article {
	return core.Article{
		ID:             id,
		SourceName:     source,
		DigestType:     dt,
		RelevanceScore: score,
		Priority:       priority,
		PublishedDate:  testNow.Add(-age),
	}
}

func TestCategorizeDailySourceCap(t *testing.T) {
	// Five articles from one source: only the top three survive, and they
	// must be the three highest scoring ones.
	var articles []core.Article
	for i := 0; i < 5; i++ {
		articles = append(articles, poolArticle(
			fmt.Sprintf("a%d", i), "Feed A", core.DigestDaily,
			0.9-0.1*float64(i), 2, time.Hour))
	}
	articles = append(articles, poolArticle("b1", "Feed B", core.DigestDaily, 0.3, 2, time.Hour))

	pools := Categorize(articles, core.DefaultSettings(), testNow)
	if len(pools.Daily) != 4 {
		t.Fatalf("Expected 4 daily articles, got %d", len(pools.Daily))
	}

	fromA := 0
	for _, a := range pools.Daily {
		if a.SourceName == "Feed A" {
			fromA++
		}
	}
	if fromA != 3 {
		t.Errorf("Expected 3 articles from Feed A, got %d", fromA)
	}
	// The capped-out articles are the two lowest scorers.
	for _, a := range pools.Daily {
		if a.ID == "a3" || a.ID == "a4" {
			t.Errorf("Low scorer %s should have been capped out", a.ID)
		}
	}
}

func TestCategorizeDailyWindow(t *testing.T) {
	articles := []core.Article{
		poolArticle("fresh", "Feed A", core.DigestDaily, 0.5, 2, 24*time.Hour),
		poolArticle("stale", "Feed B", core.DigestDaily, 0.9, 2, 72*time.Hour),
	}

	pools := Categorize(articles, core.DefaultSettings(), testNow)
	if len(pools.Daily) != 1 || pools.Daily[0].ID != "fresh" {
		t.Errorf("Expected only the fresh article in the daily pool, got %v", pools.Daily)
	}
}

func TestCategorizeDigestTypeRouting(t *testing.T) {
	articles := []core.Article{
		poolArticle("d", "Feed A", core.DigestDaily, 0.5, 2, time.Hour),
		poolArticle("w", "Feed B", core.DigestWeekly, 0.5, 2, time.Hour),
		poolArticle("b", "Feed C", core.DigestBoth, 0.5, 2, time.Hour),
	}

	pools := Categorize(articles, core.DefaultSettings(), testNow)
	if len(pools.Daily) != 2 {
		t.Errorf("Expected daily pool [d b], got %d articles", len(pools.Daily))
	}
	if len(pools.Weekly) != 2 {
		t.Errorf("Expected weekly pool [w b], got %d articles", len(pools.Weekly))
	}
}

func TestCategorizeWeeklyPriorityBeatsScore(t *testing.T) {
	articles := []core.Article{
		poolArticle("lowpri", "Feed A", core.DigestWeekly, 0.95, 3, 24*time.Hour),
		poolArticle("highpri", "Feed B", core.DigestWeekly, 0.40, 1, 24*time.Hour),
	}

	pools := Categorize(articles, core.DefaultSettings(), testNow)
	if len(pools.Weekly) != 2 {
		t.Fatalf("Expected 2 weekly articles, got %d", len(pools.Weekly))
	}
	if pools.Weekly[0].ID != "highpri" {
		t.Errorf("Expected priority-1 article first despite lower score, got %s", pools.Weekly[0].ID)
	}
}

func TestCategorizeWeeklyTargetAndSourceCap(t *testing.T) {
	var articles []core.Article
	for i := 0; i < 10; i++ {
		articles = append(articles, poolArticle(
			fmt.Sprintf("a%d", i), fmt.Sprintf("Feed %d", i%3), core.DigestWeekly,
			0.9-0.05*float64(i), 2, 24*time.Hour))
	}

	settings := core.DefaultSettings()
	settings.WeeklyArticleTarget = 4
	pools := Categorize(articles, settings, testNow)

	if len(pools.Weekly) != 4 {
		t.Fatalf("Expected weekly pool stopped at target 4, got %d", len(pools.Weekly))
	}
	counts := make(map[string]int)
	for _, a := range pools.Weekly {
		counts[a.SourceName]++
		if counts[a.SourceName] > weeklySourceCap {
			t.Errorf("Source %s exceeds weekly cap", a.SourceName)
		}
	}
}

func TestCategorizeWeeklyWindow(t *testing.T) {
	articles := []core.Article{
		poolArticle("in", "Feed A", core.DigestWeekly, 0.5, 2, 6*24*time.Hour),
		poolArticle("out", "Feed B", core.DigestWeekly, 0.9, 2, 9*24*time.Hour),
	}

	pools := Categorize(articles, core.DefaultSettings(), testNow)
	if len(pools.Weekly) != 1 || pools.Weekly[0].ID != "in" {
		t.Errorf("Expected only the in-window article, got %d articles", len(pools.Weekly))
	}
}
