package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"signal/internal/core"
)

var renderDate = time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

func TestRenderDaily(t *testing.T) {
	digest := core.Digest{
		ExecutiveSummary:     "Busy morning in APAC banking.",
		Sections:             []core.DigestSection{{Title: "Banking", Summary: "Refresh cycle continues."}},
		ConversationStarters: []string{"Ask DBS about timelines."},
		ModelUsed:            "gemini-2.5-flash",
	}
	articles := []core.Article{{
		Title:          "DBS modernizes core",
		URL:            "https://news.example/dbs",
		SourceName:     "Feed A",
		Summary:        "Details inside.",
		RelevanceScore: 0.83,
		ReadingMinutes: 2,
		SignalType:     core.SignalOpportunity,
		MatchedClient:  "DBS",
	}}

	got := RenderDaily(digest, articles, renderDate, 15)

	for _, want := range []string{
		"# Daily Briefing - 2026-03-10",
		"Busy morning in APAC banking.",
		"## Banking",
		"## Conversation Starters",
		"### 1. DBS modernizes core",
		"**Score:** 0.83",
		"**Signal:** opportunity",
		"**Client:** DBS",
		"*Total reading time: 2 / 15 minutes*",
		"*Generated by gemini-2.5-flash*",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Daily output missing %q", want)
		}
	}
}

func TestRenderDailyEmptyPool(t *testing.T) {
	got := RenderDaily(core.Digest{ExecutiveSummary: "Quiet day."}, nil, renderDate, 15)
	if !strings.Contains(got, "No articles in the daily window.") {
		t.Error("Expected empty-pool notice")
	}
}

func TestRenderDailyOverBudget(t *testing.T) {
	articles := []core.Article{
		{Title: "One", URL: "https://a", SourceName: "Feed A", ReadingMinutes: 8},
		{Title: "Two", URL: "https://b", SourceName: "Feed B", ReadingMinutes: 9},
	}

	got := RenderDaily(core.Digest{}, articles, renderDate, 15)
	if !strings.Contains(got, "*Total reading time: 17 / 15 minutes (over budget)*") {
		t.Error("Expected over-budget marker on the reading time rollup")
	}

	got = RenderDaily(core.Digest{}, articles[:1], renderDate, 15)
	if !strings.Contains(got, "*Total reading time: 8 / 15 minutes*") {
		t.Error("Expected rollup against the budget without a marker")
	}
	if strings.Contains(got, "over budget") {
		t.Error("Budget marker should not appear under the budget")
	}
}

func TestRenderWeekly(t *testing.T) {
	articles := []core.Article{
		{Title: "One", URL: "https://a", SourceName: "Feed A", ReadingMinutes: 3},
		{Title: "Two", URL: "https://b", SourceName: "Feed B", ReadingMinutes: 4},
	}

	got := RenderWeekly(articles, renderDate)
	if !strings.Contains(got, "# Weekly Digest - 2026-03-10") {
		t.Error("Missing weekly header")
	}
	if !strings.Contains(got, "*Total reading time: 7 minutes*") {
		t.Error("Missing reading time rollup")
	}
}

func TestRenderSignals(t *testing.T) {
	clusters := []core.ThemeCluster{{
		Theme:       "Generative AI",
		SourceCount: 3,
		Sources:     []string{"Feed A", "Feed B", "Feed C"},
		Articles:    []core.Article{{Title: "LLM news", URL: "https://a", SourceName: "Feed A"}},
	}, {
		Theme:       "Cybersecurity",
		SourceCount: 2,
		Sources:     []string{"Feed A", "Feed D"},
	}}

	got := RenderSignals(clusters, map[string]bool{"Generative AI": true})

	if !strings.Contains(got, "## Generative AI (trending)") {
		t.Error("Expected trending marker on Generative AI")
	}
	if !strings.Contains(got, "## Cybersecurity\n") {
		t.Error("Expected Cybersecurity without trending marker")
	}
	if !strings.Contains(got, "Covered by 3 sources: Feed A, Feed B, Feed C") {
		t.Error("Missing source coverage line")
	}
}

func TestRenderSignalsEmpty(t *testing.T) {
	got := RenderSignals(nil, nil)
	if !strings.Contains(got, "No themes covered by multiple sources") {
		t.Error("Expected empty notice")
	}
}

func TestWriteToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteToFile("hello", filepath.Join(dir, "out"), "daily_2026-03-10.md")
	if err != nil {
		t.Fatalf("WriteToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Unexpected file content %q", data)
	}
}
