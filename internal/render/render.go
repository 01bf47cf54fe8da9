// Package render produces the markdown output for digests and signals.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"signal/internal/core"
)

// RenderDaily renders the daily briefing with its article list. The total
// reading time is reported against budgetMinutes so an over-full briefing
// is visible at a glance.
func RenderDaily(digest core.Digest, articles []core.Article, date time.Time, budgetMinutes int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Daily Briefing - %s\n\n", date.UTC().Format("2006-01-02"))

	if digest.ExecutiveSummary != "" {
		b.WriteString(digest.ExecutiveSummary + "\n\n")
	}

	for _, section := range digest.Sections {
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		b.WriteString(section.Summary + "\n\n")
	}

	if len(digest.ConversationStarters) > 0 {
		b.WriteString("## Conversation Starters\n\n")
		for _, starter := range digest.ConversationStarters {
			fmt.Fprintf(&b, "- %s\n", starter)
		}
		b.WriteString("\n")
	}

	if len(articles) > 0 {
		b.WriteString("---\n\n## Articles\n\n")
		writeArticleList(&b, articles, budgetMinutes)
	} else {
		b.WriteString("No articles in the daily window.\n")
	}

	if digest.ModelUsed != "" {
		fmt.Fprintf(&b, "\n*Generated by %s*\n", digest.ModelUsed)
	}

	return b.String()
}

// RenderWeekly renders the weekly digest article list.
func RenderWeekly(articles []core.Article, date time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Digest - %s\n\n", date.UTC().Format("2006-01-02"))

	if len(articles) == 0 {
		b.WriteString("No articles in the weekly window.\n")
		return b.String()
	}

	writeArticleList(&b, articles, 0)
	return b.String()
}

// RenderSignals renders the cross-source theme clusters. Themes present in
// the trending set are marked.
func RenderSignals(clusters []core.ThemeCluster, trending map[string]bool) string {
	var b strings.Builder

	b.WriteString("# Cross-Source Signals\n\n")

	if len(clusters) == 0 {
		b.WriteString("No themes covered by multiple sources in this batch.\n")
		return b.String()
	}

	for _, cluster := range clusters {
		marker := ""
		if trending[cluster.Theme] {
			marker = " (trending)"
		}
		fmt.Fprintf(&b, "## %s%s\n\n", cluster.Theme, marker)
		fmt.Fprintf(&b, "Covered by %d sources: %s\n\n",
			cluster.SourceCount, strings.Join(cluster.Sources, ", "))
		for _, a := range cluster.Articles {
			fmt.Fprintf(&b, "- [%s](%s) - %s\n", a.Title, a.URL, a.SourceName)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// writeArticleList renders articles in their given order with the metadata
// an analyst scans for: score, source, signal type and reading time. A
// budget of zero suppresses the budget comparison.
func writeArticleList(b *strings.Builder, articles []core.Article, budgetMinutes int) {
	totalMinutes := 0
	for i, a := range articles {
		fmt.Fprintf(b, "### %d. %s\n\n", i+1, a.Title)
		fmt.Fprintf(b, "**Source:** %s | **Score:** %.2f | **Read:** %d min",
			a.SourceName, a.RelevanceScore, a.ReadingMinutes)
		if a.SignalType != "" && a.SignalType != core.SignalBackground {
			fmt.Fprintf(b, " | **Signal:** %s", a.SignalType)
		}
		if a.MatchedClient != "" {
			fmt.Fprintf(b, " | **Client:** %s", a.MatchedClient)
		}
		b.WriteString("\n\n")
		if a.Summary != "" {
			b.WriteString(a.Summary + "\n\n")
		}
		fmt.Fprintf(b, "[Read more](%s)\n\n---\n\n", a.URL)
		totalMinutes += a.ReadingMinutes
	}
	if budgetMinutes > 0 {
		marker := ""
		if totalMinutes > budgetMinutes {
			marker = " (over budget)"
		}
		fmt.Fprintf(b, "*Total reading time: %d / %d minutes%s*\n", totalMinutes, budgetMinutes, marker)
	} else {
		fmt.Fprintf(b, "*Total reading time: %d minutes*\n", totalMinutes)
	}
}

// WriteToFile writes rendered content into outputDir, creating it if needed.
func WriteToFile(content, outputDir, filename string) (string, error) {
	if outputDir == "" {
		outputDir = "digests"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	filePath := filepath.Join(outputDir, filename)
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write digest file %s: %w", filePath, err)
	}

	return filePath, nil
}
