package relevance

import (
	"fmt"
	"testing"

	"signal/internal/core"
)

// clusterArticle builds a minimal article for clustering tests.
func clusterArticle(id, source, title string) core.Article {
	return core.Article{ID: id, SourceName: source, Title: title}
}

func TestDetectCrossReferencesRequiresTwoSources(t *testing.T) {
	c := NewClusterer(testProfile(), nil)

	// Three quantum articles, but all from the same source.
	articles := []core.Article{
		clusterArticle("a1", "Feed A", "quantum breakthrough announced"),
		clusterArticle("a2", "Feed A", "more quantum results"),
		clusterArticle("a3", "Feed A", "quantum computing milestone"),
	}

	if clusters := c.DetectCrossReferences(articles); len(clusters) != 0 {
		t.Errorf("Expected no clusters for single-source coverage, got %d", len(clusters))
	}
}

func TestDetectCrossReferencesClusters(t *testing.T) {
	c := NewClusterer(testProfile(), nil)

	articles := []core.Article{
		clusterArticle("a1", "Feed A", "quantum breakthrough announced"),
		clusterArticle("a2", "Feed B", "quantum computing milestone"),
		clusterArticle("a3", "Feed C", "instant payment rails expand"),
		clusterArticle("a4", "Feed A", "payment rail uptime report"),
		clusterArticle("a5", "Feed D", "unrelated story"),
	}

	clusters := c.DetectCrossReferences(articles)
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got %d", len(clusters))
	}

	// Equal source counts sort by theme name for a stable order.
	if clusters[0].Theme != "payments" || clusters[1].Theme != "quantum" {
		t.Errorf("Expected [payments quantum], got [%s %s]", clusters[0].Theme, clusters[1].Theme)
	}
	for _, cluster := range clusters {
		if cluster.SourceCount != 2 {
			t.Errorf("Cluster %s: expected 2 sources, got %d", cluster.Theme, cluster.SourceCount)
		}
	}
}

func TestDetectCrossReferencesSortedBySourceCount(t *testing.T) {
	c := NewClusterer(testProfile(), nil)

	articles := []core.Article{
		clusterArticle("q1", "Feed A", "quantum news"),
		clusterArticle("q2", "Feed B", "quantum news"),
		clusterArticle("p1", "Feed A", "payment rail news"),
		clusterArticle("p2", "Feed B", "payment rail news"),
		clusterArticle("p3", "Feed C", "instant payment launch"),
	}

	clusters := c.DetectCrossReferences(articles)
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got %d", len(clusters))
	}
	if clusters[0].Theme != "payments" || clusters[0].SourceCount != 3 {
		t.Errorf("Expected payments first with 3 sources, got %s with %d", clusters[0].Theme, clusters[0].SourceCount)
	}
}

func TestDetectCrossReferencesSamplesCappedIDsComplete(t *testing.T) {
	c := NewClusterer(testProfile(), nil)

	var articles []core.Article
	for i := 0; i < 8; i++ {
		articles = append(articles, clusterArticle(
			fmt.Sprintf("a%d", i),
			fmt.Sprintf("Feed %d", i),
			"quantum coverage everywhere"))
	}

	clusters := c.DetectCrossReferences(articles)
	if len(clusters) != 1 {
		t.Fatalf("Expected 1 cluster, got %d", len(clusters))
	}
	cluster := clusters[0]

	if len(cluster.Sources) != maxSampleSources {
		t.Errorf("Expected %d sample sources, got %d", maxSampleSources, len(cluster.Sources))
	}
	if len(cluster.Articles) != maxSampleArticles {
		t.Errorf("Expected %d sample articles, got %d", maxSampleArticles, len(cluster.Articles))
	}
	if cluster.SourceCount != 8 {
		t.Errorf("Expected full source count 8, got %d", cluster.SourceCount)
	}
	if len(cluster.ArticleIDs) != 8 {
		t.Errorf("Expected complete ID list of 8, got %d", len(cluster.ArticleIDs))
	}
}

// failingRecorder always errors; clustering output must not change.
type failingRecorder struct{ calls int }

func (f *failingRecorder) Record(theme string, sourceCount int) error {
	f.calls++
	return fmt.Errorf("disk full")
}

func TestDetectCrossReferencesRecorderFailureIgnored(t *testing.T) {
	rec := &failingRecorder{}
	c := NewClusterer(testProfile(), rec)

	articles := []core.Article{
		clusterArticle("a1", "Feed A", "quantum one"),
		clusterArticle("a2", "Feed B", "quantum two"),
	}

	clusters := c.DetectCrossReferences(articles)
	if len(clusters) != 1 {
		t.Fatalf("Expected 1 cluster despite recorder failure, got %d", len(clusters))
	}
	if rec.calls != 1 {
		t.Errorf("Expected 1 record attempt, got %d", rec.calls)
	}
}

func TestClassifySignalTypePriority(t *testing.T) {
	c := NewClusterer(testProfile(), nil)
	client := []string{"Alpha Bank"}

	tests := []struct {
		name    string
		text    string
		clients []string
		want    core.SignalType
	}{
		{"competitor with client is risk", "alpha bank consulting deal signed", client, core.SignalRisk},
		{"risk outranks opportunity", "consulting deal follows digital transformation push", client, core.SignalRisk},
		{"csuite with client", "alpha bank appoints chief data officer", client, core.SignalRelationship},
		{"regulatory needs no client", "new regulation takes effect", nil, core.SignalRegulatory},
		{"vendor product needs no client", "watsonx adoption grows", nil, core.SignalVendor},
		{"opportunity with client", "alpha bank issues rfp for core systems", client, core.SignalOpportunity},
		{"opportunity without client is background", "rfp season opens", nil, core.SignalBackground},
		{"bare client mention", "alpha bank opens new branch", client, core.SignalRelationship},
		{"nothing matches", "weather remains mild", nil, core.SignalBackground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ClassifySignalType(tt.text, tt.clients); got != tt.want {
				t.Errorf("ClassifySignalType(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}
