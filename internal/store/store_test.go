package store

import (
	"testing"

	"signal/internal/core"
	"signal/internal/profile"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSourcesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	sources := []core.Source{
		{Name: "Feed A", URL: "https://a.example/feed", Category: "Banking", Priority: 1, Credibility: 0.9, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Feed B", URL: "https://b.example/feed", Category: "Telecom", Priority: 2, Credibility: 0.6, DigestType: core.DigestBoth, Enabled: false},
	}
	if err := s.SaveSources(sources); err != nil {
		t.Fatalf("SaveSources failed: %v", err)
	}

	got, err := s.LoadSources()
	if err != nil {
		t.Fatalf("LoadSources failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(got))
	}

	byName := make(map[string]core.Source)
	for _, src := range got {
		byName[src.Name] = src
	}
	a := byName["Feed A"]
	if a.DigestType != core.DigestDaily || !a.Enabled || a.Credibility != 0.9 {
		t.Errorf("Feed A mangled in round trip: %+v", a)
	}
	if byName["Feed B"].Enabled {
		t.Error("Feed B should be disabled after round trip")
	}
}

func TestSaveSourcesReplaces(t *testing.T) {
	s := newTestStore(t)

	first := []core.Source{{Name: "Old", URL: "https://old.example/feed"}}
	if err := s.SaveSources(first); err != nil {
		t.Fatalf("SaveSources failed: %v", err)
	}
	second := []core.Source{{Name: "New", URL: "https://new.example/feed"}}
	if err := s.SaveSources(second); err != nil {
		t.Fatalf("SaveSources failed: %v", err)
	}

	got, err := s.LoadSources()
	if err != nil {
		t.Fatalf("LoadSources failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "New" {
		t.Errorf("Expected old list replaced, got %v", got)
	}
}

func TestArticlesRoundTripOrderedByScore(t *testing.T) {
	s := newTestStore(t)

	articles := []core.Article{
		{ID: "low", URL: "https://a", Title: "Low", RelevanceScore: 0.2, SignalType: core.SignalBackground},
		{ID: "high", URL: "https://b", Title: "High", RelevanceScore: 0.9, SignalType: core.SignalRisk, MatchedClient: "DBS"},
	}
	if err := s.SaveArticles(articles); err != nil {
		t.Fatalf("SaveArticles failed: %v", err)
	}

	got, err := s.LoadArticles()
	if err != nil {
		t.Fatalf("LoadArticles failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(got))
	}
	if got[0].ID != "high" {
		t.Errorf("Expected score-descending order, got %s first", got[0].ID)
	}
	if got[0].SignalType != core.SignalRisk || got[0].MatchedClient != "DBS" {
		t.Errorf("Derived fields lost in round trip: %+v", got[0])
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)

	missing, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil profile before save")
	}

	if err := s.SaveProfile(profile.Default()); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected stored profile")
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Stored profile no longer validates: %v", err)
	}
}

func TestKVMissingKey(t *testing.T) {
	s := newTestStore(t)

	value, err := s.GetKV("absent")
	if err != nil {
		t.Fatalf("GetKV failed: %v", err)
	}
	if value != nil {
		t.Errorf("Expected nil for missing key, got %v", value)
	}

	if err := s.SetKV("k", []byte("v1")); err != nil {
		t.Fatalf("SetKV failed: %v", err)
	}
	if err := s.SetKV("k", []byte("v2")); err != nil {
		t.Fatalf("SetKV failed: %v", err)
	}
	value, err = s.GetKV("k")
	if err != nil {
		t.Fatalf("GetKV failed: %v", err)
	}
	if string(value) != "v2" {
		t.Errorf("Expected overwrite to v2, got %q", value)
	}
}
