package core

import "time"

// DigestType controls which digest pool a source's articles feed into.
type DigestType string

const (
	DigestDaily  DigestType = "daily"
	DigestWeekly DigestType = "weekly"
	DigestBoth   DigestType = "both"
)

// SignalType classifies an article's business relevance.
type SignalType string

const (
	SignalRisk         SignalType = "risk"         // watched client + competitor activity
	SignalOpportunity  SignalType = "opportunity"  // watched client + buying/expansion signals
	SignalRelationship SignalType = "relationship" // watched client mention, leadership changes
	SignalRegulatory   SignalType = "regulatory"   // regulatory development, client optional
	SignalVendor       SignalType = "vendor"       // own-product mention, client optional
	SignalBackground   SignalType = "background"   // everything else
)

// Article represents one fetched story. The immutable fields are populated
// at ingest by the feeds package; the derived fields are written exactly
// once per refresh by the relevance scorer.
type Article struct {
	ID            string     `json:"id"`             // Deterministic UUID derived from the canonical URL
	Title         string     `json:"title"`          // Article title
	URL           string     `json:"url"`            // Canonical article URL
	Summary       string     `json:"summary"`        // HTML-stripped, length-capped summary
	SourceName    string     `json:"source_name"`    // Name of the configured source
	Category      string     `json:"category"`       // Source category (e.g. "AI & Agentic")
	PublishedDate time.Time  `json:"published_date"` // Publication timestamp (UTC)
	Priority      int        `json:"priority"`       // 1=high, 2=medium, 3=low, inherited from source
	Credibility   float64    `json:"credibility"`    // 0-1 trust weight, inherited from source
	DigestType    DigestType `json:"digest_type"`    // Which digest pool(s) the article feeds

	// Derived fields, written by the relevance scorer.
	RelevanceScore    float64    `json:"relevance_score"`     // 0-1 combined relevance
	MatchedIndustry   string     `json:"matched_industry"`    // Best industry match, empty if none
	MatchedClient     string     `json:"matched_client"`      // First matched client in profile order
	AllMatchedClients []string   `json:"all_matched_clients"` // All matched clients in profile order
	SignalType        SignalType `json:"signal_type"`         // Business-relevance classification
	ReadingMinutes    int        `json:"reading_minutes"`     // Estimated reading time, >=1
	IsRead            bool       `json:"is_read"`             // Set by the UI, not by the engine
}

// Text returns the matching text for an article. The engine always matches
// against title and summary together.
func (a Article) Text() string {
	return a.Title + " " + a.Summary
}

// Source is a configured RSS/Atom feed with trust metadata.
type Source struct {
	Name        string     `json:"name"`        // Display name, used as the diversity key
	URL         string     `json:"url"`         // Feed URL, unique within the profile (case-insensitive)
	Category    string     `json:"category"`    // Topical category
	Priority    int        `json:"priority"`    // 1=high, 2=medium, 3=low
	Credibility float64    `json:"credibility"` // 0-1 analyst-assigned trust weight
	DigestType  DigestType `json:"digest_type"` // daily, weekly or both
	Enabled     bool       `json:"enabled"`     // Disabled sources are skipped during fetch
}

// Industry is a tiered topical interest bucket matched via keyword scoring.
type Industry struct {
	Name    string `json:"name"` // Unique key into the industry keyword dictionary
	Tier    int    `json:"tier"` // 1-3, lower = higher priority
	Enabled bool   `json:"enabled"`
}

// Client is a watched organization. Short names (<=3 runes) are matched with
// word boundaries on both sides; longer names only need a left boundary so
// possessives and plurals still match.
type Client struct {
	Name    string `json:"name"`    // Unique, used as the matching token
	Tier    int    `json:"tier"`    // 1-3, lower = higher priority
	Country string `json:"country"` // Advisory only
}

// ThemeCluster is a cross-source signal: a keyword-defined theme covered by
// at least two distinct sources within one batch. Clusters are recomputed on
// every scoring pass and never persisted as entities.
type ThemeCluster struct {
	Theme       string    `json:"theme"`        // Theme name, keyed into the theme keyword table
	Keywords    []string  `json:"keywords"`     // The matching keyword set
	SourceCount int       `json:"source_count"` // Distinct sources among matches, always >= 2
	Sources     []string  `json:"sources"`      // Sample of source names, capped at 4
	Articles    []Article `json:"articles"`     // Sample of matching articles, capped at 5
	ArticleIDs  []string  `json:"article_ids"`  // Complete id list, required for boost lookup
}

// DigestPools holds the time-windowed, diversity-capped article subsets
// feeding the two digest views.
type DigestPools struct {
	Daily  []Article `json:"daily"`
	Weekly []Article `json:"weekly"`
}

// Settings holds the user-tunable digest knobs. Values outside the allowed
// ranges are clamped at load time by the config package.
type Settings struct {
	DailyMinutes        int `json:"daily_minutes" mapstructure:"daily_minutes"`                 // Reading-time budget, clamped to [5,60]
	WeeklyArticleTarget int `json:"weekly_article_target" mapstructure:"weekly_article_target"` // Weekly pool size, clamped to [3,20]
	WeeklyWindowDays    int `json:"weekly_window_days" mapstructure:"weekly_window_days"`       // Weekly recency window, default 7 days
	DailyWindowHours    int `json:"daily_window_hours" mapstructure:"daily_window_hours"`       // Daily recency window, fixed 48 hours
}

// DefaultSettings returns the reference settings.
func DefaultSettings() Settings {
	return Settings{
		DailyMinutes:        15,
		WeeklyArticleTarget: 10,
		WeeklyWindowDays:    7,
		DailyWindowHours:    48,
	}
}

// Digest represents a generated daily briefing, either LLM-authored or the
// basic fallback.
type Digest struct {
	ExecutiveSummary     string          `json:"executive_summary"`
	Sections             []DigestSection `json:"sections"`
	ConversationStarters []string        `json:"conversation_starters"`
	GeneratedAt          time.Time       `json:"generated_at"`
	ModelUsed            string          `json:"model_used"` // Empty for the basic fallback digest
}

// DigestSection is one titled block of the briefing.
type DigestSection struct {
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	ReadingMinutes int    `json:"reading_minutes"`
}
