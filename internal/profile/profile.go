// Package profile holds the analyst's interest profile: tiered industries,
// watched clients and the keyword dictionaries the relevance engine matches
// against. The engine treats a loaded profile as read-only per invocation.
package profile

import (
	"fmt"
	"signal/internal/core"
	"strings"
)

// DealKeywords holds the five keyword lists driving deal-relevance signals.
type DealKeywords struct {
	Competitor    []string `json:"competitor"`     // Competitor activity near a client => risk
	CSuite        []string `json:"c_suite"`        // Leadership changes near a client => relationship
	Regulatory    []string `json:"regulatory"`     // Regulatory developments, client optional
	VendorProduct []string `json:"vendor_product"` // Own-portfolio mentions, client optional
	Opportunity   []string `json:"opportunity"`    // Buying/expansion signals near a client
}

// Profile is the complete interest profile. All dictionaries are required:
// an empty table is a configuration error, not a silent fallback.
type Profile struct {
	Industries []core.Industry `json:"industries"`
	Clients    []core.Client   `json:"clients"`

	IndustryKeywords map[string][]string `json:"industry_keywords"` // industry name -> keywords
	ThemeKeywords    map[string][]string `json:"theme_keywords"`    // cross-reference theme -> keywords
	Deal             DealKeywords        `json:"deal_keywords"`
	CategoryWeights  map[string]float64  `json:"category_weights"` // source category -> score multiplier
}

// Validate checks the profile for the errors that would otherwise surface as
// silent mis-scoring deep in the engine. It is called once at startup.
func (p *Profile) Validate() error {
	if len(p.Industries) == 0 {
		return fmt.Errorf("profile: no industries configured")
	}
	if len(p.Clients) == 0 {
		return fmt.Errorf("profile: no clients configured")
	}
	if len(p.IndustryKeywords) == 0 {
		return fmt.Errorf("profile: industry keyword dictionary is empty")
	}
	if len(p.ThemeKeywords) == 0 {
		return fmt.Errorf("profile: theme keyword dictionary is empty")
	}
	if len(p.Deal.Competitor) == 0 || len(p.Deal.CSuite) == 0 ||
		len(p.Deal.Regulatory) == 0 || len(p.Deal.VendorProduct) == 0 ||
		len(p.Deal.Opportunity) == 0 {
		return fmt.Errorf("profile: deal keyword lists must all be non-empty")
	}

	seen := make(map[string]bool, len(p.Industries))
	for _, ind := range p.Industries {
		key := strings.ToLower(ind.Name)
		if seen[key] {
			return fmt.Errorf("profile: duplicate industry %q", ind.Name)
		}
		seen[key] = true
		if ind.Tier < 1 || ind.Tier > 3 {
			return fmt.Errorf("profile: industry %q has tier %d, want 1-3", ind.Name, ind.Tier)
		}
		if _, ok := p.IndustryKeywords[ind.Name]; !ok {
			return fmt.Errorf("profile: industry %q has no keyword list", ind.Name)
		}
	}

	seen = make(map[string]bool, len(p.Clients))
	for _, c := range p.Clients {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("profile: client with empty name")
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return fmt.Errorf("profile: duplicate client %q", c.Name)
		}
		seen[key] = true
		if c.Tier < 1 || c.Tier > 3 {
			return fmt.Errorf("profile: client %q has tier %d, want 1-3", c.Name, c.Tier)
		}
	}

	for category, weight := range p.CategoryWeights {
		if weight <= 0 {
			return fmt.Errorf("profile: category %q has non-positive weight %v", category, weight)
		}
	}

	return nil
}

// ClientTier returns the tier for a client name, or 0 when unknown.
func (p *Profile) ClientTier(name string) int {
	for _, c := range p.Clients {
		if strings.EqualFold(c.Name, name) {
			return c.Tier
		}
	}
	return 0
}

// CategoryWeight returns the score multiplier for a source category,
// defaulting to 1.0 for unconfigured categories.
func (p *Profile) CategoryWeight(category string) float64 {
	if w, ok := p.CategoryWeights[category]; ok {
		return w
	}
	return 1.0
}

// MigrateClients converts a legacy plain-string client list into structured
// clients. Older saved profiles stored clients as bare names; the migration
// happens here at the loading boundary so matching never has to type-check.
func MigrateClients(names []string) []core.Client {
	clients := make([]core.Client, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		clients = append(clients, core.Client{Name: name, Tier: 2})
	}
	return clients
}
