// Package relevance implements the article relevance engine: entity
// matching, cross-source theme clustering, multi-factor scoring and
// diversity-capped digest categorization. Every operation treats "no match"
// as a normal outcome; nothing in this package returns an error for an
// article that simply isn't relevant.
package relevance

import (
	"fmt"
	"regexp"
	"strings"

	"signal/internal/core"
	"signal/internal/profile"
)

// Matcher finds industry and client mentions in article text. Client
// patterns are compiled once at construction; matching itself is
// allocation-light and safe for concurrent readers.
type Matcher struct {
	industries       []core.Industry
	industryKeywords map[string][]string
	clients          []core.Client
	clientPatterns   []*regexp.Regexp // parallel to clients
}

// NewMatcher builds a matcher from a validated profile. It returns an error
// only for profile defects a Validate call would also have caught, so a
// failure here is a configuration bug, not a runtime condition.
func NewMatcher(p *profile.Profile) (*Matcher, error) {
	if p == nil {
		return nil, fmt.Errorf("relevance: nil profile")
	}

	m := &Matcher{
		industries:       p.Industries,
		industryKeywords: p.IndustryKeywords,
		clients:          p.Clients,
		clientPatterns:   make([]*regexp.Regexp, 0, len(p.Clients)),
	}

	for _, c := range p.Clients {
		pattern, err := clientPattern(c.Name)
		if err != nil {
			return nil, fmt.Errorf("relevance: client %q: %w", c.Name, err)
		}
		m.clientPatterns = append(m.clientPatterns, pattern)
	}

	return m, nil
}

// clientPattern compiles the case-insensitive mention pattern for a client
// name. Short names (<=3 runes) need word boundaries on both sides so "SK"
// never matches inside "risk"; longer names only anchor the left boundary so
// "Grab" still matches "Grabbed" and "Grab's".
func clientPattern(name string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(strings.ToLower(name))
	if len([]rune(name)) <= 3 {
		return regexp.Compile(`(?i)\b` + escaped + `\b`)
	}
	return regexp.Compile(`(?i)\b` + escaped)
}

// DetectIndustry scores every enabled industry against the text and returns
// the single best match, or nil when nothing scores above zero. Text is
// expected lowercased; empty text matches nothing.
//
// Per industry: +1 per keyword occurrence, +2 extra for a multi-word keyword
// (more specific, so rewarded), then score = matches + (4-tier)*2 + 3 if any
// multi-word keyword hit. The tier constant makes a tier-1 industry beat a
// tier-3 one with the same keyword hits; the strong-match bonus suppresses
// false positives from single generic words. Ties keep the first industry in
// profile order.
func (m *Matcher) DetectIndustry(text string) *core.Industry {
	if text == "" {
		return nil
	}

	var best *core.Industry
	bestScore := 0

	for i := range m.industries {
		ind := &m.industries[i]
		if !ind.Enabled {
			continue
		}

		matchCount := 0
		strong := false
		for _, keyword := range m.industryKeywords[ind.Name] {
			if strings.Contains(text, strings.ToLower(keyword)) {
				matchCount++
				if strings.Contains(keyword, " ") {
					matchCount += 2
					strong = true
				}
			}
		}
		if matchCount == 0 {
			continue
		}

		score := matchCount + (4-ind.Tier)*2
		if strong {
			score += 3
		}
		if score > bestScore {
			bestScore = score
			best = ind
		}
	}

	return best
}

// DetectAllClients returns every watched client mentioned in the text, in
// profile order. The first element is the "top" match recorded on the
// article; ordering is profile order by definition, independent of tier.
func (m *Matcher) DetectAllClients(text string) []string {
	if text == "" {
		return nil
	}

	var matches []string
	for i, c := range m.clients {
		if m.clientPatterns[i].MatchString(text) {
			matches = append(matches, c.Name)
		}
	}
	return matches
}
