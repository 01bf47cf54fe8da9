// Package digest turns the scored daily pool into a narrated briefing. The
// briefing is LLM-authored when a Gemini key is configured and falls back to
// a deterministic summary built from the articles themselves otherwise.
package digest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"signal/internal/core"
	"signal/internal/logger"
)

const (
	// DefaultModel is the default Gemini model used for digest generation.
	DefaultModel = "gemini-2.5-flash"

	// maxDigestArticles bounds how many articles feed the prompt.
	maxDigestArticles = 20

	digestPromptTemplate = `You are an analyst preparing a morning briefing for a technology consulting team covering financial services and telecom clients in Asia-Pacific.

Given the articles below (already ranked by relevance), write a briefing as JSON with this exact structure:
{
  "executive_summary": "2-3 sentences on the most important developments",
  "sections": [
    {"title": "short section title", "summary": "2-4 sentence synthesis of related articles"}
  ],
  "conversation_starters": ["one-line talking point an account lead could open a client call with"]
}

Rules:
- 2 to 4 sections, grouped by theme rather than by source.
- Mention client names only where the articles do.
- 2 to 3 conversation starters.
- Respond with the JSON object only, no markdown fences.

Articles:
%s`
)

// Generator produces briefings from scored articles.
type Generator struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
	log       *slog.Logger
}

// NewGenerator creates a digest generator. An empty API key is allowed: the
// generator then always produces the basic fallback digest.
func NewGenerator(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*Generator, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	g := &Generator{
		modelName: modelName,
		timeout:   timeout,
		log:       logger.Get(),
	}

	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

// Generate produces a briefing from the daily pool. LLM failures degrade to
// the basic digest rather than failing the refresh.
func (g *Generator) Generate(ctx context.Context, articles []core.Article) core.Digest {
	if len(articles) > maxDigestArticles {
		articles = articles[:maxDigestArticles]
	}
	if g.client == nil || len(articles) == 0 {
		return BasicDigest(articles)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(digestPromptTemplate, formatArticlesForPrompt(articles))
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		g.log.Warn("Digest generation failed, using basic digest", "error", err)
		return BasicDigest(articles)
	}

	digest, err := parseDigestResponse(resp.Text())
	if err != nil {
		g.log.Warn("Digest response unparseable, using basic digest", "error", err)
		return BasicDigest(articles)
	}

	digest.GeneratedAt = time.Now().UTC()
	digest.ModelUsed = g.modelName
	return digest
}

// digestResponse mirrors the JSON shape requested in the prompt.
type digestResponse struct {
	ExecutiveSummary string `json:"executive_summary"`
	Sections         []struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
	} `json:"sections"`
	ConversationStarters []string `json:"conversation_starters"`
}

func parseDigestResponse(text string) (core.Digest, error) {
	text = strings.TrimSpace(text)
	// Models occasionally wrap JSON in markdown fences despite instructions.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var parsed digestResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return core.Digest{}, fmt.Errorf("failed to parse digest JSON: %w", err)
	}
	if parsed.ExecutiveSummary == "" || len(parsed.Sections) == 0 {
		return core.Digest{}, fmt.Errorf("digest response missing required fields")
	}

	digest := core.Digest{
		ExecutiveSummary:     parsed.ExecutiveSummary,
		ConversationStarters: parsed.ConversationStarters,
	}
	for _, s := range parsed.Sections {
		digest.Sections = append(digest.Sections, core.DigestSection{
			Title:   s.Title,
			Summary: s.Summary,
		})
	}
	return digest, nil
}

// formatArticlesForPrompt renders the article list for the prompt.
func formatArticlesForPrompt(articles []core.Article) string {
	var b strings.Builder
	for i, a := range articles {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, a.SourceName, a.Title)
		if a.MatchedClient != "" {
			fmt.Fprintf(&b, "   Client: %s (signal: %s)\n", a.MatchedClient, a.SignalType)
		}
		if a.Summary != "" {
			fmt.Fprintf(&b, "   %s\n", a.Summary)
		}
	}
	return b.String()
}

// BasicDigest builds a deterministic fallback briefing grouped by source
// category, using article titles as the section content.
func BasicDigest(articles []core.Article) core.Digest {
	digest := core.Digest{
		GeneratedAt: time.Now().UTC(),
	}
	if len(articles) == 0 {
		digest.ExecutiveSummary = "No relevant articles in this window."
		return digest
	}

	digest.ExecutiveSummary = fmt.Sprintf(
		"%d relevant articles today. Top story: %s (%s).",
		len(articles), articles[0].Title, articles[0].SourceName)

	// Preserve the ranked order within and across sections.
	var order []string
	byCategory := make(map[string][]core.Article)
	for _, a := range articles {
		category := a.Category
		if category == "" {
			category = "General"
		}
		if _, ok := byCategory[category]; !ok {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], a)
	}

	for _, category := range order {
		group := byCategory[category]
		var titles []string
		minutes := 0
		for _, a := range group {
			titles = append(titles, a.Title)
			minutes += a.ReadingMinutes
		}
		digest.Sections = append(digest.Sections, core.DigestSection{
			Title:          category,
			Summary:        strings.Join(titles, " | "),
			ReadingMinutes: minutes,
		})
	}

	for _, a := range articles {
		if a.MatchedClient == "" {
			continue
		}
		digest.ConversationStarters = append(digest.ConversationStarters,
			fmt.Sprintf("%s: %s", a.MatchedClient, a.Title))
		if len(digest.ConversationStarters) == 3 {
			break
		}
	}
	return digest
}
