package profile

import "signal/internal/core"

// Default returns the shipped interest profile: an APAC enterprise-technology
// analyst tracking regional banks, telcos and platform companies.
func Default() *Profile {
	return &Profile{
		Industries:       defaultIndustries(),
		Clients:          defaultClients(),
		IndustryKeywords: defaultIndustryKeywords(),
		ThemeKeywords:    defaultThemeKeywords(),
		Deal:             defaultDealKeywords(),
		CategoryWeights:  defaultCategoryWeights(),
	}
}

func defaultIndustries() []core.Industry {
	return []core.Industry{
		{Name: "Financial Services", Tier: 1, Enabled: true},
		{Name: "Government", Tier: 1, Enabled: true},
		{Name: "Manufacturing", Tier: 1, Enabled: true},
		{Name: "Energy", Tier: 1, Enabled: true},
		{Name: "Retail", Tier: 1, Enabled: true},
		{Name: "Telecommunications", Tier: 2, Enabled: true},
		{Name: "Healthcare", Tier: 2, Enabled: true},
		{Name: "Technology", Tier: 3, Enabled: true},
	}
}

func defaultClients() []core.Client {
	return []core.Client{
		{Name: "DBS", Tier: 1, Country: "Singapore"},
		{Name: "OCBC", Tier: 1, Country: "Singapore"},
		{Name: "UOB", Tier: 1, Country: "Singapore"},
		{Name: "Singtel", Tier: 1, Country: "Singapore"},
		{Name: "Telstra", Tier: 1, Country: "Australia"},
		{Name: "Commonwealth Bank", Tier: 1, Country: "Australia"},
		{Name: "ANZ", Tier: 2, Country: "Australia"},
		{Name: "Westpac", Tier: 2, Country: "Australia"},
		{Name: "NAB", Tier: 2, Country: "Australia"},
		{Name: "NTT", Tier: 2, Country: "Japan"},
		{Name: "Samsung", Tier: 2, Country: "South Korea"},
		{Name: "Grab", Tier: 3, Country: "Singapore"},
		{Name: "Sea Limited", Tier: 3, Country: "Singapore"},
	}
}

func defaultIndustryKeywords() map[string][]string {
	return map[string][]string{
		"Financial Services": {"bank", "banking", "financial", "fintech", "insurance", "payments", "lending", "credit", "wealth", "trading", "investment", "mortgage"},
		"Government":         {"government", "public sector", "federal", "state", "ministry", "agency", "defense", "military", "citizen", "e-government", "smart city"},
		"Telecommunications": {"telecom", "telecommunications", "telco", "5g", "network", "mobile", "wireless", "broadband", "fiber", "carrier", "spectrum"},
		"Manufacturing":      {"manufacturing", "factory", "production", "supply chain", "logistics", "automotive", "aerospace", "industrial", "automation", "robotics"},
		"Energy":             {"energy", "oil", "gas", "renewable", "solar", "wind", "utility", "power", "grid", "electricity", "nuclear", "mining", "sustainability"},
		"Retail":             {"retail", "ecommerce", "e-commerce", "consumer", "shopping", "store", "omnichannel", "inventory", "merchandise", "cpg", "fmcg"},
		"Healthcare":         {"healthcare", "health", "hospital", "medical", "pharma", "pharmaceutical", "clinical", "patient", "diagnosis", "biotech", "life sciences"},
		"Technology":         {"technology", "software", "saas", "platform", "startup", "venture", "digital", "innovation", "tech company"},
	}
}

func defaultThemeKeywords() map[string][]string {
	return map[string][]string{
		"AI Governance":          {"ai governance", "ai regulation", "ai act", "ai safety", "responsible ai", "ai ethics"},
		"Cloud Competition":      {"azure", "aws", "google cloud", "cloud pricing", "multi-cloud", "hybrid cloud"},
		"Data Sovereignty":       {"data sovereignty", "data localization", "gdpr", "data residency", "cross-border data"},
		"Agentic AI":             {"ai agent", "agentic", "autonomous agent", "multi-agent", "agent framework"},
		"Generative AI":          {"generative ai", "genai", "llm", "large language model", "chatgpt", "claude", "gemini"},
		"Cybersecurity":          {"ransomware", "cyber attack", "data breach", "zero trust", "security vulnerability"},
		"Digital Banking":        {"digital bank", "neobank", "open banking", "banking api", "fintech"},
		"Enterprise AI Adoption": {"ai adoption", "ai transformation", "enterprise ai", "ai strategy", "ai implementation"},
	}
}

func defaultDealKeywords() DealKeywords {
	return DealKeywords{
		Competitor: []string{
			"microsoft", "azure", "google cloud", "gcp", "aws", "amazon web services",
			"accenture", "deloitte", "tcs", "infosys", "wipro", "oracle", "sap",
		},
		CSuite: []string{
			"ceo", "cio", "cto", "chief executive", "chief information officer",
			"chief technology officer", "chief digital officer", "appoints", "appointed",
			"steps down", "resigns", "new leadership", "succession",
		},
		Regulatory: []string{
			"regulation", "regulator", "compliance", "mandate", "legislation",
			"data sovereignty", "data residency", "ai act", "monetary authority", "apra", "pdpa",
			"antitrust", "sanction",
		},
		VendorProduct: []string{
			"watsonx", "red hat", "openshift", "mainframe", "z16", "quantum",
			"consulting advantage", "hybrid cloud platform",
		},
		Opportunity: []string{
			"digital transformation", "modernization", "rfp", "tender", "procurement",
			"investment", "expansion", "partnership", "migration", "adoption",
		},
	}
}

// Category weights bias the relevance score by how central a source category
// is to the analyst's brief. Kept within 0.95-1.15 so they reweight rather
// than dominate.
func defaultCategoryWeights() map[string]float64 {
	return map[string]float64{
		"AI & Agentic":             1.15,
		"Sovereignty & Regulation": 1.10,
		"Competitive Landscape":    1.10,
		"APAC Enterprise":          1.05,
		"China & Geopolitics":      1.00,
		"Strategic Perspectives":   1.00,
		"Architecture & Platform":  0.95,
	}
}

// DefaultSources returns the shipped source list. URLs are unique keys; the
// sources manager enforces that on every add.
func DefaultSources() []core.Source {
	return []core.Source{
		{Name: "Import AI", URL: "https://importai.substack.com/feed", Category: "AI & Agentic", Priority: 1, Credibility: 0.95, DigestType: core.DigestDaily, Enabled: true},
		{Name: "MIT Tech Review", URL: "https://www.technologyreview.com/feed/", Category: "AI & Agentic", Priority: 1, Credibility: 0.95, DigestType: core.DigestBoth, Enabled: true},
		{Name: "The Batch", URL: "https://www.deeplearning.ai/the-batch/feed/", Category: "AI & Agentic", Priority: 1, Credibility: 0.90, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Anthropic", URL: "https://www.anthropic.com/news/rss", Category: "AI & Agentic", Priority: 1, Credibility: 0.95, DigestType: core.DigestDaily, Enabled: true},
		{Name: "OpenAI Blog", URL: "https://openai.com/blog/rss.xml", Category: "AI & Agentic", Priority: 1, Credibility: 0.90, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Google AI Blog", URL: "https://blog.google/technology/ai/rss/", Category: "AI & Agentic", Priority: 2, Credibility: 0.90, DigestType: core.DigestDaily, Enabled: true},

		{Name: "IAPP Privacy", URL: "https://iapp.org/feed/", Category: "Sovereignty & Regulation", Priority: 1, Credibility: 0.90, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Lawfare", URL: "https://www.lawfaremedia.org/feed", Category: "Sovereignty & Regulation", Priority: 1, Credibility: 0.95, DigestType: core.DigestBoth, Enabled: true},
		{Name: "The Record", URL: "https://therecord.media/feed", Category: "Sovereignty & Regulation", Priority: 1, Credibility: 0.90, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Euractiv Digital", URL: "https://www.euractiv.com/sections/digital/feed/", Category: "Sovereignty & Regulation", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "BIS", URL: "https://www.bis.org/doclist/all_rss.rss", Category: "Sovereignty & Regulation", Priority: 2, Credibility: 0.95, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "NIST Cybersecurity", URL: "https://www.nist.gov/blogs/cybersecurity-insights/rss.xml", Category: "Sovereignty & Regulation", Priority: 2, Credibility: 0.90, DigestType: core.DigestBoth, Enabled: true},
		{Name: "CSO Online", URL: "https://www.csoonline.com/feed/", Category: "Sovereignty & Regulation", Priority: 3, Credibility: 0.80, DigestType: core.DigestDaily, Enabled: true},

		{Name: "Computer Weekly APAC", URL: "https://www.computerweekly.com/rss/Asia-Pacific-IT.xml", Category: "APAC Enterprise", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "iTNews Asia", URL: "https://www.itnews.asia/rss/feed.xml", Category: "APAC Enterprise", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "GovInsider", URL: "https://govinsider.asia/feed/", Category: "APAC Enterprise", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Rest of World", URL: "https://restofworld.org/feed/latest/", Category: "APAC Enterprise", Priority: 1, Credibility: 0.90, DigestType: core.DigestBoth, Enabled: true},
		{Name: "Tech Wire Asia", URL: "https://techwireasia.com/feed/", Category: "APAC Enterprise", Priority: 2, Credibility: 0.80, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Channel Asia", URL: "https://www.channelasia.tech/rss/feed.xml", Category: "APAC Enterprise", Priority: 2, Credibility: 0.75, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Economic Times Tech", URL: "https://tech.economictimes.indiatimes.com/rss/latest", Category: "APAC Enterprise", Priority: 2, Credibility: 0.80, DigestType: core.DigestDaily, Enabled: true},
		{Name: "ZDNet Australia", URL: "https://www.zdnet.com/topic/australia/rss.xml", Category: "APAC Enterprise", Priority: 2, Credibility: 0.80, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Tech in Asia", URL: "https://www.techinasia.com/feed", Category: "APAC Enterprise", Priority: 3, Credibility: 0.70, DigestType: core.DigestDaily, Enabled: true},

		{Name: "SCMP Tech", URL: "https://www.scmp.com/rss/5/feed", Category: "China & Geopolitics", Priority: 1, Credibility: 0.80, DigestType: core.DigestDaily, Enabled: true},
		{Name: "ChinaTalk", URL: "https://chinatalk.substack.com/feed", Category: "China & Geopolitics", Priority: 1, Credibility: 0.90, DigestType: core.DigestBoth, Enabled: true},
		{Name: "DigiChina", URL: "https://digichina.stanford.edu/feed/", Category: "China & Geopolitics", Priority: 2, Credibility: 0.95, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "Semafor", URL: "https://www.semafor.com/feed", Category: "China & Geopolitics", Priority: 2, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},

		{Name: "CIO Dive", URL: "https://www.ciodive.com/feeds/news/", Category: "Competitive Landscape", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Cloud Wars", URL: "https://cloudwars.com/feed/", Category: "Competitive Landscape", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "The Register", URL: "https://www.theregister.com/headlines.atom", Category: "Competitive Landscape", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Microsoft Azure Blog", URL: "https://azure.microsoft.com/en-us/blog/feed/", Category: "Competitive Landscape", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "AWS News Blog", URL: "https://aws.amazon.com/blogs/aws/feed/", Category: "Competitive Landscape", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Google Cloud Blog", URL: "https://cloud.google.com/blog/feed", Category: "Competitive Landscape", Priority: 1, Credibility: 0.85, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Accenture Newsroom", URL: "https://newsroom.accenture.com/rss/news.xml", Category: "Competitive Landscape", Priority: 2, Credibility: 0.80, DigestType: core.DigestDaily, Enabled: true},
		{Name: "Deloitte Insights", URL: "https://www2.deloitte.com/us/en/insights/rss-feeds/deloitte-insights.rss", Category: "Competitive Landscape", Priority: 2, Credibility: 0.80, DigestType: core.DigestDaily, Enabled: true},
		{Name: "BCG Publications", URL: "https://www.bcg.com/publications.rss", Category: "Competitive Landscape", Priority: 2, Credibility: 0.85, DigestType: core.DigestWeekly, Enabled: true},

		{Name: "InfoQ", URL: "https://feed.infoq.com/", Category: "Architecture & Platform", Priority: 1, Credibility: 0.90, DigestType: core.DigestBoth, Enabled: true},
		{Name: "The New Stack", URL: "https://thenewstack.io/feed/", Category: "Architecture & Platform", Priority: 1, Credibility: 0.85, DigestType: core.DigestBoth, Enabled: true},
		{Name: "Red Hat Blog", URL: "https://www.redhat.com/en/blog/rss.xml", Category: "Architecture & Platform", Priority: 1, Credibility: 0.90, DigestType: core.DigestBoth, Enabled: true},
		{Name: "SemiAnalysis", URL: "https://semianalysis.substack.com/feed", Category: "Architecture & Platform", Priority: 1, Credibility: 0.90, DigestType: core.DigestBoth, Enabled: true},
		{Name: "CNCF Blog", URL: "https://www.cncf.io/blog/feed/", Category: "Architecture & Platform", Priority: 2, Credibility: 0.85, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "Platform Engineering", URL: "https://platformengineering.org/blog/rss.xml", Category: "Architecture & Platform", Priority: 2, Credibility: 0.85, DigestType: core.DigestBoth, Enabled: true},
		{Name: "DataStax Blog", URL: "https://www.datastax.com/blog/rss.xml", Category: "Architecture & Platform", Priority: 3, Credibility: 0.80, DigestType: core.DigestWeekly, Enabled: true},

		{Name: "Stratechery", URL: "https://stratechery.com/feed/", Category: "Strategic Perspectives", Priority: 1, Credibility: 0.95, DigestType: core.DigestBoth, Enabled: true},
		{Name: "Ben Evans", URL: "https://www.ben-evans.com/benedictevans?format=rss", Category: "Strategic Perspectives", Priority: 1, Credibility: 0.95, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "Gartner", URL: "https://www.gartner.com/en/newsroom/rss", Category: "Strategic Perspectives", Priority: 1, Credibility: 0.95, DigestType: core.DigestBoth, Enabled: true},
		{Name: "IDC", URL: "https://www.idc.com/rss/press-releases.xml", Category: "Strategic Perspectives", Priority: 1, Credibility: 0.95, DigestType: core.DigestBoth, Enabled: true},
		{Name: "Forrester", URL: "https://www.forrester.com/blogs/feed/", Category: "Strategic Perspectives", Priority: 1, Credibility: 0.95, DigestType: core.DigestBoth, Enabled: true},
		{Name: "a16z", URL: "https://a16z.com/feed/", Category: "Strategic Perspectives", Priority: 2, Credibility: 0.90, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "McKinsey Digital", URL: "https://www.mckinsey.com/rss/insights.xml", Category: "Strategic Perspectives", Priority: 2, Credibility: 0.90, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "HBR Technology", URL: "https://hbr.org/topic/technology/feed", Category: "Strategic Perspectives", Priority: 2, Credibility: 0.90, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "MIT Sloan Review", URL: "https://sloanreview.mit.edu/feed/", Category: "Strategic Perspectives", Priority: 2, Credibility: 0.90, DigestType: core.DigestWeekly, Enabled: true},
		{Name: "Wired Business", URL: "https://www.wired.com/feed/category/business/latest/rss", Category: "Strategic Perspectives", Priority: 3, Credibility: 0.80, DigestType: core.DigestWeekly, Enabled: true},
	}
}
