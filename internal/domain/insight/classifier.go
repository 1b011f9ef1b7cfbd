// Package insight implements the keyword classifier and the deterministic
// insight synthesizer behind the suite's "AI" fields. Nothing here calls a
// model; every score is derived from keyword matches or from seeds over
// stable entity fields, so the same input always yields the same output.
package insight

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentiment is a coarse polarity derived from keyword counts.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) String() string {
	return string(s)
}

func (s Sentiment) IsValid() bool {
	return s == SentimentPositive || s == SentimentNeutral || s == SentimentNegative
}

// Classification is the result of a single Classify call.
type Classification struct {
	Domain            Domain
	Category          string
	SubCategory       string
	Confidence        float64
	MatchedKeywords   []string
	SuggestedTags     []string
	Sentiment         Sentiment
	SuggestedResponse string
}

// IsFallback reports whether no category keyword matched.
func (c Classification) IsFallback() bool {
	return c.Category == FallbackCategory
}

// Classifier maps free text onto a category using static keyword tables.
type Classifier struct {
	tables  map[Domain]domainTable
	catalog *Catalog
	lower   cases.Caser
}

// NewClassifier returns a classifier over the built-in keyword tables.
func NewClassifier() *Classifier {
	return &Classifier{
		tables:  domainTables,
		catalog: DefaultCatalog(),
		lower:   cases.Lower(language.Und),
	}
}

type candidate struct {
	name     string
	matched  []string
	fraction float64
	score    float64
}

// Classify never fails: unknown domains are treated as tickets and text
// without any keyword hit yields the low-confidence fallback category.
func (c *Classifier) Classify(text string, domain Domain) Classification {
	table, ok := c.tables[domain]
	if !ok {
		domain = DomainTicket
		table = c.tables[DomainTicket]
	}

	tokens := c.tokenize(text)
	haystack := " " + strings.Join(tokens, " ") + " "
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	var best *candidate
	for _, rule := range table.categories {
		matched := matchKeywords(rule.keywords, tokenSet, haystack)
		if len(matched) == 0 {
			continue
		}
		cand := &candidate{
			name:     rule.name,
			matched:  matched,
			fraction: float64(len(matched)) / float64(len(rule.keywords)),
			score:    confidenceFor(len(matched), table),
		}
		if best == nil || cand.score > best.score ||
			(cand.score == best.score && cand.fraction > best.fraction) {
			best = cand
		}
	}

	seed := Seed(text)
	result := Classification{Domain: domain}

	if best == nil {
		result.Category = FallbackCategory
		result.Confidence = fallbackConfidence(seed)
		result.MatchedKeywords = []string{}
	} else {
		result.Category = best.name
		result.Confidence = best.score
		result.MatchedKeywords = best.matched
	}

	result.SubCategory = pickSubCategory(table, result.Category, tokenSet, haystack, seed)

	switch domain {
	case DomainFile:
		result.Sentiment = SentimentNeutral
		result.SuggestedTags = suggestTags(text, result)
	default:
		result.Sentiment = detectSentiment(tokenSet, haystack)
		result.SuggestedTags = []string{}
	}

	if domain == DomainTicket {
		result.SuggestedResponse = c.catalog.SuggestedResponse(result.Category)
	}

	return result
}

func (c *Classifier) tokenize(text string) []string {
	lowered := c.lower.String(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func matchKeywords(keywords []string, tokens map[string]struct{}, haystack string) []string {
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(haystack, " "+kw+" ") {
				matched = append(matched, kw)
			}
			continue
		}
		if _, ok := tokens[kw]; ok {
			matched = append(matched, kw)
		}
	}
	return matched
}

func confidenceFor(matchCount int, table domainTable) float64 {
	raw := math.Min(table.cap, confidenceBase+float64(matchCount)*confidenceStep) * table.weight
	return round2(clamp(raw, 0, confidenceLimit))
}

// fallbackConfidence lands in [0.30, 0.50].
func fallbackConfidence(seed int) float64 {
	return round2(0.3 + float64(seed%21)/100)
}

func pickSubCategory(table domainTable, category string, tokens map[string]struct{}, haystack string, seed int) string {
	for _, rule := range table.subCategories[category] {
		if len(matchKeywords(rule.keywords, tokens, haystack)) > 0 {
			return rule.name
		}
	}
	options := table.subFallbacks[category]
	if len(options) == 0 {
		return category
	}
	return options[seed%len(options)]
}

func detectSentiment(tokens map[string]struct{}, haystack string) Sentiment {
	pos := len(matchKeywords(positiveKeywords, tokens, haystack))
	neg := len(matchKeywords(negativeKeywords, tokens, haystack))
	switch {
	case pos > neg:
		return SentimentPositive
	case neg > pos:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

const maxSuggestedTags = 5

func suggestTags(filename string, result Classification) []string {
	tags := make([]string, 0, maxSuggestedTags)
	seen := make(map[string]bool)
	add := func(tag string) {
		tag = strings.TrimSpace(strings.ToLower(tag))
		if tag == "" || seen[tag] || len(tags) >= maxSuggestedTags {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	add(result.Category)
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		add(ext)
	}
	if result.SubCategory != "" && result.SubCategory != result.Category {
		add(result.SubCategory)
	}
	for _, kw := range result.MatchedKeywords {
		add(kw)
	}
	return tags
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
