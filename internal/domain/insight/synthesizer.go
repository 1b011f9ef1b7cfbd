package insight

import (
	"math"
	"sort"
	"strconv"
	"time"
)

const (
	winProbabilityMin  = 35
	winProbabilityMax  = 92
	multiplierMinCents = 90
	multiplierMaxCents = 130
	defaultBaseAmount  = 10000
)

// Synthesizer derives insight payloads from entity facts. All outputs are a
// pure function of the facts unless time mixing is enabled, in which case
// the injected clock contributes the current day to the seed.
type Synthesizer struct {
	catalog *Catalog
	mixTime bool
	now     func() time.Time
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithCatalog replaces the embedded sentence catalog.
func WithCatalog(c *Catalog) SynthesizerOption {
	return func(s *Synthesizer) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithTimeMixing makes proposal insights vary from one day to the next.
func WithTimeMixing(enabled bool) SynthesizerOption {
	return func(s *Synthesizer) {
		s.mixTime = enabled
	}
}

// WithClock injects the clock used when time mixing is enabled.
func WithClock(now func() time.Time) SynthesizerOption {
	return func(s *Synthesizer) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSynthesizer(opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		catalog: DefaultCatalog(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProposalFacts are the stable proposal fields insights are derived from.
type ProposalFacts struct {
	ID          uint
	Title       string
	ClientName  string
	TotalAmount float64
}

type ProposalInsight struct {
	WinProbability  int
	PriceMultiplier float64
	SuggestedPrice  float64
	RiskFactors     []string
	MarketAnalysis  string
	Recommendations []string
	Confidence      float64
}

// SynthesizeProposal never fails; a zero total falls back to a default base
// amount for the suggested price.
func (s *Synthesizer) SynthesizeProposal(facts ProposalFacts) ProposalInsight {
	seed := Seed(facts.Title, facts.ClientName, strconv.FormatUint(uint64(facts.ID), 10))
	if s.mixTime {
		seed += int(s.now().UTC().Unix() / 86400)
	}

	winSpan := winProbabilityMax - winProbabilityMin + 1
	multSpan := multiplierMaxCents - multiplierMinCents + 1

	multiplier := float64(multiplierMinCents+(seed/7)%multSpan) / 100
	base := facts.TotalAmount
	if base <= 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		base = defaultBaseAmount
	}

	riskCount := 2 + seed%2
	cat := s.catalog.Proposal

	return ProposalInsight{
		WinProbability:  winProbabilityMin + seed%winSpan,
		PriceMultiplier: multiplier,
		SuggestedPrice:  round2(base * multiplier),
		RiskFactors:     pickDistinct(cat.RiskFactors, seed, riskCount),
		MarketAnalysis:  pick(cat.MarketAnalysis, seed, 3),
		Recommendations: pickDistinct(cat.Recommendations, seed/3, 2),
		Confidence:      round2(0.6 + float64(seed%31)/100),
	}
}

// TicketFacts are the classified fields of one ticket.
type TicketFacts struct {
	Status     string
	Priority   string
	Category   string
	Sentiment  string
	Confidence float64
}

type TicketSetInsight struct {
	Total                 int
	OpenCount             int
	ResolvedCount         int
	UrgentOpenCount       int
	SentimentDistribution map[string]int
	TopCategory           string
	TopCategoryCount      int
	AverageConfidence     float64
	Recommendation        string
}

// SynthesizeTickets summarises a ticket set. An empty set yields zero
// counts and the healthy recommendation.
func (s *Synthesizer) SynthesizeTickets(tickets []TicketFacts) TicketSetInsight {
	out := TicketSetInsight{
		Total: len(tickets),
		SentimentDistribution: map[string]int{
			string(SentimentPositive): 0,
			string(SentimentNeutral):  0,
			string(SentimentNegative): 0,
		},
	}

	categories := make([]string, 0, len(tickets))
	var confidenceSum float64
	for _, t := range tickets {
		switch t.Status {
		case "resolved":
			out.ResolvedCount++
		default:
			out.OpenCount++
			if t.Priority == "urgent" {
				out.UrgentOpenCount++
			}
		}
		if t.Sentiment != "" {
			out.SentimentDistribution[t.Sentiment]++
		}
		if t.Category != "" {
			categories = append(categories, t.Category)
		}
		confidenceSum += t.Confidence
	}

	out.TopCategory, out.TopCategoryCount = MostCommon(categories)
	if out.Total > 0 {
		out.AverageConfidence = round2(confidenceSum / float64(out.Total))
	}

	recs := s.catalog.Ticket.Recommendations
	negative := out.SentimentDistribution[string(SentimentNegative)]
	switch {
	case out.Total > 0 && negative*2 > out.Total:
		out.Recommendation = recs["high_negative"]
	case out.UrgentOpenCount >= 3:
		out.Recommendation = recs["many_urgent"]
	case out.OpenCount > out.ResolvedCount:
		out.Recommendation = recs["backlog"]
	default:
		out.Recommendation = recs["healthy"]
	}
	return out
}

// FileFacts are the fields of one drive file used by drive insights.
type FileFacts struct {
	Filename   string
	Size       int64
	Category   string
	Tags       []string
	IsFavorite bool
}

type DuplicateGroup struct {
	Filename string
	Size     int64
	Count    int
}

type TagCount struct {
	Tag   string
	Count int
}

type DriveInsight struct {
	TotalFiles      int
	TotalBytes      int64
	BytesByCategory map[string]int64
	FavoriteCount   int
	DuplicateGroups []DuplicateGroup
	TopTags         []TagCount
	Recommendation  string
}

const maxTopTags = 5

func (s *Synthesizer) SynthesizeDrive(files []FileFacts) DriveInsight {
	out := DriveInsight{
		TotalFiles:      len(files),
		BytesByCategory: make(map[string]int64),
		DuplicateGroups: []DuplicateGroup{},
		TopTags:         []TagCount{},
	}

	type dupKey struct {
		name string
		size int64
	}
	dupCounts := make(map[dupKey]int)
	dupOrder := make([]dupKey, 0)
	tagCounts := make(map[string]int)
	tagOrder := make([]string, 0)
	untagged := 0

	for _, f := range files {
		out.TotalBytes += f.Size
		category := f.Category
		if category == "" {
			category = FallbackCategory
		}
		out.BytesByCategory[category] += f.Size
		if f.IsFavorite {
			out.FavoriteCount++
		}

		k := dupKey{name: f.Filename, size: f.Size}
		if dupCounts[k] == 0 {
			dupOrder = append(dupOrder, k)
		}
		dupCounts[k]++

		if len(f.Tags) == 0 {
			untagged++
		}
		for _, tag := range f.Tags {
			if tagCounts[tag] == 0 {
				tagOrder = append(tagOrder, tag)
			}
			tagCounts[tag]++
		}
	}

	for _, k := range dupOrder {
		if n := dupCounts[k]; n > 1 {
			out.DuplicateGroups = append(out.DuplicateGroups, DuplicateGroup{Filename: k.name, Size: k.size, Count: n})
		}
	}

	for _, tag := range tagOrder {
		out.TopTags = append(out.TopTags, TagCount{Tag: tag, Count: tagCounts[tag]})
	}
	// stable sort keeps first-encountered order among equal counts
	sort.SliceStable(out.TopTags, func(i, j int) bool {
		return out.TopTags[i].Count > out.TopTags[j].Count
	})
	if len(out.TopTags) > maxTopTags {
		out.TopTags = out.TopTags[:maxTopTags]
	}

	recs := s.catalog.Drive.Recommendations
	switch {
	case len(out.DuplicateGroups) > 0:
		out.Recommendation = recs["duplicates"]
	case out.TotalFiles > 0 && untagged*2 > out.TotalFiles:
		out.Recommendation = recs["untagged"]
	case out.TotalFiles >= 10 && out.FavoriteCount == 0:
		out.Recommendation = recs["favorites"]
	default:
		out.Recommendation = recs["healthy"]
	}
	return out
}

// MostCommon returns the most frequent value and its count. On ties the
// value encountered first wins. Empty input yields ("", 0).
func MostCommon(values []string) (string, int) {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best, bestCount := "", 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount
}
