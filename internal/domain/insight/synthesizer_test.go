package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeProposal_Ranges(t *testing.T) {
	s := NewSynthesizer()

	for i := 0; i < 200; i++ {
		facts := ProposalFacts{
			ID:          uint(i + 1),
			Title:       fmt.Sprintf("Website redesign phase %d", i),
			ClientName:  fmt.Sprintf("Client %d", i*7),
			TotalAmount: float64(i * 100),
		}
		got := s.SynthesizeProposal(facts)

		assert.GreaterOrEqual(t, got.WinProbability, 35)
		assert.LessOrEqual(t, got.WinProbability, 92)
		assert.GreaterOrEqual(t, got.PriceMultiplier, 0.90)
		assert.LessOrEqual(t, got.PriceMultiplier, 1.30)
		assert.GreaterOrEqual(t, len(got.RiskFactors), 2)
		assert.LessOrEqual(t, len(got.RiskFactors), 3)
		assert.Len(t, got.Recommendations, 2)
		assert.NotEmpty(t, got.MarketAnalysis)
		assert.NotEqual(t, got.Recommendations[0], got.Recommendations[1])
	}
}

func TestSynthesizeProposal_Deterministic(t *testing.T) {
	s := NewSynthesizer()
	facts := ProposalFacts{ID: 12, Title: "CRM rollout", ClientName: "Acme", TotalAmount: 4200}

	first := s.SynthesizeProposal(facts)
	second := s.SynthesizeProposal(facts)

	assert.Equal(t, first, second)
}

func TestSynthesizeProposal_DefaultBase(t *testing.T) {
	s := NewSynthesizer()

	got := s.SynthesizeProposal(ProposalFacts{ID: 3, Title: "Audit", ClientName: "Globex"})

	assert.InDelta(t, 10000*got.PriceMultiplier, got.SuggestedPrice, 0.01)
}

func TestSynthesizeProposal_SuggestedPriceFromTotal(t *testing.T) {
	s := NewSynthesizer()

	got := s.SynthesizeProposal(ProposalFacts{ID: 3, Title: "Audit", ClientName: "Globex", TotalAmount: 250})

	assert.InDelta(t, 250*got.PriceMultiplier, got.SuggestedPrice, 0.01)
}

func TestSynthesizeProposal_TimeMixing(t *testing.T) {
	facts := ProposalFacts{ID: 9, Title: "Support retainer", ClientName: "Initech", TotalAmount: 900}
	day1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	t.Run("disabled ignores the clock", func(t *testing.T) {
		a := NewSynthesizer(WithClock(func() time.Time { return day1 })).SynthesizeProposal(facts)
		b := NewSynthesizer(WithClock(func() time.Time { return day2 })).SynthesizeProposal(facts)
		assert.Equal(t, a, b)
	})

	t.Run("enabled varies by day", func(t *testing.T) {
		a := NewSynthesizer(WithTimeMixing(true), WithClock(func() time.Time { return day1 })).SynthesizeProposal(facts)
		b := NewSynthesizer(WithTimeMixing(true), WithClock(func() time.Time { return day2 })).SynthesizeProposal(facts)
		assert.NotEqual(t, a.WinProbability, b.WinProbability)
	})
}

func TestSynthesizeTickets(t *testing.T) {
	s := NewSynthesizer()

	t.Run("empty set", func(t *testing.T) {
		got := s.SynthesizeTickets(nil)
		assert.Zero(t, got.Total)
		assert.Zero(t, got.AverageConfidence)
		assert.Equal(t, "", got.TopCategory)
		assert.NotEmpty(t, got.Recommendation)
	})

	t.Run("counts and top category", func(t *testing.T) {
		got := s.SynthesizeTickets([]TicketFacts{
			{Status: "open", Priority: "urgent", Category: "billing", Sentiment: "negative", Confidence: 0.6},
			{Status: "in_progress", Priority: "low", Category: "technical", Sentiment: "neutral", Confidence: 0.7},
			{Status: "resolved", Priority: "urgent", Category: "technical", Sentiment: "positive", Confidence: 0.8},
			{Status: "open", Priority: "medium", Category: "billing", Sentiment: "negative", Confidence: 0.9},
		})
		assert.Equal(t, 4, got.Total)
		assert.Equal(t, 3, got.OpenCount)
		assert.Equal(t, 1, got.ResolvedCount)
		assert.Equal(t, 1, got.UrgentOpenCount)
		assert.Equal(t, "billing", got.TopCategory)
		assert.Equal(t, 2, got.TopCategoryCount)
		assert.Equal(t, 2, got.SentimentDistribution["negative"])
		assert.InDelta(t, 0.75, got.AverageConfidence, 0.001)
		assert.Equal(t, DefaultCatalog().Ticket.Recommendations["backlog"], got.Recommendation)
	})
}

func TestSynthesizeDrive(t *testing.T) {
	s := NewSynthesizer()

	got := s.SynthesizeDrive([]FileFacts{
		{Filename: "logo.png", Size: 100, Category: "image", Tags: []string{"image", "png"}, IsFavorite: true},
		{Filename: "logo.png", Size: 100, Category: "image", Tags: []string{"image", "png"}},
		{Filename: "budget.xlsx", Size: 50, Category: "spreadsheet", Tags: []string{"spreadsheet"}},
		{Filename: "logo.png", Size: 120, Category: "image"},
	})

	assert.Equal(t, 4, got.TotalFiles)
	assert.Equal(t, int64(370), got.TotalBytes)
	assert.Equal(t, int64(320), got.BytesByCategory["image"])
	assert.Equal(t, 1, got.FavoriteCount)
	require.Len(t, got.DuplicateGroups, 1)
	assert.Equal(t, DuplicateGroup{Filename: "logo.png", Size: 100, Count: 2}, got.DuplicateGroups[0])
	require.Len(t, got.TopTags, 3)
	assert.Equal(t, TagCount{Tag: "image", Count: 2}, got.TopTags[0])
	assert.Equal(t, TagCount{Tag: "png", Count: 2}, got.TopTags[1])
	assert.Equal(t, DefaultCatalog().Drive.Recommendations["duplicates"], got.Recommendation)
}

func TestMostCommon(t *testing.T) {
	tests := []struct {
		name      string
		values    []string
		wantValue string
		wantCount int
	}{
		{"empty", nil, "", 0},
		{"single", []string{"a"}, "a", 1},
		{"clear winner", []string{"a", "b", "b"}, "b", 2},
		{"tie goes to first encountered", []string{"a", "b", "b", "a"}, "a", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n := MostCommon(tt.values)
			assert.Equal(t, tt.wantValue, v)
			assert.Equal(t, tt.wantCount, n)
		})
	}
}

func TestSeed(t *testing.T) {
	assert.Equal(t, 0, Seed())
	assert.Equal(t, int('a')*31, Seed("a"))
	assert.Equal(t, int('a')*31+int('b')*37, Seed("a", "b"))
	assert.NotEqual(t, Seed("a", "b"), Seed("b", "a"))
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog([]byte("proposal:\n  risk_factors: [a]\n"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte(":::"))
	assert.Error(t, err)
}
