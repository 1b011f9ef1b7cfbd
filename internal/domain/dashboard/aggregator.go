// Package dashboard computes the cross-app summary shown on the landing
// dashboard from a user's tickets, files and proposals.
package dashboard

import (
	"math"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
)

// ProposalFacts are the proposal fields the dashboard needs.
type ProposalFacts struct {
	Status      string
	TotalAmount float64
}

type TicketSummary struct {
	Total                    int            `json:"total"`
	ByStatus                 map[string]int `json:"by_status"`
	OpenPercent              float64        `json:"open_percent"`
	ResolvedPercent          float64        `json:"resolved_percent"`
	PositiveSentimentPercent float64        `json:"positive_sentiment_percent"`
	TopCategory              string         `json:"top_category"`
	TopCategoryCount         int            `json:"top_category_count"`
}

type DriveSummary struct {
	TotalFiles    int   `json:"total_files"`
	TotalBytes    int64 `json:"total_bytes"`
	FavoriteCount int   `json:"favorite_count"`
}

type ProposalSummary struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	PipelineValue float64        `json:"pipeline_value"`
	ApprovedValue float64        `json:"approved_value"`
	WinRate       float64        `json:"win_rate"`
}

type Summary struct {
	Tickets   TicketSummary   `json:"tickets"`
	Drive     DriveSummary    `json:"drive"`
	Proposals ProposalSummary `json:"proposals"`
}

var (
	ticketStatuses   = []string{"open", "in_progress", "resolved"}
	proposalStatuses = []string{"draft", "sent", "viewed", "approved", "rejected", "expired"}
)

// Aggregate never fails; empty inputs produce zeroed sections.
func Aggregate(tickets []insight.TicketFacts, files []insight.FileFacts, proposals []ProposalFacts) Summary {
	return Summary{
		Tickets:   summarizeTickets(tickets),
		Drive:     summarizeDrive(files),
		Proposals: summarizeProposals(proposals),
	}
}

func summarizeTickets(tickets []insight.TicketFacts) TicketSummary {
	out := TicketSummary{
		Total:    len(tickets),
		ByStatus: zeroCounts(ticketStatuses),
	}

	categories := make([]string, 0, len(tickets))
	positive := 0
	for _, t := range tickets {
		out.ByStatus[t.Status]++
		if t.Sentiment == string(insight.SentimentPositive) {
			positive++
		}
		if t.Category != "" {
			categories = append(categories, t.Category)
		}
	}

	resolved := out.ByStatus["resolved"]
	out.OpenPercent = percent(out.Total-resolved, out.Total)
	out.ResolvedPercent = percent(resolved, out.Total)
	out.PositiveSentimentPercent = percent(positive, out.Total)
	out.TopCategory, out.TopCategoryCount = insight.MostCommon(categories)
	return out
}

func summarizeDrive(files []insight.FileFacts) DriveSummary {
	out := DriveSummary{TotalFiles: len(files)}
	for _, f := range files {
		out.TotalBytes += f.Size
		if f.IsFavorite {
			out.FavoriteCount++
		}
	}
	return out
}

func summarizeProposals(proposals []ProposalFacts) ProposalSummary {
	out := ProposalSummary{
		Total:    len(proposals),
		ByStatus: zeroCounts(proposalStatuses),
	}

	var pipeline, approved float64
	for _, p := range proposals {
		out.ByStatus[p.Status]++
		switch p.Status {
		case "draft", "sent", "viewed":
			pipeline += p.TotalAmount
		case "approved":
			approved += p.TotalAmount
		}
	}

	decided := out.ByStatus["approved"] + out.ByStatus["rejected"] + out.ByStatus["expired"]
	out.PipelineValue = round2(pipeline)
	out.ApprovedValue = round2(approved)
	out.WinRate = percent(out.ByStatus["approved"], decided)
	return out
}

func zeroCounts(keys []string) map[string]int {
	m := make(map[string]int, len(keys))
	for _, k := range keys {
		m[k] = 0
	}
	return m
}

// percent returns part/whole*100 rounded to one decimal, 0 when whole is 0.
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(whole)) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
