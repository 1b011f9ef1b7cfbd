package dto

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/domain/ticket"
	vo "github.com/conseccomms/conseccomms/internal/domain/ticket/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type TicketDTO struct {
	ID                  uint       `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	AICategory          string     `json:"ai_category"`
	AISubCategory       string     `json:"ai_sub_category"`
	AISentiment         string     `json:"ai_sentiment"`
	AIConfidence        float64    `json:"ai_confidence"`
	AISuggestedResponse string     `json:"ai_suggested_response"`
	NextStatuses        []string   `json:"next_statuses"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:                  t.ID(),
		Title:               t.Title(),
		Description:         t.Description(),
		Status:              t.Status().String(),
		Priority:            t.Priority().String(),
		AICategory:          t.AICategory(),
		AISubCategory:       t.AISubCategory(),
		AISentiment:         string(t.AISentiment()),
		AIConfidence:        t.AIConfidence(),
		AISuggestedResponse: t.AISuggestedResponse(),
		NextStatuses:        StatusStrings(t.NextStatuses()),
		CreatedAt:           t.CreatedAt(),
		UpdatedAt:           t.UpdatedAt(),
		ResolvedAt:          t.ResolvedAt(),
	}
}

func ToTicketDTOs(items []*ticket.Ticket) []TicketDTO {
	return mapper.MapSlice(items, func(t *ticket.Ticket) TicketDTO {
		return *ToTicketDTO(t)
	})
}

func StatusStrings(statuses []vo.TicketStatus) []string {
	return mapper.MapSlice(statuses, func(s vo.TicketStatus) string {
		return s.String()
	})
}

type TicketInsightDTO struct {
	Total                 int            `json:"total"`
	OpenCount             int            `json:"open_count"`
	ResolvedCount         int            `json:"resolved_count"`
	UrgentOpenCount       int            `json:"urgent_open_count"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	TopCategory           string         `json:"top_category"`
	TopCategoryCount      int            `json:"top_category_count"`
	AverageConfidence     float64        `json:"average_confidence"`
	Recommendation        string         `json:"recommendation"`
}

func ToTicketInsightDTO(in insight.TicketSetInsight) *TicketInsightDTO {
	return &TicketInsightDTO{
		Total:                 in.Total,
		OpenCount:             in.OpenCount,
		ResolvedCount:         in.ResolvedCount,
		UrgentOpenCount:       in.UrgentOpenCount,
		SentimentDistribution: in.SentimentDistribution,
		TopCategory:           in.TopCategory,
		TopCategoryCount:      in.TopCategoryCount,
		AverageConfidence:     in.AverageConfidence,
		Recommendation:        in.Recommendation,
	}
}
