package dto

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/feedback"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type FeedbackDTO struct {
	ID         uint      `json:"id"`
	Message    string    `json:"message"`
	Category   string    `json:"category"`
	Sentiment  string    `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToFeedbackDTO(f *feedback.Feedback) *FeedbackDTO {
	if f == nil {
		return nil
	}
	return &FeedbackDTO{
		ID:         f.ID(),
		Message:    f.Message(),
		Category:   f.Category(),
		Sentiment:  f.Sentiment(),
		Confidence: f.Confidence(),
		CreatedAt:  f.CreatedAt(),
	}
}

func ToFeedbackDTOs(items []*feedback.Feedback) []FeedbackDTO {
	return mapper.MapSlice(items, func(f *feedback.Feedback) FeedbackDTO {
		return *ToFeedbackDTO(f)
	})
}
