// Package feedback holds end-user feedback messages and their keyword
// classification.
package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/shared/query"
)

const maxMessageLength = 5000

type Feedback struct {
	id         uint
	userID     uint
	message    string
	category   string
	sentiment  string
	confidence float64
	createdAt  time.Time
}

func NewFeedback(userID uint, message string) (*Feedback, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}
	return &Feedback{
		userID:    userID,
		message:   message,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructFeedback(id, userID uint, message, category, sentiment string, confidence float64, createdAt time.Time) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	return &Feedback{
		id:         id,
		userID:     userID,
		message:    message,
		category:   category,
		sentiment:  sentiment,
		confidence: confidence,
		createdAt:  createdAt,
	}, nil
}

func (f *Feedback) ID() uint {
	return f.id
}

func (f *Feedback) UserID() uint {
	return f.userID
}

func (f *Feedback) Message() string {
	return f.message
}

func (f *Feedback) Category() string {
	return f.category
}

func (f *Feedback) Sentiment() string {
	return f.sentiment
}

func (f *Feedback) Confidence() float64 {
	return f.confidence
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *Feedback) ApplyClassification(c insight.Classification) {
	f.category = c.Category
	f.sentiment = string(c.Sentiment)
	f.confidence = c.Confidence
}

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	List(ctx context.Context, userID uint, page query.PageFilter) ([]*Feedback, int64, error)
}
