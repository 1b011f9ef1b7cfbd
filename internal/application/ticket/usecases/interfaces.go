package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/domain/user"
)

// Classifier is satisfied by *insight.Classifier and its instrumented
// wrapper.
type Classifier interface {
	Classify(text string, domain insight.Domain) insight.Classification
}

type TextSanitizer interface {
	StripTags(text string) string
}

type TicketSynthesizer interface {
	SynthesizeTickets(tickets []insight.TicketFacts) insight.TicketSetInsight
}

type UserFinder interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}
