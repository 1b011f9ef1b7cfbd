package usecases

import (
	"context"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/domain/user"
)

type ProposalSynthesizer interface {
	SynthesizeProposal(facts insight.ProposalFacts) insight.ProposalInsight
}

type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type UserFinder interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}
