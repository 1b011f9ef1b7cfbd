package dto

import (
	"time"

	"github.com/conseccomms/conseccomms/internal/domain/insight"
	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	vo "github.com/conseccomms/conseccomms/internal/domain/proposal/valueobjects"
	"github.com/conseccomms/conseccomms/internal/shared/mapper"
)

type LineItemDTO struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type ProposalDTO struct {
	ID              uint          `json:"id"`
	ProposalNumber  string        `json:"proposal_number"`
	Title           string        `json:"title"`
	ClientName      string        `json:"client_name"`
	ClientEmail     string        `json:"client_email"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html,omitempty"`
	Status          string        `json:"status"`
	TotalAmount     float64       `json:"total_amount"`
	ValidUntil      *time.Time    `json:"valid_until,omitempty"`
	LineItems       []LineItemDTO `json:"line_items"`
	NextStatuses    []string      `json:"next_statuses"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	SentAt          *time.Time    `json:"sent_at,omitempty"`
}

func ToProposalDTO(p *proposal.Proposal) *ProposalDTO {
	if p == nil {
		return nil
	}
	return &ProposalDTO{
		ID:             p.ID(),
		ProposalNumber: p.ProposalNumber(),
		Title:          p.Title(),
		ClientName:     p.ClientName(),
		ClientEmail:    p.ClientEmail(),
		Description:    p.Description(),
		Status:         p.Status().String(),
		TotalAmount:    p.TotalAmount(),
		ValidUntil:     p.ValidUntil(),
		LineItems: mapper.MapSlice(p.LineItems(), func(it proposal.LineItem) LineItemDTO {
			return LineItemDTO{
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Amount:      it.Amount,
			}
		}),
		NextStatuses: mapper.MapSlice(p.Status().NextStatuses(), func(s vo.ProposalStatus) string {
			return s.String()
		}),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
		SentAt:    p.SentAt(),
	}
}

func ToProposalDTOs(items []*proposal.Proposal) []ProposalDTO {
	return mapper.MapSlice(items, func(p *proposal.Proposal) ProposalDTO {
		return *ToProposalDTO(p)
	})
}

type ProposalInsightDTO struct {
	ProposalID      uint     `json:"proposal_id"`
	WinProbability  int      `json:"win_probability"`
	PriceMultiplier float64  `json:"price_multiplier"`
	SuggestedPrice  float64  `json:"suggested_price"`
	RiskFactors     []string `json:"risk_factors"`
	MarketAnalysis  string   `json:"market_analysis"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
}

func ToProposalInsightDTO(proposalID uint, in insight.ProposalInsight) *ProposalInsightDTO {
	return &ProposalInsightDTO{
		ProposalID:      proposalID,
		WinProbability:  in.WinProbability,
		PriceMultiplier: in.PriceMultiplier,
		SuggestedPrice:  in.SuggestedPrice,
		RiskFactors:     in.RiskFactors,
		MarketAnalysis:  in.MarketAnalysis,
		Recommendations: in.Recommendations,
		Confidence:      in.Confidence,
	}
}
