package insight

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog holds the sentence options the synthesizer draws from.
type Catalog struct {
	Proposal struct {
		RiskFactors     []string `yaml:"risk_factors"`
		MarketAnalysis  []string `yaml:"market_analysis"`
		Recommendations []string `yaml:"recommendations"`
	} `yaml:"proposal"`
	Ticket struct {
		Responses       map[string]string `yaml:"responses"`
		Recommendations map[string]string `yaml:"recommendations"`
	} `yaml:"ticket"`
	Drive struct {
		Recommendations map[string]string `yaml:"recommendations"`
	} `yaml:"drive"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the embedded catalog. It panics if the embedded
// file is malformed since that can only happen at build time.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := ParseCatalog(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("insight: invalid embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Proposal.RiskFactors) < 3 {
		return nil, fmt.Errorf("catalog needs at least 3 risk factors, got %d", len(c.Proposal.RiskFactors))
	}
	if len(c.Proposal.Recommendations) < 2 {
		return nil, fmt.Errorf("catalog needs at least 2 recommendations, got %d", len(c.Proposal.Recommendations))
	}
	if len(c.Proposal.MarketAnalysis) == 0 {
		return nil, fmt.Errorf("catalog needs at least 1 market analysis sentence")
	}
	return &c, nil
}

// SuggestedResponse returns the canned reply for a ticket category,
// falling back to the general reply.
func (c *Catalog) SuggestedResponse(category string) string {
	if r, ok := c.Ticket.Responses[category]; ok {
		return r
	}
	return c.Ticket.Responses[FallbackCategory]
}
