package metrics

import (
	"github.com/conseccomms/conseccomms/internal/domain/insight"
)

type classifier interface {
	Classify(text string, domain insight.Domain) insight.Classification
}

// InstrumentedClassifier counts every classification it delegates.
type InstrumentedClassifier struct {
	next    classifier
	metrics *Metrics
}

func NewInstrumentedClassifier(next classifier, m *Metrics) *InstrumentedClassifier {
	return &InstrumentedClassifier{next: next, metrics: m}
}

func (c *InstrumentedClassifier) Classify(text string, domain insight.Domain) insight.Classification {
	result := c.next.Classify(text, domain)
	c.metrics.RecordClassification(string(domain), result.Category, result.Confidence)
	return result
}
