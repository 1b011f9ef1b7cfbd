package proposal

import (
	"fmt"
	"math"
	"strings"
)

// LineItem is a value object; Amount is always Quantity * UnitPrice rounded
// to cents.
type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

func NewLineItem(description string, quantity, unitPrice float64) (LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return LineItem{}, fmt.Errorf("line item description is required")
	}
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return LineItem{}, fmt.Errorf("line item quantity must be positive")
	}
	if unitPrice < 0 || math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return LineItem{}, fmt.Errorf("line item unit price cannot be negative")
	}
	return LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      roundCents(quantity * unitPrice),
	}, nil
}

// TotalOf sums the line item amounts.
func TotalOf(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	return roundCents(total)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
