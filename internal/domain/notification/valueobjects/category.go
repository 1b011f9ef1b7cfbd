package valueobjects

import "fmt"

// Category groups notifications by the app that raised them.
type Category string

const (
	CategoryTicket   Category = "ticket"
	CategoryAI       Category = "ai"
	CategoryProposal Category = "proposal"
	CategoryDrive    Category = "drive"
	CategorySecurity Category = "security"
	CategorySystem   Category = "system"
)

var validCategories = map[Category]bool{
	CategoryTicket:   true,
	CategoryAI:       true,
	CategoryProposal: true,
	CategoryDrive:    true,
	CategorySecurity: true,
	CategorySystem:   true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid notification category: %s", s)
	}
	return c, nil
}
