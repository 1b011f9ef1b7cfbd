package proposal

import (
	"context"
	"fmt"
)

const numberPrefix = "PROP"

// FormatNumber renders a proposal number such as PROP-2026-0007.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", numberPrefix, year, seq)
}

// NumberAllocator hands out the next sequence value for a year. It must be
// called inside the transaction that inserts the proposal so that a failed
// insert releases the number.
type NumberAllocator interface {
	NextSequence(ctx context.Context, year int) (int, error)
}
