package draft

import "fmt"

// Order controls how the pick order moves between rounds.
type Order string

const (
	// OrderLinear repeats the same order every round.
	OrderLinear Order = "linear"
	// OrderSnake reverses the order on every other round.
	OrderSnake Order = "snake"
)

// ParseOrder maps raw onto a known order. Empty means linear.
func ParseOrder(raw string) (Order, error) {
	switch Order(raw) {
	case "", OrderLinear:
		return OrderLinear, nil
	case OrderSnake:
		return OrderSnake, nil
	default:
		return "", fmt.Errorf("%w: unknown draft order %q", ErrInvalidOptions, raw)
	}
}

// slot returns the index into the draft-ordered team list that owns the
// pick at overall index pick.
func (o Order) slot(pick, teamCount int) (round, slot int) {
	round = pick / teamCount
	slot = pick % teamCount
	if o == OrderSnake && round%2 == 1 {
		slot = teamCount - 1 - slot
	}
	return round, slot
}
