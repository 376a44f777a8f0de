package draft

import "fmt"

// Strategy selects how a race's draft order is seeded.
type Strategy string

const (
	// StrategyRandom shuffles the active roster. Used for the season opener.
	StrategyRandom Strategy = "random"
	// StrategyPerformance orders players worst previous race first.
	StrategyPerformance Strategy = "performance"
)

// ParseStrategy validates a caller-supplied strategy string.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRandom, StrategyPerformance:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
