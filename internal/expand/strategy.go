package expand

import "fmt"

// Strategy selects how [Expand] synthesizes copies.
type Strategy uint8

const (
	// StrategyFields synthesizes one With method per eligible field.
	StrategyFields Strategy = iota

	// StrategyBuilder synthesizes a single Copy method backed by a builder
	// type.
	StrategyBuilder
)

func (s Strategy) String() string {
	switch s {
	case StrategyFields:
		return "fields"
	case StrategyBuilder:
		return "builder"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy parses a strategy name from a flag or a config file.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "fields":
		return StrategyFields, nil
	case "builder":
		return StrategyBuilder, nil
	}
	return 0, fmt.Errorf("unknown strategy %q; want fields or builder", name)
}
