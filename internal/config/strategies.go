package config

import (
	"golang.org/x/exp/slices"

	"github.com/mel2oo/go-reverse/reverse"
)

// ParseStrategies resolves names to strategies, dropping repeats and
// keeping first-seen order.
func ParseStrategies(names []string) ([]reverse.Strategy, error) {
	rv := make([]reverse.Strategy, 0, len(names))
	for _, name := range names {
		s, err := reverse.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(rv, s) {
			rv = append(rv, s)
		}
	}
	return rv, nil
}
