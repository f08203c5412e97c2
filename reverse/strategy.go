package reverse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A Func reverses text. BySlicing, ByIteration and ByRecursion are Funcs.
type Func func(text string) string

type Strategy int

const (
	Slicing Strategy = iota
	Iteration
	Recursion
)

var strategyNames = [...]string{
	Slicing:   "slicing",
	Iteration: "iteration",
	Recursion: "recursion",
}

var strategyLabels = [...]string{
	Slicing:   "Slicing",
	Iteration: "Iterative",
	Recursion: "Recursive",
}

// Returns every strategy, in declaration order.
func Strategies() []Strategy {
	return []Strategy{Slicing, Iteration, Recursion}
}

// ParseStrategy accepts a strategy's name or label, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Strategies() {
		if strings.EqualFold(trimmed, s.String()) || strings.EqualFold(trimmed, s.Label()) {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

func (s Strategy) Valid() bool {
	return s >= Slicing && s <= Recursion
}

func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Label is the human-readable name used in the demonstration output.
func (s Strategy) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return strategyLabels[s]
}

// Func returns the function implementing s, or nil if s is not valid.
func (s Strategy) Func() Func {
	switch s {
	case Slicing:
		return BySlicing
	case Iteration:
		return ByIteration
	case Recursion:
		return ByRecursion
	}
	return nil
}

// Reverse reverses text with s. It panics if s is not valid.
func (s Strategy) Reverse(text string) string {
	fn := s.Func()
	if fn == nil {
		panic(fmt.Sprintf("reverse: %v", s))
	}
	return fn(text)
}
