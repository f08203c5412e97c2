package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mel2oo/go-reverse/internal/config"
	"github.com/mel2oo/go-reverse/reverse"
)

const demoTitle = "String Reversal Demonstration"

type demo struct {
	reversers []*reverse.Reverser
	check     bool
	json      bool
	log       zerolog.Logger
}

func newDemo(cfg config.Config, log zerolog.Logger, json bool) (*demo, error) {
	if len(cfg.Strategies) == 0 {
		return nil, errors.New("no strategies selected")
	}

	d := &demo{check: cfg.Check, json: json, log: log}
	for _, s := range cfg.Strategies {
		r, err := reverse.New(
			reverse.WithStrategy(s),
			reverse.WithMaxRecursionDepth(cfg.MaxRecursionDepth),
		)
		if err != nil {
			return nil, err
		}
		d.reversers = append(d.reversers, r)
	}
	return d, nil
}

func (d *demo) run(w io.Writer, inputs []string) error {
	fmt.Fprintln(w, demoTitle)
	fmt.Fprintln(w, strings.Repeat("=", 40))

	for _, input := range inputs {
		outputs, err := d.reverseAll(input)
		if err != nil {
			d.log.Error().Err(err).Str("input", input).Msg("reversal failed")
			return err
		}

		fmt.Fprintf(w, "\nOriginal: '%s'\n", input)
		for i, r := range d.reversers {
			fmt.Fprintf(w, "%-12s'%s'\n", r.Strategy().Label()+":", outputs[i])
		}

		if d.check {
			if err := agree(d.reversers, outputs); err != nil {
				d.log.Error().Err(err).Str("input", input).Msg("strategies disagree")
				return errors.Wrapf(err, "input %q", input)
			}
		}
	}

	d.log.Info().Int("inputs", len(inputs)).Int("strategies", len(d.reversers)).Msg("demonstration complete")
	return nil
}

func (d *demo) reverseAll(input string) ([]string, error) {
	outputs := make([]string, len(d.reversers))
	for i, r := range d.reversers {
		if d.json {
			out, err := r.ReverseJSON([]byte(input))
			if err != nil {
				return nil, errors.Wrapf(err, "%s strategy", r.Strategy())
			}
			outputs[i] = string(out)
		} else {
			outputs[i] = r.Reverse(input)
		}
		d.log.Debug().
			Stringer("strategy", r.Strategy()).
			Int("bytes", len(input)).
			Msg("reversed")
	}
	return outputs, nil
}

func agree(reversers []*reverse.Reverser, outputs []string) error {
	for i := 1; i < len(outputs); i++ {
		if outputs[i] != outputs[0] {
			return errors.Errorf("%s returned %q but %s returned %q",
				reversers[0].Strategy(), outputs[0], reversers[i].Strategy(), outputs[i])
		}
	}
	return nil
}
