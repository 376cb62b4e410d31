package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/mathbox"
)

// defaultSample is rendered when no sample is named.
const defaultSample = "beta"

type sample struct {
	about string
	build func() mathbox.Node
}

var samples = map[string]sample{
	"beta": {
		about: "β with subscript α, squared",
		build: func() mathbox.Node {
			return mathbox.NewSup(mathbox.NewSub(mathbox.Ident("β"), mathbox.Ident("α")), mathbox.Num("2"))
		},
	},
	"fraction": {
		about: "α with subscript n over 2",
		build: func() mathbox.Node {
			return mathbox.NewFraction(mathbox.NewSub(mathbox.Ident("α"), mathbox.Ident("n")), mathbox.Num("2"))
		},
	},
	"row": {
		about: "x plus one half",
		build: func() mathbox.Node {
			return mathbox.NewRow(mathbox.Ident("x"), mathbox.Op("+"), mathbox.NewFraction(mathbox.Num("1"), mathbox.Num("2")))
		},
	},
	"sqrt": {
		about: "square root of x squared plus one",
		build: func() mathbox.Node {
			return mathbox.NewSqrt(mathbox.NewRow(mathbox.NewSup(mathbox.Ident("x"), mathbox.Num("2")), mathbox.Op("+"), mathbox.Num("1")))
		},
	},
	"phantom": {
		about: "a, an invisible b, c",
		build: func() mathbox.Node {
			return mathbox.NewRow(mathbox.Ident("a"), mathbox.NewPhantom(mathbox.Ident("b")), mathbox.Ident("c"))
		},
	},
	"quadratic": {
		about: "roots of a quadratic",
		build: func() mathbox.Node {
			disc := mathbox.NewRow(
				mathbox.NewSup(mathbox.Ident("b"), mathbox.Num("2")),
				mathbox.Op("-"),
				mathbox.Num("4"), mathbox.Ident("a"), mathbox.Ident("c"),
			)
			num := mathbox.NewRow(mathbox.Op("-"), mathbox.Ident("b"), mathbox.Op("±"), mathbox.NewSqrt(disc))
			den := mathbox.NewRow(mathbox.Num("2"), mathbox.Ident("a"))
			return mathbox.NewRow(mathbox.Ident("x"), mathbox.Op("="), mathbox.NewFraction(num, den))
		},
	},
}

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupSample(name string) (mathbox.Node, error) {
	s, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q (available: %s)", name, strings.Join(sampleNames(), ", "))
	}
	return s.build(), nil
}

func newSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range sampleNames() {
				s := samples[name]
				if _, err := fmt.Fprintf(w, "%-10s %s\n           %s\n", name, s.about, s.build()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
