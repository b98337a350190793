package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/avelezX/xerenity-fe-sub001/ratepath"
	"github.com/google/subcommands"
)

type interpOutput struct {
	Months float64 `json:"months"`
	Rate   float64 `json:"rate"`
}

type interpCmd struct {
	*app

	input  string
	months float64
}

func (*interpCmd) Name() string     { return "interp" }
func (*interpCmd) Synopsis() string { return "interpolate a par curve at a tenor" }
func (*interpCmd) Usage() string {
	return `ratepath interp -months <m> [-input <file>]

  Reads a JSON array of {"tenor_months", "rate"} points and prints the
  linearly interpolated rate at the given tenor.
`
}

func (c *interpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", "", "JSON curve path (reads stdin if omitted)")
	f.Float64Var(&c.months, "months", 0, "tenor in months")
}

func (c *interpCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	raw, err := c.readInput(c.input)
	if err != nil {
		return c.writeError(fmt.Sprintf("failed to read input: %v", err))
	}
	var crv ratepath.Curve
	if err := json.Unmarshal(raw, &crv); err != nil {
		return c.writeError(fmt.Sprintf("failed to parse JSON input: %v", err))
	}
	if err := crv.Validate(); err != nil {
		return c.writeError(fmt.Sprintf("invalid curve: %v", err))
	}
	rate, ok := crv.Interpolate(c.months)
	if !ok {
		return c.writeError(fmt.Sprintf("tenor %g outside curve [%g, %g]", c.months, crv[0].TenorMonths, crv.MaxTenor()))
	}
	return c.writeJSON(interpOutput{Months: c.months, Rate: rate})
}
