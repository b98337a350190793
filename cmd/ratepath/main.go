package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], nil, os.Stdin, os.Stdout, os.Stderr))
}

// app carries process-wide state shared by the subcommands.
type app struct {
	cfg    envConfig
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// run executes one CLI invocation. environ overrides the process environment
// when non-nil.
func run(ctx context.Context, args []string, environ map[string]string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadEnv(environ)
	if err != nil {
		fmt.Fprintf(stderr, "ratepath: %v\n", err)
		return int(subcommands.ExitUsageError)
	}

	a := &app{
		cfg:    cfg,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: log.New(stderr, "ratepath: ", 0),
	}

	top := flag.NewFlagSet("ratepath", flag.ContinueOnError)
	top.SetOutput(stderr)
	if err := top.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}

	cdr := subcommands.NewCommander(top, "ratepath")
	cdr.Output = stdout
	cdr.Error = stderr
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&bootstrapCmd{app: a}, "rate path")
	cdr.Register(&interpCmd{app: a}, "rate path")
	cdr.Register(&meetingsCmd{app: a}, "calendars")
	cdr.Register(&ingestCmd{app: a}, "market data")

	return int(cdr.Execute(ctx))
}
