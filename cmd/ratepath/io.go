package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
)

func (a *app) readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(a.stdin)
}

func (a *app) writeJSON(v any) subcommands.ExitStatus {
	b, err := json.Marshal(v)
	if err != nil {
		return a.writeError(fmt.Sprintf("encode output: %v", err))
	}
	fmt.Fprintln(a.stdout, string(b))
	return subcommands.ExitSuccess
}

type errorOutput struct {
	Error string `json:"error"`
}

// writeError reports a processing failure as JSON on stdout.
func (a *app) writeError(msg string) subcommands.ExitStatus {
	b, _ := json.Marshal(errorOutput{Error: msg})
	fmt.Fprintln(a.stdout, string(b))
	return subcommands.ExitFailure
}
