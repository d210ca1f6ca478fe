// Command auditcost prints an audit cost estimate for a scenario file.
//
//	auditcost [-in scenario.yaml] [-format text|json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Simplici0/auditcost/internal/costmodel"
	"github.com/Simplici0/auditcost/internal/render"
	"github.com/Simplici0/auditcost/internal/scenario"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Error("auditcost failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("auditcost", flag.ContinueOnError)
	inPath := fs.String("in", "", "scenario file (YAML or JSON); defaults are used when empty")
	format := fs.String("format", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := costmodel.Defaults()
	if *inPath != "" {
		var err error
		in, err = scenario.Load(*inPath)
		if err != nil {
			return err
		}
	}

	b := costmodel.Compute(in)

	switch *format {
	case "text":
		_, err := io.WriteString(out, render.Text(in, b))
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Input     costmodel.Input     `json:"input"`
			Breakdown costmodel.Breakdown `json:"breakdown"`
		}{in, b})
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
