package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dusk-indust/sowbuilder/internal/export"
	"github.com/dusk-indust/sowbuilder/internal/sow"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	input := fs.String("input", "", "YAML or JSON file with the project fields")
	format := fs.String("format", "md", "output format: md, json or html")
	output := fs.String("o", "", "output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("usage: sowbuilder render -input <file> [-format md|json|html] [-o <file>]")
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}

	req, err := export.ReadRequest(*input)
	if err != nil {
		return err
	}

	in, err := sow.Validate(req)
	if err != nil {
		var verr *sow.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Fields {
				fmt.Fprintf(os.Stderr, "  %s\n", fe)
			}
		}
		return err
	}

	g := sow.Generated{Document: sow.Render(in), GeneratedAt: time.Now()}
	if *output == "" {
		return export.Write(os.Stdout, g, f)
	}
	return export.WriteFile(*output, g, f)
}
