package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellparty/cmd/cellgen/manifest"
	"github.com/delaneyj/cellparty/cmd/cellgen/templates"
	"github.com/urfave/cli/v3"
)

const (
	manifestKey = "manifest"
	outKey      = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "cellgen",
		Usage: "Generate deferred cell declarations from a manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  manifestKey,
				Usage: "Path to the YAML cell manifest",
				Value: "cells.yaml",
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Path of the generated Go file",
				Value: "cells_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Cellgen started!")
	defer func() {
		log.Printf("Cellgen finished in %v", time.Since(start))
	}()

	m, err := manifest.Load(cmd.String(manifestKey))
	if err != nil {
		return err
	}
	log.Printf("Generating %d cells for package %s", len(m.Cells), m.Package)

	contents := templates.CellsFile(m)
	formatted, err := format.Source([]byte(contents))
	if err != nil {
		return fmt.Errorf("failed to format generated code: %w", err)
	}

	return os.WriteFile(cmd.String(outKey), formatted, 0644)
}
