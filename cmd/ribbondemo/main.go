// Command ribbondemo builds a ribbon outline and writes a PNG preview.
//
// With no input file it renders a built-in demo path. A YAML input file
// holds a single ribbon definition in either form:
//
//	start: "(10,0) D30 W0.5"
//	path: "L:2.0 A:2/145 L2 arc(0.5,-170) line:3"
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ribbon"
	"github.com/gogpu/ribbon/render"
)

func main() {
	var (
		input   = flag.String("input", "", "YAML ribbon definition file (empty for built-in demo)")
		output  = flag.String("output", "ribbon.png", "output PNG file")
		size    = flag.Int("size", 512, "output image size in pixels")
		margin  = flag.Float64("margin", 16, "padding around the ribbon in pixels")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ribbon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	def, err := loadDefinition(*input)
	if err != nil {
		log.Fatalf("Failed to load definition: %v", err)
	}

	p, err := def.Build()
	if err != nil {
		log.Fatalf("Failed to build ribbon: %v", err)
	}
	log.Printf("Built ribbon: %d segments, perimeter %.3f", len(p.Segments()), p.Perimeter())

	opts := render.DefaultOptions()
	opts.Width = *size
	opts.Height = *size
	opts.Margin = *margin

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	if err := render.WritePNG(f, p, opts); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)", *output, *size, *size)
}

// loadDefinition reads a YAML ribbon definition, falling back to the
// built-in demo path when no file is given.
func loadDefinition(path string) (ribbon.Definition, error) {
	if path == "" {
		return ribbon.Definition{
			Start: "(10,0) D30 W0.5",
			Path:  "L:2.0 A:2/145 L2 arc(0.5,-170) line:3",
		}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ribbon.Definition{}, err
	}
	var def ribbon.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return ribbon.Definition{}, err
	}
	return def, nil
}
