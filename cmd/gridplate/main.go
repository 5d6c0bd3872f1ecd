// Command gridplate generates modular storage baseplates and spacers
// as STL meshes. Plate sizing is given either as whole grid unit
// counts or as minimum dimensions in millimetres, with optional
// padding placement bias; options may also be loaded from a TOML file
// and overridden on the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/gridfab/gridplate"
	"github.com/gridfab/gridplate/kernel/sdfx"
	"github.com/gridfab/gridplate/render"
)

// options is the full option set of the generator, mirrored one to
// one by the TOML configuration file.
type options struct {
	What      string  `toml:"what"`
	GridX     int     `toml:"gridx"`
	GridY     int     `toml:"gridy"`
	DistanceX float64 `toml:"distancex"`
	DistanceY float64 `toml:"distancey"`
	FitX      float64 `toml:"fitx"`
	FitY      float64 `toml:"fity"`
	Output    string  `toml:"output"`
	PNG       string  `toml:"png"`
	Cells     int     `toml:"cells"`
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "gridplate",
	})

	opts := options{
		What:   "baseplate",
		Output: "plate.stl",
		Cells:  sdfx.DefaultCells,
	}
	var configPath string
	var verbose bool
	flag.StringVar(&opts.What, "what", opts.What, "plate variant: baseplate or spacer")
	flag.IntVar(&opts.GridX, "gridx", opts.GridX, "grid units along x, 0 to compute from -distancex")
	flag.IntVar(&opts.GridY, "gridy", opts.GridY, "grid units along y, 0 to compute from -distancey")
	flag.Float64Var(&opts.DistanceX, "distancex", opts.DistanceX, "minimum size along x in mm, 0 for no constraint")
	flag.Float64Var(&opts.DistanceY, "distancey", opts.DistanceY, "minimum size along y in mm, 0 for no constraint")
	flag.Float64Var(&opts.FitX, "fitx", opts.FitX, "padding placement along x in [-1,1]: -1 low side, 0 split, 1 high side")
	flag.Float64Var(&opts.FitY, "fity", opts.FitY, "padding placement along y in [-1,1]")
	flag.StringVar(&opts.Output, "o", opts.Output, "output STL path")
	flag.StringVar(&opts.PNG, "png", opts.PNG, "optional PNG preview path")
	flag.IntVar(&opts.Cells, "cells", opts.Cells, "marching cubes resolution")
	flag.StringVar(&configPath, "config", "", "TOML configuration file, overridden by explicit flags")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if configPath != "" {
		if err := loadConfig(configPath, &opts); err != nil {
			logger.Fatal("config", "err", err)
		}
	}

	if err := run(logger, opts); err != nil {
		logger.Fatal(opts.What, "err", err)
	}
}

// loadConfig merges a TOML file under the already parsed flags:
// values given explicitly on the command line win over the file.
func loadConfig(path string, opts *options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fromFile := *opts
	if err := toml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["what"] {
		opts.What = fromFile.What
	}
	if !set["gridx"] {
		opts.GridX = fromFile.GridX
	}
	if !set["gridy"] {
		opts.GridY = fromFile.GridY
	}
	if !set["distancex"] {
		opts.DistanceX = fromFile.DistanceX
	}
	if !set["distancey"] {
		opts.DistanceY = fromFile.DistanceY
	}
	if !set["fitx"] {
		opts.FitX = fromFile.FitX
	}
	if !set["fity"] {
		opts.FitY = fromFile.FitY
	}
	if !set["o"] {
		opts.Output = fromFile.Output
	}
	if !set["png"] {
		opts.PNG = fromFile.PNG
	}
	if !set["cells"] {
		opts.Cells = fromFile.Cells
	}
	return nil
}

func run(logger *log.Logger, opts options) error {
	var kind gridplate.Kind
	switch opts.What {
	case "baseplate":
		kind = gridplate.KindBaseplate
	case "spacer":
		kind = gridplate.KindSpacer
	default:
		return fmt.Errorf("unknown plate variant %q, want baseplate or spacer", opts.What)
	}

	spec := gridplate.GridSpec{
		UnitsX:   opts.GridX,
		UnitsY:   opts.GridY,
		MinSizeX: opts.DistanceX,
		MinSizeY: opts.DistanceY,
		FitX:     opts.FitX,
		FitY:     opts.FitY,
	}
	solid, dims, err := gridplate.Generate(kind, spec)
	if err != nil {
		return err
	}
	logger.Info("plate",
		"units", fmt.Sprintf("%dx%d", dims.Units[0], dims.Units[1]),
		"size", fmt.Sprintf("%gx%gx%gmm", dims.FinalSize.X, dims.FinalSize.Y, dims.FinalSize.Z))
	if dims.NeedsPadding() {
		logger.Debug("padding",
			"x", dims.Padding.X, "y", dims.Padding.Y,
			"startx", dims.PaddingStart.X, "starty", dims.PaddingStart.Y)
	}

	s3, err := sdfx.Compile(solid)
	if err != nil {
		return err
	}
	logger.Debug("meshing", "cells", opts.Cells)
	model := sdfx.Triangles(s3, opts.Cells)
	if err := render.CreateSTL(opts.Output, model); err != nil {
		return err
	}
	logger.Info("wrote", "path", opts.Output, "triangles", len(model))

	if opts.PNG != "" {
		if err := render.SavePNG(opts.PNG, model, render.DefaultView(), 768, 432); err != nil {
			return err
		}
		logger.Info("wrote", "path", opts.PNG)
	}
	return nil
}
