package main

import (
	"fmt"
	"io"
	"os"

	"showfits/pkg/config"
	"showfits/pkg/fitsimg"
	"showfits/pkg/stretch"
	"showfits/pkg/visualization"
)

// configFile is looked up in the working directory; defaults apply
// when it is absent.
const configFile = "showfits.yaml"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: showfits <file.fits>")
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	unit, err := fitsimg.Load(args[0])
	if err != nil {
		return err
	}

	printHeader(os.Stdout, unit)

	vmin, vmax, err := stretch.Bounds(unit.Data, cfg.Display.LowPercentile, cfg.Display.HighPercentile)
	if err != nil {
		return err
	}

	viewer := visualization.NewViewer(unit, vmin, vmax, cfg.Display.WindowWidth, cfg.Display.WindowHeight)
	viewer.Show()

	return nil
}

// printHeader writes one "key: value" line per header entry of the
// unit, in stored order.
func printHeader(w io.Writer, unit *fitsimg.Unit) {
	for _, e := range unit.Entries {
		fmt.Fprintf(w, "%s: %v\n", e.Key, e.Value)
	}
}
