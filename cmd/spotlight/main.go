// spotlight - Terminal part viewer for glTF models
// Pick a part of a model; the part is highlighted, everything else is dimmed,
// the camera moves to a preset framing and the part's description is shown.
//
// Controls (view):
//
//	1-9         - Select part by button number
//	Tab         - Next part (Shift+Tab previous)
//	Mouse click - Select the clicked button
//	R           - Re-apply the current part (reframe camera)
//	Esc/Q       - Quit
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/spotlight/pkg/config"
	"github.com/taigrr/spotlight/pkg/selection"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	parts string
	fps   int
	bg    string
	log   string
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:   "spotlight",
		Short: "Terminal part viewer for glTF models",
		Long: "spotlight highlights one named part of a glTF model, dims the rest,\n" +
			"moves the camera to the part's preset and shows its description.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.parts, "parts", "", "Parts file (JSON) with descriptions and camera presets")
	pf.IntVar(&gf.fps, "fps", 0, "Target FPS (default 60)")
	pf.StringVar(&gf.bg, "bg", "", "Background color (R,G,B)")
	pf.StringVar(&gf.log, "log", "", "Write diagnostics to this file")

	root.AddCommand(
		newViewCmd(&gf),
		newInspectCmd(&gf),
		newExportCmd(&gf),
	)
	return root
}

// setup resolves configuration and loads the parts catalog.
func setup(gf *globalFlags) (config.Config, *selection.Catalog, error) {
	cfg, err := config.Load(config.Flags{
		FPS:        gf.fps,
		Background: gf.bg,
		PartsFile:  gf.parts,
		LogFile:    gf.log,
	})
	if err != nil {
		return config.Config{}, nil, err
	}

	catalog := selection.DefaultCatalog()
	if cfg.PartsFile != "" {
		catalog, err = selection.LoadCatalog(cfg.PartsFile)
		if err != nil {
			return config.Config{}, nil, err
		}
	}
	return cfg, catalog, nil
}

// openLog returns a logger writing to path, or to fallback when path is empty.
func openLog(path string, fallback io.Writer) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(fallback, "spotlight: ", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "spotlight: ", log.LstdFlags), f.Close, nil
}
