package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taigrr/spotlight/pkg/selection"
	"github.com/taigrr/spotlight/pkg/viewer"
)

func newInspectCmd(gf *globalFlags) *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "inspect <model.glb|model.gltf>",
		Short: "Print what selecting a part changes, without opening the viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, ctrl, closeLog, err := loadForSelection(gf, args[0])
			if err != nil {
				return err
			}
			defer closeLog()

			rep := selectPart(ctrl, part)
			return printProjection(cmd.OutOrStdout(), model, ctrl.Projection(), rep)
		},
	}
	cmd.Flags().StringVar(&part, "part", "", "Material to select (default: first configured part)")
	return cmd
}

func newExportCmd(gf *globalFlags) *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "export <model.glb|model.gltf> <out.glb|out.gltf>",
		Short: "Write a copy of the model styled for one part",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, ctrl, closeLog, err := loadForSelection(gf, args[0])
			if err != nil {
				return err
			}
			defer closeLog()

			rep := selectPart(ctrl, part)
			if err := model.Save(args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d styled, %d skipped)\n",
				args[1], len(rep.Applied()), len(rep.Failures()))
			return nil
		},
	}
	cmd.Flags().StringVar(&part, "part", "", "Material to select (default: first configured part)")
	return cmd
}

// loadForSelection loads a model and a controller logging to stderr (or --log).
func loadForSelection(gf *globalFlags, modelPath string) (*viewer.Model, *selection.Controller, func() error, error) {
	cfg, catalog, err := setup(gf)
	if err != nil {
		return nil, nil, nil, err
	}

	model, err := viewer.Load(modelPath, cfg.FPS)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load model: %w", err)
	}

	logger, closeLog, err := openLog(cfg.LogFile, os.Stderr)
	if err != nil {
		return nil, nil, nil, err
	}

	ctrl := selection.NewController(selection.NewProjector(catalog), model, nil, logger)
	return model, ctrl, closeLog, nil
}

// selectPart selects part, or the startup default when part is empty.
func selectPart(ctrl *selection.Controller, part string) selection.Report {
	if part == "" {
		return ctrl.Ready()
	}
	return ctrl.Select(part)
}

func printProjection(w io.Writer, model *viewer.Model, p selection.Projection, rep selection.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "model:\t%s (%d materials)\n", model.Name, len(model.All()))
	fmt.Fprintf(tw, "selected:\t%s\n", p.ActiveID)
	fmt.Fprintf(tw, "orbit:\t%s\n", p.Orbit)
	if p.Target != nil {
		fmt.Fprintf(tw, "target:\t%s\n", p.Target)
	} else {
		fmt.Fprintf(tw, "target:\t(unchanged)\n")
	}
	fmt.Fprintf(tw, "description:\t%s\n", p.Description)
	fmt.Fprintln(tw)

	for _, a := range p.Styles {
		look := "dimmed"
		if a.Style == selection.Highlighted {
			look = "highlighted"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.Material, look, a.Style.Opacity)
	}
	for _, f := range rep.Failures() {
		fmt.Fprintf(tw, "  skipped %s\t%v\n", f.Material, f.Err)
	}
	if rep.CameraErr != nil {
		fmt.Fprintf(tw, "  camera\t%v\n", rep.CameraErr)
	}

	return tw.Flush()
}
