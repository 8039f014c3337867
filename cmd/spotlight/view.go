package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/spotlight/pkg/selection"
	"github.com/taigrr/spotlight/pkg/ui"
	"github.com/taigrr/spotlight/pkg/viewer"
)

func newViewCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view <model.glb|model.gltf>",
		Short: "Open the interactive part viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), gf, args[0])
		},
	}
}

// frameFor snapshots the model state shown above the buttons.
func frameFor(model *viewer.Model) ui.Frame {
	cam := model.Camera()
	yaw, pitch, radius := cam.Orbit()
	target := cam.Target()

	f := ui.Frame{
		Title: fmt.Sprintf("%s  %d meshes", model.Name, model.MeshCount()),
		Camera: fmt.Sprintf("orbit %.1f° %.1f° %.2fm  target %.2f %.2f %.2f",
			yaw, pitch, radius, target[0], target[1], target[2]),
	}
	for _, m := range model.All() {
		f.Swatches = append(f.Swatches, ui.Swatch{
			Name:      m.Name(),
			Style:     m.Style(),
			Supported: m.Supported(),
		})
	}
	return f
}

func runView(ctx context.Context, gf *globalFlags, modelPath string) error {
	cfg, catalog, err := setup(gf)
	if err != nil {
		return err
	}

	model, err := viewer.Load(modelPath, cfg.FPS)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	// The terminal is ours while viewing; diagnostics go to the log file only
	logger, closeLog, err := openLog(cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	panel := ui.NewPanel(catalog.Parts(), cfg.BackgroundRGB())
	ctrl := selection.NewController(selection.NewProjector(catalog), model, panel, logger)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	defer func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	// Model is loaded: select the startup part and frame it without animating
	ctrl.Ready()
	model.Camera().Snap()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	selectButton := func(b *ui.Button) {
		if b != nil {
			ctrl.Select(b.Target())
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	events := term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					return nil
				case ev.MatchString("tab"):
					selectButton(panel.Cycle(1))
				case ev.MatchString("shift+tab"):
					selectButton(panel.Cycle(-1))
				case ev.MatchString("r"):
					if id, ok := ctrl.State().Current(); ok {
						ctrl.Select(id)
					}
				default:
					for i := 0; i < panel.Len() && i < 9; i++ {
						if ev.MatchString(fmt.Sprint(i + 1)) {
							selectButton(panel.Button(i))
							break
						}
					}
				}

			case uv.MouseClickEvent:
				selectButton(panel.HitTest(ev.X, ev.Y))
			}

		case <-ticker.C:
			model.Camera().Update()
			panel.Draw(term, width, height, frameFor(model))
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
