package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/gridline-go/engine"
	"github.com/Carmen-Shannon/gridline-go/engine/camera"
	"github.com/Carmen-Shannon/gridline-go/engine/renderer"
	"github.com/Carmen-Shannon/gridline-go/engine/scene"
	"github.com/Carmen-Shannon/gridline-go/engine/window"
	"github.com/spf13/cobra"
)

var (
	flagTitle       string
	flagWidth       int
	flagHeight      int
	flagResolution  int
	flagPresentMode string
	flagMSAA        int
	flagFrameLimit  float64
	flagProfile     bool
	flagSoftware    bool
)

var rootCmd = &cobra.Command{
	Use:   "gridline",
	Short: "A real-time 3D grid and axes viewer",
	Long: `gridline opens a window showing the world axes (X red, Y green, Z blue)
and a unit grid on the three origin planes.

Controls:
  drag           orbit the camera
  shift+drag     pan the focus point
  scroll         zoom in/out
  arrow keys     orbit in fixed steps
  1-9            set grid resolution
  r              reset the camera
  esc            quit`,
	Version: "1.0.0",
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&flagTitle, "title", "gridline", "window title")
	rootCmd.Flags().IntVar(&flagWidth, "width", 1280, "initial window width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", 720, "initial window height in pixels")
	rootCmd.Flags().IntVar(&flagResolution, "resolution", 16, "grid lines per unit axis")
	rootCmd.Flags().StringVar(&flagPresentMode, "present-mode", "mailbox", "surface present mode: vsync, uncapped, or mailbox")
	rootCmd.Flags().IntVar(&flagMSAA, "msaa", 4, "multisample count: 1, 4, 8, or 16")
	rootCmd.Flags().Float64Var(&flagFrameLimit, "frame-limit", 0, "render frame rate cap in fps (0 = uncapped)")
	rootCmd.Flags().BoolVar(&flagProfile, "profile", false, "log FPS and memory stats once per second")
	rootCmd.Flags().BoolVar(&flagSoftware, "software", false, "force the software (fallback) GPU adapter")
}

func run(_ *cobra.Command, _ []string) error {
	presentMode, err := parsePresentMode(flagPresentMode)
	if err != nil {
		return err
	}
	msaa, err := parseMSAA(flagMSAA)
	if err != nil {
		return err
	}

	win := window.NewWindow(
		window.WithTitle(flagTitle),
		window.WithWidth(flagWidth),
		window.WithHeight(flagHeight),
	)
	defer win.Close()

	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithForceSoftwareRenderer(flagSoftware),
	)

	s := scene.NewScene(
		scene.WithCamera(camera.NewCamera()),
		scene.WithRenderer(r),
		scene.WithWindow(win),
		scene.WithResolution(flagResolution),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(0, s),
		engine.WithProfiling(flagProfile),
		engine.WithRenderFrameLimit(flagFrameLimit),
	)

	eng.Run()
	eng.Quit()
	return nil
}

func parsePresentMode(mode string) (renderer.PresentMode, error) {
	switch mode {
	case "vsync":
		return renderer.PresentModeVSync, nil
	case "uncapped":
		return renderer.PresentModeUncapped, nil
	case "mailbox":
		return renderer.PresentModeMailbox, nil
	default:
		return 0, fmt.Errorf("unknown present mode %q (want vsync, uncapped, or mailbox)", mode)
	}
}

func parseMSAA(count int) (renderer.MSAASampleCount, error) {
	switch count {
	case 1:
		return renderer.MSAAOff, nil
	case 4:
		return renderer.MSAA4x, nil
	case 8:
		return renderer.MSAA8x, nil
	case 16:
		return renderer.MSAA16x, nil
	default:
		return 0, fmt.Errorf("unsupported MSAA count %d (want 1, 4, 8, or 16)", count)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
