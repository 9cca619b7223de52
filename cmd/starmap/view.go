package main

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-starmap/engine"
	"github.com/Carmen-Shannon/oxy-starmap/engine/config"
	"github.com/Carmen-Shannon/oxy-starmap/engine/renderer"
	"github.com/Carmen-Shannon/oxy-starmap/engine/viewer"
	"github.com/Carmen-Shannon/oxy-starmap/engine/window"
	"github.com/spf13/cobra"
)

// reloadDebounce coalesces the burst of writes editors make when saving.
const reloadDebounce = 200 * time.Millisecond

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the star map window",
	Long: `Open the star map in a window. Arrow keys turn, WASD/R/F move, Q/E roll,
shift doubles speed, the scroll wheel zooms. P toggles perspective, space toggles
elite movement and X cancels a fly-to in progress. With --config the file is
watched and camera settings and key bindings reload on save.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	defer win.Close()

	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win, rendererOptions(cfg)...)
	defer r.Close()

	v := viewer.NewViewer(
		viewer.WithConfig(cfg),
		viewer.WithSize(win.Width(), win.Height()),
	)

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profiling),
	)

	win.SetKeyDownCallback(v.KeyDown)
	win.SetKeyUpCallback(v.KeyUp)
	win.SetScrollCallback(v.Scroll)
	win.SetFocusCallback(func(focused bool) {
		if !focused {
			v.ReleaseKeys()
		}
	})
	win.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
		v.Resize(width, height)
	})

	// the title is set from the window thread, the render loop only flags a change
	var moved atomic.Bool
	title := cfg.Window.Title
	win.SetUpdateCallback(func() {
		if moved.Swap(false) {
			p := v.Controller().Position()
			text := fmt.Sprintf("%s - %.1f, %.1f, %.1f", title, p[0], p[1], p[2])
			if inView, ok := v.TargetInView(); ok && !inView {
				text += " (destination off screen)"
			}
			win.SetTitle(text)
		}
	})

	e.SetTickCallback(func(dt float32) {
		v.Tick(dt)
	})
	e.SetRenderCallback(func(dt float32) bool {
		drawn, err := v.Render(r)
		if err != nil {
			log.Printf("[Renderer] present failed: %v", err)
		}
		if drawn {
			moved.Store(true)
		}
		return drawn
	})

	if configPath != "" {
		w, err := config.NewWatcher(configPath, reloadDebounce, func(c *config.Config) {
			if err := v.ApplyConfig(c); err != nil {
				log.Printf("[Config] not applied: %v", err)
				return
			}
			r.SetPresentMode(presentMode(c))
			e.SetTickRate(c.Engine.TickRate)
			e.SetRenderFrameLimit(c.Engine.FrameLimit)
			if c.Engine.Profiling {
				e.EnableProfiler()
			} else {
				e.DisableProfiler()
			}
		})
		if err != nil {
			return err
		}
		w.SetErrorCallback(func(err error) {
			log.Printf("[Config] reload failed, keeping previous settings: %v", err)
		})
		w.Start()
		defer w.Close()
	}

	e.Run()
	return nil
}

func presentMode(c *config.Config) renderer.PresentMode {
	if c.Window.VSyncEnabled() {
		return renderer.PresentModeVSync
	}
	return renderer.PresentModeUncapped
}

func rendererOptions(c *config.Config) []renderer.RendererBuilderOption {
	var rgba [4]float64
	copy(rgba[:], c.Window.ClearColor)
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(presentMode(c)),
		renderer.WithClearColor(rgba),
		renderer.WithGrid(c.Window.GridEnabled()),
		renderer.WithForceSoftwareRenderer(c.Window.SoftwareRenderer),
	}
}
