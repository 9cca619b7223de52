package main

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-starmap/engine/flight"
	"github.com/Carmen-Shannon/oxy-starmap/engine/renderer"
	"github.com/Carmen-Shannon/oxy-starmap/engine/viewer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	simulateYAML     bool
	simulateMatrices bool
	simulateTrace    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [script]",
	Short: "Replay a flight script without a window",
	Long: `Replay a YAML flight script against a headless viewer and print the camera
state after every step. Steps: fly_to, look_at, run, hold, perspective, elite, zoom, scroll, cancel.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateYAML, "yaml", false, "print snapshots as YAML")
	simulateCmd.Flags().BoolVarP(&simulateMatrices, "matrices", "m", false, "print the view-projection matrix after each step")
	simulateCmd.Flags().BoolVar(&simulateTrace, "trace", false, "print every matrix stack call after the snapshots")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := flight.Load(args[0])
	if err != nil {
		return err
	}

	v := viewer.NewViewer(viewer.WithConfig(cfg))
	rec := renderer.NewRecorder()
	snaps, err := flight.Run(script, v, rec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if simulateYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(snaps); err != nil {
			return fmt.Errorf("failed to encode snapshots: %w", err)
		}
		return enc.Close()
	}
	for _, s := range snaps {
		printSnapshot(out, s, simulateMatrices)
	}
	fmt.Fprintf(out, "%d frames presented\n", len(rec.Frames()))
	if simulateTrace {
		for _, call := range rec.Calls() {
			fmt.Fprintf(out, "  %s\n", call)
		}
	}
	return nil
}

func printSnapshot(out io.Writer, s flight.Snapshot, matrices bool) {
	mode := "ortho"
	if s.Perspective {
		mode = "persp"
	}
	fmt.Fprintf(out, "%3d %-28s pos (%.2f, %.2f, %.2f) dir (%.2f, %.2f, %.2f) zoom %.2f %s",
		s.Step, s.Action,
		s.Position[0], s.Position[1], s.Position[2],
		s.Direction[0], s.Direction[1], s.Direction[2],
		s.Zoom, mode)
	if s.Elite {
		fmt.Fprint(out, " elite")
	}
	if s.InSlews {
		fmt.Fprint(out, " slewing")
	}
	if s.TargetInView != nil {
		if *s.TargetInView {
			fmt.Fprint(out, " target on screen")
		} else {
			fmt.Fprint(out, " target off screen")
		}
	}
	fmt.Fprintf(out, " frames %d\n", s.Frames)

	if !matrices {
		return
	}
	m := s.ViewProj
	for row := 0; row < 4; row++ {
		fmt.Fprintf(out, "    [%12.5f %12.5f %12.5f %12.5f]\n", m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
	}
}
