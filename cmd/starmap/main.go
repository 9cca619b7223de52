package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-starmap/engine/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "starmap",
	Short: "Interactive 3D star map viewer",
	Long: `starmap is a 3D star map viewer with an orthographic top-down view and a
perspective free-fly view, smooth fly-to and look-at slews, and configurable key bindings.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
}

// loadConfig returns the file given by --config, or the defaults when none was given.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
