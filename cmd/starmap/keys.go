package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the resolved key bindings",
	Long:  "Print every camera action with the keys bound to it, after applying the keys section of the configuration.",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	km, err := cfg.Keymap()
	if err != nil {
		return err
	}

	names := km.Names()
	actions := make([]string, 0, len(names))
	for action := range names {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	out := cmd.OutOrStdout()
	for _, action := range actions {
		keys := names[action]
		sort.Strings(keys)
		fmt.Fprintf(out, "%-12s %s\n", action, strings.Join(keys, ", "))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "toggles: p perspective, space elite movement, x cancel slews")
	return nil
}
