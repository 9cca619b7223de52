package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-starmap/engine/flight"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, simulateYAML, simulateMatrices, simulateTrace = "", false, false, false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "keys")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"forward", "yaw_left", "modifier", "toggles:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestKeysCommandWithConfig(t *testing.T) {
	path := writeFile(t, "starmap.yaml", "keys:\n  forward: [z]\n")
	out, err := execute(t, "keys", "--config", path)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "forward ") {
			if fields := strings.Fields(line); len(fields) != 2 || fields[1] != "z" {
				t.Errorf("forward binding = %q, want z", line)
			}
			return
		}
	}
	t.Errorf("no forward line in:\n%s", out)
}

func TestKeysCommandBadConfig(t *testing.T) {
	path := writeFile(t, "starmap.yaml", "keys:\n  forward: [nosuchkey]\n")
	if _, err := execute(t, "keys", "-c", path); err == nil {
		t.Error("expected an error for an unknown key name")
	}
}

const script = `tick_ms: 10
steps:
  - perspective: true
  - hold: {keys: [w], ms: 50}
  - zoom: 3
`

func TestSimulateCommand(t *testing.T) {
	path := writeFile(t, "flight.yaml", script)
	out, err := execute(t, "simulate", path, "--matrices")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// three snapshot lines, each followed by four matrix rows, then the frame total
	if len(lines) != 16 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "perspective true") || !strings.Contains(lines[0], "persp") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[10], "zoom 3.00") {
		t.Errorf("zoom line = %q", lines[10])
	}
	if !strings.HasSuffix(lines[15], " frames presented") {
		t.Errorf("total line = %q", lines[15])
	}
}

func TestSimulateCommandTrace(t *testing.T) {
	path := writeFile(t, "flight.yaml", script)
	out, err := execute(t, "simulate", path, "--trace")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var frames int
	if len(lines) < 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if _, err := fmt.Sscanf(lines[3], "%d frames presented", &frames); err != nil || frames == 0 {
		t.Fatalf("total line = %q", lines[3])
	}
	// six matrix stack calls per presented frame
	if len(lines) != 4+6*frames {
		t.Fatalf("got %d lines for %d frames:\n%s", len(lines), frames, out)
	}
	if got := strings.TrimSpace(lines[4]); got != "clear(3)" {
		t.Errorf("first call = %q, want clear(3)", got)
	}
	if got := strings.TrimSpace(lines[9]); got != "viewport(0,0,800,600)" {
		t.Errorf("sixth call = %q", got)
	}
}

func TestSimulateCommandYAML(t *testing.T) {
	path := writeFile(t, "flight.yaml", script)
	out, err := execute(t, "simulate", "--yaml", path)
	if err != nil {
		t.Fatal(err)
	}

	var snaps []flight.Snapshot
	if err := yaml.Unmarshal([]byte(out), &snaps); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots", len(snaps))
	}
	if !snaps[0].Perspective || snaps[2].Zoom != 3 {
		t.Errorf("snapshots = %+v", snaps)
	}
	if snaps[1].Frames != 5 {
		t.Errorf("hold frames = %d, want 5", snaps[1].Frames)
	}
}

func TestSimulateCommandErrors(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"MissingScript": {args: []string{"simulate", filepath.Join(t.TempDir(), "missing.yaml")}},
		"NoArgs":        {args: []string{"simulate"}},
		"BadScript":     {args: []string{"simulate", writeFile(t, "bad.yaml", "steps:\n  - {}\n")}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
