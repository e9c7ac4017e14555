package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlags clears flag state left over from previous executions.
// Cobra commands keep flag values between runs in the same process.
func resetFlags(t *testing.T) {
	t.Helper()
	if err := rootCmd.PersistentFlags().Set("config", ""); err != nil {
		t.Fatalf("reset config flag: %v", err)
	}
	if err := rootCmd.PersistentFlags().Set("memory", "false"); err != nil {
		t.Fatalf("reset memory flag: %v", err)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"tui": false, "init": false, "version": false}
	for _, c := range Root().Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out.String(), "todo dev") {
		t.Errorf("version output = %q, want it to contain %q", out.String(), "todo dev")
	}
	if !strings.Contains(out.String(), "OS/Arch") {
		t.Errorf("version output = %q, want platform details", out.String())
	}
}

func TestInitCommand(t *testing.T) {
	resetFlags(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"init", "--config", cfgPath})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("config file should exist: %v", err)
	}
	if !strings.Contains(out.String(), cfgPath) {
		t.Errorf("init output = %q, want the written path", out.String())
	}

	// Without --force a second init must fail.
	root.SetArgs([]string{"init", "--config", cfgPath})
	if err := root.Execute(); err == nil {
		t.Error("second init without --force should fail")
	}
}

func TestRootCommand_RunsLoop(t *testing.T) {
	// Sandbox the home directory so default config and log paths stay
	// out of the real user profile.
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("add\nwired end to end\nlist\nexit\n"))
	root.SetArgs([]string{"--memory"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out.String(), "1) wired end to end. ❌") {
		t.Errorf("loop output = %q, want the listed todo", out.String())
	}
}
