package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shellrig/internal/pkg/logger"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/bin/zsh")
	return home
}

func TestInstallCreatesScriptAndRCLine(t *testing.T) {
	home := setupHome(t)
	installer := NewInstaller(logger.NewStd(false))

	result, err := installer.Install("zsh", false)
	if err != nil {
		t.Fatalf("Install error: %v", err)
	}
	if !result.ScriptUpdated || !result.RCUpdated {
		t.Errorf("unexpected result: %+v", result)
	}

	script, err := os.ReadFile(filepath.Join(home, ".shellrig", "shell", "zsh.sh"))
	if err != nil {
		t.Fatalf("hook script not written: %v", err)
	}
	if !strings.Contains(string(script), "shellrig init --shell zsh") {
		t.Errorf("hook script content wrong:\n%s", script)
	}

	rc, err := os.ReadFile(filepath.Join(home, ".zshrc"))
	if err != nil {
		t.Fatalf("rc file not written: %v", err)
	}
	if !strings.Contains(string(rc), "source $HOME/.shellrig/shell/zsh.sh") {
		t.Errorf("rc line missing:\n%s", rc)
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	home := setupHome(t)
	installer := NewInstaller(logger.NewStd(false))

	if _, err := installer.Install("zsh", false); err != nil {
		t.Fatal(err)
	}
	second, err := installer.Install("zsh", false)
	if err != nil {
		t.Fatal(err)
	}
	if second.RCUpdated {
		t.Error("second install should not touch the rc file")
	}

	rc, _ := os.ReadFile(filepath.Join(home, ".zshrc"))
	if got := strings.Count(string(rc), "zsh.sh"); got != 2 { // one guard, one source
		t.Errorf("expected a single rc line, content:\n%s", rc)
	}
}

func TestUninstallRemovesRCLineKeepsScript(t *testing.T) {
	home := setupHome(t)
	installer := NewInstaller(logger.NewStd(false))

	if _, err := installer.Install("zsh", false); err != nil {
		t.Fatal(err)
	}
	result, err := installer.Uninstall("zsh")
	if err != nil {
		t.Fatalf("Uninstall error: %v", err)
	}
	if !result.RCUpdated {
		t.Error("expected rc update on uninstall")
	}

	rc, _ := os.ReadFile(filepath.Join(home, ".zshrc"))
	if strings.Contains(string(rc), "zsh.sh") {
		t.Errorf("rc line still present:\n%s", rc)
	}
	if _, err := os.Stat(filepath.Join(home, ".shellrig", "shell", "zsh.sh")); err != nil {
		t.Error("hook script should be retained")
	}
}

func TestStatusReportsState(t *testing.T) {
	setupHome(t)
	installer := NewInstaller(logger.NewStd(false))

	before := installer.Status("zsh")
	if before.ScriptExists || before.LinePresent {
		t.Errorf("fresh home should report nothing installed: %+v", before)
	}

	if _, err := installer.Install("zsh", false); err != nil {
		t.Fatal(err)
	}
	after := installer.Status("zsh")
	if !after.ScriptExists || !after.LinePresent {
		t.Errorf("installed state not reported: %+v", after)
	}
}

func TestInstallUnsupportedShell(t *testing.T) {
	setupHome(t)
	installer := NewInstaller(logger.NewStd(false))

	if _, err := installer.Install("tcsh", false); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
