package cli

import "testing"

func TestEscapeForShellZsh(t *testing.T) {
	in := "\x1b[32m❯\x1b[0m dir >"
	want := "%{\x1b[32m%}❯%{\x1b[0m%} dir >"
	if got := escapeForShell(in, "zsh"); got != want {
		t.Errorf("zsh escape = %q, want %q", got, want)
	}
}

func TestEscapeForShellBash(t *testing.T) {
	in := "\x1b[31m✘ 1\x1b[0m"
	want := "\\[\x1b[31m\\]✘ 1\\[\x1b[0m\\]"
	if got := escapeForShell(in, "bash"); got != want {
		t.Errorf("bash escape = %q, want %q", got, want)
	}
}

func TestEscapeForShellPlainTextUntouched(t *testing.T) {
	in := "❯ dir >"
	if got := escapeForShell(in, "zsh"); got != in {
		t.Errorf("plain text changed: %q", got)
	}
}
