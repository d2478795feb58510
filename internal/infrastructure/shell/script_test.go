package shell

import (
	"strings"
	"testing"

	"shellrig/internal/domain"
)

func composedEnv() *domain.ShellEnvironment {
	env := domain.NewShellEnvironment()
	env.SetExport("NULLCMD", "bat")
	env.SetExport("DOCKER_HOST", "unix:///var/run/docker.sock")
	env.Path = []string{"/usr/bin", "/bin", "/home/u/.local/bin"}
	env.Aliases.Set("ls", "exa -1 -Fh --git --icons")
	env.Aliases.Set("trail", "shellrig trail")
	env.History = domain.HistoryPolicy{File: "/home/u/.zsh_history", Size: 10000, IncAppendTime: true}
	env.PromptCommand = "shellrig"
	env.DelegateScript = "/home/u/.shellrig/startup.sh"
	return env
}

func TestRenderScriptZsh(t *testing.T) {
	script := RenderScript(composedEnv(), domain.ShellZsh)

	wantLines := []string{
		"export NULLCMD='bat'",
		"export DOCKER_HOST='unix:///var/run/docker.sock'",
		"export PATH='/usr/bin:/bin:/home/u/.local/bin'",
		"alias ls='exa -1 -Fh --git --icons'",
		"alias trail='shellrig trail'",
		"export HISTFILE='/home/u/.zsh_history'",
		"export HISTSIZE=10000",
		"export SAVEHIST=10000",
		"setopt INC_APPEND_HISTORY_TIME",
		"add-zsh-hook precmd _shellrig_precmd",
		"'/home/u/.shellrig/startup.sh' || true",
	}
	for _, line := range wantLines {
		if !strings.Contains(script, line) {
			t.Errorf("script missing line %q\n%s", line, script)
		}
	}

	// Section order: exports before PATH before aliases before history
	// before hook before delegation.
	order := []string{"NULLCMD", "DOCKER_HOST", "export PATH", "alias ls", "HISTFILE", "_shellrig_precmd", "|| true"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(script, marker)
		if idx < 0 {
			t.Fatalf("marker %q missing", marker)
		}
		if idx < last {
			t.Errorf("marker %q out of order", marker)
		}
		last = idx
	}
}

func TestRenderScriptBash(t *testing.T) {
	script := RenderScript(composedEnv(), domain.ShellBash)

	for _, line := range []string{
		"export HISTFILESIZE=10000",
		"shopt -s histappend",
		`PROMPT_COMMAND="_shellrig_prompt;${PROMPT_COMMAND}"`,
	} {
		if !strings.Contains(script, line) {
			t.Errorf("bash script missing %q\n%s", line, script)
		}
	}
	if strings.Contains(script, "SAVEHIST") || strings.Contains(script, "setopt") {
		t.Error("zsh-only directives leaked into bash script")
	}
}

func TestRenderScriptSkipsAbsentSections(t *testing.T) {
	env := domain.NewShellEnvironment()
	env.Path = []string{"/bin"}

	script := RenderScript(env, domain.ShellZsh)

	if strings.Contains(script, "DOCKER_HOST") {
		t.Error("DOCKER_HOST emitted without detection")
	}
	if strings.Contains(script, "HISTFILE") {
		t.Error("history emitted without a policy")
	}
	if strings.Contains(script, "precmd") {
		t.Error("prompt hook emitted without a prompt command")
	}
	if strings.Contains(script, "|| true") {
		t.Error("delegation emitted without a script")
	}
}

func TestSingleQuoteEscaping(t *testing.T) {
	env := domain.NewShellEnvironment()
	env.Aliases.Set("greet", "echo 'hi there'")

	script := RenderScript(env, domain.ShellZsh)
	want := `alias greet='echo '\''hi there'\'''`
	if !strings.Contains(script, want) {
		t.Errorf("quoting wrong:\n%s", script)
	}
}
