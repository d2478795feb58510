// Package shell renders the composed environment as shell source and
// manages the hook script wired into the user's rc file.
package shell

import (
	"fmt"
	"strconv"
	"strings"

	"shellrig/internal/domain"
)

// RenderScript turns a composed ShellEnvironment into shell source suitable
// for eval at startup. Section order follows the bootstrap order: exports,
// PATH, aliases, history policy, prompt wiring, delegation.
func RenderScript(env *domain.ShellEnvironment, shell domain.ShellName) string {
	var b strings.Builder

	for _, export := range env.Exports() {
		fmt.Fprintf(&b, "export %s=%s\n", export.Name, singleQuote(export.Value))
	}

	if len(env.Path) > 0 {
		fmt.Fprintf(&b, "export PATH=%s\n", singleQuote(strings.Join(env.Path, ":")))
	}

	for _, alias := range env.Aliases.Entries() {
		fmt.Fprintf(&b, "alias %s=%s\n", alias.Name, singleQuote(alias.Command))
	}

	renderHistory(&b, env.History, shell)

	if env.PromptCommand != "" {
		renderPromptHook(&b, env.PromptCommand, shell)
	}

	if env.DelegateScript != "" {
		// Fire-and-forget: the script's own failure never breaks startup.
		fmt.Fprintf(&b, "%s || true\n", singleQuote(env.DelegateScript))
	}

	return b.String()
}

func renderHistory(b *strings.Builder, policy domain.HistoryPolicy, shell domain.ShellName) {
	if policy.File == "" {
		return
	}
	fmt.Fprintf(b, "export HISTFILE=%s\n", singleQuote(policy.File))
	fmt.Fprintf(b, "export HISTSIZE=%s\n", strconv.Itoa(policy.Size))
	switch shell {
	case domain.ShellBash:
		fmt.Fprintf(b, "export HISTFILESIZE=%s\n", strconv.Itoa(policy.Size))
		if policy.IncAppendTime {
			b.WriteString("shopt -s histappend\n")
		}
	default: // zsh
		fmt.Fprintf(b, "export SAVEHIST=%s\n", strconv.Itoa(policy.Size))
		if policy.IncAppendTime {
			b.WriteString("setopt INC_APPEND_HISTORY_TIME\n")
		}
	}
}

func renderPromptHook(b *strings.Builder, command string, shell domain.ShellName) {
	switch shell {
	case domain.ShellBash:
		fmt.Fprintf(b, `_shellrig_prompt() {
  local exit_status=$?
  PS1="$(%[1]s prompt left --shell bash --status $exit_status) "
}
PROMPT_COMMAND="_shellrig_prompt;${PROMPT_COMMAND}"
`, command)
	default: // zsh
		fmt.Fprintf(b, `_shellrig_precmd() {
  local exit_status=$?
  PROMPT="$(%[1]s prompt left --shell zsh --status $exit_status) "
  RPROMPT="$(%[1]s prompt right --shell zsh)"
}
autoload -Uz add-zsh-hook
add-zsh-hook precmd _shellrig_precmd
`, command)
	}
}

// singleQuote wraps a value for the shell, escaping embedded single quotes.
func singleQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
