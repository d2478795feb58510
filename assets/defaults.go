package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// ZshHook is the integration script sourced from ~/.zshrc.
//
//go:embed shell/zsh.sh
var ZshHook string

// BashHook is the integration script sourced from ~/.bashrc.
//
//go:embed shell/bash.sh
var BashHook string
