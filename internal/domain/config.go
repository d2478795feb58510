package domain

// Config mirrors ~/.shellrig/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Env                 EnvSettings       `yaml:"env"`
	Docker              DockerSettings    `yaml:"docker"`
	Path                PathSettings      `yaml:"path"`
	Aliases             map[string]string `yaml:"aliases"`
	History             HistorySettings   `yaml:"history"`
	Prompt              PromptSettings    `yaml:"prompt"`
	Delegate            DelegateSettings  `yaml:"delegate"`
	Sync                SyncSettings      `yaml:"sync"`
}

// EnvSettings lists plain environment exports emitted before anything else.
// An ordered list rather than a map, since export order is user-visible.
type EnvSettings struct {
	Exports []ExportSetting `yaml:"exports"`
}

// ExportSetting is a single key=value export.
type ExportSetting struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// DockerSettings configures the docker socket probe.
type DockerSettings struct {
	SocketPath string `yaml:"socket_path"`
}

// PathSettings lists directories that must be present on PATH.
// Entries may use ~ and $VAR references ($N_PREFIX/bin and friends).
type PathSettings struct {
	Ensure []string `yaml:"ensure"`
}

// HistorySettings configures interactive history persistence.
type HistorySettings struct {
	File          string `yaml:"file"`
	Size          int    `yaml:"size"`
	IncAppendTime bool   `yaml:"inc_append_time"`
}

// PromptSettings configures prompt composition.
type PromptSettings struct {
	SuccessGlyph string `yaml:"success_glyph"`
	FailureGlyph string `yaml:"failure_glyph"`
	TimeFormat   string `yaml:"time_format"`
}

// DelegateSettings names the script invoked at the end of initialization.
type DelegateSettings struct {
	Script string `yaml:"script"`
}

// SyncSettings describes filesystem state managed by `shellrig sync`:
// paths to create, symlinks to maintain, and scripts to run afterwards.
type SyncSettings struct {
	Create []string          `yaml:"create"`
	Links  map[string]string `yaml:"links"`
	Run    []string          `yaml:"run"`
}
