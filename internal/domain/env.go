package domain

// Export is a single environment variable assignment.
type Export struct {
	Name  string
	Value string
}

// HistoryPolicy captures interactive history parameters with paths already
// resolved. A zero File means the policy is not emitted.
type HistoryPolicy struct {
	File          string
	Size          int
	IncAppendTime bool
}

// ShellEnvironment accumulates everything the bootstrap steps decide on.
// It is an explicit value passed from step to step so each step stays
// independently testable; the script renderer turns it into shell source.
type ShellEnvironment struct {
	exports   []Export
	exportIdx map[string]int

	// Path is the composed search path, already deduplicated.
	Path []string

	Aliases *AliasSet
	History HistoryPolicy

	// PromptCommand is the binary the emitted precmd hook shells out to.
	// Empty disables prompt wiring.
	PromptCommand string

	// DelegateScript is invoked unconditionally at the end of the emitted
	// script. Empty disables delegation.
	DelegateScript string
}

// NewShellEnvironment returns an empty environment.
func NewShellEnvironment() *ShellEnvironment {
	return &ShellEnvironment{
		exportIdx: map[string]int{},
		Aliases:   NewAliasSet(),
	}
}

// SetExport records an export. A repeated name overwrites the value in
// place, keeping the original position.
func (e *ShellEnvironment) SetExport(name, value string) {
	if i, ok := e.exportIdx[name]; ok {
		e.exports[i].Value = value
		return
	}
	e.exportIdx[name] = len(e.exports)
	e.exports = append(e.exports, Export{Name: name, Value: value})
}

// Exports returns the recorded exports in insertion order.
func (e *ShellEnvironment) Exports() []Export {
	out := make([]Export, len(e.exports))
	copy(out, e.exports)
	return out
}

// Export reports the recorded value for name.
func (e *ShellEnvironment) Export(name string) (string, bool) {
	i, ok := e.exportIdx[name]
	if !ok {
		return "", false
	}
	return e.exports[i].Value, true
}
