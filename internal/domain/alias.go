package domain

// AliasEntry maps a command name to its replacement command line.
type AliasEntry struct {
	Name    string
	Command string
}

// AliasSet is an ordered alias table. Registration is last-write-wins: a
// repeated name replaces the command but keeps its original position.
type AliasSet struct {
	entries []AliasEntry
	index   map[string]int
}

// NewAliasSet returns an empty table.
func NewAliasSet() *AliasSet {
	return &AliasSet{index: map[string]int{}}
}

// Set registers an alias.
func (s *AliasSet) Set(name, command string) {
	if i, ok := s.index[name]; ok {
		s.entries[i].Command = command
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, AliasEntry{Name: name, Command: command})
}

// Get reports the registered command for name.
func (s *AliasSet) Get(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.entries[i].Command, true
}

// Entries returns all aliases in registration order.
func (s *AliasSet) Entries() []AliasEntry {
	out := make([]AliasEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of registered aliases.
func (s *AliasSet) Len() int {
	return len(s.entries)
}

// DefaultAliases returns the built-in alias table. exa's long listing uses
// -1 instead of -l until the upstream rendering slowdown is fixed.
func DefaultAliases(promptCommand string) *AliasSet {
	set := NewAliasSet()
	listing := "exa -1 -Fh --git --icons"
	set.Set("ls", listing)
	set.Set("exa", listing)
	set.Set("man", "batman")
	set.Set("cat", "bat")
	set.Set("python", "python3")
	set.Set("trail", promptCommand+" trail")
	return set
}
