// Package pathenv composes the executable search path: inherited entries
// first, configured extras after, duplicates removed keeping the first
// occurrence. An extra already present anywhere in the inherited path keeps
// its original priority instead of being moved.
package pathenv

import (
	"os"
	"path/filepath"
	"strings"
)

// ListSeparator joins and splits PATH-style lists.
const ListSeparator = ":"

// Compose concatenates inherited and extra, then removes duplicates while
// preserving the order of first occurrence. Empty segments are dropped.
func Compose(inherited, extra []string) []string {
	seen := make(map[string]struct{}, len(inherited)+len(extra))
	out := make([]string, 0, len(inherited)+len(extra))
	for _, dir := range append(append([]string{}, inherited...), extra...) {
		if dir == "" {
			continue
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		out = append(out, dir)
	}
	return out
}

// Split breaks a PATH value into its entries.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ListSeparator)
}

// Join renders entries back into a PATH value.
func Join(entries []string) string {
	return strings.Join(entries, ListSeparator)
}

// Expand resolves a configured directory: a leading ~ becomes the home
// directory and $VAR references are substituted from the environment.
// An entry referencing an unset variable is reported as empty so Compose
// drops it instead of composing a half-expanded directory.
func Expand(entry, home string) string {
	if entry == "~" {
		return home
	}
	if strings.HasPrefix(entry, "~/") {
		entry = filepath.Join(home, entry[2:])
	}
	missing := false
	expanded := os.Expand(entry, func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = true
		}
		return value
	})
	if missing {
		return ""
	}
	return expanded
}
