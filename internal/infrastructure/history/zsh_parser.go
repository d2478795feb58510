// Package history imports zsh command history into a local SQLite
// database so usage can be inspected across sessions.
package history

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"shellrig/internal/domain"
)

// ParseZshHistory reads a zsh history file. Lines in extended format
// (": <epoch>:<duration>;<command>") carry timestamps; plain lines are
// kept with a zero timestamp. A trailing backslash continues the command
// on the next line, the way zsh writes multi-line entries.
func ParseZshHistory(path string) ([]domain.HistoryEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []domain.HistoryEntry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending *domain.HistoryEntry
	for scanner.Scan() {
		line := scanner.Text()
		if pending != nil {
			appendContinuation(pending, line)
			if !strings.HasSuffix(line, "\\") {
				entries = append(entries, *pending)
				pending = nil
			}
			continue
		}
		entry := parseLine(line)
		if entry.Command == "" {
			continue
		}
		if strings.HasSuffix(entry.Command, "\\") {
			entry.Command = strings.TrimSuffix(entry.Command, "\\")
			pending = &entry
			continue
		}
		entries = append(entries, entry)
	}
	if pending != nil {
		entries = append(entries, *pending)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseLine(line string) domain.HistoryEntry {
	if !strings.HasPrefix(line, ": ") {
		return domain.HistoryEntry{Command: strings.TrimSpace(line)}
	}
	rest := line[2:]
	sep := strings.IndexByte(rest, ';')
	if sep < 0 {
		return domain.HistoryEntry{Command: strings.TrimSpace(line)}
	}
	meta := rest[:sep]
	command := rest[sep+1:]

	parts := strings.SplitN(meta, ":", 2)
	entry := domain.HistoryEntry{Command: command}
	if epoch, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64); err == nil {
		entry.Timestamp = time.Unix(epoch, 0)
	}
	if len(parts) == 2 {
		if secs, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64); err == nil {
			entry.Duration = time.Duration(secs) * time.Second
		}
	}
	return entry
}

func appendContinuation(entry *domain.HistoryEntry, line string) {
	entry.Command += "\n" + strings.TrimSuffix(line, "\\")
}
