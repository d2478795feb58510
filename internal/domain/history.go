package domain

import "time"

// HistoryEntry is one command from a shell history file.
type HistoryEntry struct {
	Timestamp time.Time
	Duration  time.Duration
	Command   string
}

// CommandStat aggregates history usage for one command line.
type CommandStat struct {
	Command  string
	Count    int64
	LastUsed time.Time
}

// ImportResult summarizes one history import batch.
type ImportResult struct {
	BatchID  string
	Parsed   int
	Imported int
}
