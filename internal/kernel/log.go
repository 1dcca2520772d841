// Package kernel keeps the shell's in-memory event log shown in the System Logs window.
package kernel

import "time"

// Level of a log entry
type Level string

const (
	LevelInfo   Level = "info"
	LevelWarn   Level = "warn"
	LevelError  Level = "error"
	LevelSystem Level = "system"
)

// DefaultLimit is how many entries the log keeps
const DefaultLimit = 100

// Entry is one log line
type Entry struct {
	Time    time.Time `yaml:"time" json:"time"`
	Level   Level     `yaml:"level" json:"level"`
	Message string    `yaml:"message" json:"message"`
}

// Log is a bounded list of entries, newest first
type Log struct {
	limit   int
	entries []Entry
	now     func() time.Time
}

// NewLog creates a log that keeps at most limit entries
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{limit: limit, now: time.Now}
}

// Add records message at level; an empty level means info
func (l *Log) Add(level Level, message string) Entry {
	if level == "" {
		level = LevelInfo
	}
	e := Entry{Time: l.now(), Level: level, Message: message}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
	return e
}

// Entries returns a copy of the entries, newest first
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *Log) Len() int {
	return len(l.entries)
}
