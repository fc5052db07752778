package model

import (
	"fmt"
	"strings"
)

// SortedBy selects the listing order. The zero value lists by admission time.
type SortedBy uint8

const (
	// SortedByTime lists processes oldest first
	SortedByTime SortedBy = iota
	// SortedByPriority lists processes ascending by priority order, ties in admission order
	SortedByPriority
	// SortedByPID lists processes ascending by pid
	SortedByPID
)

var sortedByNames = map[SortedBy]string{
	SortedByTime:     "TIME",
	SortedByPriority: "PRIORITY",
	SortedByPID:      "PID",
}

func (s SortedBy) String() string {
	if name, ok := sortedByNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SortedBy(%d)", uint8(s))
}

func (s SortedBy) MarshalText() ([]byte, error) {
	if _, ok := sortedByNames[s]; !ok {
		return nil, fmt.Errorf("invalid sort key: %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *SortedBy) UnmarshalText(text []byte) error {
	parsed, err := ParseSortedBy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSortedBy parses a case-insensitive sort key; an empty name means TIME.
func ParseSortedBy(name string) (SortedBy, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		return SortedByTime, nil
	}
	for s, candidate := range sortedByNames {
		if candidate == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unsupported sort key: %q", name)
}
