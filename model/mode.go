package model

import (
	"fmt"
	"strings"
)

// Mode selects the admission policy applied when a manager is full.
type Mode string

const (
	// ModeDefault rejects new processes at capacity
	ModeDefault Mode = "DEFAULT"
	// ModeFIFO evicts the oldest process at capacity
	ModeFIFO Mode = "FIFO"
	// ModePriority evicts the oldest process of the lowest strictly lower priority,
	// or drops the new process when there is none
	ModePriority Mode = "PRIORITY"
)

// Modes returns all supported modes
func Modes() []Mode {
	return []Mode{ModeDefault, ModeFIFO, ModePriority}
}

// IsValid reports whether m is a supported mode
func (m Mode) IsValid() bool {
	switch m {
	case ModeDefault, ModeFIFO, ModePriority:
		return true
	}
	return false
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses a case-insensitive mode name; an empty name means DEFAULT.
func ParseMode(name string) (Mode, error) {
	mode := Mode(strings.ToUpper(strings.TrimSpace(name)))
	if mode == "" {
		return ModeDefault, nil
	}
	if !mode.IsValid() {
		return "", fmt.Errorf("unsupported mode: %q", name)
	}
	return mode, nil
}
