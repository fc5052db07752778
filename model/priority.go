package model

import (
	"fmt"
	"strings"
)

// Priority represents the importance of a tracked process.
type Priority uint8

const (
	// Low is the least important priority.
	Low Priority = iota + 1
	// Medium priority.
	Medium
	// High is the most important priority.
	High
)

// order holds explicit weights; the constant values above are not used for ordering.
var order = map[Priority]int{
	Low:    0,
	Medium: 1,
	High:   2,
}

var priorityNames = map[Priority]string{
	Low:    "LOW",
	Medium: "MEDIUM",
	High:   "HIGH",
}

// Priorities returns all priorities ascending by order.
func Priorities() []Priority {
	return []Priority{Low, Medium, High}
}

// Order returns the comparison weight of the priority, -1 for unknown values.
func (p Priority) Order() int {
	if w, ok := order[p]; ok {
		return w
	}
	return -1
}

// Less reports whether p ranks strictly below other.
func (p Priority) Less(other Priority) bool {
	return p.Order() < other.Order()
}

// IsValid reports whether p is one of the declared priorities.
func (p Priority) IsValid() bool {
	_, ok := order[p]
	return ok
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", uint8(p))
}

// MarshalText encodes the priority name
func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid priority: %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a priority name
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePriority parses a case-insensitive priority name
func ParsePriority(name string) (Priority, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for p, candidate := range priorityNames {
		if candidate == key {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unsupported priority: %q", name)
}
