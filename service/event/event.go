// Package event describes task manager lifecycle events and publishes them
// onto a messaging queue.
package event

import (
	"time"

	"github.com/viant/tasker/internal/clock"
	"github.com/viant/tasker/internal/idgen"
	"github.com/viant/tasker/model"
)

// Type identifies a lifecycle transition
type Type string

const (
	// TypeAdmitted is emitted when a process starts being tracked
	TypeAdmitted Type = "admitted"
	// TypeRejected is emitted when an add leaves the manager unchanged
	TypeRejected Type = "rejected"
	// TypeEvicted is emitted when a tracked process is killed to make room for another one
	TypeEvicted Type = "evicted"
	// TypeKilled is emitted when a tracked process is killed by kill, killGroup or killAll
	TypeKilled Type = "killed"
)

// Rejection reasons
const (
	ReasonCapacityReached = "capacity reached"
	ReasonNoLowerPriority = "no lower priority process"
	ReasonDuplicatePID    = "duplicate pid"
	ReasonAlreadyTracked  = "already tracked"
	ReasonInvalidProcess  = "invalid process"
)

// Event describes a single lifecycle transition
type Event struct {
	ID        string         `json:"id" yaml:"id"`
	Type      Type           `json:"type" yaml:"type"`
	Mode      model.Mode     `json:"mode" yaml:"mode"`
	Process   model.Process  `json:"process" yaml:"process"`
	Victim    *model.Process `json:"victim,omitempty" yaml:"victim,omitempty"`
	Reason    string         `json:"reason,omitempty" yaml:"reason,omitempty"`
	CreatedAt time.Time      `json:"createdAt" yaml:"createdAt"`
}

// New creates an event stamped with a fresh id and the current time
func New(eventType Type, mode model.Mode, process model.Process) *Event {
	return &Event{
		ID:        idgen.New(),
		Type:      eventType,
		Mode:      mode,
		Process:   process,
		CreatedAt: clock.Now(),
	}
}

// WithVictim records the process evicted in favour of Process
func (e *Event) WithVictim(victim model.Process) *Event {
	e.Victim = &victim
	return e
}

// WithReason records why an add was rejected
func (e *Event) WithReason(reason string) *Event {
	e.Reason = reason
	return e
}
