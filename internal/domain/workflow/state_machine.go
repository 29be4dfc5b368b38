// Package workflow defines the credit-evaluation lifecycle as an
// explicit state machine. The orchestrator use case owns the run data;
// this package only answers "is this transition legal".
package workflow

import (
	"errors"
	"fmt"
)

// State is a stage of one order's evaluation lifecycle.
//
//	Received → Assessing → {Approved, Rejected, AwaitingHumanInput}
//	AwaitingHumanInput → {Approved, Rejected}
//
// Approved and Rejected are terminal.

type State string

const (
	StateReceived           State = "received"
	StateAssessing          State = "assessing"
	StateAwaitingHumanInput State = "awaiting_human_input"
	StateApproved           State = "approved"
	StateRejected           State = "rejected"
)

// ErrInvalidTransition is returned for any transition the lifecycle
// does not allow, including resumes on runs that are not awaiting
// input and duplicate resumes after a terminal state.
var ErrInvalidTransition = errors.New("invalid workflow transition")

var transitions = map[State][]State{
	StateReceived:           {StateAssessing},
	StateAssessing:          {StateApproved, StateRejected, StateAwaitingHumanInput},
	StateAwaitingHumanInput: {StateApproved, StateRejected},
	StateApproved:           {},
	StateRejected:           {},
}

// Valid reports whether s is a known state.
func Valid(s State) bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether s permits no further transitions.
func Terminal(s State) bool {
	return s == StateApproved || s == StateRejected
}

// Transition validates a from→to move. The returned error wraps
// ErrInvalidTransition with both states for the audit trail.
func Transition(from, to State) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
