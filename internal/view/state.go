package view

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseReady      Phase = "ready"
	PhaseSubmitting Phase = "submitting"
	PhaseFailed     Phase = "failed"
)

var ErrInvalidTransition error = errors.New("invalid view state transition")

// State is the immutable state of one view. Transitions return a new value
// and leave the receiver untouched.
type State[T any] struct {
	phase  Phase
	data   T
	reason string
}

func Idle[T any]() State[T] {
	return State[T]{phase: PhaseIdle}
}

// Ready is a view that already holds data, such as a form about to submit.
func Ready[T any](data T) State[T] {
	return State[T]{phase: PhaseReady, data: data}
}

// Must unwraps a transition that cannot fail given the caller's control flow.
// It panics on ErrInvalidTransition.
func Must[T any](s State[T], err error) State[T] {
	if err != nil {
		panic(err)
	}
	return s
}

func (s State[T]) Phase() Phase   { return s.phase }
func (s State[T]) Data() T        { return s.data }
func (s State[T]) Reason() string { return s.reason }

// Load starts a read. Allowed from idle, ready and failed.
func (s State[T]) Load() (State[T], error) {
	switch s.phase {
	case PhaseIdle, PhaseReady, PhaseFailed:
		return State[T]{phase: PhaseLoading, data: s.data}, nil
	}
	return s, s.invalid("load")
}

func (s State[T]) Loaded(data T) (State[T], error) {
	if s.phase != PhaseLoading {
		return s, s.invalid("loaded")
	}
	return State[T]{phase: PhaseReady, data: data}, nil
}

// Submit starts a write on a ready view.
func (s State[T]) Submit() (State[T], error) {
	if s.phase != PhaseReady {
		return s, s.invalid("submit")
	}
	return State[T]{phase: PhaseSubmitting, data: s.data}, nil
}

func (s State[T]) Submitted(data T) (State[T], error) {
	if s.phase != PhaseSubmitting {
		return s, s.invalid("submitted")
	}
	return State[T]{phase: PhaseReady, data: data}, nil
}

// Fail ends a read or a write with reason.
func (s State[T]) Fail(reason string) (State[T], error) {
	switch s.phase {
	case PhaseLoading, PhaseSubmitting:
		return State[T]{phase: PhaseFailed, data: s.data, reason: reason}, nil
	}
	return s, s.invalid("fail")
}

func (s State[T]) invalid(transition string) error {
	return fmt.Errorf("%s from %s: %w", transition, s.phase, ErrInvalidTransition)
}

type stateJSON[T any] struct {
	State Phase  `json:"state"`
	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// MarshalJSON writes the phase, the data of a ready view and the reason of a
// failed one.
func (s State[T]) MarshalJSON() ([]byte, error) {
	out := stateJSON[T]{State: s.phase, Error: s.reason}
	if s.phase == PhaseReady {
		data := s.data
		out.Data = &data
	}
	return json.Marshal(out)
}
