package tui

import tea "github.com/charmbracelet/bubbletea"

// Cmd describes a side effect that will eventually dispatch messages of type
// T. A Cmd is inert data: nothing runs until Perform hands it to bubbletea.
// A nil Cmd is the no-op command.
type Cmd[T any] interface {
	perform(lift func(T) tea.Msg) tea.Cmd
}

// Perform interprets a command tree into a single tea.Cmd. None performs
// nothing, Batch elements run with no ordering guarantee, and each Task runs
// its operation exactly once and dispatches exactly one message.
func Perform[T any](c Cmd[T]) tea.Cmd {
	if c == nil {
		return nil
	}
	return c.perform(func(msg T) tea.Msg { return any(msg) })
}

// ---------------------------------------------------------------------------
// Map
// ---------------------------------------------------------------------------

type mapCmd[A, B any] struct {
	f     func(A) B
	inner Cmd[A]
}

// Map re-tags every message the inner command would dispatch, so a child
// program's command re-enters the parent update at the right type.
func Map[A, B any](f func(A) B, inner Cmd[A]) Cmd[B] {
	if inner == nil {
		return nil
	}
	return mapCmd[A, B]{f: f, inner: inner}
}

func (c mapCmd[A, B]) perform(lift func(B) tea.Msg) tea.Cmd {
	return c.inner.perform(func(msg A) tea.Msg { return lift(c.f(msg)) })
}

// ---------------------------------------------------------------------------
// Batch
// ---------------------------------------------------------------------------

type batchCmd[T any] struct {
	cmds []Cmd[T]
}

// Batch combines commands. Elements may interleave or run concurrently; each
// dispatches independently.
func Batch[T any](cmds ...Cmd[T]) Cmd[T] {
	kept := make([]Cmd[T], 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			kept = append(kept, c)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return batchCmd[T]{cmds: kept}
}

func (c batchCmd[T]) perform(lift func(T) tea.Msg) tea.Cmd {
	out := make([]tea.Cmd, 0, len(c.cmds))
	for _, inner := range c.cmds {
		if performed := inner.perform(lift); performed != nil {
			out = append(out, performed)
		}
	}
	return tea.Batch(out...)
}

// ---------------------------------------------------------------------------
// Task
// ---------------------------------------------------------------------------

type taskCmd[A, T any] struct {
	op    func() (A, error)
	onOK  func(A) T
	onErr func(error) T
}

// Attempt wraps an asynchronous operation. The operation runs once, off the
// update loop, and its outcome comes back as a single message built by onOK
// or onErr.
func Attempt[A, T any](op func() (A, error), onOK func(A) T, onErr func(error) T) Cmd[T] {
	return taskCmd[A, T]{op: op, onOK: onOK, onErr: onErr}
}

func (c taskCmd[A, T]) perform(lift func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		result, err := c.op()
		if err != nil {
			return lift(c.onErr(err))
		}
		return lift(c.onOK(result))
	}
}

// ---------------------------------------------------------------------------
// Fire
// ---------------------------------------------------------------------------

type fireCmd[T any] struct {
	op func()
}

// Fire runs a side effect that dispatches nothing: the analog of a command
// over an empty message type. Errors inside op are the op's own problem.
func Fire[T any](op func()) Cmd[T] {
	return fireCmd[T]{op: op}
}

func (c fireCmd[T]) perform(func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		c.op()
		return nil
	}
}
