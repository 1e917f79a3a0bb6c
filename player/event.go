package player

// EventType classifies an Event.
type EventType int

const (
	// EventPhase is published whenever the phase or the current exercise
	// changes.
	EventPhase EventType = iota
	// EventTick is published after each countdown decrement that does not
	// finish the exercise.
	EventTick
	// EventExit is published once when the session is aborted.
	EventExit
)

func (t EventType) String() string {
	switch t {
	case EventPhase:
		return "phase"
	case EventTick:
		return "tick"
	case EventExit:
		return "exit"
	}

	return "unknown"
}

// Event notifies subscribers of a state change.
type Event struct {
	Progress Progress
	Type     EventType
}

// Result is the single outcome of a session, delivered on Engine.Done.
// Exactly one of Summary and Exited is set. Err explains an exit forced by
// a timer fault.
type Result struct {
	Summary *Summary
	Err     error
	Exited  bool
}

// Hooks are invoked once when the session ends. Nil hooks are skipped.
type Hooks struct {
	OnComplete func(Summary)
	OnExit     func()
}
