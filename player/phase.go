package player

// Phase is the discrete state of a session.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Transitioning
	Complete
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Transitioning:
		return "Transitioning"
	case Complete:
		return "Complete"
	}

	return "Unknown"
}
