package game

// Intent is a paddle's resolved directional command, reduced from the raw
// press/release stream of its two control keys. Tracking Both separately
// from Neutral lets a player who holds up+down and releases one key fall
// back to the direction of the key still held.
type Intent int

const (
	Neutral Intent = iota
	Up
	Down
	Both
)

// PressUp transitions the intent for an up-key press.
func (i Intent) PressUp() Intent {
	switch i {
	case Up, Neutral:
		return Up
	default: // Down, Both
		return Both
	}
}

// PressDown transitions the intent for a down-key press.
func (i Intent) PressDown() Intent {
	switch i {
	case Down, Neutral:
		return Down
	default: // Up, Both
		return Both
	}
}

// ReleaseUp transitions the intent for an up-key release.
func (i Intent) ReleaseUp() Intent {
	switch i {
	case Up, Neutral:
		return Neutral
	default: // Down, Both
		return Down
	}
}

// ReleaseDown transitions the intent for a down-key release.
func (i Intent) ReleaseDown() Intent {
	switch i {
	case Down, Neutral:
		return Neutral
	default: // Up, Both
		return Up
	}
}

func (i Intent) String() string {
	switch i {
	case Neutral:
		return "neutral"
	case Up:
		return "up"
	case Down:
		return "down"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}
