package sim

// Cause tells why a round ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseCeiling
	CauseGround
	CausePipe
)

// String returns a short description of the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return ""
	case CauseCeiling:
		return "hit the ceiling"
	case CauseGround:
		return "hit the ground"
	case CausePipe:
		return "hit a pipe"
	default:
		return "unknown"
	}
}

// Check reports whether the bird collides with the screen bounds or any pipe.
// It reads its arguments only, so repeated calls give the same answer.
func Check(b Bird, pipes []Pipe, groundY float64) (bool, Cause) {
	if b.Y < 0 {
		return true, CauseCeiling
	}
	if b.Y+b.Size > groundY {
		return true, CauseGround
	}

	box := b.Box()
	for _, p := range pipes {
		if box.Overlaps(p.Top()) || box.Overlaps(p.Bottom(groundY)) {
			return true, CausePipe
		}
	}
	return false, CauseNone
}
