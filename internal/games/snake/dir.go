package snake

import "strings"

// Dir is a snake heading. The zero value means the snake has not moved yet.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the lowercase direction name used on the wire.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// Delta returns the cell offset for one step. Up decreases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Orthogonal reports whether d turns at a right angle to other. Every real
// direction is orthogonal to DirNone.
func (d Dir) Orthogonal(other Dir) bool {
	if d == DirNone {
		return false
	}
	if other == DirNone {
		return true
	}
	dx, _ := d.Delta()
	odx, _ := other.Delta()
	return (dx == 0) != (odx == 0)
}

// DirectionForKey maps arrow key names and WASD to a direction.
func DirectionForKey(key string) (Dir, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "arrowup", "up", "w":
		return DirUp, true
	case "arrowdown", "down", "s":
		return DirDown, true
	case "arrowleft", "left", "a":
		return DirLeft, true
	case "arrowright", "right", "d":
		return DirRight, true
	default:
		return DirNone, false
	}
}
