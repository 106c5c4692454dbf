package snake

// Snapshot is an immutable copy of the game for transport and rendering.
type Snapshot struct {
	State   State   `json:"state"`
	Score   int     `json:"score"`
	Heading string  `json:"heading"`
	Body    []Point `json:"body"`
	Food    Point   `json:"food"`
	Tiles   int     `json:"tiles"`
}

// Head returns the first body cell.
func (s Snapshot) Head() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[0]
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.body))
	copy(body, g.body)
	return Snapshot{
		State:   g.state,
		Score:   g.score,
		Heading: g.heading.String(),
		Body:    body,
		Food:    g.food,
		Tiles:   TileCount,
	}
}
