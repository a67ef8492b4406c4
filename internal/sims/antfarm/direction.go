package antfarm

// Direction is an ant heading. The first word names the travel direction and
// the second names the side the ant's feet are on, so LeftDown walks left
// along a floor and UpRight climbs a wall that is on its right.
type Direction uint8

const (
	LeftDown Direction = iota
	LeftUp
	RightDown
	RightUp
	UpRight
	UpLeft
	DownRight
	DownLeft

	numDirections
)

type directionInfo struct {
	dx, dy int
	foot   Direction
	back   Direction
	name   string
}

var directions = [numDirections]directionInfo{
	LeftDown:  {dx: -1, dy: 0, foot: DownRight, back: UpLeft, name: "left-down"},
	LeftUp:    {dx: -1, dy: 0, foot: UpRight, back: DownLeft, name: "left-up"},
	RightDown: {dx: 1, dy: 0, foot: DownLeft, back: UpRight, name: "right-down"},
	RightUp:   {dx: 1, dy: 0, foot: UpLeft, back: DownRight, name: "right-up"},
	UpRight:   {dx: 0, dy: -1, foot: RightDown, back: LeftUp, name: "up-right"},
	UpLeft:    {dx: 0, dy: -1, foot: LeftDown, back: RightUp, name: "up-left"},
	DownRight: {dx: 0, dy: 1, foot: RightUp, back: LeftDown, name: "down-right"},
	DownLeft:  {dx: 0, dy: 1, foot: LeftUp, back: RightDown, name: "down-left"},
}

// Directions lists every heading in table order.
func Directions() []Direction {
	out := make([]Direction, numDirections)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Delta returns the one-cell step for d.
func (d Direction) Delta() (dx, dy int) {
	info := directions[d]
	return info.dx, info.dy
}

// Foot returns the heading that points at the surface the ant stands on.
func (d Direction) Foot() Direction { return directions[d].foot }

// Back returns the heading tried first when turning away from an obstacle.
func (d Direction) Back() Direction { return directions[d].back }

// Horizontal reports whether d travels along a row.
func (d Direction) Horizontal() bool { return directions[d].dy == 0 }

// Valid reports whether d is one of the eight headings.
func (d Direction) Valid() bool { return d < numDirections }

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directions[d].name
}
