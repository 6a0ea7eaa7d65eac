package combat

import "fmt"

type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) Add(o Pos) Pos  { return Pos{p.Row + o.Row, p.Col + o.Col} }
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

func inBounds(p Pos, h, w int) bool {
	return p.Row >= 0 && p.Row < h && p.Col >= 0 && p.Col < w
}

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists the valid moves in the order monster AI indexes them.
var Directions = [4]Direction{Up, Down, Left, Right}

var offsets = map[Direction]Pos{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// ParseDirection accepts only the four literal lowercase tokens.
func ParseDirection(token string) (Direction, error) {
	d := Direction(token)
	if _, ok := offsets[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, token)
	}
	return d, nil
}

func (d Direction) Offset() (Pos, bool) {
	off, ok := offsets[d]
	return off, ok
}
