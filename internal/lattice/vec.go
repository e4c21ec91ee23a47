package lattice

// Vec2i addresses a cell on a 2D grid. Row grows southward, Col eastward,
// matching the orientation of the text inputs.
type Vec2i struct {
	Row int
	Col int
}

func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.Row + o.Row, v.Col + o.Col} }

type Vec3i struct {
	X int
	Y int
	Z int
}

func (v Vec3i) ToArray() [3]int { return [3]int{v.X, v.Y, v.Z} }

// Heading is one of the four grid directions.
type Heading uint8

const (
	North Heading = iota
	South
	West
	East
)

var headingDeltas = [4]Vec2i{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
	East:  {Row: 0, Col: 1},
}

func (h Heading) Delta() Vec2i { return headingDeltas[h] }

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	}
	return "?"
}

// Headings lists all four directions in a fixed scan order.
var Headings = [4]Heading{North, South, West, East}
