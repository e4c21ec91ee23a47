package lattice

import "fmt"

// Box3 is an inclusive axis-aligned 3D extent.
type Box3 struct {
	Min Vec3i
	Max Vec3i
}

// Coords enumerates every coordinate the box covers.
func (b Box3) Coords() []Vec3i {
	n := (b.Max.X - b.Min.X + 1) * (b.Max.Y - b.Min.Y + 1) * (b.Max.Z - b.Min.Z + 1)
	out := make([]Vec3i, 0, n)
	for x := b.Min.X; x <= b.Max.X; x++ {
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for z := b.Min.Z; z <= b.Max.Z; z++ {
				out = append(out, Vec3i{x, y, z})
			}
		}
	}
	return out
}

// BoundsOf derives the bounding box of all extents, padded upward by zPad so
// vertical entities can be scanned one layer above the highest occupied point.
func BoundsOf(extents []Box3, zPad int) Box3 {
	if len(extents) == 0 {
		return Box3{}
	}
	b := extents[0]
	for _, e := range extents[1:] {
		b.Min.X = min(b.Min.X, e.Min.X)
		b.Min.Y = min(b.Min.Y, e.Min.Y)
		b.Min.Z = min(b.Min.Z, e.Min.Z)
		b.Max.X = max(b.Max.X, e.Max.X)
		b.Max.Y = max(b.Max.Y, e.Max.Y)
		b.Max.Z = max(b.Max.Z, e.Max.Z)
	}
	b.Max.Z += zPad
	return b
}

// ErrOccupied reports a placement over a coordinate held by another entity.
// This is an invariant violation in the caller's movement logic; it is never
// recovered from.
type ErrOccupied struct {
	Pos  Vec3i
	Held int
	New  int
}

func (e ErrOccupied) Error() string {
	return fmt.Sprintf("coordinate %v already held by entity %d (placing %d)", e.Pos.ToArray(), e.Held, e.New)
}

// NoEntity marks an unoccupied coordinate.
const NoEntity = -1

// Occupancy maps lattice coordinates to the arena index of the entity
// occupying them. It is a derived structure: it never owns entity state, and
// after bulk structural change it must be rebuilt explicitly rather than
// patched incrementally.
type Occupancy struct {
	bounds Box3
	cells  map[Vec3i]int
}

func NewOccupancy(bounds Box3) *Occupancy {
	return &Occupancy{bounds: bounds, cells: map[Vec3i]int{}}
}

func (o *Occupancy) Bounds() Box3 { return o.bounds }

// At returns the entity at p, or NoEntity.
func (o *Occupancy) At(p Vec3i) int {
	if id, ok := o.cells[p]; ok {
		return id
	}
	return NoEntity
}

// Place claims every coordinate of ext for entity id. Claiming a coordinate
// held by a different entity returns ErrOccupied.
func (o *Occupancy) Place(id int, ext Box3) error {
	for _, p := range ext.Coords() {
		if held, ok := o.cells[p]; ok && held != id {
			return ErrOccupied{Pos: p, Held: held, New: id}
		}
	}
	for _, p := range ext.Coords() {
		o.cells[p] = id
	}
	return nil
}

// Remove clears every coordinate of ext. The extent must match what was
// placed for this entity exactly; passing anything else silently desyncs the
// index. That is a caller obligation, not a runtime check.
func (o *Occupancy) Remove(ext Box3) {
	for _, p := range ext.Coords() {
		delete(o.cells, p)
	}
}

// Rebuild clears the index and re-places every extent from scratch. Used
// after deletions, where incremental maintenance is more error-prone than a
// full rebuild.
func (o *Occupancy) Rebuild(extents map[int]Box3) error {
	o.cells = make(map[Vec3i]int, len(o.cells))
	for id, ext := range extents {
		if err := o.Place(id, ext); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of occupied coordinates.
func (o *Occupancy) Len() int { return len(o.cells) }

func (o *Occupancy) Clone() *Occupancy {
	c := &Occupancy{bounds: o.bounds, cells: make(map[Vec3i]int, len(o.cells))}
	for p, id := range o.cells {
		c.cells[p] = id
	}
	return c
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
