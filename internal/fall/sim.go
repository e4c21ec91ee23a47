// Package fall settles axis-aligned bricks under gravity on a 3D lattice and
// answers which bricks can be removed safely and how many would fall in a
// chain reaction.
package fall

import "lattice.works/internal/lattice"

// System owns a set of bricks and the occupancy index derived from them.
// What-if analysis never shares a System between runs; Clone produces an
// independent lightweight structural copy (bricks plus index, no dense grid).
type System struct {
	bricks  []Brick
	deleted []bool
	occ     *lattice.Occupancy
}

// zPadding keeps two empty layers above the highest brick so upward-extent
// scans stay in bounds.
const zPadding = 2

func NewSystem(bricks []Brick) (*System, error) {
	s := &System{
		bricks:  append([]Brick(nil), bricks...),
		deleted: make([]bool, len(bricks)),
	}
	exts := make([]lattice.Box3, len(bricks))
	for i, b := range bricks {
		exts[i] = b.Ext
	}
	s.occ = lattice.NewOccupancy(lattice.BoundsOf(exts, zPadding))
	if err := s.rebuildIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *System) rebuildIndex() error {
	exts := make(map[int]lattice.Box3, len(s.bricks))
	for id, b := range s.bricks {
		if s.deleted[id] {
			continue
		}
		exts[id] = b.Ext
	}
	return s.occ.Rebuild(exts)
}

func (s *System) Len() int {
	n := 0
	for id := range s.bricks {
		if !s.deleted[id] {
			n++
		}
	}
	return n
}

func (s *System) Brick(id int) Brick { return s.bricks[id] }

// OccupiedCells returns the number of occupied lattice coordinates; gravity
// moves bricks but never creates or destroys cells.
func (s *System) OccupiedCells() int { return s.occ.Len() }

func (s *System) Clone() *System {
	c := &System{
		bricks:  append([]Brick(nil), s.bricks...),
		deleted: append([]bool(nil), s.deleted...),
		occ:     s.occ.Clone(),
	}
	return c
}

// Delete removes a brick from the system and rebuilds the occupancy index
// from scratch; patching the index incrementally after a deletion is more
// error-prone than a rebuild.
func (s *System) Delete(id int) error {
	if s.deleted[id] {
		return nil
	}
	s.deleted[id] = true
	return s.rebuildIndex()
}

// tryDrop moves brick id one unit toward the floor if every coordinate it
// would then occupy is empty or its own, and the move keeps it at z >= 1.
func (s *System) tryDrop(id int) bool {
	ext := s.bricks[id].Ext
	next := lattice.Box3{
		Min: lattice.Vec3i{X: ext.Min.X, Y: ext.Min.Y, Z: ext.Min.Z - 1},
		Max: lattice.Vec3i{X: ext.Max.X, Y: ext.Max.Y, Z: ext.Max.Z - 1},
	}
	if next.Min.Z < 1 {
		return false
	}
	for _, p := range next.Coords() {
		if held := s.occ.At(p); held != lattice.NoEntity && held != id {
			return false
		}
	}

	s.occ.Remove(ext)
	s.bricks[id].Ext = next
	if err := s.occ.Place(id, next); err != nil {
		// The destination was checked empty above; a conflict here means the
		// index and the entities disagree. Abort.
		panic(err)
	}
	return true
}

// Settle applies one full gravity tick: layers are processed from lowest to
// highest, and each brick encountered is dropped unit by unit until it rests,
// then marked processed. The returned slice records, per brick, whether it
// moved at least once; a brick dropping several units still counts once.
func (s *System) Settle() []bool {
	moved := make([]bool, len(s.bricks))
	processed := make([]bool, len(s.bricks))

	b := s.occ.Bounds()
	for z := b.Min.Z; z <= b.Max.Z; z++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			for y := b.Min.Y; y <= b.Max.Y; y++ {
				id := s.occ.At(lattice.Vec3i{X: x, Y: y, Z: z})
				if id == lattice.NoEntity || processed[id] {
					continue
				}
				for s.tryDrop(id) {
					moved[id] = true
				}
				processed[id] = true
			}
		}
	}
	return moved
}

// SupportMap computes, for every brick, which bricks rest directly on it and
// which it rests on. Call on a settled system.
func (s *System) SupportMap() (supports, supportedBy map[int]map[int]bool) {
	supports = make(map[int]map[int]bool)
	supportedBy = make(map[int]map[int]bool)

	for id, brk := range s.bricks {
		if s.deleted[id] {
			continue
		}
		ext := brk.Ext
		for x := ext.Min.X; x <= ext.Max.X; x++ {
			for y := ext.Min.Y; y <= ext.Max.Y; y++ {
				above := s.occ.At(lattice.Vec3i{X: x, Y: y, Z: ext.Max.Z + 1})
				if above == lattice.NoEntity || above == id {
					continue
				}
				if supports[id] == nil {
					supports[id] = map[int]bool{}
				}
				if supportedBy[above] == nil {
					supportedBy[above] = map[int]bool{}
				}
				supports[id][above] = true
				supportedBy[above][id] = true
			}
		}
	}
	return supports, supportedBy
}

// SafeDisintegrations counts bricks that can be removed without anything
// falling: every brick they support has some other supporter.
func (s *System) SafeDisintegrations() int {
	supports, supportedBy := s.SupportMap()

	safe := 0
	for id := range s.bricks {
		if s.deleted[id] {
			continue
		}
		ok := true
		for top := range supports[id] {
			if len(supportedBy[top]) == 1 {
				ok = false
				break
			}
		}
		if ok {
			safe++
		}
	}
	return safe
}

// ChainFallSum removes each brick in turn on an independent copy, re-applies
// gravity, and sums how many bricks move. The receiver is never mutated.
func (s *System) ChainFallSum() (int, error) {
	total := 0
	for id := range s.bricks {
		if s.deleted[id] {
			continue
		}
		c := s.Clone()
		if err := c.Delete(id); err != nil {
			return 0, err
		}
		for _, m := range c.Settle() {
			if m {
				total++
			}
		}
	}
	return total, nil
}
