package wsp

import "github.com/bits-and-blooms/bitset"

// State is the mutable part of a PointSet: which points survive, which have
// served as walk origins, and where each point's neighbor scan resumes.
type State struct {
	n       int
	removed *bitset.BitSet
	visited *bitset.BitSet
	cursor  []int
	active  int
}

func newState(n int) *State {
	s := &State{
		n:       n,
		removed: bitset.New(uint(n)),
		visited: bitset.New(uint(n)),
		cursor:  make([]int, n),
	}
	s.Reset()
	return s
}

// Reset marks every point active and unvisited and rewinds every cursor to 1,
// the first neighbor after the point itself.
func (s *State) Reset() {
	s.removed.ClearAll()
	s.visited.ClearAll()
	for i := range s.cursor {
		s.cursor[i] = 1
	}
	s.active = s.n
}

// kill removes point i from the surviving subset. It must only be called on
// active points.
func (s *State) kill(i int) {
	s.removed.Set(uint(i))
	s.active--
}

func (s *State) isActive(i int) bool  { return !s.removed.Test(uint(i)) }
func (s *State) isVisited(i int) bool { return s.visited.Test(uint(i)) }
