package game

import "slices"

// indexSet is an ordered set of die positions still available in a round.
type indexSet struct {
	items []int
}

func newIndexSet(n int) *indexSet {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return &indexSet{items: items}
}

func (s *indexSet) Len() int {
	return len(s.items)
}

// At returns the i-th remaining index in ascending order.
func (s *indexSet) At(i int) int {
	return s.items[i]
}

func (s *indexSet) Contains(v int) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

func (s *indexSet) Remove(v int) bool {
	i, found := slices.BinarySearch(s.items, v)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *indexSet) Values() []int {
	return slices.Clone(s.items)
}
