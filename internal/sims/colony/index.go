package colony

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"cellview/internal/core"
)

// pixelIndex maintains the ordered mapping from entity id to owned cells.
// The red-black tree keeps iteration in ascending id order, so every
// renderer-visible snapshot is deterministic for a given world state.
type pixelIndex struct {
	tree *redblacktree.Tree
}

func newPixelIndex() *pixelIndex {
	return &pixelIndex{tree: redblacktree.NewWithIntComparator()}
}

func (ix *pixelIndex) add(id int, c core.Coord) {
	if v, ok := ix.tree.Get(id); ok {
		coords := v.(*[]core.Coord)
		*coords = append(*coords, c)
		return
	}
	coords := []core.Coord{c}
	ix.tree.Put(id, &coords)
}

func (ix *pixelIndex) remove(id int, c core.Coord) {
	v, ok := ix.tree.Get(id)
	if !ok {
		return
	}
	coords := v.(*[]core.Coord)
	for i, p := range *coords {
		if p == c {
			*coords = append((*coords)[:i], (*coords)[i+1:]...)
			break
		}
	}
	if len(*coords) == 0 {
		ix.tree.Remove(id)
	}
}

func (ix *pixelIndex) count(id int) int {
	v, ok := ix.tree.Get(id)
	if !ok {
		return 0
	}
	return len(*v.(*[]core.Coord))
}

// each visits entities in ascending id order. The callback must not mutate
// the index.
func (ix *pixelIndex) each(fn func(id int, coords []core.Coord)) {
	it := ix.tree.Iterator()
	for it.Next() {
		fn(it.Key().(int), *it.Value().(*[]core.Coord))
	}
}

func (ix *pixelIndex) clear() {
	ix.tree.Clear()
}
