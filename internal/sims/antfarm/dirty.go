package antfarm

import "image"

// maxDirtyRects bounds the pending list; past it everything is repainted.
const maxDirtyRects = 256

// Dirty collects the grid rectangles changed since the host last asked.
// A rectangle that overlaps a pending one is merged into it.
type Dirty struct {
	bounds image.Rectangle
	rects  []image.Rectangle
}

func newDirty(w, h int) Dirty {
	return Dirty{bounds: image.Rect(0, 0, w, h)}
}

// Add records r, clipped to the grid.
func (d *Dirty) Add(r image.Rectangle) {
	r = r.Intersect(d.bounds)
	if r.Empty() {
		return
	}
	for i, e := range d.rects {
		if e.Overlaps(r) {
			d.rects[i] = e.Union(r)
			return
		}
	}
	if len(d.rects) >= maxDirtyRects {
		d.MarkAll()
		return
	}
	d.rects = append(d.rects, r)
}

// AddCell records the single cell at (x, y).
func (d *Dirty) AddCell(x, y int) {
	d.Add(image.Rect(x, y, x+1, y+1))
}

// AddBox records the square of the given reach centred on (x, y).
func (d *Dirty) AddBox(x, y, reach int) {
	d.Add(image.Rect(x-reach, y-reach, x+reach+1, y+reach+1))
}

// MarkAll replaces the pending list with the whole grid.
func (d *Dirty) MarkAll() {
	d.rects = append(d.rects[:0], d.bounds)
}

// Pending returns the number of rectangles waiting to be taken.
func (d *Dirty) Pending() int { return len(d.rects) }

// Take returns the pending rectangles and clears the list.
func (d *Dirty) Take() []image.Rectangle {
	out := d.rects
	d.rects = nil
	return out
}
