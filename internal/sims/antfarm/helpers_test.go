package antfarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// worldFromRows builds an ant-less world from a picture: '.' air, '#' dirt,
// 's' sand.
func worldFromRows(t *testing.T, rows ...string) *World {
	t.Helper()
	require.NotEmpty(t, rows)
	cfg := DefaultConfig()
	cfg.Width = len(rows[0])
	cfg.Height = len(rows)
	cfg.Ants = 0
	w := NewWithConfig(cfg)
	w.Reset(1)
	for y, row := range rows {
		require.Len(t, row, cfg.Width, "row %d", y)
		for x, c := range row {
			switch c {
			case '.':
				w.terrain.Set(x, y, Air)
			case '#':
				w.terrain.Set(x, y, Dirt)
			case 's':
				w.terrain.Set(x, y, Sand)
			default:
				t.Fatalf("unknown cell %q at (%d,%d)", c, x, y)
			}
		}
	}
	w.dirty.Take()
	return w
}

func (w *World) rows() []string {
	out := make([]string, w.h)
	for y := 0; y < w.h; y++ {
		b := make([]byte, w.w)
		for x := 0; x < w.w; x++ {
			b[x] = ".#s"[w.terrain.Get(x, y)]
		}
		out[y] = string(b)
	}
	return out
}

// quiet zeroes every random behavior so a test controls what ants do.
func quiet(p *Params) {
	p.DigChance = 0
	p.DropChance = 0
	p.TurnChance = 0
	p.ConcaveDigChance = 0
	p.ConvexDropChance = 0
	p.CalmChance = 0
	p.TrappedDropChance = 0
}

func activeTrackers(w *World) map[[2]int]int {
	seen := map[[2]int]int{}
	for _, g := range w.grains {
		if g.active {
			seen[[2]int{g.x, g.y}]++
		}
	}
	return seen
}
