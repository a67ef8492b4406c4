package render

import (
	"image"
	"image/color"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillPaletteRect converts the cells inside r of a row-major grid stride cells
// wide into tightly packed RGBA pixels. buf is reused when large enough.
func fillPaletteRect(buf []byte, cells []uint8, stride int, r image.Rectangle, palette []color.RGBA) []byte {
	need := 4 * r.Dx() * r.Dy()
	if cap(buf) < need {
		buf = make([]byte, need)
	}
	buf = buf[:need]
	off := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := cells[y*stride+r.Min.X : y*stride+r.Max.X]
		fillPaletteRGBA(buf[off:off+4*len(row)], row, palette)
		off += 4 * len(row)
	}
	return buf
}
