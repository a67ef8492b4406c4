package antfarm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CheckpointMagic is the first line of every checkpoint file.
const CheckpointMagic = "xantfarm"

// checkpointWrap is the number of cells written per line before a soft wrap.
const checkpointWrap = 78

var (
	// ErrBadHeader means the magic line or the size line is malformed.
	ErrBadHeader = errors.New("antfarm: not a valid checkpoint")
	// ErrSizeMismatch means the checkpoint was saved for another grid size.
	ErrSizeMismatch = errors.New("antfarm: checkpoint has the wrong size for this grid")
	// ErrBadCharacter means the grid body holds a byte other than A, D, S or
	// whitespace.
	ErrBadCharacter = errors.New("antfarm: unknown character in checkpoint")
	// ErrTruncated means the grid body ended early.
	ErrTruncated = errors.New("antfarm: checkpoint ended early")
)

var elementCodes = [...]byte{Air: 'A', Dirt: 'D', Sand: 'S'}

// WriteCheckpoint writes t in the text checkpoint format.
func WriteCheckpoint(dst io.Writer, t *Terrain) error {
	bw := bufio.NewWriter(dst)
	fmt.Fprintf(bw, "%s\n%d %d\n", CheckpointMagic, t.Width(), t.Height())
	for y := 0; y < t.Height(); y++ {
		col := 0
		for x := 0; x < t.Width(); x++ {
			if col >= checkpointWrap {
				bw.WriteByte('\n')
				col = 0
			}
			bw.WriteByte(elementCodes[t.Get(x, y)])
			col++
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadCheckpoint decodes a checkpoint that must describe a w×h grid. The
// result is a new terrain; nothing is modified on failure.
func ReadCheckpoint(src io.Reader, w, h int) (*Terrain, error) {
	br := bufio.NewReader(src)

	magic, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && magic != "") {
		return nil, fmt.Errorf("%w: reading header: %v", ErrBadHeader, err)
	}
	if strings.TrimSuffix(magic, "\n") != CheckpointMagic {
		return nil, fmt.Errorf("%w: first line %q", ErrBadHeader, strings.TrimSpace(magic))
	}

	sizeLine, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && sizeLine != "") {
		return nil, fmt.Errorf("%w: reading size: %v", ErrBadHeader, err)
	}
	var cw, ch int
	if n, err := fmt.Sscanf(strings.TrimSpace(sizeLine), "%d %d", &cw, &ch); n != 2 || err != nil {
		return nil, fmt.Errorf("%w: size line %q", ErrBadHeader, strings.TrimSpace(sizeLine))
	}
	if cw <= 0 || ch <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadHeader, cw, ch)
	}
	if cw != w || ch != h {
		return nil, fmt.Errorf("%w: file is %dx%d, grid is %dx%d", ErrSizeMismatch, cw, ch, w, h)
	}

	t := NewTerrain(w, h)
	cells := t.Cells()
	for i := 0; i < len(cells); {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: got %d of %d cells", ErrTruncated, i, len(cells))
			}
			return nil, err
		}
		switch c {
		case 'A':
			cells[i] = uint8(Air)
		case 'D':
			cells[i] = uint8(Dirt)
		case 'S':
			cells[i] = uint8(Sand)
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return nil, fmt.Errorf("%w: %q at cell %d", ErrBadCharacter, c, i)
		}
		i++
	}
	return t, nil
}

// CheckpointText renders the live terrain as checkpoint text.
func (w *World) CheckpointText() (string, error) {
	var sb strings.Builder
	if err := WriteCheckpoint(&sb, w.terrain); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// LoadCheckpoint replaces the live terrain with the checkpoint read from r.
// Loose-sand tracking restarts from scratch.
func (w *World) LoadCheckpoint(r io.Reader) error {
	t, err := ReadCheckpoint(r, w.w, w.h)
	if err != nil {
		return err
	}
	if err := w.terrain.CopyFrom(t); err != nil {
		return err
	}
	w.grains = w.grains[:0]
	w.dirty.MarkAll()
	w.refreshDisplay()
	return nil
}

// LoadCheckpointFile loads path into the world. A missing file is not an
// error: it reports false and leaves the freshly generated world in place.
func (w *World) LoadCheckpointFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open checkpoint: %w", err)
	}
	defer f.Close()
	if err := w.LoadCheckpoint(f); err != nil {
		return false, fmt.Errorf("load checkpoint %s: %w", path, err)
	}
	return true, nil
}

// SaveCheckpointFile writes the terrain to path. The data goes to a temporary
// file in the same directory that is synced and renamed over path, so a crash
// mid-write leaves the previous checkpoint intact.
func (w *World) SaveCheckpointFile(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = WriteCheckpoint(tmp, w.terrain); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}
