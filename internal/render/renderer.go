// Package render paints the puzzle board to a terminal as colored text
// frames, repainting in place between moves with cursor-control escapes.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// Glyphs for the board drawing.
const (
	diskGlyph = "#"
	rodGlyph  = "|"
	gap       = "   " // three spaces between pegs
)

// FrameWidth returns the visible width of one board row for n layers:
// three peg fields of 2n−1 characters plus two 3-space gaps.
func FrameWidth(n int) int {
	return 6*n + 3
}

// FrameHeight returns the number of lines per frame: n board rows plus the
// move-counter header.
func FrameHeight(n int) int {
	return n + 1
}

// Renderer writes frames to a terminal. It implements hanoi.Display.
// It is not safe for concurrent use; the solve loop is single-threaded.
type Renderer struct {
	out    *bufio.Writer
	delay  time.Duration
	drawn  int // lines occupied by the previous frame, 0 before the first
	frames uint64
}

// New creates a renderer writing to w, pausing delay after every frame.
func New(w io.Writer, delay time.Duration) *Renderer {
	return &Renderer{out: bufio.NewWriter(w), delay: delay}
}

// Frames returns the number of frames drawn so far.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Draw emits one full frame. Before every frame except the first it walks
// back over the previous frame's lines (cursor up, column 0, erase
// forward), so the new frame replaces the old one in place. The writer is
// flushed before the pause so the animation is observable.
func (r *Renderer) Draw(b *hanoi.Board) error {
	for i := 0; i < r.drawn; i++ {
		r.out.WriteString(cursorUp)
		r.out.WriteString(carriageReturn)
		r.out.WriteString(eraseToEnd)
	}

	n := b.Layers()
	fmt.Fprintf(r.out, "Moves: %d / %d\n", b.Moves(), b.TotalMoves())
	for layer := n - 1; layer >= 0; layer-- {
		for i := 0; i < hanoi.NumPegs; i++ {
			if i > 0 {
				r.out.WriteString(gap)
			}
			r.writePegLayer(b.Peg(i), n, layer)
		}
		r.out.WriteByte('\n')
	}

	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("render: write failed: %w", err)
	}

	r.drawn = FrameHeight(n)
	r.frames++
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	return nil
}

// writePegLayer renders one peg's field at the given layer: either the
// bare rod or a centered disk. The SGR reset follows the glyph run
// immediately so the padding and gaps stay uncolored.
func (r *Renderer) writePegLayer(p *hanoi.Peg, n, layer int) {
	if p.Height() <= layer {
		pad := strings.Repeat(" ", n-1)
		r.out.WriteString(pad)
		r.out.WriteString(rodGlyph)
		r.out.WriteString(pad)
		return
	}

	disk := p.At(layer)
	pad := strings.Repeat(" ", n-disk.Size)
	r.out.WriteString(pad)
	fmt.Fprintf(r.out, setForegroundFmt, disk.Color.R, disk.Color.G, disk.Color.B)
	r.out.WriteString(strings.Repeat(diskGlyph, 2*disk.Size-1))
	r.out.WriteString(resetColor)
	r.out.WriteString(pad)
}
