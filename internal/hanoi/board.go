// Package hanoi contains the puzzle model and solver for the Tower of Hanoi.
// It is pure logic with no terminal dependencies, so the classic ANSI
// animation, the TUI viewer, and the tests all drive the same code.
package hanoi

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/colormap"
)

// NumPegs is fixed: the classical puzzle has exactly three pegs.
const NumPegs = 3

var (
	// ErrInvalidSize reports a board size below one layer.
	ErrInvalidSize = errors.New("hanoi: number of layers must be at least 1")

	// ErrEmptyColormap reports a colormap with no samples.
	ErrEmptyColormap = errors.New("hanoi: colormap has no samples")

	// ErrIllegalMove reports a move that violates the puzzle rules.
	// A correct solver never triggers it; reaching it is a programming error.
	ErrIllegalMove = errors.New("hanoi: illegal move")
)

// Disk is a ring on a peg. Disks are value types and are copied on move.
type Disk struct {
	Size  int
	Color colormap.Color
}

// Peg is a bounded stack of disks, index 0 at the bottom. Sizes strictly
// decrease from bottom to top.
type Peg struct {
	disks []Disk
}

// Height returns the number of disks currently on the peg.
func (p *Peg) Height() int {
	return len(p.disks)
}

// At returns the disk at the given layer (0 = bottom). The caller must
// check Height first.
func (p *Peg) At(layer int) Disk {
	return p.disks[layer]
}

// Top returns the topmost disk. The caller must check Height first.
func (p *Peg) Top() Disk {
	return p.disks[len(p.disks)-1]
}

// stacked reports whether disk sizes strictly decrease bottom to top.
func (p *Peg) stacked() bool {
	for i := 0; i+1 < len(p.disks); i++ {
		if p.disks[i].Size <= p.disks[i+1].Size {
			return false
		}
	}
	return true
}

// Board is the full puzzle state: three pegs and a move counter.
type Board struct {
	pegs   [NumPegs]Peg
	layers int
	moves  uint64
}

// New creates a board with all n disks stacked on peg 0, largest at the
// bottom. Disk colors are assigned from the colormap at construction time
// and never change afterwards.
func New(n int, cm colormap.Colormap) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if cm.Len() == 0 {
		return nil, ErrEmptyColormap
	}

	b := &Board{layers: n}
	for i := range b.pegs {
		b.pegs[i].disks = make([]Disk, 0, n)
	}
	for k := 0; k < n; k++ {
		b.pegs[0].disks = append(b.pegs[0].disks, Disk{
			Size:  n - k,
			Color: cm.ColorFor(k, n),
		})
	}
	return b, nil
}

// Layers returns the number of disks on the board.
func (b *Board) Layers() int {
	return b.layers
}

// Peg returns a read-only view of peg i for rendering.
func (b *Board) Peg(i int) *Peg {
	return &b.pegs[i]
}

// Moves returns the number of moves executed so far.
func (b *Board) Moves() uint64 {
	return b.moves
}

// TotalMoves returns the length of the minimum solution, 2^n − 1,
// saturating at the top of the uint64 range for n >= 64.
func (b *Board) TotalMoves() uint64 {
	return TotalMoves(b.layers)
}

// TotalMoves returns 2^n − 1, saturating for n >= 64.
func TotalMoves(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// Move transfers the top disk of peg src onto peg dst and increments the
// move counter. Every precondition violation returns ErrIllegalMove; the
// board is left untouched on error.
func (b *Board) Move(src, dst int) error {
	if src < 0 || src >= NumPegs || dst < 0 || dst >= NumPegs {
		return fmt.Errorf("%w: peg index out of range (%d -> %d)", ErrIllegalMove, src, dst)
	}
	if src == dst {
		return fmt.Errorf("%w: source and destination are both peg %d", ErrIllegalMove, src)
	}

	from, to := &b.pegs[src], &b.pegs[dst]
	if from.Height() == 0 {
		return fmt.Errorf("%w: source peg %d is empty", ErrIllegalMove, src)
	}
	if to.Height() >= b.layers {
		return fmt.Errorf("%w: destination peg %d is full", ErrIllegalMove, dst)
	}
	if to.Height() > 0 && to.Top().Size <= from.Top().Size {
		return fmt.Errorf("%w: cannot place size %d on size %d",
			ErrIllegalMove, from.Top().Size, to.Top().Size)
	}

	disk := from.disks[from.Height()-1]
	from.disks = from.disks[:from.Height()-1]
	to.disks = append(to.disks, disk)
	b.moves++

	// Post-condition: the mutation must not have broken the stacking order.
	if !to.stacked() {
		return fmt.Errorf("%w: stacking invariant broken on peg %d", ErrIllegalMove, dst)
	}
	return nil
}

// Solved reports whether all disks sit on the last peg.
func (b *Board) Solved() bool {
	return b.pegs[NumPegs-1].Height() == b.layers
}
