package hanoi

import "fmt"

// Display receives a frame request after every executed move. The classic
// ANSI renderer implements it; tests implement it with collecting fakes.
type Display interface {
	Draw(b *Board) error
}

// Plan emits the minimum-move sequence for transferring n disks from peg 0
// to peg 2, calling emit once per single-disk move in execution order. It
// performs no board mutation itself, which lets the TUI viewer replay the
// same sequence at its own pace.
func Plan(n int, emit func(src, dst int) error) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	return planStack(n, 0, NumPegs-1, emit)
}

// planStack is the classical recursion: park k−1 disks on the spare peg,
// move the k-th, then bring the k−1 back on top of it. The call order is
// load-bearing; it defines the observable move sequence.
func planStack(k, src, dst int, emit func(src, dst int) error) error {
	if k == 1 {
		return emit(src, dst)
	}
	// The three peg indices sum to 3, so the spare falls out arithmetically.
	spare := NumPegs - src - dst
	if err := planStack(k-1, src, spare, emit); err != nil {
		return err
	}
	if err := emit(src, dst); err != nil {
		return err
	}
	return planStack(k-1, spare, dst, emit)
}

// Solve drives the board from its starting configuration to all disks on
// the last peg, drawing a frame after every move. The initial frame is the
// caller's responsibility, so the display shows (2^n − 1) + 1 frames total.
//
// Any move error is a programming error in the planner and is returned
// immediately; the caller decides how loudly to die.
func Solve(b *Board, d Display) error {
	return Plan(b.Layers(), func(src, dst int) error {
		if err := b.Move(src, dst); err != nil {
			return err
		}
		return d.Draw(b)
	})
}
