package hanoi

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/colormap"
)

// testColormap returns a small map with distinguishable samples.
func testColormap() colormap.Colormap {
	m := make(colormap.Colormap, 10)
	for i := range m {
		m[i] = colormap.Color{R: uint8(i * 10)}
	}
	return m
}

func mustBoard(t *testing.T, n int) *Board {
	t.Helper()
	b, err := New(n, testColormap())
	if err != nil {
		t.Fatalf("New(%d) failed: %v", n, err)
	}
	return b
}

func TestNewInitialConfiguration(t *testing.T) {
	b := mustBoard(t, 4)

	if b.Peg(0).Height() != 4 {
		t.Fatalf("peg 0 height = %d, want 4", b.Peg(0).Height())
	}
	for k := 0; k < 4; k++ {
		if got := b.Peg(0).At(k).Size; got != 4-k {
			t.Errorf("peg 0 layer %d size = %d, want %d", k, got, 4-k)
		}
	}
	for i := 1; i < NumPegs; i++ {
		if b.Peg(i).Height() != 0 {
			t.Errorf("peg %d height = %d, want 0", i, b.Peg(i).Height())
		}
	}
	if b.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", b.Moves())
	}
}

func TestNewAssignsColormapSamples(t *testing.T) {
	// 10 samples, 4 disks: stride 3, so disk colors come from samples
	// 0, 3, 6, 9 top of stack being the smallest disk.
	b := mustBoard(t, 4)
	want := []uint8{0, 30, 60, 90}
	for k, w := range want {
		if got := b.Peg(0).At(k).Color.R; got != w {
			t.Errorf("layer %d color = %d, want %d", k, got, w)
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(0, testColormap()); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("New(0) error = %v, want ErrInvalidSize", err)
	}
	if _, err := New(-2, testColormap()); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("New(-2) error = %v, want ErrInvalidSize", err)
	}
	if _, err := New(3, nil); !errors.Is(err, ErrEmptyColormap) {
		t.Errorf("New with empty colormap error = %v, want ErrEmptyColormap", err)
	}
}

func TestMoveTransfersTopDisk(t *testing.T) {
	b := mustBoard(t, 3)

	if err := b.Move(0, 2); err != nil {
		t.Fatalf("Move(0, 2) failed: %v", err)
	}
	if b.Peg(0).Height() != 2 || b.Peg(2).Height() != 1 {
		t.Fatalf("heights = %d,%d,%d after move",
			b.Peg(0).Height(), b.Peg(1).Height(), b.Peg(2).Height())
	}
	if b.Peg(2).Top().Size != 1 {
		t.Errorf("moved disk size = %d, want 1", b.Peg(2).Top().Size)
	}
	if b.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", b.Moves())
	}
}

func TestMoveRejectsIllegalMoves(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
		src   int
		dst   int
	}{
		{"empty source", nil, 1, 2},
		{"same peg", nil, 0, 0},
		{"source out of range", nil, -1, 1},
		{"destination out of range", nil, 0, 3},
		{"larger onto smaller", func(b *Board) {
			b.Move(0, 2) // size 1 onto peg 2
		}, 0, 2}, // size 2 onto size 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 3)
			if tt.setup != nil {
				tt.setup(b)
			}
			before := b.Moves()
			if err := b.Move(tt.src, tt.dst); !errors.Is(err, ErrIllegalMove) {
				t.Fatalf("Move(%d, %d) error = %v, want ErrIllegalMove", tt.src, tt.dst, err)
			}
			if b.Moves() != before {
				t.Errorf("move counter advanced on illegal move")
			}
		})
	}
}

func TestMoveDoesNotMutateOnError(t *testing.T) {
	b := mustBoard(t, 2)
	if err := b.Move(1, 2); err == nil {
		t.Fatal("expected error for empty source")
	}
	if b.Peg(0).Height() != 2 || b.Peg(1).Height() != 0 || b.Peg(2).Height() != 0 {
		t.Error("board changed by rejected move")
	}
}

func TestTotalMoves(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{1, 1},
		{2, 3},
		{3, 7},
		{10, 1023},
		{63, (uint64(1) << 63) - 1},
		{64, ^uint64(0)},
		{100, ^uint64(0)},
	}
	for _, tt := range tests {
		if got := TotalMoves(tt.n); got != tt.want {
			t.Errorf("TotalMoves(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestParseLayers(t *testing.T) {
	valid := map[string]int{
		"1":          1,
		"5":          5,
		"+12":        12,
		" 7":         7,
		"\t7":        7,
		"2147483647": 2147483647,
	}
	for in, want := range valid {
		n, err := ParseLayers(in)
		if err != nil || n != want {
			t.Errorf("ParseLayers(%q) = %d, %v; want %d", in, n, err, want)
		}
	}

	// Leading whitespace is skipped; anything after the digits is rejected.
	invalid := []string{"", "abc", "1.5", "0", "-3", "2147483648", "1 2", "0x10", "7 ", " 7 ", "7\n"}
	for _, in := range invalid {
		if _, err := ParseLayers(in); err == nil {
			t.Errorf("ParseLayers(%q) succeeded, want error", in)
		}
	}
}
