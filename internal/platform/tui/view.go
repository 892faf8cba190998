package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	rodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// renderBoard draws the three pegs side by side, top layer first, with each
// disk styled in its own truecolor foreground.
func renderBoard(b *hanoi.Board) string {
	n := b.Layers()
	var sb strings.Builder

	for layer := n - 1; layer >= 0; layer-- {
		for i := 0; i < hanoi.NumPegs; i++ {
			if i > 0 {
				sb.WriteString("   ")
			}
			writePegLayer(&sb, b.Peg(i), n, layer)
		}
		if layer > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func writePegLayer(sb *strings.Builder, p *hanoi.Peg, n, layer int) {
	if p.Height() <= layer {
		pad := strings.Repeat(" ", n-1)
		sb.WriteString(pad)
		sb.WriteString(rodStyle.Render("|"))
		sb.WriteString(pad)
		return
	}

	disk := p.At(layer)
	pad := strings.Repeat(" ", n-disk.Size)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(disk.Color.Hex()))
	sb.WriteString(pad)
	sb.WriteString(style.Render(strings.Repeat("#", 2*disk.Size-1)))
	sb.WriteString(pad)
}

// renderHeader draws the title and move counter above the board.
func renderHeader(b *hanoi.Board) string {
	counter := fmt.Sprintf("Moves: %d / %d", b.Moves(), b.TotalMoves())
	return titleStyle.Render("Tower of Hanoi") + "\n" + headerStyle.Render(counter)
}
