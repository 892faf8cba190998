// Package colormap provides ordered RGB sample tables used to color the
// disks of the puzzle. A colormap is immutable after load; samples are
// treated as equally spaced along the unit interval.
package colormap

import "fmt"

// Color is a 24-bit RGB color with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string for truecolor-aware styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colormap is a finite ordered sequence of color samples.
type Colormap []Color

// Len returns the number of samples.
func (m Colormap) Len() int {
	return len(m)
}

// ColorFor resolves disk index i of n to a sample. Disks are spread across
// the map with a fixed integer stride; once the stride runs past the end,
// the remaining disks clamp to the last sample.
//
// The caller guarantees 0 <= i < n and a non-empty map (Board construction
// rejects empty colormaps).
func (m Colormap) ColorFor(i, n int) Color {
	step := 0
	if n > 1 {
		step = len(m) / (n - 1)
		if step < 1 {
			step = 1
		}
	}
	idx := i * step
	if idx > len(m)-1 {
		idx = len(m) - 1
	}
	return m[idx]
}
