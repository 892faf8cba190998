package hanoi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseLayers converts a user-supplied string into a layer count. It
// accepts a plain decimal integer with an optional sign, skipping leading
// whitespace only; anything after the digits is an error.
func ParseLayers(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimLeft(s, " \t\r\n\v\f"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("num_layers must be an integer")
	}
	if n <= 0 {
		return 0, fmt.Errorf("num_layers must be greater than zero")
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("num_layers must be at most %d", math.MaxInt32)
	}
	return int(n), nil
}
