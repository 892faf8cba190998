package colormap

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load failure classes. Callers match with errors.Is.
var (
	ErrOpenFailed      = errors.New("colormap: cannot open file")
	ErrMalformedRecord = errors.New("colormap: malformed record")
	ErrChannelRange    = errors.New("colormap: channel out of range")
)

// Load reads a colormap from a CSV file. Each record is exactly three
// comma-separated integers r,g,b in 0..255 with no header and no whitespace
// inside records. An empty file yields an empty colormap; rejecting that is
// the board's responsibility, not the loader's.
func Load(path string) (Colormap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	defer f.Close()

	var samples Colormap
	scanner := bufio.NewScanner(f)
	record := 0
	for scanner.Scan() {
		record++
		c, err := parseRecord(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, record, err)
		}
		samples = append(samples, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	return samples, nil
}

// parseRecord converts one "r,g,b" line into a Color.
func parseRecord(line string) (Color, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Color{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields))
	}
	var ch [3]uint8
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedRecord, field)
		}
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: %d", ErrChannelRange, v)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
