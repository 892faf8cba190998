package colormap

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

//go:embed builtin.csv
var builtinCSV string

var (
	builtinOnce sync.Once
	builtin     Colormap
)

// Builtin returns the embedded fallback ramp. It is used where a colormap
// file is optional (the TUI viewer and the SSH server); the classic
// animation path insists on the configured file instead.
func Builtin() Colormap {
	builtinOnce.Do(func() {
		scanner := bufio.NewScanner(strings.NewReader(builtinCSV))
		for scanner.Scan() {
			c, err := parseRecord(scanner.Text())
			if err != nil {
				// The embedded table is part of the build; a bad record
				// is a packaging bug.
				panic(err)
			}
			builtin = append(builtin, c)
		}
	})
	return builtin
}
