package render

// ANSI escape sequences used by the in-place frame protocol. Truecolor SGR
// output is emitted unconditionally; terminals without 24-bit support will
// show garbage, which is accepted.
const (
	setForegroundFmt = "\x1b[38;2;%d;%d;%dm" // truecolor foreground r;g;b
	resetColor       = "\x1b[0;0m"
	cursorUp         = "\x1b[A"
	carriageReturn   = "\r"
	eraseToEnd       = "\x1b[J" // erase from cursor to end of screen
)
