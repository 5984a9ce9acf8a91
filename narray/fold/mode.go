package fold

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the binary operation combined during a fold.
type Mode int

// The numeric values match the FOLD_* selectors of the classic C API.
const (
	Add      Mode = 1
	Subtract Mode = 2
	Multiply Mode = 3
	Divide   Mode = 4
)

// ErrUnknownMode is returned by ParseMode for an unrecognized name.
var ErrUnknownMode = errors.New("fold: unknown mode")

var modeNames = map[Mode]string{
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the four defined modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode returns the mode named s. Both the full names and the symbols
// "+", "-", "*", "/" are accepted, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return Add, nil
	case "subtract", "sub", "-":
		return Subtract, nil
	case "multiply", "mult", "*":
		return Multiply, nil
	case "divide", "div", "/":
		return Divide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
