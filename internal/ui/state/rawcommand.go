package state

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrParse is returned when the raw command buffer does not hold a number.
var ErrParse = errors.New("raw command is not a number")

// RawCommand accumulates the digits typed ahead of a command key, vi style
// ("12g" jumps to the twelfth entry).
type RawCommand struct {
	text []rune
}

// Push appends r when it is an ASCII digit and reports whether it did.
func (c *RawCommand) Push(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	c.text = append(c.text, r)
	return true
}

// Number parses the buffer as a non-negative integer.
func (c *RawCommand) Number() (int, error) {
	if len(c.text) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrParse)
	}
	for _, r := range c.text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrParse, string(c.text))
		}
	}
	n, err := strconv.Atoi(string(c.text))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, nil
}

// Clear empties the buffer.
func (c *RawCommand) Clear() {
	c.text = c.text[:0]
}

// Empty reports whether nothing has been typed.
func (c *RawCommand) Empty() bool {
	return len(c.text) == 0
}

func (c *RawCommand) String() string {
	return string(c.text)
}
