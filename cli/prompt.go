package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/network"
)

var (
	errNotInteger = errors.New("must be a whole number")
	errNotNumber  = errors.New("must be a valid number")
)

// fieldError names the prompt that received a bad answer.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string { return e.field + " " + e.err.Error() }
func (e *fieldError) Unwrap() error { return e.err }

// readLine prints prompt and returns the next input line without the line
// terminator. io.EOF means the input is exhausted.
func (c *CLI) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

// readText returns a trimmed answer.
func (c *CLI) readText(prompt string) (string, error) {
	line, err := c.readLine(prompt)
	return strings.TrimSpace(line), err
}

// readInt accepts only a complete integer.
func (c *CLI) readInt(field, prompt string) (int, error) {
	line, err := c.readText(prompt)
	if err != nil {
		return 0, err
	}
	return parseInt(field, line)
}

// readFloat accepts only a complete finite number.
func (c *CLI) readFloat(field, prompt string) (float64, error) {
	line, err := c.readText(prompt)
	if err != nil {
		return 0, err
	}
	return parseFloat(field, line)
}

// readIntOr is readInt where an empty answer keeps current.
func (c *CLI) readIntOr(field, prompt string, current int) (int, error) {
	line, err := c.readText(prompt)
	if err != nil || line == "" {
		return current, err
	}
	return parseInt(field, line)
}

// readFloatOr is readFloat where an empty answer keeps current.
func (c *CLI) readFloatOr(field, prompt string, current float64) (float64, error) {
	line, err := c.readText(prompt)
	if err != nil || line == "" {
		return current, err
	}
	return parseFloat(field, line)
}

// readTextOr is readText where an empty answer keeps current.
func (c *CLI) readTextOr(prompt, current string) (string, error) {
	line, err := c.readText(prompt)
	if err != nil || line == "" {
		return current, err
	}
	return line, nil
}

func parseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &fieldError{field, errNotInteger}
	}
	return v, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &fieldError{field, errNotNumber}
	}
	return v, nil
}

// describe turns store and persistence errors into the messages shown to
// the user.
func describe(err error) string {
	switch {
	case errors.Is(err, network.ErrPersist):
		return "change applied but could not be saved: " + err.Error()
	case errors.Is(err, core.ErrDuplicateCenter):
		return "Health Center ID already exists."
	case errors.Is(err, core.ErrDuplicateConnection):
		return "Connection already exists."
	case errors.Is(err, core.ErrBadText):
		return "Name and District must not contain commas."
	case errors.Is(err, core.ErrLoopNotAllowed):
		return "Cannot connect a health center to itself."
	case errors.Is(err, core.ErrConnectionNotFound):
		return "Connection not found."
	case errors.Is(err, core.ErrCenterNotFound):
		return "Health Center ID not found."
	default:
		return err.Error()
	}
}
