// Package input reads keys from the terminal and maps them to game intents.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C
var ErrInterrupted = errors.New("interrupted")

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := r.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, "escape" for a lone escape byte.
func tryReadArrowKey(r io.Reader) string {
	b2, err := readByte(r)
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := readByte(r)
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// DecodeKey turns the bytes of one key press into a binding code
func DecodeKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}

	switch b1 {
	case 0x1b:
		return tryReadArrowKey(r), nil
	case 3:
		return "", ErrInterrupted
	case '\n', '\r':
		return "enter", nil
	case ' ':
		return "space", nil
	}
	if b1 >= 32 && b1 < 127 {
		return strings.ToLower(string(b1)), nil
	}
	return "", nil
}

// ReadKey puts the terminal into raw mode and reads one key press.
// When stdin is not a terminal it falls back to reading a line and uses
// its first character.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := GetInput()
		if err != nil {
			return "", err
		}
		if line == "" {
			return "enter", nil
		}
		return DecodeKey(strings.NewReader(line))
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return DecodeKey(os.Stdin)
}
