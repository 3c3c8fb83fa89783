package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	keyEscape    = 0x1b
	keyCtrlC     = 3
	keyBackspace = 127
)

// ErrInterrupted is returned when Ctrl+C is read
var ErrInterrupted = errors.New("interrupted")

// KeyReader decodes single key presses, including arrow escape sequences,
// from a byte stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey returns the code of the next key press. Printable keys are returned
// as themselves, arrows as "arrow_up" and friends, a lone escape as "escape",
// Enter as "enter". Unknown escape sequences are skipped.
func (k *KeyReader) ReadKey() (string, error) {
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == keyCtrlC:
			return "", ErrInterrupted
		case b == '\r' || b == '\n':
			return "enter", nil
		case b == keyBackspace || b == '\b':
			return "backspace", nil
		case b == keyEscape:
			code, ok := k.readEscape()
			if ok {
				return code, nil
			}
		case b >= 32 && b < 127:
			return string(b), nil
		}
	}
}

// readEscape decodes the rest of an escape sequence. ok is false if the
// sequence was consumed but is not one we bind.
func (k *KeyReader) readEscape() (code string, ok bool) {
	if k.r.Buffered() == 0 {
		return "escape", true
	}
	b2, err := k.r.ReadByte()
	if err != nil {
		return "escape", true
	}
	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		_ = k.r.UnreadByte()
		return "escape", true
	}
	b3, err := k.r.ReadByte()
	if err != nil {
		return "", false
	}
	switch b3 {
	case 'A':
		return "arrow_up", true
	case 'B':
		return "arrow_down", true
	case 'C':
		return "arrow_right", true
	case 'D':
		return "arrow_left", true
	}
	return "", false
}

// Terminal reads key presses from stdin with the terminal in raw mode.
type Terminal struct {
	keys *KeyReader
}

// NewTerminal returns a reader over stdin
func NewTerminal() *Terminal {
	return &Terminal{keys: NewKeyReader(os.Stdin)}
}

// Next blocks for one key press and returns it as a raw input event. Raw
// mode is held only for the duration of the read so log output and prompts
// keep normal line handling.
func (t *Terminal) Next() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return RawInput{}, err
		}
		defer term.Restore(fd, oldState)
	}

	code, err := t.keys.ReadKey()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}
