package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadEscapeSequence attempts to read the rest of an escape sequence after
// an ESC byte. Returns a key code ("arrow_up", "f8", ...) if recognised,
// "escape" for a bare ESC, or empty string for an unknown sequence.
func tryReadEscapeSequence() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
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

	// Numeric CSI sequences terminated by '~' (function keys).
	if b3 >= '0' && b3 <= '9' {
		num := string(b3)
		for {
			b, err := readByte()
			if err != nil {
				return ""
			}
			if b == '~' {
				break
			}
			if b < '0' || b > '9' {
				return ""
			}
			num += string(b)
		}
		if num == "19" {
			return "f8"
		}
	}

	// Unknown escape sequence - discard it
	return ""
}

// GetKey reads a single keypress in raw mode and returns its code as used by
// the bindings table ("z", "enter", "space", "arrow_up", "f8", "escape", ...).
// It returns immediately without waiting for Enter.
func GetKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	for {
		b, err := readByte()
		if err != nil {
			log.Fatalf("Cannot read stdin: %v", err)
			return ""
		}

		switch {
		case b == 0x1b:
			if code := tryReadEscapeSequence(); code != "" {
				return code
			}
		case b == 3: // Ctrl+C
			term.Restore(int(os.Stdin.Fd()), oldState)
			fmt.Println()
			os.Exit(0)
		case b == '\n' || b == '\r':
			return "enter"
		case b == ' ':
			return "space"
		case b >= 'A' && b <= 'Z':
			return string(b + 32)
		case b >= 32 && b < 127:
			return string(b)
		}
	}
}
