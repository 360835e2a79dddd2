// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/samber/oops"
)

// Control bytes understood by ReadMasked.
const (
	keyInterrupt = 0x03
	keyBackspace = 0x08
	keyEnter     = '\r'
	keyNewline   = '\n'
	keyDelete    = 0x7f
)

// ErrInterrupted is wrapped in the error returned when Ctrl-C is pressed
// while reading a password.
var ErrInterrupted = errors.New("input interrupted")

// ReadMasked reads a password one byte at a time without echoing it.
// Backspace or delete removes the last character; Enter, newline or end of
// input finishes the password.
func ReadMasked(r io.ByteReader) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return string(buf), nil
			}
			return "", oops.Code("CONSOLE_READ_FAILED").Wrap(err)
		}

		switch b {
		case keyEnter, keyNewline:
			return string(buf), nil
		case keyInterrupt:
			return "", oops.Code("CONSOLE_INTERRUPTED").Wrap(ErrInterrupted)
		case keyBackspace, keyDelete:
			if len(buf) > 0 {
				_, size := utf8.DecodeLastRune(buf)
				buf = buf[:len(buf)-size]
			}
		default:
			buf = append(buf, b)
		}
	}
}
