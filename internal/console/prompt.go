// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/term"

	"github.com/holomush/credcheck/internal/credential"
)

// Prompt labels.
const (
	UsernamePrompt = "Username: "
	PasswordPrompt = "Password: "
)

// Prompter asks for a username and a masked password.
type Prompter struct {
	in  *bufio.Reader
	fd  int
	tty bool
	out io.Writer
}

// NewPrompter reads from in and writes prompts to out. When in is a terminal
// it is switched to raw mode while the password is typed.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), fd: -1, out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

// Prompt collects one credential.
func (p *Prompter) Prompt(ctx context.Context) (credential.Credential, error) {
	if err := ctx.Err(); err != nil {
		return credential.Credential{}, oops.Code("CONSOLE_INTERRUPTED").Wrap(err)
	}

	if _, err := io.WriteString(p.out, UsernamePrompt); err != nil {
		return credential.Credential{}, oops.Code("CONSOLE_WRITE_FAILED").Wrap(err)
	}
	username, err := p.readLine()
	if err != nil {
		return credential.Credential{}, err
	}

	if err := ctx.Err(); err != nil {
		return credential.Credential{}, oops.Code("CONSOLE_INTERRUPTED").Wrap(err)
	}

	if _, err := io.WriteString(p.out, PasswordPrompt); err != nil {
		return credential.Credential{}, oops.Code("CONSOLE_WRITE_FAILED").Wrap(err)
	}
	password, err := p.readPassword()
	if err != nil {
		return credential.Credential{}, err
	}

	return credential.Credential{Username: username, Password: password}, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", oops.Code("CONSOLE_READ_FAILED").
			With("field", "username").
			Wrap(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) readPassword() (string, error) {
	if !p.tty {
		password, err := ReadMasked(p.in)
		if err != nil {
			return "", err
		}
		_, _ = fmt.Fprintln(p.out)
		return password, nil
	}

	state, err := term.MakeRaw(p.fd)
	if err != nil {
		return "", oops.Code("CONSOLE_READ_FAILED").
			With("field", "password").
			Wrap(err)
	}
	password, readErr := ReadMasked(p.in)
	restoreErr := term.Restore(p.fd, state)

	// raw mode leaves the cursor where the password ended
	_, _ = io.WriteString(p.out, "\r\n")

	if readErr != nil {
		return "", readErr
	}
	if restoreErr != nil {
		return "", oops.Code("CONSOLE_READ_FAILED").Wrap(restoreErr)
	}
	return password, nil
}
