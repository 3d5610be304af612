// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tfctl/apigwctl/internal/log"
)

// Impact ranks how destructive an operation is.
type Impact int

const (
	None Impact = iota
	Low
	Medium
	High
)

// ParseImpact maps a preference name to an Impact. Unknown names fall back to
// High so that only destructive operations prompt.
func ParseImpact(s string) Impact {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None
	case "low":
		return Low
	case "medium":
		return Medium
	default:
		return High
	}
}

func (i Impact) String() string {
	switch i {
	case None:
		return "none"
	case Low:
		return "low"
	case Medium:
		return "medium"
	default:
		return "high"
	}
}

// ErrNotInteractive is returned by a Confirmer that cannot ask anyone.
var ErrNotInteractive = errors.New("confirmation required but stdin is not a terminal, rerun with --force")

// Confirmer asks the user to approve an operation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Request describes one gated operation.
type Request struct {
	Operation string // e.g. "DeleteRestApi"
	Target    string // e.g. "restapi=abc123"
	Impact    Impact
	Force     bool
	WhatIf    bool
}

// Message is the human-readable description shown to the user.
func (r Request) Message() string {
	return fmt.Sprintf("Performing the operation %q on target %q.", r.Operation, r.Target)
}

// Gate decides whether the operation may proceed. It returns false without an
// error when the user declines or --what-if was requested; w receives the
// what-if line. A prompt is only shown when the impact reaches the
// preference.
func Gate(ctx context.Context, c Confirmer, r Request, preference Impact, w io.Writer) (bool, error) {
	if r.WhatIf {
		fmt.Fprintf(w, "What if: %s\n", r.Message())
		return false, nil
	}

	if r.Force || r.Impact == None || preference == None || r.Impact < preference {
		log.Debugf("confirmation skipped: op=%s impact=%s preference=%s force=%v", r.Operation, r.Impact, preference, r.Force)
		return true, nil
	}

	if c == nil {
		return false, ErrNotInteractive
	}

	ok, err := c.Confirm(ctx, r.Message()+" Continue? [y/N] ")
	if err != nil {
		return false, err
	}
	log.Debugf("confirmation answered: op=%s ok=%v", r.Operation, ok)
	return ok, nil
}

// Terminal prompts on Out and reads the answer from In. It refuses to prompt
// when In is not a terminal, unless AssumeTTY is set.
type Terminal struct {
	In        io.Reader
	Out       io.Writer
	AssumeTTY bool
}

// NewTerminal returns a Terminal wired to the process's stdin and stderr.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr}
}

// Confirm implements Confirmer. Only "y" and "yes" (any case) approve.
//
// When ctx is done first, Confirm returns ctx.Err() but the goroutine reading
// t.In stays blocked until a line or EOF arrives. Each cancelled prompt leaks
// one reader, so callers should exit soon after a cancel rather than prompt
// again on the same input.
func (t *Terminal) Confirm(ctx context.Context, prompt string) (bool, error) {
	if !t.AssumeTTY {
		f, ok := t.In.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return false, ErrNotInteractive
		}
	}

	fmt.Fprint(t.Out, prompt)

	answer := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(t.In).ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(t.Out)
		return false, ctx.Err()
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}
