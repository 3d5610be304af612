// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tfctl/apigwctl/internal/command"
	"github.com/tfctl/apigwctl/internal/config"
	"github.com/tfctl/apigwctl/internal/history"
	"github.com/tfctl/apigwctl/internal/log"
	"github.com/tfctl/apigwctl/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)
		return deduplicateFlags(args)
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(ctx context.Context, args []string) int {
	// Pre-create the history directory when history is enabled.
	if history.Enabled() {
		if _, ok, err := history.EnsureBaseDir(); err != nil && ok {
			log.Debugf("history ensure err: err=%v", err)
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return exitCode(err)
	}

	return 0
}

// exitCode maps a run error to the process exit code. Partial results exit
// with 2 even when joined with other failures, every other failure with 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var partial *command.PartialResultsError
	if errors.As(err, &partial) {
		return 2
	}
	return 1
}

func realMain() int {
	log.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(ctx, args)
}

// processSetOnly expands an @set argument into the "<group>.<set>" string
// list of the config, at the position of the @set argument.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	if len(args) <= idx {
		return args
	}
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			at := idx + i
			args = append(args[:at:at], args[at+1:]...)
			entries, _ := config.GetStringSlice(args[1] + "." + a[1:])
			log.Debugf("set expanded: set=%s entries=%d", a[1:], len(entries))
			return injectConfigSet(args, entries, at)
		}
	}
	return args
}

// injectConfigSet splits entries on whitespace and inserts the fields into
// args at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags drops every occurrence of a repeated flag but the last.
// --x=v and --x v name the same flag. A flag takes the following argument as
// its value unless that argument is itself a flag. Arguments after "--" are
// kept as they are.
func deduplicateFlags(args []string) []string {
	type group struct {
		key    string
		tokens []string
	}

	var groups []group
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			groups = append(groups, group{tokens: args[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			groups = append(groups, group{tokens: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		if n, _, ok := strings.Cut(name, "="); ok {
			groups = append(groups, group{key: n, tokens: []string{a}})
			continue
		}
		g := group{key: name, tokens: []string{a}}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			g.tokens = append(g.tokens, args[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	out := make([]string, 0, len(args))
	for i, g := range groups {
		if g.key != "" && last[g.key] != i {
			continue
		}
		out = append(out, g.tokens...)
	}
	return out
}
