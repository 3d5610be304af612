// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/apigwctl/internal/differ"
	"github.com/tfctl/apigwctl/internal/history"
	"github.com/tfctl/apigwctl/internal/log"
	"github.com/tfctl/apigwctl/internal/meta"
)

var historyDefaultAttrs = []string{"ID", "Time", "Command", "Operation", "Region", "Error"}

// historyRow is the listed shape of an entry. Responses are left out.
type historyRow struct {
	ID        string `json:"ID"`
	Time      string `json:"Time"`
	Command   string `json:"Command"`
	Operation string `json:"Operation"`
	Region    string `json:"Region,omitempty"`
	Error     string `json:"Error,omitempty"`
}

// pickEntries selects the entries to compare interactively. It is a variable
// so tests can stand in for the terminal.
var pickEntries = differ.SelectEntries

func historyListAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debug("Executing action for history list")

	entries, err := history.List()
	if err != nil {
		return err
	}

	rows := make([]historyRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, historyRow{
			ID:        e.ID,
			Time:      e.Time.UTC().Format("2006-01-02T15:04:05.000Z"),
			Command:   e.Command,
			Operation: e.Operation,
			Region:    e.Region,
			Error:     e.Error,
		})
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return Emit(raw, BuildAttrs(cmd, historyDefaultAttrs...), cmd, stdout(m))
}

// historyDiffAction compares the responses of two entries. References are
// entry IDs or 1-based positions, 1 being the newest. With one reference the
// newest entry is the right side. With none, or "+", a picker chooses both
// when stdin is a terminal; otherwise the two newest entries are compared.
func historyDiffAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	entries, err := history.List()
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) > 2 {
		return fmt.Errorf("history diff takes at most two entries, got %d", len(args))
	}

	var left, right *history.Entry
	switch {
	case len(args) == 2:
		if left, err = history.Resolve(entries, args[0]); err != nil {
			return err
		}
		if right, err = history.Resolve(entries, args[1]); err != nil {
			return err
		}
	case len(args) == 1 && args[0] != "+":
		if left, err = history.Resolve(entries, args[0]); err != nil {
			return err
		}
		if right, err = history.Resolve(entries, "1"); err != nil {
			return err
		}
	default:
		if len(entries) < 2 {
			return fmt.Errorf("history diff needs two entries, found %d", len(entries))
		}
		if interactive(m.Stdin) {
			selected, err := pickEntries(entries)
			if err != nil {
				return err
			}
			log.Debugf("selected entries: %d", len(selected))
			if len(selected) != 2 {
				return nil
			}
			left, right = &selected[1], &selected[0]
		} else {
			left, right = &entries[1], &entries[0]
		}
	}

	log.Debugf("diffing history entries: left=%s right=%s", left.ID, right.ID)
	return differ.Diff(stdout(m), left.Response, right.Response, cmd.StringSlice("ignore"), cmd.Bool("color"))
}

func historyClearAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	n, err := history.Clear()
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr(m), "removed %d history entries\n", n)
	return nil
}

// interactive reports whether r is a terminal.
func interactive(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func historyCommandBuilder(m meta.Meta) *cli.Command {
	list := (&CommandBuilder{
		Name:      "list",
		Usage:     "list recorded calls, newest first",
		UsageText: "apigwctl history list [options]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if DumpSchemaIfRequested(cmd, reflect.TypeOf(historyRow{}), stdout(GetMeta(cmd))) {
				return nil
			}
			return historyListAction(ctx, cmd)
		},
		Meta: m,
	}).Build()

	diff := &cli.Command{
		Name:      "diff",
		Usage:     "compare the responses of two recorded calls",
		UsageText: "apigwctl history diff [A [B]|+] [options]",
		Metadata:  map[string]any{"meta": m},
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "top-level response keys to leave out of the comparison",
			},
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
			},
		},
		Action: historyDiffAction,
	}

	clearCmd := &cli.Command{
		Name:      "clear",
		Usage:     "remove all recorded calls",
		UsageText: "apigwctl history clear",
		Metadata:  map[string]any{"meta": m},
		Action:    historyClearAction,
	}

	return &cli.Command{
		Name:     "history",
		Usage:    "recorded calls",
		Commands: []*cli.Command{list, diff, clearCmd},
	}
}
