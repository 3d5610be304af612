// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	apexlog "github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/attrs"
	"github.com/tfctl/apigwctl/internal/aws"
	"github.com/tfctl/apigwctl/internal/body"
	"github.com/tfctl/apigwctl/internal/config"
	"github.com/tfctl/apigwctl/internal/confirm"
	"github.com/tfctl/apigwctl/internal/history"
	"github.com/tfctl/apigwctl/internal/log"
	"github.com/tfctl/apigwctl/internal/meta"
	"github.com/tfctl/apigwctl/internal/output"
)

// Cmdlet maps one API Gateway operation onto a command. I and O are the SDK
// input and output types of the operation.
type Cmdlet[I, O any] struct {
	Group     string // noun, e.g. "restapi"
	Verb      string // e.g. "list"
	Operation string // SDK operation, e.g. "GetRestApis"
	Usage     string
	Params    []Param

	// Call is the client method, e.g. aws.APIGatewayAPI.GetRestApis.
	Call func(aws.APIGatewayAPI, context.Context, *I, ...func(*apigateway.Options)) (*O, error)

	// Build populates the request. A nil Build sends a zero request.
	Build func(*Binder) *I

	// Post runs on every page before projection, e.g. to save a body.
	Post func(*Binder, *O) error

	Paging Paging
	Select string   // default --select, "*" when empty
	Attrs  []string // default --attrs for the default select
	Schema reflect.Type

	// Impact above None makes the cmdlet mutating: it gets --force and
	// --what-if and passes the confirmation gate.
	Impact confirm.Impact
	Target func(*I) string
}

// Command builds the cli.Command of the cmdlet.
func (c *Cmdlet[I, O]) Command(m meta.Meta) *cli.Command {
	var flags []cli.Flag
	for _, p := range c.Params {
		flags = append(flags, p.Flag())
	}
	flags = append(flags, &cli.StringFlag{
		Name:  "select",
		Usage: "'*' for the whole response, a property path, or ^Param for a parameter value",
		Value: c.defaultSelect(),
	})
	flags = append(flags, NewPagingFlags(c.Paging)...)
	if c.Impact > confirm.None {
		flags = append(flags, newForceFlag(), newWhatIfFlag())
	}
	flags = append(flags, NewAWSFlags(c.Group, m.Config.Source)...)

	usageText := fmt.Sprintf("apigwctl %s %s [options]", c.Group, c.Verb)
	if p := c.positional(); p != nil {
		usageText = fmt.Sprintf("apigwctl %s %s [%s ...|-] [options]", c.Group, c.Verb, strings.ToUpper(p.Name))
	}

	return (&CommandBuilder{
		Name:      c.Verb,
		Usage:     c.Usage,
		UsageText: usageText,
		Flags:     flags,
		Action:    c.Run,
		Meta:      m,
	}).Build()
}

// Run is the action of the cmdlet. The cmdlet runs once per positional value;
// each run is independent and errors are joined.
func (c *Cmdlet[I, O]) Run(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %s %s", c.Group, c.Verb)

	config.Config.Namespace = c.Group

	if DumpSchemaIfRequested(cmd, c.schema(), stdout(m)) {
		return nil
	}

	values, err := c.positionalValues(cmd, m)
	if err != nil {
		return err
	}

	var errs []error
	for _, v := range values {
		if err := c.runOne(ctx, cmd, m, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Cmdlet[I, O]) runOne(ctx context.Context, cmd *cli.Command, m meta.Meta, positional string) error {
	br := &body.Reader{Stdin: m.Stdin}
	if m.NewS3 != nil {
		br.S3 = func(ctx context.Context) (body.S3Getter, error) { return m.NewS3(ctx, cmd) }
	}

	b := NewBinder(ctx, cmd, c.Params, positional, br)
	if err := b.Err(); err != nil {
		return err
	}

	sel := cmd.String("select")
	if name, ok := paramSelect(sel); ok {
		return c.emitParam(cmd, m, b, name)
	}

	in := new(I)
	if c.Build != nil {
		in = c.Build(b)
	}
	if err := b.Err(); err != nil {
		return err
	}

	for _, name := range b.Missing() {
		fmt.Fprintf(stderr(m), "WARNING: required parameter --%s is not set\n", name)
		log.Warnf("required parameter missing: op=%s param=%s", c.Operation, name)
	}

	if c.Impact > confirm.None {
		proceed, err := confirm.Gate(ctx, m.Confirmer, confirm.Request{
			Operation: c.Operation,
			Target:    c.target(in),
			Impact:    c.Impact,
			Force:     cmd.Bool("force"),
			WhatIf:    cmd.Bool("what-if"),
		}, confirmPreference(), stderr(m))
		if errors.Is(err, confirm.ErrNotInteractive) {
			fmt.Fprintf(stderr(m), "%s not performed: %v\n", c.Operation, err)
			return nil
		}
		if err != nil {
			return err
		}
		if !proceed {
			if !cmd.Bool("what-if") {
				fmt.Fprintf(stderr(m), "%s not performed: declined\n", c.Operation)
			}
			return nil
		}
	}

	if m.NewClient == nil {
		return fmt.Errorf("%s: no client configured", c.Operation)
	}
	client, err := m.NewClient(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	errCtx := aws.ErrorContext{
		Operation: c.Operation,
		Region:    cmd.String("region"),
		Endpoint:  cmd.String("endpoint-url"),
	}
	fetch := func(ctx context.Context, in *I) (*O, error) {
		log.WithFields(apexlog.Fields{"op": c.Operation, "region": errCtx.Region}).Debug("calling")
		out, err := c.Call(client, ctx, in)
		return out, aws.Friendly(err, errCtx)
	}

	pages, callErr := Paginate(ctx, in, fetch, c.pager(cmd, m))

	var partial *PartialResultsError
	if callErr != nil && !errors.As(callErr, &partial) {
		recordHistory(c.historyEntry(errCtx, callErr), in, nil)
		return callErr
	}

	rawPages := make([][]byte, 0, len(pages))
	for _, page := range pages {
		if c.Post != nil {
			if err := c.Post(b, page); err != nil {
				return err
			}
		}
		raw, err := ToJSON(page)
		if err != nil {
			return err
		}
		rawPages = append(rawPages, raw)
	}

	all, _ := Project(rawPages, SelectAll, false)
	recordHistory(c.historyEntry(errCtx, callErr), in, all)

	projected, err := Project(rawPages, sel, c.Paging != NoPaging)
	if err != nil {
		return err
	}

	// Delete and flush operations answer with an empty body.
	if string(projected) == "{}" {
		return callErr
	}

	if err := Emit(projected, c.attrsFor(cmd, sel, projected), cmd, stdout(m)); err != nil {
		return err
	}

	return callErr
}

// emitParam writes the bound value of a parameter without calling the
// service.
func (c *Cmdlet[I, O]) emitParam(cmd *cli.Command, m meta.Meta, b *Binder, name string) error {
	v, err := b.Value(name)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}

	raw, err := ToJSON(v)
	if err != nil {
		return err
	}
	return Emit(raw, output.AttrsFromData(raw), cmd, stdout(m))
}

// attrsFor returns the cmdlet defaults for the default projection, otherwise
// --attrs or the keys of the first row.
func (c *Cmdlet[I, O]) attrsFor(cmd *cli.Command, sel string, raw []byte) attrs.AttrList {
	if sel == c.defaultSelect() && len(c.Attrs) > 0 {
		return BuildAttrs(cmd, c.Attrs...)
	}
	if cmd.String("attrs") != "" {
		return BuildAttrs(cmd)
	}
	return output.AttrsFromData(raw)
}

func (c *Cmdlet[I, O]) pager(cmd *cli.Command, m meta.Meta) Pager {
	p := Pager{Mode: c.Paging, Hint: stderr(m)}
	if c.Paging == NoPaging {
		return p
	}

	p.Limit = cmd.Int("limit")
	p.Position = cmd.String("position")
	p.Manual = cmd.IsSet("position") || cmd.Bool("no-auto-iteration")
	if c.Paging == Legacy {
		p.MaxItems = cmd.Int("max-items")
	}
	return p
}

func (c *Cmdlet[I, O]) historyEntry(errCtx aws.ErrorContext, err error) *history.Entry {
	e := &history.Entry{
		Command:   c.Group + " " + c.Verb,
		Operation: c.Operation,
		Region:    errCtx.Region,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// positionalValues returns the values the cmdlet runs for: the positional
// arguments, one line per value from stdin for "-", or a single empty value.
func (c *Cmdlet[I, O]) positionalValues(cmd *cli.Command, m meta.Meta) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return []string{""}, nil
	}

	p := c.positional()
	if p == nil {
		return nil, fmt.Errorf("unexpected argument %q", args[0])
	}

	if len(args) == 1 && args[0] == "-" {
		if m.Stdin == nil {
			return nil, fmt.Errorf("stdin is not available")
		}
		var values []string
		scanner := bufio.NewScanner(m.Stdin)
		for scanner.Scan() {
			if v := strings.TrimSpace(scanner.Text()); v != "" {
				values = append(values, v)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s values from stdin: %w", p.Name, err)
		}
		log.Debugf("positional values from stdin: param=%s count=%d", p.Name, len(values))
		return values, nil
	}

	return args, nil
}

func (c *Cmdlet[I, O]) positional() *Param {
	for i := range c.Params {
		if c.Params[i].Positional {
			return &c.Params[i]
		}
	}
	return nil
}

func (c *Cmdlet[I, O]) defaultSelect() string {
	if c.Select == "" {
		return SelectAll
	}
	return c.Select
}

func (c *Cmdlet[I, O]) schema() reflect.Type {
	if c.Schema != nil {
		return c.Schema
	}
	return reflect.TypeOf((*O)(nil)).Elem()
}

func (c *Cmdlet[I, O]) target(in *I) string {
	if c.Target != nil {
		return c.Target(in)
	}
	return c.Group
}

// target formats name=value pairs, skipping empty values.
func target(pairs ...any) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		var v string
		switch val := pairs[i+1].(type) {
		case *string:
			if val != nil {
				v = *val
			}
		case string:
			v = val
		}
		if v != "" {
			parts = append(parts, fmt.Sprintf("%v=%s", pairs[i], v))
		}
	}
	return strings.Join(parts, ",")
}
