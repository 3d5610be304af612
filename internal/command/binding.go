// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/body"
	"github.com/tfctl/apigwctl/internal/log"
)

// Kind is the shape of a parameter's value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStrings
	KindMap     // repeated key=value
	KindBoolMap // repeated key=true|false
	KindBody    // path, "-" or s3://bucket/key
	KindPatch   // repeated op:path[:value]
)

// Param declares one parameter of a cmdlet.
type Param struct {
	Name       string
	Aliases    []string
	Usage      string
	Kind       Kind
	Required   bool
	Hidden     bool
	Positional bool
}

// Flag returns the cli flag backing p.
func (p Param) Flag() cli.Flag {
	usage := p.Usage
	if p.Required {
		usage += " (required)"
	}

	switch p.Kind {
	case KindBool:
		return &cli.BoolFlag{Name: p.Name, Aliases: p.Aliases, Usage: usage, Hidden: p.Hidden, HideDefault: true}
	case KindInt:
		return &cli.IntFlag{Name: p.Name, Aliases: p.Aliases, Usage: usage, Hidden: p.Hidden, HideDefault: true}
	case KindFloat:
		return &cli.FloatFlag{Name: p.Name, Aliases: p.Aliases, Usage: usage, Hidden: p.Hidden, HideDefault: true}
	case KindStrings, KindMap, KindBoolMap, KindPatch:
		return &cli.StringSliceFlag{Name: p.Name, Aliases: p.Aliases, Usage: usage, Hidden: p.Hidden}
	default:
		return &cli.StringFlag{Name: p.Name, Aliases: p.Aliases, Usage: usage, Hidden: p.Hidden}
	}
}

// Binder holds the parameter values bound for one invocation. Only bound
// parameters have a value; accessors return zero values for the rest so that
// request fields stay untouched.
type Binder struct {
	params  []Param
	values  map[string]any
	missing []string
	errs    []error
}

// NewBinder copies the bound values of params out of cmd. positional, when not
// empty, is bound to the positional parameter. Body parameters are read
// through br.
func NewBinder(ctx context.Context, cmd *cli.Command, params []Param, positional string, br *body.Reader) *Binder {
	b := &Binder{params: params, values: map[string]any{}}

	for _, p := range params {
		if p.Positional && positional != "" {
			b.values[p.Name] = positional
			continue
		}

		if !cmd.IsSet(p.Name) {
			if p.Required {
				b.missing = append(b.missing, p.Name)
			}
			continue
		}

		switch p.Kind {
		case KindString:
			b.values[p.Name] = cmd.String(p.Name)
		case KindBool:
			b.values[p.Name] = cmd.Bool(p.Name)
		case KindInt:
			n := cmd.Int(p.Name)
			if n > math.MaxInt32 || n < math.MinInt32 {
				b.errs = append(b.errs, fmt.Errorf("--%s: %d is out of range", p.Name, n))
				continue
			}
			b.values[p.Name] = int32(n)
		case KindFloat:
			b.values[p.Name] = cmd.Float(p.Name)
		case KindStrings:
			b.values[p.Name] = cmd.StringSlice(p.Name)
		case KindMap:
			m, err := parseMap(cmd.StringSlice(p.Name))
			if err != nil {
				b.errs = append(b.errs, fmt.Errorf("--%s: %w", p.Name, err))
				continue
			}
			b.values[p.Name] = m
		case KindBoolMap:
			m, err := parseBoolMap(cmd.StringSlice(p.Name))
			if err != nil {
				b.errs = append(b.errs, fmt.Errorf("--%s: %w", p.Name, err))
				continue
			}
			b.values[p.Name] = m
		case KindPatch:
			ops, err := parsePatch(cmd.StringSlice(p.Name))
			if err != nil {
				b.errs = append(b.errs, fmt.Errorf("--%s: %w", p.Name, err))
				continue
			}
			b.values[p.Name] = ops
		case KindBody:
			if br == nil {
				br = &body.Reader{}
			}
			data, err := br.Read(ctx, cmd.String(p.Name))
			if err != nil {
				b.errs = append(b.errs, fmt.Errorf("--%s: %w", p.Name, err))
				continue
			}
			b.values[p.Name] = data
		}
	}

	log.Debugf("bound: params=%d values=%d missing=%v errs=%d", len(params), len(b.values), b.missing, len(b.errs))
	return b
}

// Err joins the binding errors, if any.
func (b *Binder) Err() error {
	return errors.Join(b.errs...)
}

// Fail records a conversion error found while building a request.
func (b *Binder) Fail(name string, err error) {
	b.errs = append(b.errs, fmt.Errorf("--%s: %w", name, err))
}

// Missing lists the required parameters that were not bound.
func (b *Binder) Missing() []string {
	return b.missing
}

// IsSet reports whether name was bound.
func (b *Binder) IsSet(name string) bool {
	_, ok := b.values[name]
	return ok
}

// AnySet reports whether at least one of names was bound. Structured request
// members are only created when this is true.
func (b *Binder) AnySet(names ...string) bool {
	for _, n := range names {
		if b.IsSet(n) {
			return true
		}
	}
	return false
}

func (b *Binder) String(name string) *string {
	if v, ok := b.values[name].(string); ok {
		return awsv2.String(v)
	}
	return nil
}

// StringValue is String without the pointer, "" when unbound.
func (b *Binder) StringValue(name string) string {
	v, _ := b.values[name].(string)
	return v
}

func (b *Binder) Bool(name string) bool {
	v, _ := b.values[name].(bool)
	return v
}

func (b *Binder) BoolPtr(name string) *bool {
	if v, ok := b.values[name].(bool); ok {
		return awsv2.Bool(v)
	}
	return nil
}

func (b *Binder) Int32(name string) *int32 {
	if v, ok := b.values[name].(int32); ok {
		return awsv2.Int32(v)
	}
	return nil
}

// Int32Value is Int32 without the pointer, 0 when unbound.
func (b *Binder) Int32Value(name string) int32 {
	v, _ := b.values[name].(int32)
	return v
}

func (b *Binder) Float64(name string) float64 {
	v, _ := b.values[name].(float64)
	return v
}

func (b *Binder) Strings(name string) []string {
	v, _ := b.values[name].([]string)
	return v
}

func (b *Binder) Map(name string) map[string]string {
	v, _ := b.values[name].(map[string]string)
	return v
}

func (b *Binder) BoolMap(name string) map[string]bool {
	v, _ := b.values[name].(map[string]bool)
	return v
}

func (b *Binder) Body(name string) []byte {
	v, _ := b.values[name].([]byte)
	return v
}

func (b *Binder) Patch(name string) []types.PatchOperation {
	v, _ := b.values[name].([]types.PatchOperation)
	return v
}

// Value returns the bound value of the parameter matching name, where name
// is compared to parameter names and aliases ignoring case and dashes. The
// value is nil when the parameter exists but was not bound.
func (b *Binder) Value(name string) (any, error) {
	want := normalizeParamName(name)
	for _, p := range b.params {
		names := append([]string{p.Name}, p.Aliases...)
		for _, n := range names {
			if normalizeParamName(n) == want {
				v := b.values[p.Name]
				if data, ok := v.([]byte); ok {
					v = string(data)
				}
				return v, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown parameter %q", name)
}

// Enum converts a bound string parameter to an SDK enum type.
func Enum[T ~string](b *Binder, name string) T {
	return T(b.StringValue(name))
}

func normalizeParamName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

// parseMap parses key=value pairs. A value may itself contain '='.
func parseMap(pairs []string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		m[strings.TrimSpace(k)] = v
	}
	return m, nil
}

func parseBoolMap(pairs []string) (map[string]bool, error) {
	raw, err := parseMap(pairs)
	if err != nil {
		return nil, err
	}

	m := make(map[string]bool, len(raw))
	for k, v := range raw {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("expected key=true|false, got %q", k+"="+v)
		}
		m[k] = b
	}
	return m, nil
}

// parsePatch parses op:path[:value] specs. For move and copy the value is the
// source path. A colon inside the path is written as \: since the first
// unescaped colon after the path starts the value.
func parsePatch(specs []string) ([]types.PatchOperation, error) {
	var ops []types.PatchOperation
	for _, spec := range specs {
		name, path, value, hasValue, ok := splitPatch(spec)
		if !ok || path == "" {
			return nil, fmt.Errorf("expected op:path[:value], got %q", spec)
		}

		op := types.Op(strings.ToLower(name))
		if !validOp(op) {
			return nil, fmt.Errorf("unknown patch op %q in %q", name, spec)
		}

		po := types.PatchOperation{Op: op, Path: awsv2.String(path)}
		if hasValue {
			switch op {
			case types.OpMove, types.OpCopy:
				po.From = awsv2.String(value)
			default:
				po.Value = awsv2.String(value)
			}
		}
		ops = append(ops, po)
	}
	return ops, nil
}

// splitPatch cuts a patch spec into op, path and value. Only the path
// honors the \: escape. The value is everything after its separator.
func splitPatch(spec string) (op, path, value string, hasValue, ok bool) {
	op, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return "", "", "", false, false
	}

	var sb strings.Builder
	for i := 0; i < len(rest); i++ {
		switch {
		case rest[i] == '\\' && i+1 < len(rest) && rest[i+1] == ':':
			sb.WriteByte(':')
			i++
		case rest[i] == ':':
			return op, sb.String(), rest[i+1:], true, true
		default:
			sb.WriteByte(rest[i])
		}
	}
	return op, sb.String(), "", false, true
}

func validOp(op types.Op) bool {
	for _, v := range op.Values() {
		if v == op {
			return true
		}
	}
	return false
}
