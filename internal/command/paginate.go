// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/tfctl/apigwctl/internal/log"
)

// Paging selects how a list cmdlet walks the Position cursor.
type Paging int

const (
	// NoPaging cmdlets make exactly one call.
	NoPaging Paging = iota
	// Modular pagination leaves page size semantics to the service.
	Modular
	// Legacy pagination also enforces a local --max-items budget.
	Legacy
)

// servicePageMax is the largest page the service returns.
const servicePageMax = 500

// PartialResultsError reports a legacy pagination failure after some items
// had already been retrieved. The retrieved items are still emitted.
type PartialResultsError struct {
	Retrieved int
	Err       error
}

func (e *PartialResultsError) Error() string {
	return fmt.Sprintf("pagination stopped after %d items: %v", e.Retrieved, e.Err)
}

func (e *PartialResultsError) Unwrap() error { return e.Err }

// Pager holds the pagination settings of one invocation.
type Pager struct {
	Mode     Paging
	Limit    int    // --limit, 0 for the service default
	MaxItems int    // --max-items, legacy only, 0 for unlimited
	Position string // --position
	Manual   bool   // --position bound or --no-auto-iteration
	Hint     io.Writer
}

// Paginate calls fetch until the returned cursor is empty and returns every
// page. in is mutated between calls. Without pagination or in manual mode
// exactly one call is made.
func Paginate[I, O any](ctx context.Context, in *I, fetch func(context.Context, *I) (*O, error), p Pager) ([]*O, error) {
	if p.Mode == NoPaging {
		out, err := fetch(ctx, in)
		if err != nil {
			return nil, err
		}
		return []*O{out}, nil
	}

	if p.Limit > 0 {
		setLimit(in, p.Limit)
	}
	if p.Position != "" {
		setPosition(in, p.Position)
	}

	var (
		pages     []*O
		retrieved int
	)

	for {
		if p.Mode == Legacy && p.MaxItems > 0 {
			remaining := p.MaxItems - retrieved
			if remaining < servicePageMax && (p.Limit == 0 || remaining < p.Limit) {
				setLimit(in, remaining)
			}
		}

		out, err := fetch(ctx, in)
		if err != nil {
			if p.Mode == Legacy && retrieved > 0 {
				return pages, &PartialResultsError{Retrieved: retrieved, Err: err}
			}
			return nil, err
		}

		n := itemCount(out)
		if p.Mode == Legacy && p.MaxItems > 0 && retrieved+n > p.MaxItems {
			n = trimItems(out, p.MaxItems-retrieved)
		}
		retrieved += n
		pages = append(pages, out)

		next := getPosition(out)
		log.Debugf("page %d: items=%d retrieved=%d next=%q", len(pages), n, retrieved, next)

		if p.Manual {
			if next != "" && p.Hint != nil {
				fmt.Fprintf(p.Hint, "More results are available. Next position: %s\n", next)
			}
			break
		}
		if next == "" {
			break
		}
		if p.Mode == Legacy && p.MaxItems > 0 && retrieved >= p.MaxItems {
			break
		}

		setPosition(in, next)
	}

	return pages, nil
}

// setPosition uses reflection to set the Position cursor field of an SDK
// input struct.
func setPosition(in any, position string) {
	v := reflect.ValueOf(in).Elem()
	f := v.FieldByName("Position")
	if f.IsValid() && f.CanSet() {
		f.Set(reflect.ValueOf(&position))
	}
}

// setLimit uses reflection to set the *int32 Limit field of an SDK input
// struct. Values past the int32 range are clamped.
func setLimit(in any, limit int) {
	v := reflect.ValueOf(in).Elem()
	f := v.FieldByName("Limit")
	if f.IsValid() && f.CanSet() && f.Type() == reflect.TypeOf((*int32)(nil)) {
		n := int32(min(limit, math.MaxInt32))
		f.Set(reflect.ValueOf(&n))
	}
}

// getPosition returns the Position cursor of an SDK output struct, "" when
// absent.
func getPosition(out any) string {
	v := reflect.ValueOf(out)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	f := v.FieldByName("Position")
	if !f.IsValid() || f.Kind() != reflect.Ptr || f.IsNil() {
		return ""
	}
	return f.Elem().String()
}

// itemCount returns the length of the Items (or Item) field of an SDK output
// struct.
func itemCount(out any) int {
	f := itemsField(out)
	if !f.IsValid() {
		return 0
	}
	switch f.Kind() {
	case reflect.Slice, reflect.Map:
		return f.Len()
	}
	return 0
}

// trimItems truncates a slice Items field to n and returns the new length.
// Map-valued items cannot be trimmed and are kept whole.
func trimItems(out any, n int) int {
	f := itemsField(out)
	if !f.IsValid() || f.Kind() != reflect.Slice {
		return itemCount(out)
	}
	if f.Len() > n {
		f.Set(f.Slice(0, n))
	}
	return f.Len()
}

func itemsField(out any) reflect.Value {
	v := reflect.ValueOf(out)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	if f := v.FieldByName("Items"); f.IsValid() {
		return f
	}
	return v.FieldByName("Item")
}
