// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/apigwctl/internal/log"
)

// Identical is written when the two documents do not differ.
const Identical = "The responses are identical."

// Diff compares two JSON documents and writes an ascii diff to w. Top-level
// keys named in ignore are dropped from both sides first.
func Diff(w io.Writer, left, right []byte, ignore []string, color bool) error {
	log.Debugf("len(docs): %d %d", len(left), len(right))

	if len(left) == 0 || len(right) == 0 {
		return fmt.Errorf("nothing to compare: a response is empty")
	}

	var ldoc, rdoc interface{}
	if err := json.Unmarshal(left, &ldoc); err != nil {
		return fmt.Errorf("failed to unmarshal left document: %w", err)
	}
	if err := json.Unmarshal(right, &rdoc); err != nil {
		return fmt.Errorf("failed to unmarshal right document: %w", err)
	}

	differ := gojsondiff.New()

	var delta gojsondiff.Diff
	switch l := ldoc.(type) {
	case map[string]interface{}:
		r, ok := rdoc.(map[string]interface{})
		if !ok {
			return fmt.Errorf("cannot compare an object with %T", rdoc)
		}
		for _, key := range ignore {
			delete(l, key)
			delete(r, key)
		}
		delta = differ.CompareObjects(l, r)
	case []interface{}:
		r, ok := rdoc.([]interface{})
		if !ok {
			return fmt.Errorf("cannot compare an array with %T", rdoc)
		}
		delta = differ.CompareArrays(l, r)
	default:
		return fmt.Errorf("cannot compare %T documents", ldoc)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, Identical)
		return nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       color,
	}

	diffString, err := formatter.NewAsciiFormatter(ldoc, config).Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}
