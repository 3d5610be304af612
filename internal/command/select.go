// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// SelectAll selects the whole response.
const SelectAll = "*"

// ToJSON marshals an SDK response and drops its ResultMetadata, keeping the
// remaining keys in field order.
func ToJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return stripMetadata(raw), nil
}

func stripMetadata(raw []byte) []byte {
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() || !doc.Get("ResultMetadata").Exists() {
		return raw
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	doc.ForEach(func(k, v gjson.Result) bool {
		if k.String() == "ResultMetadata" {
			return true
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(k.Raw)
		buf.WriteByte(':')
		buf.WriteString(v.Raw)
		return true
	})
	buf.WriteByte('}')
	return buf.Bytes()
}

// Project applies a select path to the pages of a response. concat is true
// for paginated operations: "*" then always yields the list of pages and
// array results of every page are joined into one list. Otherwise "*" yields
// the single response as is. Paths use gjson syntax.
func Project(pages [][]byte, path string, concat bool) ([]byte, error) {
	if len(pages) == 0 {
		return []byte("[]"), nil
	}

	if path == SelectAll {
		if len(pages) == 1 && !concat {
			return pages[0], nil
		}
		return joinRaw(pages), nil
	}

	first := gjson.GetBytes(pages[0], path)
	if !first.Exists() {
		return nil, fmt.Errorf("property %q not found in the response", path)
	}
	if !concat {
		return []byte(first.Raw), nil
	}

	var items [][]byte
	for _, page := range pages {
		res := gjson.GetBytes(page, path)
		switch {
		case res.IsArray():
			res.ForEach(func(_, v gjson.Result) bool {
				items = append(items, []byte(v.Raw))
				return true
			})
		case res.Exists() && res.Type != gjson.Null:
			items = append(items, []byte(res.Raw))
		}
	}
	return joinRaw(items), nil
}

func joinRaw(items [][]byte) []byte {
	return []byte("[" + string(bytes.Join(items, []byte(","))) + "]")
}

// paramSelect returns the parameter name of a "^Name" select.
func paramSelect(sel string) (string, bool) {
	name, ok := strings.CutPrefix(strings.TrimSpace(sel), "^")
	return name, ok && name != ""
}
