// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tfctl/apigwctl/internal/log"
)

// DefaultMax is the number of entries kept when history.max is not set.
const DefaultMax = 10

// ErrNotFound is returned when an entry reference does not resolve.
var ErrNotFound = errors.New("history entry not found")

// Entry is one recorded SDK call.
type Entry struct {
	ID        string          `json:"id"`
	Time      time.Time       `json:"time"`
	Command   string          `json:"command"`
	Operation string          `json:"operation"`
	Region    string          `json:"region,omitempty"`
	Request   json.RawMessage `json:"request,omitempty"`
	Response  json.RawMessage `json:"response,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Dir resolves the base history directory.
// Precedence:
//  1. APIGWCTL_CACHE_DIR/history, if set and non-empty
//  2. os.UserCacheDir()/apigwctl/history
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("APIGWCTL_CACHE_DIR"); ok && c != "" {
		return filepath.Join(c, "history"), true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "apigwctl", "history"), true
	}
	return "", false
}

// Enabled returns true unless APIGWCTL_HISTORY explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("APIGWCTL_HISTORY")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// EnsureBaseDir creates the history directory if history is enabled and a
// base path can be resolved. Returns the path, whether it is usable, and an
// error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}

	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create history directory: %w", err)
	}
	return base, true, nil
}

// Write stores e and trims the directory down to the newest max entries.
// e.ID and e.Time are filled in when empty.
func Write(e *Entry, max int) error {
	base, ok, err := EnsureBaseDir()
	if err != nil || !ok {
		return err // nil when disabled.
	}

	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}
	if e.ID == "" {
		e.ID = strconv.FormatInt(e.Time.UnixNano(), 10)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	p := filepath.Join(base, e.ID+".json")
	if err := os.WriteFile(p, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write history entry: %w", err)
	}
	log.Debugf("history write: id=%s op=%s", e.ID, e.Operation)

	return Trim(max)
}

// Trim removes all but the newest max entries. max <= 0 means DefaultMax.
func Trim(max int) error {
	if max <= 0 {
		max = DefaultMax
	}

	names, err := entryFiles()
	if err != nil || len(names) <= max {
		return err
	}

	base, _ := Dir()
	for _, name := range names[max:] {
		p := filepath.Join(base, name)
		if err := os.Remove(p); err == nil {
			log.Debugf("removed history file %s", p)
		} else {
			log.WithError(err).Warnf("failed to remove history file %s", p)
		}
	}
	return nil
}

// List returns the recorded entries, newest first. Unreadable files are
// skipped.
func List() ([]Entry, error) {
	names, err := entryFiles()
	if err != nil {
		return nil, err
	}

	base, _ := Dir()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		e, err := readFile(filepath.Join(base, name))
		if err != nil {
			log.WithError(err).Warnf("skipping history file %s", name)
			continue
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

// Resolve finds an entry by its ID or by its 1-based position in List
// (1 is the newest).
func Resolve(entries []Entry, ref string) (*Entry, error) {
	for i := range entries {
		if entries[i].ID == ref {
			return &entries[i], nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(entries) {
		return &entries[n-1], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Clear removes every entry and returns how many were removed.
func Clear() (int, error) {
	names, err := entryFiles()
	if err != nil {
		return 0, err
	}

	base, _ := Dir()
	removed := 0
	for _, name := range names {
		if err := os.Remove(filepath.Join(base, name)); err != nil {
			return removed, fmt.Errorf("failed to clear history: %w", err)
		}
		removed++
	}
	log.Debugf("history cleared: removed=%d", removed)
	return removed, nil
}

// entryFiles lists entry file names newest first. A missing directory is
// an empty history.
func entryFiles() ([]string, error) {
	base, ok := Dir()
	if !ok {
		return nil, nil
	}

	des, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	var names []string
	for _, de := range des {
		if !de.IsDir() && strings.HasSuffix(de.Name(), ".json") {
			names = append(names, de.Name())
		}
	}

	// IDs are nanosecond timestamps, compare numerically.
	sort.Slice(names, func(i, j int) bool {
		a, _ := strconv.ParseInt(strings.TrimSuffix(names[i], ".json"), 10, 64)
		b, _ := strconv.ParseInt(strings.TrimSuffix(names[j], ".json"), 10, 64)
		return a > b
	})
	return names, nil
}

func readFile(p string) (*Entry, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
