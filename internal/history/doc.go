// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package history records each SDK call as a JSON file in the user cache
// directory and keeps only the newest entries.
package history
