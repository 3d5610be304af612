// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ renders the difference between two recorded responses and
// provides a terminal picker for choosing them.
package differ
