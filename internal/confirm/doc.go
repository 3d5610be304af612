// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package confirm gates mutating operations behind a y/N prompt, honoring
// --force, --what-if and the configured confirmation preference.
package confirm
