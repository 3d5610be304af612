// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package body reads request bodies from files, stdin or S3 and writes
// response bodies to files.
package body
