// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for apigwctl. Every API Gateway
// operation is declared as a Cmdlet that binds flags into an SDK request,
// makes one call, paginates list operations and projects the response through
// --select before the common output routine. The package also wires the
// confirmation gate, call history and shell completion.
package command
