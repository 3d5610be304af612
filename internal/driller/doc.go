// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller extracts values from API responses using dotted paths with
// optional array indexes, e.g. "EndpointConfiguration.Types[0]".
package driller
