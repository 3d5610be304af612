// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK v2 configuration and builds the API Gateway and
// S3 clients used by the cmdlets. It also owns the APIGatewayAPI seam and the
// translation of SDK errors into user-facing messages.
package aws
