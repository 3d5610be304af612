// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
)

// ErrorContext carries input context for improving API error messages.
type ErrorContext struct {
	Operation string // e.g., "GetRestApis", "DeleteStage"
	Region    string
	Endpoint  string // --endpoint-url override, if any
}

// Friendly wraps an SDK error with a contextual, user-friendly message while
// preserving the original error for further inspection via errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	op := nonEmpty(ctx.Operation, "request")

	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s cancelled: %w", op, err)

	case errors.As(err, &dnsErr):
		// Name resolution failures almost always mean a bad region or endpoint
		// override, so name both.
		where := fmt.Sprintf("region %q", nonEmpty(ctx.Region, "<unset>"))
		if ctx.Endpoint != "" {
			where += fmt.Sprintf(" and endpoint %q", ctx.Endpoint)
		}
		return &NameResolutionError{
			Host:     dnsErr.Name,
			where:    where,
			op:       op,
			endpoint: ctx.Endpoint != "",
			err:      err,
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s: %w", op, apiErr.ErrorCode(), err)
	}

	return fmt.Errorf("%s in region %q: %w", op, nonEmpty(ctx.Region, "<unset>"), err)
}

// ErrorCode returns the service error code carried by err, or "" when err is
// not a service error.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// NameResolutionError reports that the service host could not be resolved.
type NameResolutionError struct {
	Host     string
	where    string
	op       string
	endpoint bool
	err      error
}

func (e *NameResolutionError) Error() string {
	check := "--region"
	if e.endpoint {
		check += ", --endpoint-url"
	}
	return fmt.Sprintf("%s: name resolution failure for host %q using %s. Check %s and network connectivity",
		e.op, e.Host, e.where, check)
}

func (e *NameResolutionError) Unwrap() error { return e.err }

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
