// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendly_Nil(t *testing.T) {
	assert.NoError(t, Friendly(nil, ErrorContext{Operation: "GetRestApis"}))
}

func TestFriendly_DNS(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "apigateway.mars-1.amazonaws.com", IsNotFound: true}
	// The SDK buries the resolver error a few wraps deep.
	cause := fmt.Errorf("operation error API Gateway: GetRestApis, https response error: %w",
		&net.OpError{Op: "dial", Net: "tcp", Err: dnsErr})

	err := Friendly(cause, ErrorContext{Operation: "GetRestApis", Region: "mars-1"})

	var nre *NameResolutionError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, "apigateway.mars-1.amazonaws.com", nre.Host)
	assert.Contains(t, err.Error(), "name resolution failure")
	assert.Contains(t, err.Error(), `region "mars-1"`)
	assert.NotContains(t, err.Error(), "endpoint")
	assert.Contains(t, err.Error(), "Check --region and network connectivity")

	var inner *net.DNSError
	assert.ErrorAs(t, err, &inner, "original error stays reachable")
}

func TestFriendly_DNSWithEndpoint(t *testing.T) {
	cause := &net.DNSError{Err: "no such host", Name: "localstack"}

	err := Friendly(cause, ErrorContext{Operation: "GetStage", Region: "us-east-1", Endpoint: "http://localstack:4566"})

	assert.Contains(t, err.Error(), `endpoint "http://localstack:4566"`)
	assert.Contains(t, err.Error(), "Check --region, --endpoint-url and network connectivity")
}

func TestFriendly_APIError(t *testing.T) {
	cause := &smithy.GenericAPIError{Code: "NotFoundException", Message: "Invalid API identifier specified"}

	err := Friendly(cause, ErrorContext{Operation: "GetRestApi", Region: "us-east-1"})

	assert.Equal(t, "GetRestApi: NotFoundException: api error NotFoundException: Invalid API identifier specified", err.Error())
	var apiErr smithy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NotFoundException", ErrorCode(err))
}

func TestFriendly_Cancelled(t *testing.T) {
	err := Friendly(fmt.Errorf("wrapped: %w", context.Canceled), ErrorContext{Operation: "GetExport"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "GetExport cancelled")
}

func TestFriendly_Other(t *testing.T) {
	cause := errors.New("boom")

	err := Friendly(cause, ErrorContext{})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `request in region "<unset>": boom`, err.Error())
}

func TestErrorCode_NotAPIError(t *testing.T) {
	assert.Empty(t, ErrorCode(errors.New("plain")))
}
