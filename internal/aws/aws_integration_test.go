// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_RestApiLifecycle creates, reads, lists and deletes a REST
// API using configured AWS credentials. APIGWCTL_ENDPOINT_URL may point at an
// emulator.
func TestIntegration_RestApiLifecycle(t *testing.T) {
	ctx := context.Background()

	cfg, err := LoadAWSConfig(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)

	var client APIGatewayAPI = NewAPIGateway(cfg, WithEndpoint(os.Getenv("APIGWCTL_ENDPOINT_URL")))

	name := fmt.Sprintf("apigwctl-test-%d", time.Now().UnixNano())
	created, err := client.CreateRestApi(ctx, &apigateway.CreateRestApiInput{
		Name:        awsv2.String(name),
		Description: awsv2.String("integration test"),
	})
	require.NoError(t, err)
	id := awsv2.ToString(created.Id)

	defer func() {
		_, err := client.DeleteRestApi(ctx, &apigateway.DeleteRestApiInput{RestApiId: awsv2.String(id)})
		assert.NoError(t, err)
	}()

	got, err := client.GetRestApi(ctx, &apigateway.GetRestApiInput{RestApiId: awsv2.String(id)})
	require.NoError(t, err)
	assert.Equal(t, name, awsv2.ToString(got.Name))

	found := false
	in := &apigateway.GetRestApisInput{Limit: awsv2.Int32(25)}
	for {
		page, err := client.GetRestApis(ctx, in)
		require.NoError(t, err)
		for _, item := range page.Items {
			if awsv2.ToString(item.Id) == id {
				found = true
			}
		}
		if awsv2.ToString(page.Position) == "" {
			break
		}
		in.Position = page.Position
	}
	assert.True(t, found, "created api should be listed")
}
