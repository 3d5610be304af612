// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateAWSEnv keeps the developer's shared config from leaking into tests.
func isolateAWSEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", dir+"/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", dir+"/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

// TestOptions verifies that each option sets its field.
func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(*testing.T, options)
	}{
		{
			name:  "profile",
			opt:   WithProfile("my-profile"),
			check: func(t *testing.T, o options) { assert.Equal(t, "my-profile", o.profile) },
		},
		{
			name:  "region",
			opt:   WithRegion("eu-west-1"),
			check: func(t *testing.T, o options) { assert.Equal(t, "eu-west-1", o.region) },
		},
		{
			name:  "max attempts",
			opt:   WithMaxAttempts(7),
			check: func(t *testing.T, o options) { assert.Equal(t, 7, o.maxAttempts) },
		},
		{
			name: "retryer",
			opt: WithRetryer(func() awsv2.Retryer {
				return retry.NewStandard()
			}),
			check: func(t *testing.T, o options) {
				require.NotNil(t, o.retryer)
				assert.NotNil(t, o.retryer())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o options
			tt.opt(&o)
			tt.check(t, o)
		})
	}
}

// TestLoadAWSConfig_WithRegion verifies that the region option is applied
// during config loading.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))

	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

// TestLoadAWSConfig_OptionsOrder verifies that later options override
// earlier ones.
func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("us-east-1"),
		WithRegion("eu-central-1"),
	)

	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)
}

// TestLoadAWSConfig_MaxAttempts verifies the retryer honors the cap.
func TestLoadAWSConfig_MaxAttempts(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"), WithMaxAttempts(2))

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.RetryMaxAttempts)
}

// TestLoadAWSConfig_UnknownProfile verifies a missing profile surfaces as an
// error rather than silently falling back.
func TestLoadAWSConfig_UnknownProfile(t *testing.T) {
	isolateAWSEnv(t)

	_, err := LoadAWSConfig(context.Background(), WithProfile("does-not-exist"))

	assert.Error(t, err)
}

// TestNewAPIGateway verifies client construction and the endpoint override.
func TestNewAPIGateway(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	client := NewAPIGateway(cfg, WithEndpoint("http://localhost:4566"))
	assert.IsType(t, &apigateway.Client{}, client)

	var o apigateway.Options
	WithEndpoint("http://localhost:4566")(&o)
	assert.Equal(t, "http://localhost:4566", awsv2.ToString(o.BaseEndpoint))

	o = apigateway.Options{}
	WithEndpoint("")(&o)
	assert.Nil(t, o.BaseEndpoint)
}

// TestNewS3 verifies that NewS3 constructs an S3 client from a valid config.
func TestNewS3(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	assert.IsType(t, &s3v2.Client{}, NewS3(cfg))
}
