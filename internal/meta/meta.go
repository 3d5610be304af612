// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/aws"
	"github.com/tfctl/apigwctl/internal/body"
	"github.com/tfctl/apigwctl/internal/config"
	"github.com/tfctl/apigwctl/internal/confirm"
)

// ClientFactory builds the API Gateway client for a command invocation. The
// default factory resolves region, profile and endpoint from the command's
// flags; tests replace it with a fake.
type ClientFactory func(context.Context, *cli.Command) (aws.APIGatewayAPI, error)

// S3Factory builds the S3 client used to read s3:// body sources.
type S3Factory func(context.Context, *cli.Command) (body.S3Getter, error)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the collaborators a cmdlet needs to make its
// single call, and the streams it writes to.
type Meta struct {
	Args      []string
	Config    config.Type
	Context   context.Context
	NewClient ClientFactory
	NewS3     S3Factory
	Confirmer confirm.Confirmer
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
}
