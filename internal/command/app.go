// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/aws"
	"github.com/tfctl/apigwctl/internal/body"
	"github.com/tfctl/apigwctl/internal/config"
	"github.com/tfctl/apigwctl/internal/confirm"
	"github.com/tfctl/apigwctl/internal/log"
	"github.com/tfctl/apigwctl/internal/meta"
)

// InitApp builds the root command with the default collaborators.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the command group
	// and also the namespace used when retrieving config values. arg[1] could
	// be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.Config.Namespace = ns

	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config loaded: err=%v", err)
	}

	m := meta.Meta{
		Args:      args,
		Config:    cfg,
		Context:   ctx,
		NewClient: newAPIGatewayClient,
		NewS3:     newS3Client,
		Confirmer: confirm.NewTerminal(),
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}

	return NewRoot(m), nil
}

// NewRoot returns the root command holding every command group, wired to m.
func NewRoot(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  "apigwctl",
		Usage: "API Gateway Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "apigwctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		restapiCommandBuilder(m),
		resourceCommandBuilder(m),
		methodCommandBuilder(m),
		integrationCommandBuilder(m),
		stageCommandBuilder(m),
		deploymentCommandBuilder(m),
		authorizerCommandBuilder(m),
		modelCommandBuilder(m),
		validatorCommandBuilder(m),
		domainCommandBuilder(m),
		basepathCommandBuilder(m),
		usageplanCommandBuilder(m),
		usageplankeyCommandBuilder(m),
		usageCommandBuilder(m),
		apikeyCommandBuilder(m),
		docpartCommandBuilder(m),
		docversionCommandBuilder(m),
		vpclinkCommandBuilder(m),
		clientcertCommandBuilder(m),
		accountCommandBuilder(m),
		tagCommandBuilder(m),
		exportCommandBuilder(m),
		sdkCommandBuilder(m),
		historyCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, group := range app.Commands {
		for _, cmd := range group.Commands {
			sort.Slice(cmd.Flags, func(i, j int) bool {
				return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
			})
		}
	}

	return app
}

// newAPIGatewayClient loads the SDK config from the invocation's flags.
func newAPIGatewayClient(ctx context.Context, cmd *cli.Command) (aws.APIGatewayAPI, error) {
	cfg, err := aws.LoadAWSConfig(ctx,
		aws.WithProfile(cmd.String("profile")),
		aws.WithRegion(cmd.String("region")),
		aws.WithMaxAttempts(cmd.Int("max-attempts")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return aws.NewAPIGateway(cfg, aws.WithEndpoint(cmd.String("endpoint-url"))), nil
}

func newS3Client(ctx context.Context, cmd *cli.Command) (body.S3Getter, error) {
	cfg, err := aws.LoadAWSConfig(ctx,
		aws.WithProfile(cmd.String("profile")),
		aws.WithRegion(cmd.String("region")),
		aws.WithMaxAttempts(cmd.Int("max-attempts")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return aws.NewS3(cfg), nil
}
