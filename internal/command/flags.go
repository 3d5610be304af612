// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

func newSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "list the attributes of the result items",
		HideDefault: true,
	}
}

func newForceFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "force",
		Usage:       "skip the confirmation prompt",
		HideDefault: true,
	}
}

func newWhatIfFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "what-if",
		Usage:       "describe the operation without performing it",
		HideDefault: true,
	}
}

// NewGlobalFlags returns the output shaping flags shared by every command that
// emits results.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "spaces between text columns",
			Value: 2,
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewAWSFlags returns the flags that configure the SDK client. Values fall
// back to the environment and then to the config file, namespaced key first.
// params[0] is the namespace and params[1] the config file.
func NewAWSFlags(params ...string) (flags []cli.Flag) {
	region := &cli.StringFlag{
		Name:    "region",
		Aliases: []string{"r"},
		Usage:   "AWS region to send requests to",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_REGION"),
			cli.EnvVar("AWS_DEFAULT_REGION"),
		),
	}
	profile := &cli.StringFlag{
		Name:  "profile",
		Usage: "shared config profile to load credentials from",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_PROFILE"),
		),
	}
	endpoint := &cli.StringFlag{
		Name:  "endpoint-url",
		Usage: "override the service endpoint, e.g. a local emulator",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("APIGWCTL_ENDPOINT_URL"),
		),
	}
	attempts := &cli.IntFlag{
		Name:  "max-attempts",
		Usage: "maximum attempts made by the SDK retryer, 0 for the SDK default",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_MAX_ATTEMPTS"),
		),
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}

	if len(params) == 2 && params[1] != "" {
		region.Sources.Chain = append(region.Sources.Chain, configSources(params[0], params[1], "region")...)
		profile.Sources.Chain = append(profile.Sources.Chain, configSources(params[0], params[1], "profile")...)
		endpoint.Sources.Chain = append(endpoint.Sources.Chain, configSources(params[0], params[1], "endpoint_url")...)
		attempts.Sources.Chain = append(attempts.Sources.Chain, configSources(params[0], params[1], "max_attempts")...)
	}

	return []cli.Flag{region, profile, endpoint, attempts}
}

// NewPagingFlags returns the flags of a list cmdlet. Legacy cmdlets also get
// the local --max-items budget.
func NewPagingFlags(p Paging) []cli.Flag {
	if p == NoPaging {
		return nil
	}

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "page size requested from the service",
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator, Int32Validator)
			},
		},
		&cli.StringFlag{
			Name:  "position",
			Usage: "start from this cursor and fetch a single page",
		},
		&cli.BoolFlag{
			Name:        "no-auto-iteration",
			Usage:       "fetch a single page",
			HideDefault: true,
		},
	}

	if p == Legacy {
		flags = append(flags, &cli.IntFlag{
			Name:  "max-items",
			Usage: "stop after emitting this many items, 0 for all",
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		})
	}

	return flags
}

// configSources returns the "<ns>.<key>" and "<key>" YAML sources for path.
func configSources(ns string, path string, key string) []cli.ValueSource {
	return []cli.ValueSource{
		yaml.YAML(ns+"."+key, altsrc.StringSourcer(path)),
		yaml.YAML(key, altsrc.StringSourcer(path)),
	}
}
