// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/urfave/cli/v3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations that no single flag validator
// can see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Bool("force") && c.Bool("what-if") {
		return fmt.Errorf("--force and --what-if are mutually exclusive")
	}
	if sel := c.String("select"); c.IsSet("select") && strings.TrimSpace(sel) == "" {
		return fmt.Errorf("--select must not be empty")
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func NonNegativeValidator(value any) error {
	if n, ok := value.(int); ok && n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// Int32Validator rejects values the SDK cannot carry in an int32 field.
func Int32Validator(value any) error {
	if n, ok := value.(int); ok && (n < math.MinInt32 || n > math.MaxInt32) {
		return fmt.Errorf("%d is out of range", n)
	}
	return nil
}
