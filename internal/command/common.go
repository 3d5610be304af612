// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"io"
	"os"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/attrs"
	"github.com/tfctl/apigwctl/internal/config"
	"github.com/tfctl/apigwctl/internal/confirm"
	"github.com/tfctl/apigwctl/internal/history"
	"github.com/tfctl/apigwctl/internal/log"
	"github.com/tfctl/apigwctl/internal/meta"
	"github.com/tfctl/apigwctl/internal/output"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// DumpSchemaIfRequested writes the attributes of t to w when --schema is set,
// and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type, w io.Writer) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(t, w)
		return true
	}
	return false
}

// Emit passes projected JSON to the common output routine.
func Emit(raw []byte, al attrs.AttrList, cmd *cli.Command, w io.Writer) error {
	return output.SliceDiceSpit(raw, al, cmd, w, nil)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

func stdout(m meta.Meta) io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

func stderr(m meta.Meta) io.Writer {
	if m.Stderr != nil {
		return m.Stderr
	}
	return os.Stderr
}

// confirmPreference is the impact at which prompting starts. APIGWCTL_CONFIRM
// wins over the confirm config key.
func confirmPreference() confirm.Impact {
	if v, ok := os.LookupEnv("APIGWCTL_CONFIRM"); ok && v != "" {
		return confirm.ParseImpact(v)
	}
	v, _ := config.GetString("confirm", "high")
	return confirm.ParseImpact(v)
}

// recordHistory stores one call in the history. Failures are logged and never
// fail the command.
func recordHistory(e *history.Entry, request any, response []byte) {
	if !history.Enabled() {
		return
	}

	if keep, _ := config.GetBool("history.requests", false); keep && request != nil {
		if raw, err := ToJSON(request); err == nil {
			e.Request = raw
		}
	}
	if len(response) > 0 {
		e.Response = json.RawMessage(response)
	}

	max, _ := config.GetInt("history.max", history.DefaultMax)
	if err := history.Write(e, max); err != nil {
		log.WithError(err).Warn("history write failed")
	}
}
