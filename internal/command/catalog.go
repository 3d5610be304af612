// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"
)

// Parameters shared by many cmdlets.
var (
	restAPIIDParam = Param{
		Name:     "rest-api-id",
		Aliases:  []string{"api"},
		Usage:    "identifier of the REST API",
		Required: true,
	}
	resourceIDParam = Param{
		Name:     "resource-id",
		Usage:    "identifier of the resource",
		Required: true,
	}
	httpMethodParam = Param{
		Name:     "http-method",
		Usage:    "HTTP verb of the method, e.g. GET",
		Required: true,
	}
	stageNameParam = Param{
		Name:     "stage-name",
		Aliases:  []string{"stage"},
		Usage:    "name of the stage",
		Required: true,
	}
	descriptionParam = Param{
		Name:  "description",
		Usage: "description",
	}
	nameParam = Param{
		Name:     "name",
		Usage:    "name",
		Required: true,
	}
	patchParam = Param{
		Name:  "patch",
		Usage: "patch operation op:path[:value], repeatable. op is add, remove, replace, move, copy or test. Write a colon inside the path as \\:",
		Kind:  KindPatch,
	}
	tagsParam = Param{
		Name:  "tags",
		Usage: "key=value tag, repeatable",
		Kind:  KindMap,
	}
	embedParam = Param{
		Name:  "embed",
		Usage: "embedded sub-resources to include, e.g. methods",
		Kind:  KindStrings,
	}
)

// positional marks p as the parameter bound from positional arguments.
func positional(p Param) Param {
	p.Positional = true
	return p
}

// optional clears the Required mark of a shared parameter.
func optional(p Param) Param {
	p.Required = false
	return p
}

// group returns a noun command holding the given verbs.
func group(name string, usage string, verbs ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     name,
		Usage:    usage,
		Commands: verbs,
	}
}
