package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/apigwctl/internal/command"
	"github.com/tfctl/apigwctl/internal/meta"
)

// Extras holds the hand-written parts of the pages, keyed by command id.
type Extras struct {
	Commands map[string]Extra `yaml:"commands"`
}

type Extra struct {
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
}

type Subcommand struct {
	Extra
	ID    string
	Short string
	Usage string
	Flags []Flag
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

const pageTemplate = `# apigwctl {{ .ID }}

{{ .Short }}

## Synopsis

` + "```" + `
{{ .Usage }}
` + "```" + `
{{ if .Description }}
## Description

{{ .Description }}
{{ end }}
## Options
{{ range .Flags }}
**{{ .Syntax }}**
: {{ .Description }}{{ if .Default }} (default: {{ .Default }}){{ end }}
{{ end }}{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

    {{ .Command }}
{{ end }}{{ end }}{{ if .Notes }}
## Notes
{{ range .Notes }}
- {{ . }}{{ end }}
{{ end }}
---
apigwctl {{ .Version }}, {{ .Date }}
`

// manHeader carries the title block md2man reads from the first lines.
const manHeader = `% APIGWCTL-{{ .IDUpper }}(1) apigwctl {{ .Version }} | apigwctl manual
% apigwctl
% {{ .Date }}

`

func main() {
	docs := "docs"
	if len(os.Args) > 1 {
		docs = os.Args[1]
	}

	var extras Extras
	if data, err := os.ReadFile(filepath.Join(docs, "templates", "apigwctl.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &extras); err != nil {
			panic(err)
		}
	}

	page := template.Must(template.New("page").Parse(pageTemplate))
	header := template.Must(template.New("man").Parse(manHeader))

	root := command.NewRoot(meta.Meta{})
	for _, sub := range leaves(root) {
		sub.Extra = extras.Commands[sub.ID]

		metadata := TemplateData{
			Subcommand: sub,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    getVersion(),
			IDUpper:    strings.ToUpper(sub.ID),
		}

		var md bytes.Buffer
		if err := page.Execute(&md, metadata); err != nil {
			panic(err)
		}
		write(filepath.Join(docs, "commands", sub.ID+".md"), md.Bytes())

		var man bytes.Buffer
		if err := header.Execute(&man, metadata); err != nil {
			panic(err)
		}
		man.Write(md.Bytes())
		write(filepath.Join(docs, "man", "share", "man1", "apigwctl-"+sub.ID+".1"), md2man.Render(man.Bytes()))
	}
}

// leaves returns a Subcommand for every command without subcommands, named
// "<group>-<verb>".
func leaves(root *cli.Command) []Subcommand {
	var subs []Subcommand
	for _, g := range root.Commands {
		if len(g.Commands) == 0 {
			subs = append(subs, subcommand(g.Name, g))
			continue
		}
		for _, v := range g.Commands {
			subs = append(subs, subcommand(g.Name+"-"+v.Name, v))
		}
	}
	return subs
}

func subcommand(id string, c *cli.Command) Subcommand {
	sub := Subcommand{ID: id, Short: c.Usage, Usage: c.UsageText}
	for _, f := range c.Flags {
		names := f.Names()
		var syntax []string
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = df.GetUsage()
			if df.TakesValue() && df.IsDefaultVisible() {
				flag.Default = df.GetDefaultText()
			}
		}
		sub.Flags = append(sub.Flags, flag)
	}

	sort.Slice(sub.Flags, func(i, j int) bool {
		return sub.Flags[i].ID < sub.Flags[j].ID
	})
	return sub
}

func write(path string, data []byte) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		panic(err)
	}
	fmt.Println("Generating", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		panic(err)
	}
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
