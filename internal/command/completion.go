// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/meta"
)

const bashCompletionHead = `# bash completion for apigwctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_apigwctl()
{
    local cur prev opts
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s --help --version" -- "$cur") )
        return 0
    fi

    local group=${COMP_WORDS[1]}
    if [[ ${COMP_CWORD} -eq 2 ]]; then
        case "$group" in
%s        esac
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    case "$group ${COMP_WORDS[2]}" in
%s    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
    return 0
}

complete -F _apigwctl apigwctl
`

const zshCompletionHead = `#compdef apigwctl

_apigwctl() {
  local -a groups verbs
  groups=(
%s  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'apigwctl groups' groups
    return
  fi

  if (( CURRENT == 3 )); then
    case $words[2] in
%s    esac
    _describe -t commands 'apigwctl verbs' verbs
    return
  fi

  case "$words[2] $words[3]" in
%s    *)
      _arguments '*:argument:'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _apigwctl apigwctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		writeBashCompletion(stdout(m), cmd.Root())
	case "zsh":
		writeZshCompletion(stdout(m), cmd.Root())
	default:
		fmt.Fprintln(stderr(m), "usage: apigwctl completion [bash|zsh]")
	}
	return nil
}

// visible returns the non-hidden subcommands of c, without the implicit help
// command.
func visible(c *cli.Command) []*cli.Command {
	var cmds []*cli.Command
	for _, sub := range c.Commands {
		if sub.Hidden || sub.Name == "help" {
			continue
		}
		cmds = append(cmds, sub)
	}
	return cmds
}

func flagNames(c *cli.Command) []string {
	var names []string
	for _, f := range c.Flags {
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}
	}
	return names
}

func writeBashCompletion(w io.Writer, root *cli.Command) {
	var groups []string
	var verbCases, flagCases strings.Builder
	for _, g := range visible(root) {
		groups = append(groups, g.Name)

		var verbs []string
		for _, v := range visible(g) {
			verbs = append(verbs, v.Name)
			fmt.Fprintf(&flagCases, "        %q) opts=%q ;;\n", g.Name+" "+v.Name, strings.Join(flagNames(v), " "))
		}
		if g.Name == "completion" {
			verbs = []string{"bash", "zsh"}
		}
		if len(verbs) > 0 {
			fmt.Fprintf(&verbCases, "            %s) opts=%q ;;\n", g.Name, strings.Join(verbs, " "))
		}
	}

	fmt.Fprintf(w, bashCompletionHead, strings.Join(groups, " "), verbCases.String(), flagCases.String())
}

// zshQuote strips the characters that end a zsh _describe or _arguments
// description.
var zshQuote = strings.NewReplacer("'", "", "[", "(", "]", ")", ":", " ")

func writeZshCompletion(w io.Writer, root *cli.Command) {
	var groups, verbCases, argCases strings.Builder
	for _, g := range visible(root) {
		fmt.Fprintf(&groups, "    '%s:%s'\n", g.Name, zshQuote.Replace(g.Usage))

		var verbs []string
		for _, v := range visible(g) {
			verbs = append(verbs, fmt.Sprintf("'%s:%s'", v.Name, zshQuote.Replace(v.Usage)))

			fmt.Fprintf(&argCases, "    %q)\n      _arguments \\\n", g.Name+" "+v.Name)
			for _, n := range flagNames(v) {
				fmt.Fprintf(&argCases, "        '%s' \\\n", n)
			}
			argCases.WriteString("        '*:argument:'\n      ;;\n")
		}
		if g.Name == "completion" {
			verbs = []string{"'bash:bash script'", "'zsh:zsh script'"}
		}
		if len(verbs) > 0 {
			fmt.Fprintf(&verbCases, "      %s) verbs=(%s) ;;\n", g.Name, strings.Join(verbs, " "))
		}
	}

	fmt.Fprintf(w, zshCompletionHead, groups.String(), verbCases.String(), argCases.String())
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "apigwctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
