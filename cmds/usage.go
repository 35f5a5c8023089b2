package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
	if p.positional != nil {
		fmt.Fprintf(w, "%s\n", formatCommand(argName(p.positional), p.positional))
	}
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer
	seen := make(map[*Command]bool)
	names := slices.Sorted(maps.Keys(commands))
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		fmt.Fprintf(w, "%s%s\n", indent, formatCommand(name, command))
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}

func formatCommand(name string, command *Command) string {
	var b strings.Builder
	b.WriteString(name)
	for _, alias := range command.Aliases {
		b.WriteString(", ")
		b.WriteString(alias)
	}
	if command.ArgName != "" && name != argName(command) {
		b.WriteString(" <")
		b.WriteString(command.ArgName)
		b.WriteString(">")
	}
	if command.Description != "" {
		b.WriteString("\t")
		b.WriteString(command.Description)
	}
	return b.String()
}

func argName(command *Command) string {
	if command.ArgName != "" {
		return "<" + command.ArgName + ">"
	}
	return "<arg>"
}
