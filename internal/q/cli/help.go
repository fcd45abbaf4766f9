package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

func writeHelp(w io.Writer, cmd *Command) {
	name := displayName(cmd)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", name, cmd.Short)
	} else {
		fmt.Fprintln(w, name)
	}
	if cmd.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(cmd.Long, "\n"))
	}

	flags := activeFlags(cmd)

	fmt.Fprintf(w, "\nUsage:\n  %s\n", usageLine(cmd, len(flags) > 0))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(cmd.children) > 0 {
		children := cmd.Commands()
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
		fmt.Fprintln(tw, "\nCommands:")
		for _, child := range children {
			fmt.Fprintf(tw, "  %s\t%s\n", child.Name, child.Short)
		}
	}
	if len(flags) > 0 {
		fmt.Fprintln(tw, "\nFlags:")
		for _, def := range flags {
			fmt.Fprintf(tw, "  %s\t%s\n", flagHelpNames(def), strings.TrimSpace(def.usage))
		}
	}
	tw.Flush()

	if cmd.Example != "" {
		fmt.Fprintln(w, "\nExample:")
		for _, line := range strings.Split(strings.TrimRight(cmd.Example, "\n"), "\n") {
			if line == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

// displayName is the space-joined path of command names from the root, ex: "prog sub".
func displayName(cmd *Command) string {
	var parts []string
	for _, c := range cmd.lineage() {
		parts = append(parts, c.Name)
	}
	return strings.Join(parts, " ")
}

func usageLine(cmd *Command, hasFlags bool) string {
	segments := []string{displayName(cmd)}
	if hasFlags {
		segments = append(segments, "[flags]")
	}
	switch {
	case len(cmd.children) > 0 && cmd.Run == nil:
		segments = append(segments, "<command>")
	case len(cmd.children) > 0:
		segments = append(segments, "[command]")
	}
	if cmd.Run != nil {
		segments = append(segments, "[args]")
	}
	return strings.Join(segments, " ")
}

func flagHelpNames(def *flagDef) string {
	names := "    --" + def.name
	if def.shorthand != 0 {
		names = fmt.Sprintf("-%c, --%s", def.shorthand, def.name)
	}
	if t := def.value.typeName(); t != "" {
		names += " <" + t + ">"
	}
	return names
}
