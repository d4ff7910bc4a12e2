package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
)

func (p *Executor) PrintUsage() {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true
		fmt.Fprintf(os.Stdout, "%s", name)
		for _, alias := range command.Aliases {
			fmt.Fprintf(os.Stdout, " | %s", alias)
		}
		fmt.Fprintf(os.Stdout, "\n")
		if command.Description != "" {
			fmt.Fprintf(os.Stdout, "\t%s\n", command.Description)
		}
	}
}
