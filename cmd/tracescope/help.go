package main

import (
	"fmt"
	"io"
)

// printHelp writes the usage text, including every registered problem.
func printHelp(w io.Writer, version string) {
	fmt.Fprintf(w, "tracescope %s: step through classic search and scan algorithms\n\n", version)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tracescope [flags] <problem> <args...>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Problems:")
	for _, name := range problemNames() {
		fmt.Fprintf(w, "  %-16s %s\n", name, problems[name].usage)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -format text|json|yaml  Output format (default: text)")
	fmt.Fprintln(w, "  -play                   Interactive terminal player")
	fmt.Fprintln(w, "  -interval <duration>    Player tick interval at speed 1 (default: 500ms)")
	fmt.Fprintln(w, "  -speed <factor>         Player speed multiplier (default: 1)")
	fmt.Fprintln(w, "  -max-steps <n>          Abort the build after n steps")
	fmt.Fprintln(w, "  -config <file>          YAML defaults for the flags above")
	fmt.Fprintln(w, "  -verbose                Debug logging on stderr")
	fmt.Fprintln(w, "  -version                Print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Player keys:")
	fmt.Fprintln(w, "  space play/pause   ←/→ step   home/end seek   r reset   +/- speed   q quit")
}
